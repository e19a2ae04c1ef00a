package kotus

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// gradationSite locates the consonant cluster that alternates: the cluster
// immediately before the last vowel group of word (which may be followed by
// final consonants). katu → kat|u, tytär → tyt|är, onneton → onnet|on.
type gradationSite struct {
	start   int // byte offset of the cluster
	cluster string
}

func (s gradationSite) end() int {
	return s.start + len(s.cluster)
}

func findSite(word string) (gradationSite, bool) {
	i := len(word)
	// final consonants
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(word[:i])
		if isVowel(r) {
			break
		}
		i -= size
	}
	// last vowel group
	vowelEnd := i
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(word[:i])
		if !isVowel(r) {
			break
		}
		i -= size
	}
	if i == vowelEnd {
		return gradationSite{}, false
	}
	clusterEnd := i
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(word[:i])
		if isVowel(r) {
			break
		}
		i -= size
	}
	if i == clusterEnd || i == 0 {
		return gradationSite{}, false
	}
	return gradationSite{start: i, cluster: word[i:clusterEnd]}, true
}

// gradationStep maps the tail of a cluster in one direction. A step with
// blocked set marks a cluster that never alternates.
type gradationStep struct {
	from, to string
	blocked  bool
	// when, if set, must hold for the vowels around the cluster.
	when func(prev, next rune) bool
}

func nextIs(v rune) func(prev, next rune) bool {
	return func(_, next rune) bool { return next == v }
}

func sameRounded(prev, next rune) bool {
	return prev == next && (prev == 'u' || prev == 'y')
}

// weakening is ordered longest/most specific first; the first step whose
// from is a suffix of the cluster applies.
var weakening = []gradationStep{
	{from: "st", blocked: true},
	{from: "sk", blocked: true},
	{from: "sp", blocked: true},
	{from: "tk", blocked: true},
	{from: "ts", blocked: true},
	{from: "kt", blocked: true},
	{from: "kk", to: "k"},
	{from: "pp", to: "p"},
	{from: "tt", to: "t"},
	{from: "nk", to: "ng"},
	{from: "mp", to: "mm"},
	{from: "lt", to: "ll"},
	{from: "nt", to: "nn"},
	{from: "rt", to: "rr"},
	{from: "ht", to: "hd"},
	{from: "lk", to: "lj", when: nextIs('e')},
	{from: "rk", to: "rj", when: nextIs('e')},
	{from: "hk", to: "hj", when: nextIs('e')},
	{from: "lk", to: "l"},
	{from: "rk", to: "r"},
	{from: "hk", to: "h"},
	{from: "lp", to: "lv"},
	{from: "rp", to: "rv"},
	{from: "ns", to: "nn"},
	{from: "rs", to: "rr"},
	{from: "ls", to: "ll"},
	{from: "p", to: "v"},
	{from: "t", to: "d"},
	{from: "k", to: "v", when: sameRounded},
	{from: "k", to: ""},
	{from: "s", to: "d"},
}

var strengthening = []gradationStep{
	{from: "st", blocked: true},
	{from: "sk", blocked: true},
	{from: "ts", blocked: true},
	{from: "tk", blocked: true},
	{from: "nk", blocked: true},
	{from: "mp", blocked: true},
	{from: "lt", blocked: true},
	{from: "nt", blocked: true},
	{from: "rt", blocked: true},
	{from: "ht", blocked: true},
	{from: "lk", blocked: true},
	{from: "rk", blocked: true},
	{from: "ng", to: "nk"},
	{from: "mm", to: "mp"},
	{from: "ll", to: "lt"},
	{from: "nn", to: "nt"},
	{from: "rr", to: "rt"},
	{from: "lj", to: "lk"},
	{from: "rj", to: "rk"},
	{from: "lv", to: "lp"},
	{from: "rv", to: "rp"},
	{from: "hd", to: "ht"},
	{from: "kk", blocked: true},
	{from: "pp", blocked: true},
	{from: "tt", blocked: true},
	{from: "k", to: "kk"},
	{from: "p", to: "pp"},
	{from: "t", to: "tt"},
	{from: "d", to: "t"},
	{from: "v", to: "p"},
}

// gradated is the result of applying consonant gradation to a stem.
type gradated struct {
	stem string
	// elided is the byte offset where a consonant was dropped
	// (vaaka → vaa|a), or -1.
	elided int
}

// gradate applies gradation to stem. The site is located on base (the
// dictionary form or the bare verb stem); stem must still begin with the
// text of base up to the end of the site. Word-level exceptions keyed by
// word are checked first.
func gradate(word, base, stem string, strengthen bool) (gradated, error) {
	if ex, ok := tables.stemExceptions[word]; ok {
		if !strings.HasPrefix(stem, ex.From) {
			return gradated{}, fmt.Errorf("%s: stem %q lacks %q: %w", word, stem, ex.From, ErrNoGradationRule)
		}
		return gradated{stem: ex.To + stem[len(ex.From):], elided: -1}, nil
	}

	site, ok := findSite(base)
	if !ok {
		return gradated{}, fmt.Errorf("%s: no consonant cluster: %w", word, ErrNoGradationRule)
	}
	if !strings.HasPrefix(stem, base[:site.end()]) {
		return gradated{}, fmt.Errorf("%s: stem %q diverges before %q: %w", word, stem, site.cluster, ErrNoGradationRule)
	}

	prev, _ := utf8.DecodeLastRuneInString(stem[:site.start])
	next, _ := utf8.DecodeRuneInString(stem[site.end():])

	steps := weakening
	if strengthen {
		steps = strengthening
	}
	for _, st := range steps {
		if !strings.HasSuffix(site.cluster, st.from) {
			continue
		}
		if st.when != nil && !st.when(prev, next) {
			continue
		}
		if st.blocked {
			break
		}
		cluster := site.cluster[:len(site.cluster)-len(st.from)] + st.to
		g := gradated{
			stem:   stem[:site.start] + cluster + stem[site.end():],
			elided: -1,
		}
		if cluster == "" {
			g.elided = site.start
		}
		return g, nil
	}
	return gradated{}, fmt.Errorf("%s: cluster %q: %w", word, site.cluster, ErrNoGradationRule)
}
