package kotus

import (
	"regexp"
	"strings"
)

// Syllable nuclei. Rules never mix the back and front vowel sets; e and i
// are neutral and appear in both. Diphthongs ending in u/y and the rising
// diphthongs ie/uo/yö only form a nucleus in the first syllable, so
// "vapaus" and "korkeus" are counted with a hiatus (va-pa-us).
const (
	sylCons = `[bcdfghjklmnpqrstvwxzšž' -]*`

	backFirst  = `(aa|ee|ii|oo|uu|ai|ei|oi|ui|au|eu|ou|iu|ie|uo|[aeioué])`
	backLater  = `(aa|ee|ii|oo|uu|ai|ei|oi|ui|[aeioué])`
	frontFirst = `(ee|ii|yy|ää|öö|äi|öi|yi|ei|äy|öy|ey|iy|ie|yö|[eiyäöé])`
	frontLater = `(ee|ii|yy|ää|öö|äi|öi|yi|ei|[eiyäöé])`
)

// syllablePattern builds an anchored pattern for words of exactly n
// syllables with the given nuclei.
func syllablePattern(n int, first, later string) string {
	var b strings.Builder
	b.WriteString("^" + sylCons + first)
	for i := 1; i < n; i++ {
		b.WriteString(sylCons + later)
	}
	b.WriteString(sylCons + "$")
	return b.String()
}

// syllableRules are tried in order: monosyllabic, disyllabic, trisyllabic.
var syllableRules = func() [3]*regexp.Regexp {
	var out [3]*regexp.Regexp
	for i := range out {
		n := i + 1
		out[i] = regexp.MustCompile(syllablePattern(n, backFirst, backLater) +
			"|" + syllablePattern(n, frontFirst, frontLater))
	}
	return out
}()

// CountSyllables returns 1, 2 or 3 for words of that many syllables and 4
// for longer words or shapes the patterns do not recognise. Matching is
// case-insensitive; the exception table is consulted first.
func CountSyllables(word string) int {
	w := Normalize(word)
	if n, ok := tables.syllables[w]; ok {
		return n
	}
	return ruleSyllables(w)
}

// ruleSyllables counts syllables by the patterns only.
func ruleSyllables(w string) int {
	w = strings.Trim(w, "-")
	for i, re := range syllableRules {
		if re.MatchString(w) {
			return i + 1
		}
	}
	return 4
}
