package kotus

import (
	"regexp"
	"strings"
)

// patternMacros expand the shorthand used in rule tables:
// <V> any vowel, <C> any consonant (apostrophe acts as the glottal stop),
// <B> back or neutral vowel, <F> front or neutral vowel.
var patternMacros = strings.NewReplacer(
	"<V>", "[aeiouyäö]",
	"<C>", "[bcdfghjklmnpqrstvwxzšž']",
	"<B>", "[aeiou]",
	"<F>", "[eiyäö]",
)

// compile expands macros and compiles p.
func compile(p string) *regexp.Regexp {
	return regexp.MustCompile(patternMacros.Replace(p))
}

// classRule maps a word shape to one or two class codes.
type classRule[T ~int] struct {
	re    *regexp.Regexp
	codes []T
}

func rule[T ~int](pattern string, codes ...T) classRule[T] {
	return classRule[T]{re: compile(pattern), codes: codes}
}

// decisionList is an ordered rule list; the first matching rule wins.
type decisionList[T ~int] []classRule[T]

func (l decisionList[T]) match(word string) []T {
	for _, r := range l {
		if r.re.MatchString(word) {
			return append([]T(nil), r.codes...)
		}
	}
	return nil
}

// concat joins rule lists in order.
func concat[T ~int](lists ...decisionList[T]) decisionList[T] {
	var out decisionList[T]
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// rewrite replaces the first match of re with repl.
type rewrite struct {
	re   *regexp.Regexp
	repl string
}

func rw(pattern, repl string) rewrite {
	return rewrite{re: compile(pattern), repl: repl}
}

// applyFirst applies the first matching rewrite in rs and reports whether
// any matched.
func applyFirst(s string, rs []rewrite) (string, bool) {
	for _, r := range rs {
		if r.re.MatchString(s) {
			return r.re.ReplaceAllString(s, r.repl), true
		}
	}
	return s, false
}
