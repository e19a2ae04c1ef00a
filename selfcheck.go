package kotus

import (
	"fmt"
	"slices"
	"strings"
)

// Redundancy is an exception table entry that the generic rules already
// produce. Such entries can be removed without changing any result.
type Redundancy struct {
	Table string `json:"table"`
	Word  string `json:"word"`
	Value string `json:"value"`
}

func (r Redundancy) String() string {
	return fmt.Sprintf("%s: %s,%s", r.Table, r.Word, r.Value)
}

// RedundantExceptions checks every embedded exception table against the
// rule-only path. An empty result means the tables are minimal.
func RedundantExceptions() []Redundancy {
	var out []Redundancy
	add := func(table, word, value string) {
		out = append(out, Redundancy{Table: table, Word: word, Value: value})
	}

	for w, n := range tables.syllables {
		if ruleSyllables(w) == n {
			add("syllables", w, fmt.Sprint(n))
		}
	}
	for w, ds := range tables.nounMulti {
		if slices.Equal(nounRuleDeclensions(w), ds) {
			add("noun_multi", w, joinCodes(ds))
		}
	}
	for w, d := range tables.nounExceptions {
		if slices.Equal(nounRuleDeclensions(w), []Declension{d}) {
			add("noun_exceptions", w, d.String())
		}
	}
	for w, cs := range tables.verbMulti {
		if slices.Equal(verbRuleConjugations(w), cs) {
			add("verb_multi", w, joinCodes(cs))
		}
	}
	for w, c := range tables.verbExceptions {
		if slices.Equal(verbRuleConjugations(w), []Conjugation{c}) {
			add("verb_exceptions", w, c.String())
		}
	}
	for k, v := range tables.nounGradation {
		if nounRuleGradation(k.word, Declension(k.code)) == v {
			add("noun_gradation", k.word, fmt.Sprintf("%d,%t", k.code, v))
		}
	}
	for k, v := range tables.verbGradation {
		if verbRuleGradation(k.word, Conjugation(k.code)) == v {
			add("verb_gradation", k.word, fmt.Sprintf("%d,%t", k.code, v))
		}
	}

	slices.SortFunc(out, func(a, b Redundancy) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

func joinCodes[T fmt.Stringer](codes []T) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
