package kotus

import "regexp"

// gradationRule marks word shapes that alternate in the listed classes.
// An empty class set matches every class.
type nounGradationRule struct {
	declensions declensionSet
	re          *regexp.Regexp
}

func ngr(pattern string, ds ...Declension) nounGradationRule {
	return nounGradationRule{declensions: ds, re: compile(pattern)}
}

var nounGradationRules = []nounGradationRule{
	ngr(`(kk|pp|tt)<V>$`, 1, 4, 5, 7, 8, 9, 10, 14),
	ngr(`<V>(nk|mp|lt|nt|rt|ht|hk|lk|rk|lp|rp)<V>$`, 1, 5, 7, 9, 10),
	ngr(`<V>(k|p|t)<V>$`, 1, 7, 9, 10),
	// native -Vki nouns are declension 7; class 5 -ki words are loans (muki)
	ngr(`<V>(p|t)i$`, 5),
	ngr(`mpi$`, 16),
	ngr(`si$`, 27, 28),
	ngr(`<V>(t|k|p|d|v)<V>r$`, 32),
	ngr(`t(o|ö)n$`, 34),
	ngr(`mm<V>n$`, 35),
	ngr(`<V>(hd|k|p|t|d|v|g|mm|nn|ll|rr|ng)[aä]s$`, 41),
	ngr(`mm<V>t$`, 43),
	ngr(`<V>(k|p|t|d|v|g|mm|nn|ll|rr|ng|hd|lv|rv)e$`, 48),
	ngr(`<V>(k|p|t|d|mm|nn|ll|rr|ng)el$`, 49),
}

var disyllabicTo = compile(`<V>to$`)

// NounGradation reports whether consonant gradation applies to noun in
// declension d. The answer is scoped to the pair: the same word may
// alternate in one declension and not in another.
func NounGradation(noun string, d Declension) bool {
	w := Normalize(noun)
	if v, ok := tables.nounGradation[gradationKey{w, int(d)}]; ok {
		return v
	}
	return nounRuleGradation(w, d)
}

func nounRuleGradation(w string, d Declension) bool {
	// -to nouns of declension 1 alternate only when disyllabic
	// (pato → padon, but not longer derivatives).
	if d == 1 && disyllabicTo.MatchString(w) {
		return CountSyllables(w) == 2
	}
	for _, r := range nounGradationRules {
		if r.declensions.has(d) && r.re.MatchString(w) {
			return true
		}
	}
	return false
}
