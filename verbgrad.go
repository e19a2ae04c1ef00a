package kotus

import "regexp"

type verbGradationRule struct {
	conjugations conjugationSet
	re           *regexp.Regexp
}

func vgr(pattern string, cs ...Conjugation) verbGradationRule {
	return verbGradationRule{conjugations: cs, re: compile(pattern)}
}

// weakeningVerbs have the strong grade in the infinitive.
var weakeningVerbs = []Conjugation{52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 76}

var verbGradationRules = []verbGradationRule{
	vgr(`(kk|pp|tt)<V>[aä]$`, weakeningVerbs...),
	vgr(`(nk|mp|lt|nt|rt|lk|rk|lp|rp|ht|hk)<V>[aä]$`, weakeningVerbs...),
	vgr(`<V>[kpt]<V>[aä]$`, weakeningVerbs...),
	vgr(`<V>(t|k|p|d|hd|nn|mm|ng|ll|rr)ell[aä]$`, 67),
	// v is a plain consonant in these classes (siivota, hävitä);
	// the v/p verbs are listed in verb_gradation.csv.
	vgr(`<V>(k|p|t|d|ng|mm|nn|ll|rr)et[aä]$`, 72),
	vgr(`<V>(k|p|t|d|ng|mm|nn|ll|rr)[aä]t[aä]$`, 73),
	vgr(`<V>(k|p|t|d|ng|mm|nn|ll|rr)(o|ö|u|y|e)t[aä]$`, 74),
	vgr(`<V>(k|p|t|d|ng|mm|nn|ll|rr)it[aä]$`, 75),
}

// VerbGradation reports whether consonant gradation applies to verb in
// conjugation c. Like NounGradation the answer is scoped to the pair.
func VerbGradation(verb string, c Conjugation) bool {
	w := Normalize(verb)
	if v, ok := tables.verbGradation[gradationKey{w, int(c)}]; ok {
		return v
	}
	return verbRuleGradation(w, c)
}

func verbRuleGradation(w string, c Conjugation) bool {
	for _, r := range verbGradationRules {
		if r.conjugations.has(c) && r.re.MatchString(w) {
			return true
		}
	}
	return false
}
