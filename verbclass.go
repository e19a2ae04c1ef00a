package kotus

func vr(pattern string, codes ...Conjugation) classRule[Conjugation] {
	return rule(pattern, codes...)
}

// verbCommon is shared by every syllable bucket. Order encodes precedence:
// the -dA rules check the vowel before d from most to least specific.
var verbCommon = decisionList[Conjugation]{
	vr(`hd[aä]$`, 71),
	vr(`(uo|ie|yö)d[aä]$`, 64),
	vr(`(aa|ee|ii|oo|uu|yy|ää|öö)d[aä]$`, 63),
	vr(`<V>id[aä]$`, 62),
	vr(`(ll|nn|rr)[aä]$`, 67),
	vr(`(uo|ie|yö)st[aä]$`, 70),
	vr(`st[aä]$`, 66),
	vr(`(o|ö|u|y)t[aä]$`, 74),
	vr(`et[aä]$`, 72),
	vr(`it[aä]$`, 69),
	vr(`[aä]t[aä]$`, 73),
	vr(`nte[aä]$`, 59),
	vr(`e[aä]$`, 58),
	vr(`i[aä]$`, 61),
	vr(`(o|u|ö|y)[aä]$`, 52),
}

var verbDisyllabic = decisionList[Conjugation]{
	// first vowel a: antaa, kaivaa, maksaa
	vr(`^<C>*a[^ä]*aa$`, 56),
	// long vowels and diphthongs not ending in i: huutaa → huusi, but
	// hoitaa → hoiti
	vr(`(aa|ee|ii|oo|uu|yy|ää|öö|au|eu|ou|iu|äy|öy|ey|iy|ie|uo|yö|[lnr])t(aa|ää)$`, 54),
	vr(`(aa|ää)$`, 53),
}

var verbTrisyllabic = decisionList[Conjugation]{
	vr(`[lnr]t(aa|ää)$`, 54),
	vr(`(aa|ää)$`, 53),
}

var verbLongStem = decisionList[Conjugation]{
	vr(`(aa|ää)$`, 53),
}

// verbBuckets is indexed by syllable count - 1.
var verbBuckets = [4]decisionList[Conjugation]{
	verbCommon,
	concat(verbCommon, verbDisyllabic),
	concat(verbCommon, verbTrisyllabic),
	// -oida verbs with k/r before the diphthong (tupakoida, mellakoida)
	// must win over the generic -ida rule.
	concat(decisionList[Conjugation]{vr(`<V>[kr](oida|öidä)$`, 68)}, verbCommon, verbLongStem),
}

// Conjugations returns the 0–2 conjugations of a verb in the first
// infinitive. An empty result means the word was not recognised.
func Conjugations(verb string) []Conjugation {
	w := Normalize(verb)
	if w == "" {
		return nil
	}
	if cs, ok := tables.verbMulti[w]; ok {
		return append([]Conjugation(nil), cs...)
	}
	if c, ok := tables.verbExceptions[w]; ok {
		return []Conjugation{c}
	}
	return verbRuleConjugations(w)
}

func verbRuleConjugations(w string) []Conjugation {
	return verbBuckets[CountSyllables(w)-1].match(w)
}
