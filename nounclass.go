package kotus

func nr(pattern string, codes ...Declension) classRule[Declension] {
	return rule(pattern, codes...)
}

// nounCommon rules apply in every syllable bucket before the bucket list.
var nounCommon = decisionList[Declension]{
	nr(`é$`, 21),
	nr(`nen$`, 38),
}

var nounMonosyllabic = decisionList[Declension]{
	nr(`(ie|uo|yö)$`, 19),
	nr(`<V><V>$`, 18),
	nr(`<C>$`, 5),
}

var nounDisyllabic = decisionList[Declension]{
	nr(`(nut|nyt|llut|llyt|rrut|rryt|ssut|ssyt)$`, 47),
	nr(`(ut|yt)$`, 43),
	nr(`(at|ät)$`, 44),
	nr(`(as|äs|es|is)$`, 41),
	nr(`(uus|yys)$`, 40),
	nr(`(us|ys|os|ös)$`, 39),
	nr(`(ton|tön)$`, 34),
	nr(`(in|än)$`, 33),
	nr(`en$`, 32),
	nr(`(ar|är|er|or|ör|ur|yr)$`, 32),
	nr(`(el|al|äl)$`, 49),
	nr(`<C>$`, 5),
	nr(`(aa|ää|uu|yy)$`, 17),
	nr(`(ee|oo|öö|ii)$`, 20),
	nr(`<V>e$`, 48),
	nr(`(ll|kk|pp|tt|nn|mm|ss)e$`, 8),
	nr(`e$`, 48),
	nr(`ä$`, 10),
	nr(`^<C>*[ou].*a$`, 10),
	nr(`a$`, 9),
	nr(`[ouyö]$`, 1),
	nr(`psi$`, 29),
	nr(`[nrl]si$`, 28),
	nr(`<V>si$`, 27),
	nr(`<V>mi$`, 25),
	nr(`i$`, 5),
}

var nounTrisyllabic = decisionList[Declension]{
	nr(`mpi$`, 16),
	nr(`kk[oö]$`, 4),
	nr(`kk[aä]$`, 14),
	nr(`(ea|eä|oa|öä)$`, 15),
	nr(`(ija|ijä)$`, 12),
	// agent nouns: opettaja, myyjä
	nr(`(aja|äjä)$`, 10),
	nr(`(io|iö|eo)$`, 3),
	nr(`sk[aä]$`, 13),
	nr(`(ton|tön)$`, 34),
	nr(`(eus|eys|uus|yys)$`, 40),
	nr(`(us|ys|os|ös)$`, 39),
	nr(`(ksas|ksäs|emäs|enes|nnes)$`, 45),
	nr(`(as|äs|es|is)$`, 41),
	nr(`[aeouyäö]in$`, 36),
	nr(`in$`, 33),
	nr(`(nut|nyt|lut|lyt|rut|ryt|sut|syt)$`, 47),
	nr(`(ut|yt)$`, 43),
	nr(`en$`, 32),
	nr(`(ar|är|er|or)$`, 32),
	nr(`el$`, 49),
	nr(`<C>$`, 5),
	nr(`(aa|ää|uu|yy)$`, 17),
	nr(`(ee|oo|öö|ii)$`, 20),
	nr(`e$`, 48),
	nr(`[aä]$`, 12),
	nr(`[ouyö]$`, 2),
	// native stems keep gradation: kaupunki, Helsinki
	nr(`(nk|kk|pp|tt)i$`, 5),
	nr(`i$`, 6),
}

var nounPolysyllabic = decisionList[Declension]{
	nr(`mpi$`, 16),
	nr(`kk[oö]$`, 4),
	nr(`kk[aä]$`, 14),
	nr(`(ea|eä|oa|öä)$`, 15),
	nr(`(io|iö|eo)$`, 3),
	nr(`(ton|tön)$`, 34),
	nr(`(eus|eys|uus|yys)$`, 40),
	nr(`(us|ys|os|ös)$`, 39),
	nr(`(as|äs|es|is)$`, 41),
	nr(`in$`, 33),
	nr(`(nut|nyt)$`, 47),
	nr(`(ut|yt)$`, 43),
	nr(`(ar|är)$`, 32),
	nr(`<C>$`, 5),
	nr(`e$`, 48),
	nr(`(aja|äjä)$`, 10),
	nr(`[aä]$`, 12),
	nr(`[ouyö]$`, 2),
	nr(`(nk|kk|pp|tt)i$`, 5),
	nr(`i$`, 6),
}

// nounBuckets is indexed by syllable count - 1.
var nounBuckets = [4]decisionList[Declension]{
	concat(nounCommon, nounMonosyllabic),
	concat(nounCommon, nounDisyllabic),
	concat(nounCommon, nounTrisyllabic),
	concat(nounCommon, nounPolysyllabic),
}

// Declensions returns the 0–2 declensions of a noun in the nominative
// singular. An empty result means the word was not recognised.
func Declensions(noun string) []Declension {
	w := Normalize(noun)
	if w == "" {
		return nil
	}
	if ds, ok := tables.nounMulti[w]; ok {
		return append([]Declension(nil), ds...)
	}
	if d, ok := tables.nounExceptions[w]; ok {
		return []Declension{d}
	}
	return nounRuleDeclensions(w)
}

// nounRuleDeclensions classifies w by the ordered rules only.
func nounRuleDeclensions(w string) []Declension {
	return nounBuckets[CountSyllables(w)-1].match(w)
}
