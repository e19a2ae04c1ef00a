package kotus

import (
	"fmt"
	"regexp"
)

// strengtheningConjugations have the weak grade in the infinitive
// (hypätä → hyppään, pudota → putoan).
var strengtheningConjugations = conjugationSet{67, 72, 73, 74, 75}

// pastWithoutGradation never alternate in the past tense (huusi, tunsi, tiesi).
var pastWithoutGradation = conjugationSet{54, 59, 76}

var infinitiveEnding = regexp.MustCompile(`[dlnrt]?[aä]$`)

// presentStems build the indicative present stem from the bare stem.
var presentStems = map[Conjugation][]rewrite{
	66: {rw(`s$`, "se")},
	67: {rw(`$`, "e")},
	69: {rw(`$`, "tse")},
	70: {rw(`s$`, "kse")},
	72: {rw(`e$`, "ene")},
	// a stem already ending in a long vowel is left alone (maa-ta)
	73: {rw(`(<C>)(<V>)$`, "${1}${2}${2}")},
	74: {rw(`$`, "A")},
	75: {rw(`$`, "A")},
}

var (
	dropA   = rw(`[aä]$`, "")
	dropE   = rw(`e$`, "")
	dropI   = rw(`i$`, "")
	shorten = rw(`(<V>)<V>$`, "$1")
	yToV    = rw(`y$`, "v")
	plusTs  = rw(`$`, "ts")
	sToKs   = rw(`s$`, "ks")
	eToEn   = rw(`e$`, "en")
	plusS   = rw(`$`, "s")
)

// monophthongs open the rising diphthongs of conjugation 64
// (juo → joi, vie → vei, syö → söi). Exactly one of them matches.
var monophthongs = []rewrite{rw(`uo$`, "o"), rw(`ie$`, "e"), rw(`yö$`, "ö")}

// pastStems list the past tense stem variants, one rewrite per variant.
var pastStems = map[Conjugation][]rewrite{
	53: {dropA},
	54: {rw(`t[aä]$`, "s")},
	55: {dropA, rw(`[td]a$`, "s")},
	56: {rw(`a$`, "o")},
	57: {rw(`(rt|rr)a$`, "rs"), rw(`a$`, "o")},
	58: {dropE},
	59: {rw(`nte$`, "ns")},
	60: {dropE, rw(`h[dt]e$`, "ks")},
	61: {dropI},
	62: {dropI},
	63: {shorten},
	64: monophthongs,
	65: {yToV},
	68: {dropI},
	69: {plusTs},
	70: {sToKs},
	72: {eToEn},
	73: {plusS},
	74: {plusS},
	75: {plusS},
	76: {rw(`t[aä]$`, "s")},
}

// conditionalStems list the stem variants before -isi.
var conditionalStems = map[Conjugation][]rewrite{
	58: {dropE},
	59: {dropE},
	60: {dropE},
	61: {dropI},
	62: {dropI},
	63: {shorten},
	64: monophthongs,
	65: {yToV},
	68: {dropI},
	69: {plusTs},
	70: {sToKs},
	72: {eToEn},
	74: {rw(`$`, "A")},
	75: {rw(`$`, "A")},
}

// imperativeBases turn the infinitive without its final vowel into the
// base for -kAA and friends (tull → tul, saad → saa, juost → juos).
var imperativeBases = []rewrite{
	rw(`([lnr])[lnr]$`, "$1"),
	rw(`hd$`, "h"),
	rw(`d$`, ""),
	rw(`st$`, "s"),
}

var personSuffixes = map[Number][4]string{
	Singular: {1: "n", 2: "t", 3: ""},
	Plural:   {1: "mme", 2: "tte", 3: "vAt"},
}

var imperativeSuffixes = map[Number][4]string{
	Singular: {3: "kOOn"},
	Plural:   {1: "kAAmme", 2: "kAA", 3: "kOOt"},
}

// redispatch rules: conjugation 68 also inflects like 58 on an -itse-
// stem (tupakoida → tupakoitsen); 71 inflects entirely as 58
// (nähdä → näen, tehdä → teen).
var (
	idaToItsea = rw(`id([aä])$`, "itse${1}")
	hdaToKea   = rw(`hd([aä])$`, "ke${1}")
)

// gradationFires decides whether a form of conjugation c takes the
// gradated stem.
func gradationFires(c Conjugation, f VerbForm) bool {
	strong := strengtheningConjugations.has(c)
	switch {
	case f.Voice != Active:
		return false
	case f.Mood == Indicative && f.Tense == Present:
		return f.Person != 3 || strong
	case f.Mood == Indicative && f.Tense == Past:
		return !pastWithoutGradation.has(c) && (f.Person != 3 || strong)
	case f.Mood == Conditional && f.Tense == Present:
		return strong
	case f.Mood == Imperative && f.Tense == Present:
		return f.Number == Singular && f.Person == 2
	}
	return false
}

func supportedVerbForm(f VerbForm) bool {
	if f.Voice != Active {
		return false
	}
	switch f.Mood {
	case Indicative:
		return f.Tense == Present || f.Tense == Past
	case Conditional, Imperative:
		return f.Tense == Present
	}
	return false
}

// Conjugate inflects verb in conjugation c. The result holds every valid
// variant, sorted. Potential mood, passive voice and the perfect tense are
// not generated and return ErrUnsupportedForm.
func Conjugate(verb string, c Conjugation, gradation bool, f VerbForm) ([]string, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("conjugation %d: %w", c, ErrUnknownClass)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if !supportedVerbForm(f) {
		return nil, fmt.Errorf("%s: %w", f, ErrUnsupportedForm)
	}
	w := Normalize(verb)

	if w == "olla" && f.Mood == Indicative && f.Tense == Present && f.Person == 3 {
		if f.Number == Singular {
			return []string{"on"}, nil
		}
		return []string{"ovat"}, nil
	}

	var out []string
	switch c {
	case 68:
		alt, _ := applyFirst(w, []rewrite{idaToItsea})
		forms, err := conjugate(alt, alt, 58, VerbGradation(alt, 58), f)
		if err != nil {
			return nil, err
		}
		out = append(out, forms...)
	case 71:
		alt, _ := applyFirst(w, []rewrite{hdaToKea})
		forms, err := conjugate(alt, w, 58, VerbGradation(alt, 58), f)
		if err != nil {
			return nil, err
		}
		return SortForms(forms), nil
	}

	forms, err := conjugate(w, w, c, gradation, f)
	if err != nil {
		return nil, err
	}
	out = append(out, forms...)
	return SortForms(out), nil
}

// conjugate builds the forms of w as conjugation c. imperativeSource is the
// infinitive the -kAA imperatives are built on; it differs from w only
// for redispatched conjugations.
func conjugate(w, imperativeSource string, c Conjugation, gradation bool, f VerbForm) ([]string, error) {
	bare := infinitiveEnding.ReplaceAllString(w, "")
	stem := bare
	if gradation && gradationFires(c, f) {
		g, err := gradate(w, bare, bare, strengtheningConjugations.has(c))
		if err != nil {
			return nil, fmt.Errorf("conjugate %q (%d): %w", w, c, err)
		}
		stem = g.stem
	}

	var forms []string
	switch {
	case f.Mood == Indicative && f.Tense == Present:
		s, _ := applyFirst(stem, presentStems[c])
		if f.Number == Singular && f.Person == 3 {
			forms = append(forms, lengthen(harmonize(w, s)))
		} else {
			forms = append(forms, s+personSuffixes[f.Number][f.Person])
		}

	case f.Mood == Indicative && f.Tense == Past:
		for _, s := range stemVariants(stem, pastStems[c]) {
			forms = append(forms, s+"i"+personSuffixes[f.Number][f.Person])
		}

	case f.Mood == Conditional:
		for _, s := range stemVariants(stem, conditionalStems[c]) {
			forms = append(forms, s+"isi"+personSuffixes[f.Number][f.Person])
		}

	case f.Mood == Imperative && f.Number == Singular && f.Person == 2:
		s, _ := applyFirst(stem, presentStems[c])
		forms = append(forms, s)

	case f.Mood == Imperative:
		base, _ := applyFirst(dropA.re.ReplaceAllString(imperativeSource, ""), imperativeBases)
		forms = append(forms, base+imperativeSuffixes[f.Number][f.Person])
	}

	for i, s := range forms {
		forms[i] = harmonize(w, s)
	}
	return forms, nil
}

// stemVariants applies each rewrite to stem independently. With no
// rewrites the stem is its own single variant.
func stemVariants(stem string, rs []rewrite) []string {
	if len(rs) == 0 {
		return []string{stem}
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.re.MatchString(stem) {
			out = append(out, r.re.ReplaceAllString(stem, r.repl))
		}
	}
	if len(out) == 0 {
		out = append(out, stem)
	}
	return out
}

// ConjugateVerb detects the conjugations and gradation of verb and
// returns the union of its forms. An unrecognised verb yields an empty
// result and no error.
func ConjugateVerb(verb string, f VerbForm) ([]string, error) {
	var out []string
	for _, c := range Conjugations(verb) {
		forms, err := Conjugate(verb, c, VerbGradation(verb, c), f)
		if err != nil {
			return nil, err
		}
		out = append(out, forms...)
	}
	return SortForms(out), nil
}

// VerbForms lists the verb forms Conjugate supports, in paradigm order.
var VerbForms = func() []VerbForm {
	var out []VerbForm
	add := func(m Mood, t Tense, skipFirstSg bool) {
		for _, n := range []Number{Singular, Plural} {
			for p := Person(1); p <= 3; p++ {
				if skipFirstSg && n == Singular && p == 1 {
					continue
				}
				out = append(out, VerbForm{Mood: m, Tense: t, Voice: Active, Number: n, Person: p})
			}
		}
	}
	add(Indicative, Present, false)
	add(Indicative, Past, false)
	add(Conditional, Present, false)
	add(Imperative, Present, true)
	return out
}()

// VerbParadigm returns all supported forms of verb.
func VerbParadigm(verb string) (map[VerbForm][]string, error) {
	table := make(map[VerbForm][]string, len(VerbForms))
	for _, f := range VerbForms {
		forms, err := ConjugateVerb(verb, f)
		if err != nil {
			return nil, err
		}
		if len(forms) > 0 {
			table[f] = forms
		}
	}
	return table, nil
}
