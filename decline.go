package kotus

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// genSgLikeSuffixes are the forms built on the genitive singular stem.
// A is resolved by vowel harmony.
var genSgLikeSuffixes = map[NounForm]string{
	{Nominative, Plural}:    "t",
	{Genitive, Singular}:    "n",
	{Translative, Singular}: "ksi",
	{Inessive, Singular}:    "ssA",
	{Elative, Singular}:     "stA",
	{Adessive, Singular}:    "llA",
	{Ablative, Singular}:    "ltA",
	{Abessive, Singular}:    "ttA",
}

// GenSgLikeForms lists the noun forms Decline supports, in table order.
var GenSgLikeForms = []NounForm{
	{Nominative, Plural},
	{Genitive, Singular},
	{Translative, Singular},
	{Inessive, Singular},
	{Elative, Singular},
	{Adessive, Singular},
	{Ablative, Singular},
	{Abessive, Singular},
}

// consonantRewrites turn a consonant-final nominative into a vowel stem.
var consonantRewrites = map[Declension][]rewrite{
	5:  {rw(`(<C>)$`, "${1}i")},
	32: {rw(`(<C>)$`, "${1}e")},
	33: {rw(`in$`, "ime"), rw(`än$`, "äme")},
	34: {rw(`on$`, "oma"), rw(`ön$`, "ömä")},
	35: {rw(`in$`, "imA")},
	36: {rw(`in$`, "immA")},
	37: {rw(`en$`, "emmA")},
	38: {rw(`nen$`, "se")},
	39: {rw(`s$`, "kse")},
	40: {rw(`s$`, "de")},
	41: {rw(`s$`, "")},
	42: {rw(`s$`, "he")},
	43: {rw(`t$`, "e")},
	44: {rw(`t$`, "")},
	45: {rw(`s$`, "nne")},
	46: {rw(`t$`, "nne")},
	47: {rw(`(u|y)t$`, "ee")},
	49: {rw(`(<C>)$`, "${1}e")},
}

var (
	iToE     = []rewrite{rw(`i$`, "e")}
	doubling = []rewrite{rw(`(<V>)$`, "${1}${1}")}
)

// vowelRewrites adjust the final vowel; the first matching pattern wins.
var vowelRewrites = map[Declension][]rewrite{
	7:  iToE,
	16: {rw(`i$`, "A")},
	23: iToE,
	24: iToE,
	25: iToE,
	26: iToE,
	27: iToE,
	28: iToE,
	29: iToE,
	30: iToE,
	31: {rw(`ksi$`, "hde")},
	41: doubling,
	44: doubling,
	48: {rw(`e$`, "ee")},
}

// strengtheningDeclensions have a weak grade in the nominative, so the
// genitive stem takes the strong grade (tytär → tyttären, liike → liikkeen).
var strengtheningDeclensions = map[Declension]bool{
	32: true, 33: true, 34: true, 35: true, 41: true, 43: true, 48: true, 49: true,
}

// mixedPair fixes a long vowel assembled from two harmony variants.
var mixedPair = strings.NewReplacer("aä", "aa", "äa", "ää")

// Decline inflects noun in declension d. Only the forms sharing the
// genitive singular stem are generated; any other form returns
// ErrUnsupportedForm.
func Decline(noun string, d Declension, gradation bool, form NounForm) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("declension %d: %w", d, ErrUnknownClass)
	}
	if err := form.Validate(); err != nil {
		return "", err
	}
	suffix, ok := genSgLikeSuffixes[form]
	if !ok {
		return "", fmt.Errorf("%s: %w", form, ErrUnsupportedForm)
	}
	w := Normalize(noun)
	stem, err := genitiveStem(w, d, gradation)
	if err != nil {
		return "", err
	}
	return harmonize(w, stem+suffix), nil
}

// genitiveStem computes the stem shared by the gen-sg-like forms.
func genitiveStem(w string, d Declension, gradation bool) (string, error) {
	stem, _ := applyFirst(w, consonantRewrites[d])
	stem, _ = applyFirst(stem, vowelRewrites[d])

	if gradation {
		strengthen := strengtheningDeclensions[d]
		g, err := gradate(w, w, stem, strengthen)
		if err != nil {
			return "", fmt.Errorf("decline %q (%d): %w", w, d, err)
		}
		stem = g.stem
		// vaaka → vaa'an, ruoko → ruo'on
		if g.elided > 0 && g.elided < len(stem) {
			prev, _ := utf8.DecodeLastRuneInString(stem[:g.elided])
			next, _ := utf8.DecodeRuneInString(stem[g.elided:])
			if prev == next && isVowel(next) {
				stem = stem[:g.elided] + "'" + stem[g.elided:]
			}
		}
	}

	stem = mixedPair.Replace(stem)
	if d == 22 {
		stem += "'"
	}
	return stem, nil
}

// DeclineNoun detects the declensions and gradation of noun and returns
// every form for the requested case and number, sorted. An unrecognised
// noun yields an empty result and no error.
func DeclineNoun(noun string, c Case, n Number) ([]string, error) {
	form := NounForm{Case: c, Number: n}
	var out []string
	for _, d := range Declensions(noun) {
		s, err := Decline(noun, d, NounGradation(noun, d), form)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return SortForms(out), nil
}

// NounParadigm returns all supported forms of noun.
func NounParadigm(noun string) (map[NounForm][]string, error) {
	table := make(map[NounForm][]string, len(GenSgLikeForms))
	for _, f := range GenSgLikeForms {
		forms, err := DeclineNoun(noun, f.Case, f.Number)
		if err != nil {
			return nil, err
		}
		if len(forms) > 0 {
			table[f] = forms
		}
	}
	return table, nil
}
