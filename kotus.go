// Package kotus classifies and inflects Finnish words by the Kotus
// declension (1–49) and conjugation (52–78) numbering.
//
// Detection is a set of ordered first-match-wins regex lists bucketed by
// syllable count, preceded by exception tables embedded from data/. The
// inflectors rebuild stems from the dictionary form: final consonant and
// vowel rewrites, consonant gradation, then suffixes with vowel harmony.
//
// All tables are built at package initialisation and never mutated; every
// exported function is safe for concurrent use.
package kotus

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// NounClass is one declension a noun belongs to.
type NounClass struct {
	Declension Declension `json:"declension"`
	Example    string     `json:"example"`
	Gradation  bool       `json:"gradation"`
}

// VerbClass is one conjugation a verb belongs to.
type VerbClass struct {
	Conjugation Conjugation `json:"conjugation"`
	Example     string      `json:"example"`
	Gradation   bool        `json:"gradation"`
}

// Analysis gathers everything the detectors report about a word. A word
// may be recognised both as a noun and as a verb shape.
type Analysis struct {
	Word      string      `json:"word"`
	Syllables int         `json:"syllables"`
	Nouns     []NounClass `json:"nouns,omitempty"`
	Verbs     []VerbClass `json:"verbs,omitempty"`
}

// Recognized reports whether any detector matched.
func (a Analysis) Recognized() bool {
	return len(a.Nouns) > 0 || len(a.Verbs) > 0
}

// Analyze runs the syllable counter and both class detectors on word.
func Analyze(word string) Analysis {
	w := Normalize(word)
	a := Analysis{Word: w, Syllables: CountSyllables(w)}
	for _, d := range Declensions(w) {
		a.Nouns = append(a.Nouns, NounClass{Declension: d, Example: d.Example(), Gradation: NounGradation(w, d)})
	}
	for _, c := range Conjugations(w) {
		a.Verbs = append(a.Verbs, VerbClass{Conjugation: c, Example: c.Example(), Gradation: VerbGradation(w, c)})
	}
	return a
}

// reWord matches one Finnish word token, loanword letters and internal
// apostrophes or hyphens included.
var reWord = regexp.MustCompile(`(?i)[a-zåäöšžé]+(?:['-][a-zåäöšžé]+)*`)

// TokenAnalysis pairs a token of running text with its analysis.
type TokenAnalysis struct {
	Token string `json:"token"`
	Analysis
}

// AnalyzeText splits text into word tokens and analyses each one.
// Tokens are returned in NFC form.
func AnalyzeText(text string) []TokenAnalysis {
	var out []TokenAnalysis
	for _, tok := range reWord.FindAllString(norm.NFC.String(text), -1) {
		out = append(out, TokenAnalysis{Token: tok, Analysis: Analyze(tok)})
	}
	return out
}
