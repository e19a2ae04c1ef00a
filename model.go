package kotus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Declension is a Kotus noun declension number (1–49).
type Declension int

// Conjugation is a Kotus verb conjugation number (52–78).
// 77 and 78 exist for reference only; no rule ever yields them.
type Conjugation int

const (
	MinDeclension  Declension  = 1
	MaxDeclension  Declension  = 49
	MinConjugation Conjugation = 52
	MaxConjugation Conjugation = 78
)

var (
	// ErrUnsupportedForm is returned for grammatical forms the engine does
	// not generate.
	ErrUnsupportedForm = errors.New("kotus: unsupported grammatical form")
	// ErrInvalidForm is returned when a form violates the category invariants
	// (e.g. imperative 1st person singular).
	ErrInvalidForm = errors.New("kotus: invalid grammatical form")
	// ErrNoGradationRule is returned when gradation was requested but no
	// gradation rule matches the word.
	ErrNoGradationRule = errors.New("kotus: no consonant gradation rule")
	// ErrUnknownClass is returned for out-of-range class codes.
	ErrUnknownClass = errors.New("kotus: unknown inflection class")
)

// Valid reports whether d is within 1–49.
func (d Declension) Valid() bool {
	return d >= MinDeclension && d <= MaxDeclension
}

// Valid reports whether c is within 52–78.
func (c Conjugation) Valid() bool {
	return c >= MinConjugation && c <= MaxConjugation
}

// Example returns the canonical Kotus example word for the declension.
func (d Declension) Example() string {
	if !d.Valid() {
		return ""
	}
	return declensionExamples[d-MinDeclension]
}

// Example returns the canonical Kotus example word for the conjugation.
func (c Conjugation) Example() string {
	if !c.Valid() {
		return ""
	}
	return conjugationExamples[c-MinConjugation]
}

func (d Declension) String() string {
	return strconv.Itoa(int(d))
}

func (c Conjugation) String() string {
	return strconv.Itoa(int(c))
}

var declensionExamples = [...]string{
	"valo", "palvelu", "valtio", "laatikko", "risti", "paperi", "ovi", "nalle",
	"kala", "koira", "omena", "kulkija", "katiska", "solakka", "korkea",
	"vanhempi", "vapaa", "maa", "suo", "filee", "rosé", "parfait", "tiili",
	"uni", "toimi", "pieni", "käsi", "kynsi", "lapsi", "veitsi", "kaksi",
	"sisar", "kytkin", "onneton", "lämmin", "sisin", "vasen", "nainen",
	"vastaus", "kalleus", "vieras", "mies", "ohut", "kevät", "kahdeksas",
	"tuhat", "kuollut", "hame", "askel",
}

var conjugationExamples = [...]string{
	"sanoa", "muistaa", "huutaa", "soutaa", "kaivaa", "saartaa", "laskea",
	"tuntea", "lähteä", "sallia", "voida", "saada", "juoda", "käydä",
	"rohkaista", "tulla", "tupakoida", "valita", "juosta", "nähdä", "vanheta",
	"salata", "katketa", "selvitä", "taitaa", "kumajaa", "kaikaa",
}

// ParseDeclension parses a base-10 declension code.
func ParseDeclension(s string) (Declension, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse declension %q: %w", s, err)
	}
	d := Declension(n)
	if !d.Valid() {
		return 0, fmt.Errorf("declension %d: %w", n, ErrUnknownClass)
	}
	return d, nil
}

// ParseConjugation parses a base-10 conjugation code.
func ParseConjugation(s string) (Conjugation, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse conjugation %q: %w", s, err)
	}
	c := Conjugation(n)
	if !c.Valid() {
		return 0, fmt.Errorf("conjugation %d: %w", n, ErrUnknownClass)
	}
	return c, nil
}

// declensionSet is a small membership set of declensions.
// The zero value matches every declension.
type declensionSet []Declension

func (s declensionSet) has(d Declension) bool {
	if len(s) == 0 {
		return true
	}
	for _, v := range s {
		if v == d {
			return true
		}
	}
	return false
}

// conjugationSet is the verb counterpart of declensionSet.
type conjugationSet []Conjugation

func (s conjugationSet) has(c Conjugation) bool {
	if len(s) == 0 {
		return true
	}
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}
