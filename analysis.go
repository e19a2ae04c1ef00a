package kotus

import "fmt"

// Case is a Finnish grammatical case.
type Case string

const (
	Nominative  Case = "nom"
	Genitive    Case = "gen"
	Partitive   Case = "par"
	Essive      Case = "ess"
	Translative Case = "tra"
	Inessive    Case = "ine"
	Elative     Case = "ela"
	Illative    Case = "ill"
	Adessive    Case = "ade"
	Ablative    Case = "abl"
	Allative    Case = "all"
	Abessive    Case = "abe"
	Instructive Case = "ins"
)

// Cases lists every case in traditional grammar order.
var Cases = []Case{
	Nominative, Genitive, Partitive, Essive, Translative, Inessive, Elative,
	Illative, Adessive, Ablative, Allative, Abessive, Instructive,
}

// Number is grammatical number. The empty Number means "not applicable"
// (passive voice).
type Number string

const (
	Singular Number = "sg"
	Plural   Number = "pl"
)

// Mood is a verb mood.
type Mood string

const (
	Indicative  Mood = "ind"
	Conditional Mood = "con"
	Potential   Mood = "pot"
	Imperative  Mood = "imp"
)

// Tense is a verb tense.
type Tense string

const (
	Present Tense = "pre"
	Past    Tense = "pst"
	Perfect Tense = "per"
)

// Voice is a verb voice.
type Voice string

const (
	Active  Voice = "act"
	Passive Voice = "pss"
)

// Person is 1, 2 or 3; 0 means "not applicable".
type Person int

// ParseCase validates a case abbreviation.
func ParseCase(s string) (Case, error) {
	for _, c := range Cases {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("case %q: %w", s, ErrInvalidForm)
}

// ParseNumber validates a number abbreviation; "" is accepted.
func ParseNumber(s string) (Number, error) {
	switch Number(s) {
	case Singular, Plural, "":
		return Number(s), nil
	}
	return "", fmt.Errorf("number %q: %w", s, ErrInvalidForm)
}

// ParseMood validates a mood abbreviation.
func ParseMood(s string) (Mood, error) {
	switch Mood(s) {
	case Indicative, Conditional, Potential, Imperative:
		return Mood(s), nil
	}
	return "", fmt.Errorf("mood %q: %w", s, ErrInvalidForm)
}

// ParseTense validates a tense abbreviation.
func ParseTense(s string) (Tense, error) {
	switch Tense(s) {
	case Present, Past, Perfect:
		return Tense(s), nil
	}
	return "", fmt.Errorf("tense %q: %w", s, ErrInvalidForm)
}

// ParseVoice validates a voice abbreviation.
func ParseVoice(s string) (Voice, error) {
	switch Voice(s) {
	case Active, Passive:
		return Voice(s), nil
	}
	return "", fmt.Errorf("voice %q: %w", s, ErrInvalidForm)
}

// NounForm selects one cell of a noun paradigm.
type NounForm struct {
	Case   Case
	Number Number
}

func (f NounForm) String() string {
	return string(f.Case) + " " + string(f.Number)
}

// Validate checks that the case and number are known values.
func (f NounForm) Validate() error {
	if _, err := ParseCase(string(f.Case)); err != nil {
		return err
	}
	if f.Number != Singular && f.Number != Plural {
		return fmt.Errorf("noun number %q: %w", f.Number, ErrInvalidForm)
	}
	return nil
}

// VerbForm selects one cell of a verb paradigm.
type VerbForm struct {
	Mood   Mood
	Tense  Tense
	Voice  Voice
	Number Number
	Person Person
}

func (f VerbForm) String() string {
	s := fmt.Sprintf("%s %s %s", f.Mood, f.Tense, f.Voice)
	if f.Number != "" {
		s += " " + string(f.Number)
	}
	if f.Person != 0 {
		s += fmt.Sprintf(" %d", f.Person)
	}
	return s
}

// Validate checks the verb category invariants:
// passive has no number, perfect has no person, imperative is active only
// and has no 1st person singular, and non-indicative moods are present only.
func (f VerbForm) Validate() error {
	if _, err := ParseMood(string(f.Mood)); err != nil {
		return err
	}
	if _, err := ParseTense(string(f.Tense)); err != nil {
		return err
	}
	if _, err := ParseVoice(string(f.Voice)); err != nil {
		return err
	}
	if _, err := ParseNumber(string(f.Number)); err != nil {
		return err
	}
	if f.Person < 0 || f.Person > 3 {
		return fmt.Errorf("person %d: %w", f.Person, ErrInvalidForm)
	}
	switch {
	case f.Voice == Passive && f.Number != "":
		return fmt.Errorf("passive with number %q: %w", f.Number, ErrInvalidForm)
	case f.Tense == Perfect && f.Person != 0:
		return fmt.Errorf("perfect with person %d: %w", f.Person, ErrInvalidForm)
	case f.Mood == Imperative && f.Voice != Active:
		return fmt.Errorf("imperative %s: %w", f.Voice, ErrInvalidForm)
	case f.Mood == Imperative && f.Number == Singular && f.Person == 1:
		return fmt.Errorf("imperative 1st person singular: %w", ErrInvalidForm)
	case f.Mood != Indicative && f.Tense != Present:
		return fmt.Errorf("%s %s: %w", f.Mood, f.Tense, ErrInvalidForm)
	}
	if f.Voice == Active && f.Tense != Perfect {
		if f.Number == "" || f.Person == 0 {
			return fmt.Errorf("active %s %s needs number and person: %w", f.Mood, f.Tense, ErrInvalidForm)
		}
	}
	return nil
}
