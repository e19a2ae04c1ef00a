package kotus

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeclineNoun(t *testing.T) {
	tests := []struct {
		noun string
		c    Case
		n    Number
		want []string
	}{
		{"talo", Genitive, Singular, []string{"talon"}},
		{"käsi", Genitive, Singular, []string{"käden"}},
		{"kaksi", Genitive, Singular, []string{"kahden"}},
		{"vieras", Genitive, Singular, []string{"vieraan"}},
		{"vaaka", Genitive, Singular, []string{"vaa'an"}},
		{"kuusi", Genitive, Singular, []string{"kuuden", "kuusen"}},
		{"tytär", Genitive, Singular, []string{"tyttären"}},
		{"liike", Inessive, Singular, []string{"liikkeessä"}},
		{"kenkä", Adessive, Singular, []string{"kengällä"}},
		{"joki", Genitive, Singular, []string{"joen"}},
		{"kylki", Genitive, Singular, []string{"kyljen"}},
		{"parfait", Genitive, Singular, []string{"parfait'n"}},
		{"lämmin", Genitive, Singular, []string{"lämpimän"}},
		{"vasen", Genitive, Singular, []string{"vasemman"}},
		{"kahdeksas", Genitive, Singular, []string{"kahdeksannen"}},
		{"kuollut", Nominative, Plural, []string{"kuolleet"}},
		{"hylje", Genitive, Singular, []string{"hylkeen"}},
		{"rae", Genitive, Singular, []string{"rakeen"}},
		{"poika", Genitive, Singular, []string{"pojan"}},
		{"tuhat", Elative, Singular, []string{"tuhannesta"}},
		{"onneton", Abessive, Singular, []string{"onnettomatta"}},
		{"pöytä", Inessive, Singular, []string{"pöydässä"}},
		{"kynsi", Ablative, Singular, []string{"kynneltä"}},
		{"kyynel", Genitive, Singular, []string{"kyynelen"}},
		{"äiti", Genitive, Singular, []string{"äidin"}},
		{"täti", Genitive, Singular, []string{"tädin"}},
		{"tauti", Genitive, Singular, []string{"taudin"}},
		{"muki", Genitive, Singular, []string{"mukin"}},
		{"hauki", Genitive, Singular, []string{"hauen"}},
		{"nahka", Genitive, Singular, []string{"nahan"}},
		{"kaupunki", Genitive, Singular, []string{"kaupungin"}},
		{"helsinki", Inessive, Singular, []string{"helsingissä"}},
		{"sydän", Genitive, Singular, []string{"sydämen"}},
		{"r2d2", Genitive, Singular, nil},
	}
	for _, tt := range tests {
		got, err := DeclineNoun(tt.noun, tt.c, tt.n)
		if err != nil {
			t.Errorf("DeclineNoun(%q, %s, %s): %v", tt.noun, tt.c, tt.n, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("DeclineNoun(%q, %s, %s) mismatch (-want +got):\n%s", tt.noun, tt.c, tt.n, diff)
		}
	}
}

func TestDeclineErrors(t *testing.T) {
	gen := NounForm{Genitive, Singular}
	tests := []struct {
		name string
		noun string
		d    Declension
		grad bool
		form NounForm
		want error
	}{
		{"partitive", "talo", 1, false, NounForm{Partitive, Singular}, ErrUnsupportedForm},
		{"genitive plural", "talo", 1, false, NounForm{Genitive, Plural}, ErrUnsupportedForm},
		{"bad case", "talo", 1, false, NounForm{Case("xyz"), Singular}, ErrInvalidForm},
		{"bad number", "talo", 1, false, NounForm{Genitive, Number("du")}, ErrInvalidForm},
		{"declension 0", "talo", 0, false, gen, ErrUnknownClass},
		{"declension 50", "talo", 50, false, gen, ErrUnknownClass},
		{"no alternating cluster", "talo", 1, true, gen, ErrNoGradationRule},
		{"blocked cluster", "pasta", 9, true, gen, ErrNoGradationRule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decline(tt.noun, tt.d, tt.grad, tt.form); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDeclineExplicitClass(t *testing.T) {
	got, err := Decline("katu", 1, true, NounForm{Genitive, Singular})
	if err != nil || got != "kadun" {
		t.Errorf("Decline(katu) = %q, %v", got, err)
	}
	got, err = Decline("kauppa", 9, true, NounForm{Inessive, Singular})
	if err != nil || got != "kaupassa" {
		t.Errorf("Decline(kauppa) = %q, %v", got, err)
	}
}

// Front-vowel words never receive back-vowel suffixes and vice versa.
func TestDeclineHarmony(t *testing.T) {
	front := []string{"käsi", "pöytä", "kenkä", "hylje", "kynsi", "tytär"}
	back := []string{"talo", "kauppa", "vaaka", "poika"}
	for _, f := range GenSgLikeForms {
		for _, w := range front {
			forms, err := DeclineNoun(w, f.Case, f.Number)
			if err != nil {
				t.Fatal(err)
			}
			for _, s := range forms {
				if strings.ContainsAny(s, "aou") {
					t.Errorf("%s %s = %q has back vowels", w, f, s)
				}
			}
		}
		for _, w := range back {
			forms, err := DeclineNoun(w, f.Case, f.Number)
			if err != nil {
				t.Fatal(err)
			}
			for _, s := range forms {
				if strings.ContainsAny(s, "äö") {
					t.Errorf("%s %s = %q has front vowels", w, f, s)
				}
			}
		}
	}
}

func TestNounParadigm(t *testing.T) {
	table, err := NounParadigm("käsi")
	if err != nil {
		t.Fatal(err)
	}
	want := map[NounForm][]string{
		{Nominative, Plural}:    {"kädet"},
		{Genitive, Singular}:    {"käden"},
		{Translative, Singular}: {"kädeksi"},
		{Inessive, Singular}:    {"kädessä"},
		{Elative, Singular}:     {"kädestä"},
		{Adessive, Singular}:    {"kädellä"},
		{Ablative, Singular}:    {"kädeltä"},
		{Abessive, Singular}:    {"kädettä"},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("NounParadigm(käsi) mismatch (-want +got):\n%s", diff)
	}

	empty, err := NounParadigm("r2d2")
	if err != nil || len(empty) != 0 {
		t.Errorf("NounParadigm(r2d2) = %v, %v", empty, err)
	}
}

func TestGenitiveCorpus(t *testing.T) {
	f, err := os.Open("testdata/genitives.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	n := 0
	err = ReadRecords(f, func(line int, rec []string) error {
		n++
		got, err := DeclineNoun(rec[0], Genitive, Singular)
		if err != nil {
			t.Errorf("line %d: DeclineNoun(%q): %v", line, rec[0], err)
			return nil
		}
		if diff := cmp.Diff(rec[1:], got); diff != "" {
			t.Errorf("line %d: genitive of %q mismatch (-want +got):\n%s", line, rec[0], diff)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n < 200 {
		t.Errorf("read %d nouns from the corpus", n)
	}
}
