package kotus

import (
	"errors"
	"testing"
)

func TestFindSite(t *testing.T) {
	tests := []struct {
		word    string
		start   int
		cluster string
		ok      bool
	}{
		{"katu", 2, "t", true},
		{"tytär", 2, "t", true},
		{"onneton", 4, "t", true},
		{"kenkä", 2, "nk", true},
		{"aie", 0, "", false},
		{"maa", 0, "", false},
	}
	for _, tt := range tests {
		site, ok := findSite(tt.word)
		if ok != tt.ok || site.start != tt.start || site.cluster != tt.cluster {
			t.Errorf("findSite(%q) = %+v, %v; want {%d %q}, %v", tt.word, site, ok, tt.start, tt.cluster, tt.ok)
		}
	}
}

func TestGradate(t *testing.T) {
	tests := []struct {
		word, stem string
		strengthen bool
		want       string
		elided     int
	}{
		{"katu", "katu", false, "kadu", -1},
		{"kauppa", "kauppa", false, "kaupa", -1},
		{"kenkä", "kenkä", false, "kengä", -1},
		{"puku", "puku", false, "puvu", -1},
		{"jalka", "jalka", false, "jala", -1},
		{"kylki", "kylke", false, "kylje", -1},
		{"vaaka", "vaaka", false, "vaaa", 3},
		{"tytär", "tytäre", true, "tyttäre", -1},
		// stem exception
		{"aika", "aika", false, "aja", -1},
	}
	for _, tt := range tests {
		g, err := gradate(tt.word, tt.word, tt.stem, tt.strengthen)
		if err != nil {
			t.Errorf("gradate(%q, %q): %v", tt.word, tt.stem, err)
			continue
		}
		if g.stem != tt.want || g.elided != tt.elided {
			t.Errorf("gradate(%q, %q) = %q (elided %d), want %q (elided %d)",
				tt.word, tt.stem, g.stem, g.elided, tt.want, tt.elided)
		}
	}
}

func TestGradateNoRule(t *testing.T) {
	for _, w := range []string{"pasta", "talo", "aie"} {
		if _, err := gradate(w, w, w, false); !errors.Is(err, ErrNoGradationRule) {
			t.Errorf("gradate(%q) err = %v, want ErrNoGradationRule", w, err)
		}
	}
}
