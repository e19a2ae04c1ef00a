package kotus

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a dictionary form for classification: NFC composition
// (so a decomposed "ä" matches the rule tables), lowercasing, and trimming of
// surrounding apostrophes, hyphens and spaces.
func Normalize(word string) string {
	word = norm.NFC.String(word)
	word = strings.ToLower(word)
	return strings.Trim(word, "'- \t")
}

const (
	vowels      = "aeiouyäö"
	backVowels  = "aou"
	frontVowels = "äöy"
)

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// isBack reports whether word contains any back vowel. Words made of front
// and neutral vowels only (e, i) take front harmony.
func isBack(word string) bool {
	return strings.ContainsAny(word, backVowels)
}

// backPlaceholders / frontPlaceholders resolve the harmony placeholders
// A, O and U used in suffix and rewrite tables.
var (
	backPlaceholders  = strings.NewReplacer("A", "a", "O", "o", "U", "u")
	frontPlaceholders = strings.NewReplacer("A", "ä", "O", "ö", "U", "y")
)

// harmonize resolves A/O/U placeholders in s according to the vowels of word.
func harmonize(word, s string) string {
	if isBack(word) {
		return backPlaceholders.Replace(s)
	}
	return frontPlaceholders.Replace(s)
}

// longEndings are the long vowels and diphthongs that a stem may already
// end in; such stems are not lengthened in the 3rd person singular.
var longEndings = []string{
	"aa", "ee", "ii", "oo", "uu", "yy", "ää", "öö",
	"ai", "ei", "oi", "ui", "yi", "äi", "öi",
	"au", "eu", "ou", "iu", "äy", "öy", "ey", "iy",
	"ie", "uo", "yö",
}

func endsLong(s string) bool {
	for _, e := range longEndings {
		if strings.HasSuffix(s, e) {
			return true
		}
	}
	return false
}

// lengthen doubles the final vowel of s unless s already ends long.
func lengthen(s string) string {
	if s == "" || endsLong(s) {
		return s
	}
	r := []rune(s)
	last := r[len(r)-1]
	if !isVowel(last) {
		return s
	}
	return s + string(last)
}
