package kotus

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// SortForms sorts surface forms in place by length in letters, then
// lexicographically, drops duplicates and returns the shortened slice.
func SortForms(forms []string) []string {
	slices.SortFunc(forms, func(a, b string) int {
		if c := cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return slices.Compact(forms)
}
