// Package turkish holds string helpers for the Turkish free-text that
// dominates the candidate data.
package turkish

import "strings"

// Fold lowercases Turkish text for comparison, so input like "KADIKÖY"
// or "kadıköy" compares equal. Go's ToLower turns İ into a combining
// sequence, so the dotted and dotless i pairs are replaced up front.
func Fold(s string) string {
	s = strings.NewReplacer("İ", "i", "I", "ı").Replace(s)
	return strings.ToLower(strings.TrimSpace(s))
}

// Contains reports whether needle occurs in haystack, compared folded.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Equal reports whether two strings compare equal when folded.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
