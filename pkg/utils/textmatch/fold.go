// ABOUTME: Case- and accent-insensitive text matching helpers
// ABOUTME: Used by the listing filter and the heuristic scorer so "São Paulo" matches "sao paulo"

package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining diacritics.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Contains reports whether needle occurs in haystack, ignoring case and accents.
// An empty needle never matches.
func Contains(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// ContainsAny returns the first needle found in haystack, if any.
func ContainsAny(haystack string, needles []string) (string, bool) {
	folded := Fold(haystack)
	for _, n := range needles {
		n = strings.TrimSpace(n)
		if n != "" && strings.Contains(folded, Fold(n)) {
			return n, true
		}
	}
	return "", false
}

// CountAny counts how many distinct needles occur in haystack.
func CountAny(haystack string, needles []string) int {
	folded := Fold(haystack)
	count := 0
	for _, n := range needles {
		n = strings.TrimSpace(n)
		if n != "" && strings.Contains(folded, Fold(n)) {
			count++
		}
	}
	return count
}
