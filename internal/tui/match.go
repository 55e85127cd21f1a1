package tui

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lowercases s and strips diacritics so "Café" matches "cafe".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(result)
}

// fuzzyMatch reports whether every rune of query appears in target in order.
// Both are folded first; spaces in the query are ignored.
func fuzzyMatch(query, target string) bool {
	q := []rune(strings.ReplaceAll(fold(query), " ", ""))
	if len(q) == 0 {
		return true
	}
	i := 0
	for _, r := range fold(target) {
		if r == q[i] {
			i++
			if i == len(q) {
				return true
			}
		}
	}
	return false
}
