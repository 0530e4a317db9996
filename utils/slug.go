package utils

import (
	"strings"
	"unicode"
)

// accentFold maps the accented characters common in Brazilian Portuguese
// titles to their ASCII equivalents.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// Slugify converts a title into a URL-safe slug
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
