// Package textnorm prepares user-entered template sentences for inference.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Placeholder is the mask marker users type; it is swapped for the model's own
// marker before inference.
const Placeholder = "[MASK]"

// Normalize applies NFC, trims surrounding space and drops control characters.
// NFC rather than NFKC so full-width punctuation in Japanese input survives.
func Normalize(text string) string {
	s := norm.NFC.String(text)
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// CountPlaceholders reports how many times Placeholder occurs in text.
func CountPlaceholders(text string) int {
	return strings.Count(text, Placeholder)
}

// ReplacePlaceholder substitutes every Placeholder with marker.
func ReplacePlaceholder(text, marker string) string {
	return strings.ReplaceAll(text, Placeholder, marker)
}
