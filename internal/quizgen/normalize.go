package quizgen

import (
	"strings"
	"unicode"
)

// Normalize cleans raw extracted document text into a single flat string:
// line breaks become spaces, runs of whitespace collapse to one space, and
// characters outside the allow-listed punctuation set are removed. Empty
// input yields empty output; downstream stages treat that as "zero
// candidate sentences", never as an error.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	lastSpace := true // swallow leading whitespace
	for _, r := range raw {
		switch {
		case r == '\n' || r == '\r' || r == '\t' || r == ' ':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case allowedRune(r):
			b.WriteRune(r)
			lastSpace = false
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// allowedRune reports whether a rune survives normalization. Letters and
// digits always do; punctuation is limited to the set sentence heuristics
// understand.
func allowedRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '.', ',', ';', ':', '!', '?', '\'', '"', '(', ')', '%', '/', '-', '–', '—':
		return true
	}
	return false
}
