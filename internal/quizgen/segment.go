package quizgen

import (
	"regexp"
	"strings"
	"unicode"
)

// Patterns that mark a chunk as a caption, reference, or list item rather
// than prose worth questioning.
var (
	numberedListRe = regexp.MustCompile(`^\d+\.`)

	rejectMarkers = []string{"Figure", "Table", "Reference"}
)

// splitChunks splits text at sentence boundaries: a period followed by a
// space and then an uppercase letter. The period stays attached to the
// preceding chunk. This is the one splitting primitive; paragraphs and
// sentences both come from it, applied at different length bounds.
func splitChunks(text string) []string {
	var chunks []string
	start := 0
	runes := []rune(text)

	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == '.' && runes[i+1] == ' ' && unicode.IsUpper(runes[i+2]) {
			chunk := strings.TrimSpace(string(runes[start : i+1]))
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			start = i + 2
		}
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		chunks = append(chunks, tail)
	}
	return chunks
}

// looksLikeNoise reports whether a chunk matches a caption, reference, or
// numbered-list pattern.
func looksLikeNoise(chunk string) bool {
	if numberedListRe.MatchString(chunk) {
		return true
	}
	for _, m := range rejectMarkers {
		if strings.Contains(chunk, m) {
			return true
		}
	}
	return false
}

// Segment splits normalized text into candidate sentences: paragraphs
// first (length-bounded, noise-filtered), then sentences within each
// retained paragraph. If the filtered pass yields nothing, it falls back
// to a loose pass over the whole text with the same length bounds but no
// noise rejection — short or atypical documents must still produce
// candidates rather than zero questions.
func (c *Config) Segment(text string) []candidate {
	if text == "" {
		return nil
	}

	var cands []candidate
	paraIdx := 0
	for _, para := range splitChunks(text) {
		if len(para) < c.MinParagraphLen || len(para) > c.MaxParagraphLen {
			continue
		}
		if looksLikeNoise(para) {
			continue
		}
		pos := 0
		for _, sent := range splitChunks(para) {
			if len(sent) < c.MinSentenceLen || len(sent) > c.MaxSentenceLen {
				continue
			}
			if looksLikeNoise(sent) {
				continue
			}
			cands = append(cands, candidate{text: sent, para: paraIdx, pos: pos})
			pos++
		}
		paraIdx++
	}

	if len(cands) > 0 {
		return cands
	}

	// Loose fallback: same bounds, no noise rejection, single flat pass.
	for i, sent := range splitChunks(text) {
		if len(sent) < c.MinSentenceLen || len(sent) > c.MaxSentenceLen {
			continue
		}
		cands = append(cands, candidate{text: sent, para: 0, pos: i})
	}
	return cands
}
