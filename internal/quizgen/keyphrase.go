package quizgen

import (
	"sort"
	"strings"
	"unicode"
)

// phraseStat accumulates per-phrase evidence during extraction.
type phraseStat struct {
	display   string // first-seen surface form
	count     int
	words     int
	titleCase bool // seen with a leading capital anywhere in the text
	order     int  // first-seen position, for stable tie-breaking
}

// ExtractKeyPhrases derives the document's ranked vocabulary: 1-4 word
// sequences of content words, scored by frequency times multiword,
// title-case, and domain-indicator boosts. Returns at most
// Config.TopPhrases entries, best first. Ties keep first-seen order so the
// output is reproducible for identical input.
func (c *Config) ExtractKeyPhrases(text string) []KeyPhrase {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	stats := make(map[string]*phraseStat)
	order := 0

	for start := range tokens {
		for n := 1; n <= 4 && start+n <= len(tokens); n++ {
			window := tokens[start : start+n]
			if !contentPhrase(window) {
				break // a non-content word ends every phrase through it
			}
			surface := strings.Join(window, " ")
			key := strings.ToLower(surface)

			st, ok := stats[key]
			if !ok {
				st = &phraseStat{display: surface, words: n, order: order}
				stats[key] = st
				order++
			}
			st.count++
			if unicode.IsUpper([]rune(window[0])[0]) {
				st.titleCase = true
			}
		}
	}

	phrases := make([]KeyPhrase, 0, len(stats))
	orders := make(map[string]int, len(stats))
	for key, st := range stats {
		score := float64(st.count)
		if st.words >= 2 {
			score *= c.MultiwordBoost
		}
		if st.titleCase {
			score *= c.TitleCaseBoost
		}
		if containsDomainIndicator(key) {
			score *= c.DomainBoost
		}
		phrases = append(phrases, KeyPhrase{Text: st.display, Score: score, Count: st.count})
		orders[key] = st.order
	}

	// Stable sort on first-seen order, then by score. Equal scores keep
	// document order.
	sort.Slice(phrases, func(i, j int) bool {
		return orders[strings.ToLower(phrases[i].Text)] < orders[strings.ToLower(phrases[j].Text)]
	})
	sort.SliceStable(phrases, func(i, j int) bool {
		return phrases[i].Score > phrases[j].Score
	})

	if len(phrases) > c.TopPhrases {
		phrases = phrases[:c.TopPhrases]
	}
	return phrases
}

// tokenize splits text into words stripped of surrounding punctuation,
// preserving case.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// contentPhrase reports whether every word in the window can participate in
// a key phrase: at least four letters (or a capitalized word of three or
// more) and not a stopword.
func contentPhrase(window []string) bool {
	for _, w := range window {
		lower := strings.ToLower(w)
		if stopwords[lower] {
			return false
		}
		runes := []rune(w)
		capitalized := unicode.IsUpper(runes[0])
		if capitalized && len(runes) >= 3 {
			continue
		}
		if len(runes) < 4 {
			return false
		}
		for _, r := range runes {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// containsDomainIndicator reports whether a lowercased phrase contains one
// of the fixed domain-indicator terms.
func containsDomainIndicator(key string) bool {
	for _, ind := range domainIndicators {
		if strings.Contains(key, ind) {
			return true
		}
	}
	return false
}
