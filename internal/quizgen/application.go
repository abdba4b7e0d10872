package quizgen

import (
	"fmt"
	"strings"
)

// synthApplication produces up to n application-level questions: how the
// idea in a sentence would be put to use. The correct answer and all
// distractors are templated from two content words of the source sentence;
// distractors are misapplication statements, not material from elsewhere
// in the document.
func (c *Config) synthApplication(n int, st *synthState) []Question {
	var out []Question
	for _, cand := range st.ranked {
		if len(out) == n {
			break
		}
		if st.used[cand.text] {
			continue
		}
		q, ok := c.buildApplication(cand, st)
		if !ok {
			continue
		}
		st.used[cand.text] = true
		out = append(out, q)
	}
	return out
}

func (c *Config) buildApplication(cand candidate, st *synthState) (Question, bool) {
	x, y, ok := twoContentWords(cand.text, st)
	if !ok {
		return Question{}, false
	}

	correct := fmt.Sprintf("Applying %s to improve how %s is handled", x, y)
	distractors := []string{
		fmt.Sprintf("Ignoring %s whenever %s is involved", x, y),
		fmt.Sprintf("Using %s to eliminate %s entirely", y, x),
		fmt.Sprintf("Treating %s and %s as interchangeable", x, y),
	}

	return Question{
		Prompt:  fmt.Sprintf("Based on the document, how would the idea of %s best be applied in practice?", x),
		Options: assembleOptions(correct, distractors, st.rng),
		Answer:  AnswerKey{Single: correct},
		Kind:    KindSingleChoice,
		Level:   LevelApplication,
		Source:  cand.text,
	}, true
}

// twoContentWords picks two distinct focus-worthy terms from the sentence:
// focus concepts first, then any remaining long content words.
func twoContentWords(sentence string, st *synthState) (string, string, bool) {
	terms := st.focusConcepts(sentence)
	if len(terms) < 2 {
		for _, w := range tokenize(sentence) {
			if len(terms) >= 2 {
				break
			}
			if len([]rune(w)) > 5 && !stopwords[strings.ToLower(w)] && !containsFold(terms, w) {
				terms = append(terms, w)
			}
		}
	}
	if len(terms) < 2 {
		return "", "", false
	}
	return terms[0], terms[1], true
}
