package quizgen

import "fmt"

// Conceptual fallback: generic questions built from key phrases alone,
// used whenever the sentence-driven synthesizers under-deliver. With four
// or more phrases it can always fill the remaining slots; below that the
// generic distractor padding keeps it producing as long as any phrase
// exists at all — a degraded result, never an error.

// synthConceptualMC produces up to n frequency questions: the correct
// option is a top-ranked phrase, distractors come from the bottom half of
// the ranking so "appears frequently" stays discriminating.
func (c *Config) synthConceptualMC(n int, st *synthState) []Question {
	if len(st.phrases) == 0 {
		return nil
	}

	// Top phrases rotate through the answer slot so repeated fallback
	// questions do not share an answer.
	top := st.phrases
	if len(top) > 5 {
		top = top[:5]
	}
	tail := st.phrases[len(st.phrases)/2:]

	var out []Question
	for i := 0; i < n; i++ {
		concept := top[i%len(top)].Text

		var pool []string
		for _, p := range tail {
			if p.Text != concept {
				pool = append(pool, p.Text)
			}
		}
		distractors := c.pickDistractors(concept, pool, st.rng)

		out = append(out, Question{
			Prompt:  "Which of the following concepts appears most frequently in the document?",
			Options: assembleOptions(concept, distractors, st.rng),
			Answer:  AnswerKey{Single: concept},
			Kind:    KindSingleChoice,
			Level:   LevelRecall,
		})
	}
	return out
}

// synthConceptualTF produces up to n true/false questions asserting a
// relationship between a phrase pair; the key is whether the pair actually
// co-occurs within the configured character window of the text.
func (c *Config) synthConceptualTF(n int, text string, st *synthState) []Question {
	if len(st.phrases) < 2 {
		return nil
	}

	var out []Question
	for i := 0; len(out) < n && i < len(st.phrases)*2; i++ {
		a := st.phrases[i%len(st.phrases)].Text
		b := st.phrases[(i+1+i/len(st.phrases))%len(st.phrases)].Text
		if a == b {
			continue
		}

		answer := "False"
		if cooccurWithin(text, a, b, c.CooccurWindow) {
			answer = "True"
		}

		out = append(out, Question{
			Prompt:  fmt.Sprintf("The document discusses %s in direct connection with %s.", a, b),
			Options: append([]string(nil), trueFalseOptions...),
			Answer:  AnswerKey{Single: answer},
			Kind:    KindTrueFalse,
			Level:   LevelRecall,
		})
	}
	return out
}
