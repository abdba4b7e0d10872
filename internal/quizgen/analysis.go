package quizgen

import "fmt"

// synthAnalysis produces up to n analysis-level questions about the
// relationship between two concepts from the same sentence. Sentences
// yielding fewer than two focus concepts are skipped and stay available
// to later synthesizers.
func (c *Config) synthAnalysis(n int, st *synthState) []Question {
	var out []Question
	for _, cand := range st.ranked {
		if len(out) == n {
			break
		}
		if st.used[cand.text] {
			continue
		}
		q, ok := c.buildAnalysis(cand, st)
		if !ok {
			continue
		}
		st.used[cand.text] = true
		out = append(out, q)
	}
	return out
}

func (c *Config) buildAnalysis(cand candidate, st *synthState) (Question, bool) {
	focuses := st.focusConcepts(cand.text)
	if len(focuses) < 2 {
		return Question{}, false
	}
	x, y := focuses[0], focuses[1]

	correct := fmt.Sprintf("The document presents %s as directly connected to %s", x, y)
	distractors := []string{
		fmt.Sprintf("The document argues that %s contradicts %s", x, y),
		fmt.Sprintf("The document treats %s as unrelated to %s", x, y),
		fmt.Sprintf("The document claims %s has made %s obsolete", x, y),
	}

	return Question{
		Prompt:  fmt.Sprintf("What best characterizes the relationship between %s and %s in the document?", x, y),
		Options: assembleOptions(correct, distractors, st.rng),
		Answer:  AnswerKey{Single: correct},
		Kind:    KindSingleChoice,
		Level:   LevelAnalysis,
		Source:  cand.text,
	}, true
}
