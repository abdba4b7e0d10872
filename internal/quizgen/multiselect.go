package quizgen

import "fmt"

// synthMultiSelect produces up to n multi-select questions: which concepts
// does the document connect with an anchor concept. The answer set is the
// other focus concepts sharing the anchor's sentence; decoys are key
// phrases that never co-occur with the anchor anywhere in the document, so
// the question stays gradable from the text alone.
func (c *Config) synthMultiSelect(n int, text string, st *synthState) []Question {
	var out []Question
	for _, cand := range st.ranked {
		if len(out) == n {
			break
		}
		if st.used[cand.text] {
			continue
		}
		q, ok := c.buildMultiSelect(cand, text, st)
		if !ok {
			continue
		}
		st.used[cand.text] = true
		out = append(out, q)
	}
	return out
}

func (c *Config) buildMultiSelect(cand candidate, text string, st *synthState) (Question, bool) {
	focuses := st.focusConcepts(cand.text)
	if len(focuses) < 3 {
		return Question{}, false
	}
	anchor := focuses[0]
	correct := focuses[1:] // two or more, focusConcepts caps at three

	var decoys []string
	for _, p := range st.otherPhrases(focuses...) {
		if len(decoys) == 2 {
			break
		}
		if !cooccurWithin(text, anchor, p, c.CooccurWindow) {
			decoys = append(decoys, p)
		}
	}
	if len(decoys) == 0 {
		return Question{}, false // no decoy means no wrong way to answer
	}

	options := make([]string, 0, len(correct)+len(decoys))
	options = append(options, correct...)
	options = append(options, decoys...)
	st.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	answer := make([]string, len(correct))
	copy(answer, correct)

	return Question{
		Prompt:  fmt.Sprintf("Select every concept the document discusses together with %s.", anchor),
		Options: options,
		Answer:  AnswerKey{Multi: answer},
		Kind:    KindMultiChoice,
		Level:   LevelAnalysis,
		Source:  cand.text,
	}, true
}
