package quizgen

import (
	"fmt"
	"strings"
)

// synthComprehension produces up to n comprehension questions. Each draws
// an unused ranked sentence, extracts a focus concept, and builds either a
// cloze item (the concept blanked out of the sentence) or a definitional
// item (the clause the document attaches to the concept). Sentences that
// yield no focus concept are skipped without being consumed.
func (c *Config) synthComprehension(n int, st *synthState) []Question {
	var out []Question
	for _, cand := range st.ranked {
		if len(out) == n {
			break
		}
		if st.used[cand.text] {
			continue
		}
		q, ok := c.buildComprehension(cand, st)
		if !ok {
			continue
		}
		st.used[cand.text] = true
		out = append(out, q)
	}
	return out
}

func (c *Config) buildComprehension(cand candidate, st *synthState) (Question, bool) {
	focuses := st.focusConcepts(cand.text)
	if len(focuses) == 0 {
		return Question{}, false
	}
	focus := focuses[st.rng.Intn(len(focuses))]

	// Cloze and definitional styles alternate randomly; cloze needs the
	// focus to actually occur in the sentence (fallback focus words always
	// do, phrase focuses can differ in surface form).
	if st.rng.Intn(2) == 0 {
		if q, ok := c.buildCloze(cand, focus, st); ok {
			return q, true
		}
	}
	return c.buildDefinitional(cand, focus, st)
}

// buildCloze blanks the focus concept out of the sentence and asks for the
// missing term.
func (c *Config) buildCloze(cand candidate, focus string, st *synthState) (Question, bool) {
	prompt := replaceFold(cand.text, focus, "_____")
	if prompt == cand.text {
		return Question{}, false
	}

	// Distractor material: content words mined from other ranked
	// sentences, plus other key phrases.
	var pool []string
	for _, other := range st.otherSentences(cand.text) {
		for _, w := range tokenize(other) {
			if len([]rune(w)) > 4 && !stopwords[strings.ToLower(w)] {
				pool = append(pool, w)
			}
		}
	}
	pool = append(pool, st.otherPhrases(focus)...)

	distractors := c.pickDistractors(focus, pool, st.rng)
	return Question{
		Prompt:  "Fill in the blank: " + prompt,
		Options: assembleOptions(focus, distractors, st.rng),
		Answer:  AnswerKey{Single: focus},
		Kind:    KindSingleChoice,
		Level:   LevelComprehension,
		Source:  cand.text,
	}, true
}

// buildDefinitional asks what the document says about the focus concept.
// The correct answer is the clause after a definitional connective, or the
// truncated sentence when no connective is found.
func (c *Config) buildDefinitional(cand candidate, focus string, st *synthState) (Question, bool) {
	answer := clauseAfterConnective(cand.text, focus)
	if answer == "" {
		answer = truncateWords(strings.TrimRight(cand.text, "."), 100)
	}
	if answer == "" {
		return Question{}, false
	}

	// Clauses from other sentences make the most plausible distractors;
	// they read like the document but say something else.
	var pool []string
	for _, other := range st.otherSentences(cand.text) {
		if clause := clauseAfterConnective(other, ""); clause != "" {
			pool = append(pool, clause)
		} else {
			pool = append(pool, truncateWords(strings.TrimRight(other, "."), 100))
		}
	}

	distractors := c.pickDistractors(answer, pool, st.rng)
	return Question{
		Prompt:  fmt.Sprintf("According to the document, which of the following best describes %s?", focus),
		Options: assembleOptions(answer, distractors, st.rng),
		Answer:  AnswerKey{Single: answer},
		Kind:    KindSingleChoice,
		Level:   LevelComprehension,
		Source:  cand.text,
	}, true
}

// replaceFold replaces the first case-insensitive occurrence of old in s.
func replaceFold(s, old, repl string) string {
	i := strings.Index(strings.ToLower(s), strings.ToLower(old))
	if i < 0 {
		return s
	}
	return s[:i] + repl + s[i+len(old):]
}
