package quizgen

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var trueFalseOptions = []string{"True", "False"}

// synthTrueFalse produces up to n true/false questions. Polarity is a
// biased coin (Config.TrueBias chance of a true statement). False
// statements are built by applying exactly one falsification strategy to
// the source sentence; the result must differ textually from the original
// or the sentence is skipped unconsumed.
func (c *Config) synthTrueFalse(n int, st *synthState) []Question {
	var out []Question
	for _, cand := range st.ranked {
		if len(out) == n {
			break
		}
		if st.used[cand.text] {
			continue
		}
		q, ok := c.buildTrueFalse(cand, st)
		if !ok {
			continue
		}
		st.used[cand.text] = true
		out = append(out, q)
	}
	return out
}

func (c *Config) buildTrueFalse(cand candidate, st *synthState) (Question, bool) {
	if st.rng.Float64() < c.TrueBias {
		statement := cand.text
		if st.rng.Intn(2) == 0 {
			statement = "According to the document, " + lowerFirst(statement)
		}
		return Question{
			Prompt:  statement,
			Options: append([]string(nil), trueFalseOptions...),
			Answer:  AnswerKey{Single: "True"},
			Kind:    KindTrueFalse,
			Level:   LevelComprehension,
			Source:  cand.text,
		}, true
	}

	falsified, ok := falsify(cand.text, st.rng)
	if !ok {
		return Question{}, false
	}
	return Question{
		Prompt:  falsified,
		Options: append([]string(nil), trueFalseOptions...),
		Answer:  AnswerKey{Single: "False"},
		Kind:    KindTrueFalse,
		Level:   LevelComprehension,
		Source:  cand.text,
	}, true
}

// falsify applies one falsification strategy to the sentence. The strategy
// is picked at random; when the picked one cannot change this particular
// sentence the remaining strategies are tried in rotation, so the output
// still reflects exactly one applied transformation.
func falsify(sentence string, rng *rand.Rand) (string, bool) {
	strategies := []func(string, *rand.Rand) (string, bool){
		falsifyAntonym,
		falsifyNegation,
		falsifyNumber,
		falsifySubject,
	}

	start := rng.Intn(len(strategies))
	for i := range strategies {
		s := strategies[(start+i)%len(strategies)]
		if out, ok := s(sentence, rng); ok && out != sentence {
			return out, true
		}
	}
	return "", false
}

// falsifyAntonym substitutes one content word with its antonym, or with a
// semantically unrelated filler noun when no listed antonym occurs.
func falsifyAntonym(sentence string, rng *rand.Rand) (string, bool) {
	for _, w := range tokenize(sentence) {
		if ant, ok := antonyms[strings.ToLower(w)]; ok {
			return replaceWord(sentence, w, matchCase(ant, w)), true
		}
	}

	var content []string
	for _, w := range tokenize(sentence) {
		if len([]rune(w)) > 4 && !stopwords[strings.ToLower(w)] {
			content = append(content, w)
		}
	}
	if len(content) == 0 {
		return "", false
	}
	target := content[rng.Intn(len(content))]
	filler := fillerNouns[rng.Intn(len(fillerNouns))]
	return replaceWord(sentence, target, matchCase(filler, target)), true
}

// falsifyNegation inserts an explicit negation after the first copula, or
// wraps the whole sentence when there is none to negate.
func falsifyNegation(sentence string, _ *rand.Rand) (string, bool) {
	lower := strings.ToLower(sentence)
	if strings.Contains(lower, " not ") {
		return "", false // already negative; flipping would need parsing
	}
	for _, cop := range []string{" is ", " are "} {
		if i := strings.Index(lower, cop); i >= 0 {
			return sentence[:i+len(cop)] + "not " + sentence[i+len(cop):], true
		}
	}
	return "It is not true that " + lowerFirst(strings.TrimRight(sentence, ".")) + ".", true
}

var intRe = regexp.MustCompile(`\d+`)

// falsifyNumber multiplies the first contained number by ten, or — with no
// number present — injects an absolutizing qualifier.
func falsifyNumber(sentence string, rng *rand.Rand) (string, bool) {
	if loc := intRe.FindStringIndex(sentence); loc != nil {
		n, err := strconv.Atoi(sentence[loc[0]:loc[1]])
		if err == nil {
			return sentence[:loc[0]] + strconv.Itoa(n*10) + sentence[loc[1]:], true
		}
	}

	qual := absolutizers[rng.Intn(2)] // "always" or "never" read naturally after a copula
	lower := strings.ToLower(sentence)
	for _, cop := range []string{" is ", " are "} {
		if i := strings.Index(lower, cop); i >= 0 {
			if strings.HasPrefix(lower[i+len(cop):], qual+" ") {
				return "", false
			}
			return sentence[:i+len(cop)] + qual + " " + sentence[i+len(cop):], true
		}
	}
	return "It is always the case that " + lowerFirst(strings.TrimRight(sentence, ".")) + ".", true
}

// falsifySubject replaces a proper noun (or, failing that, the longest
// content word) with an unrelated subject.
func falsifySubject(sentence string, rng *rand.Rand) (string, bool) {
	tokens := tokenize(sentence)
	replacement := unrelatedSubjects[rng.Intn(len(unrelatedSubjects))]

	// Prefer a capitalized token past the sentence start: likely a proper
	// noun rather than mere sentence case.
	for i, w := range tokens {
		if i == 0 {
			continue
		}
		r := []rune(w)
		if unicode.IsUpper(r[0]) && len(r) >= 3 && !stopwords[strings.ToLower(w)] {
			return replaceWord(sentence, w, replacement), true
		}
	}

	longest := ""
	for _, w := range tokens {
		if stopwords[strings.ToLower(w)] {
			continue
		}
		if len(w) > len(longest) && len([]rune(w)) > 5 {
			longest = w
		}
	}
	if longest == "" {
		return "", false
	}
	return replaceWord(sentence, longest, replacement), true
}

// replaceWord replaces the first whole-word occurrence of old in s.
func replaceWord(s, old, repl string) string {
	lower := strings.ToLower(s)
	target := strings.ToLower(old)
	from := 0
	for {
		i := strings.Index(lower[from:], target)
		if i < 0 {
			return s
		}
		i += from
		end := i + len(target)
		beforeOK := i == 0 || !isWordRune(rune(lower[i-1]))
		afterOK := end == len(lower) || !isWordRune(rune(lower[end]))
		if beforeOK && afterOK {
			return s[:i] + repl + s[end:]
		}
		from = end
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// matchCase capitalizes repl when the word it replaces was capitalized.
func matchCase(repl, replaced string) string {
	r := []rune(replaced)
	if len(r) > 0 && unicode.IsUpper(r[0]) {
		out := []rune(repl)
		out[0] = unicode.ToUpper(out[0])
		return string(out)
	}
	return repl
}
