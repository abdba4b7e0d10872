package quizgen

import (
	"math/rand"
	"strings"
	"unicode"
)

// synthState is the shared context threaded through every synthesizer in
// one generation pass. The used-set makes sentences a single-use resource
// pooled across synthesizer types: first claimed wins, and a sentence is
// claimed only when a synthesizer actually produces a question from it, so
// a skip returns the sentence to the pool for later synthesizers.
type synthState struct {
	ranked  []candidate
	phrases []KeyPhrase
	used    map[string]bool
	rng     *rand.Rand
}

func newSynthState(ranked []candidate, phrases []KeyPhrase, rng *rand.Rand) *synthState {
	return &synthState{
		ranked:  ranked,
		phrases: phrases,
		used:    make(map[string]bool),
		rng:     rng,
	}
}

// focusConcepts extracts up to three concepts a question can be built
// around: key phrases present in the sentence, in rank order, falling
// back to long or capitalized words when no phrase matches.
func (st *synthState) focusConcepts(sentence string) []string {
	lower := strings.ToLower(sentence)

	var focuses []string
	for _, p := range st.phrases {
		if len(focuses) == 3 {
			return focuses
		}
		if strings.Contains(lower, strings.ToLower(p.Text)) {
			focuses = append(focuses, p.Text)
		}
	}
	if len(focuses) > 0 {
		return focuses
	}

	for _, w := range tokenize(sentence) {
		if len(focuses) == 3 {
			break
		}
		if stopwords[strings.ToLower(w)] {
			continue
		}
		runes := []rune(w)
		if len(runes) > 7 || (unicode.IsUpper(runes[0]) && len(runes) > 5) {
			if !containsFold(focuses, w) {
				focuses = append(focuses, w)
			}
		}
	}
	return focuses
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// otherSentences returns the texts of ranked sentences other than the
// given one. Distractor material only; it never touches the used-set.
func (st *synthState) otherSentences(exclude string) []string {
	out := make([]string, 0, len(st.ranked))
	for _, cand := range st.ranked {
		if cand.text != exclude {
			out = append(out, cand.text)
		}
	}
	return out
}

// otherPhrases returns phrase texts excluding any listed in skip.
func (st *synthState) otherPhrases(skip ...string) []string {
	out := make([]string, 0, len(st.phrases))
	for _, p := range st.phrases {
		if !containsFold(skip, p.Text) {
			out = append(out, p.Text)
		}
	}
	return out
}

// relationalConnectives, in match order, split a sentence into "focus" and
// "what the document says about it".
var relationalConnectives = []string{
	" is defined as ", " is known as ", " refers to ", " consists of ",
	" means ", " leads to ", " causes ", " is ", " are ",
}

// clauseAfterConnective extracts the clause following the first
// definitional or relational connective after the focus concept. Returns
// "" when the sentence has no usable connective; callers fall back to the
// truncated sentence.
func clauseAfterConnective(sentence, focus string) string {
	lower := strings.ToLower(sentence)
	at := strings.Index(lower, strings.ToLower(focus))
	if at < 0 {
		return ""
	}
	rest := sentence[at+len(focus):]
	restLower := lower[at+len(focus):]

	for _, conn := range relationalConnectives {
		if i := strings.Index(restLower, conn); i >= 0 {
			clause := strings.TrimSpace(rest[i+len(conn):])
			clause = strings.TrimRight(clause, ".")
			if len(clause) < 3 {
				return ""
			}
			return truncateWords(clause, 100)
		}
	}
	return ""
}

// truncateWords cuts s at the last word boundary within max characters.
func truncateWords(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := strings.LastIndex(s[:max], " ")
	if cut <= 0 {
		cut = max
	}
	return strings.TrimRight(s[:cut], " ,;:")
}

// lowerFirst downcases the first rune, for splicing a sentence after an
// attributive prefix.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// assembleOptions shuffles the correct answer into the distractor list.
func assembleOptions(correct string, distractors []string, rng *rand.Rand) []string {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// cooccurWithin reports whether phrases a and b appear within window
// characters of each other anywhere in the text. Case-insensitive.
func cooccurWithin(text, a, b string, window int) bool {
	lower := strings.ToLower(text)
	ai := allIndexes(lower, strings.ToLower(a))
	bi := allIndexes(lower, strings.ToLower(b))
	for _, x := range ai {
		for _, y := range bi {
			d := x - y
			if d < 0 {
				d = -d
			}
			if d <= window {
				return true
			}
		}
	}
	return false
}

func allIndexes(s, sub string) []int {
	var idx []int
	for from := 0; ; {
		i := strings.Index(s[from:], sub)
		if i < 0 {
			return idx
		}
		idx = append(idx, from+i)
		from += i + len(sub)
	}
}
