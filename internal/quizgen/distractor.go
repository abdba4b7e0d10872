package quizgen

import (
	"math/rand"
	"strings"
)

// distractorCount is fixed: single-choice questions present the correct
// answer plus exactly three wrong options.
const distractorCount = 3

// pickDistractors selects exactly three distractors for the given correct
// answer out of the supplied text-derived candidates. Guarantees: no
// distractor equals the answer (case-insensitively), no two distractors are
// identical, and every text-derived distractor is lexically far enough from
// the answer (word-overlap similarity below the cutoff) to avoid
// near-duplicate options. When the candidates run dry, the remainder is
// padded from the fixed generic list, same collision rules applied.
func (c *Config) pickDistractors(correct string, cands []string, rng *rand.Rand) []string {
	chosen := make([]string, 0, distractorCount)
	seen := map[string]bool{strings.ToLower(correct): true}

	shuffled := append([]string(nil), cands...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, cand := range shuffled {
		if len(chosen) == distractorCount {
			break
		}
		cand = strings.TrimSpace(cand)
		if cand == "" || seen[strings.ToLower(cand)] {
			continue
		}
		if wordOverlap(cand, correct) >= c.SimilarityCutoff {
			continue
		}
		chosen = append(chosen, cand)
		seen[strings.ToLower(cand)] = true
	}

	for _, generic := range genericDistractors {
		if len(chosen) == distractorCount {
			break
		}
		if seen[strings.ToLower(generic)] {
			continue
		}
		chosen = append(chosen, generic)
		seen[strings.ToLower(generic)] = true
	}

	return chosen
}

// wordOverlap is Jaccard similarity over lowercased words longer than
// three characters. Short glue words carry no signal about whether two
// options say the same thing.
func wordOverlap(a, b string) float64 {
	as := significantWords(a)
	bs := significantWords(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}

	inter := 0
	for w := range as {
		if bs[w] {
			inter++
		}
	}
	union := len(as) + len(bs) - inter
	return float64(inter) / float64(union)
}

func significantWords(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range tokenize(s) {
		if len([]rune(w)) > 3 {
			out[strings.ToLower(w)] = true
		}
	}
	return out
}
