package quizgen

import (
	"regexp"
	"sort"
	"strings"
)

// Marker sets for the informativeness filter. Matching is on the
// lowercased sentence, so markers are lowercase.
var (
	definitionalMarkers = []string{
		" is ", " are ", " means ", " defined as ", " refers to ",
		" known as ", " consists of ",
	}
	causalMarkers = []string{
		" because ", " therefore ", " thus ", " as a result ",
		" leads to ", " causes ",
	}
	comparativeMarkers = []string{
		" compared to ", " whereas ", " in contrast ", " unlike ",
	}
	ordinalMarkers = []string{
		" first", " second", " finally", " lastly",
	}
	evidentiaryMarkers = []string{
		"according to ", " studies show", " research shows", " evidence suggests",
	}

	importanceRe = regexp.MustCompile(`\b(important|key|significant|main|primary|critical|essential|crucial|fundamental)\b`)
	numberRe     = regexp.MustCompile(`\b\d+(\.\d+)?%?\b`)
	analyticalRe = regexp.MustCompile(`\b(analyz\w*|evaluat\w*|interpret\w*|appl(y|ies|ied|ying)|assess\w*|examin\w*)\b`)
)

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// informative reports whether a sentence matches at least one pattern that
// tends to carry a testable fact.
func informative(sentence string) bool {
	lower := strings.ToLower(sentence)
	return containsAny(lower, definitionalMarkers) ||
		containsAny(lower, causalMarkers) ||
		containsAny(lower, comparativeMarkers) ||
		containsAny(lower, ordinalMarkers) ||
		containsAny(lower, evidentiaryMarkers) ||
		importanceRe.MatchString(lower) ||
		numberRe.MatchString(sentence) ||
		analyticalRe.MatchString(lower)
}

// Rank filters candidates for informativeness and orders them by
// importance score, best first. The filter is a soft preference: when it
// leaves fewer than 2x the requested count, the full candidate pool is
// ranked instead, so downstream synthesizers are never starved on plain
// documents. Ties keep segmentation order (stable sort) for determinism.
func (c *Config) Rank(cands []candidate, phrases []KeyPhrase, requested int) []candidate {
	pool := make([]candidate, 0, len(cands))
	for _, cand := range cands {
		if informative(cand.text) {
			pool = append(pool, cand)
		}
	}
	if len(pool) < 2*requested {
		pool = append(pool[:0:0], cands...)
	}

	for i := range pool {
		pool[i].score = c.scoreSentence(pool[i], phrases)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})
	return pool
}

// scoreSentence computes the ranking score: key-phrase overlap weighted by
// phrase rank, plus fixed bonuses for importance adjectives, causal and
// definitional markers, ideal length, and lead position in the paragraph.
func (c *Config) scoreSentence(cand candidate, phrases []KeyPhrase) float64 {
	lower := strings.ToLower(cand.text)

	var score float64
	for rank, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p.Text)) {
			score += 1 - float64(rank)/float64(len(phrases))
		}
	}
	if importanceRe.MatchString(lower) {
		score += c.ImportanceWeight
	}
	if containsAny(lower, causalMarkers) {
		score += c.CausalWeight
	}
	if containsAny(lower, definitionalMarkers) {
		score += c.DefinitionWeight
	}
	if n := len(cand.text); n >= c.IdealMinLen && n <= c.IdealMaxLen {
		score += c.LengthWeight
	}
	if cand.pos <= 1 {
		score += c.LeadWeight
	}
	return score
}
