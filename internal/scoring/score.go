// Package scoring grades finalized question sets against submitted
// responses. Everything here is pure: identical inputs always produce
// identical results, and no input is mutated.
package scoring

import (
	"math"
	"strings"

	"github.com/abhisek/learnify/internal/quizgen"
)

// QuestionResult is one question's grading outcome.
type QuestionResult struct {
	ID       int
	Correct  bool
	Answered bool
}

// Summary is the full grading outcome for an attempt.
type Summary struct {
	Score   int // rounded percentage, 0-100
	Correct int
	Total   int
	Results []QuestionResult // in question order
}

// Score grades responses against the question set and returns the rounded
// percentage. An empty question set scores 0 rather than dividing by zero.
func Score(qs []quizgen.Question, resp quizgen.ResponseMap) int {
	return Grade(qs, resp).Score
}

// Grade returns the full per-question breakdown along with the score.
// A question absent from the response map is incorrect; so is a response
// whose shape does not match the question's kind — a malformed submission
// is a caller bug, graded as wrong rather than surfaced as an error.
func Grade(qs []quizgen.Question, resp quizgen.ResponseMap) Summary {
	sum := Summary{Total: len(qs), Results: make([]QuestionResult, 0, len(qs))}

	for _, q := range qs {
		r, answered := resp[q.ID]
		correct := answered && matches(q, r)
		if correct {
			sum.Correct++
		}
		sum.Results = append(sum.Results, QuestionResult{ID: q.ID, Correct: correct, Answered: answered})
	}

	if sum.Total > 0 {
		sum.Score = int(math.Round(100 * float64(sum.Correct) / float64(sum.Total)))
	}
	return sum
}

// matches compares a response to the answer key per the question kind:
// exact case-sensitive string equality for single-answer kinds, exact set
// equality (order-insensitive) for multi-select.
func matches(q quizgen.Question, r quizgen.Response) bool {
	switch q.Kind {
	case quizgen.KindSingleChoice, quizgen.KindTrueFalse:
		if r.Multi != nil {
			return false
		}
		return r.Single == q.Answer.Single

	case quizgen.KindMultiChoice:
		if r.Single != "" {
			return false
		}
		return sameSet(r.Multi, q.Answer.Multi)
	}
	return false
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	if len(set) != len(a) {
		return false // duplicate submissions never match a set
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}

// FormatAnswer renders an answer key or response for display in results
// and reports.
func FormatAnswer(single string, multi []string) string {
	if multi != nil {
		if len(multi) == 0 {
			return "(none selected)"
		}
		return strings.Join(multi, ", ")
	}
	if single == "" {
		return "Not answered"
	}
	return single
}
