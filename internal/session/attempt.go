// Package session owns the state of one quiz attempt: the question set,
// the learner's responses, the countdown, and the finish transition. All
// mutation happens on the single UI goroutine; no locking.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnify/internal/quizgen"
	"github.com/abhisek/learnify/internal/scoring"
)

// Attempt is a single run through a generated quiz.
type Attempt struct {
	ID        string
	Learner   string
	Questions []quizgen.Question
	Responses quizgen.ResponseMap

	TimeLimit time.Duration
	Remaining time.Duration
	StartedAt time.Time

	current  int
	finished bool
	endedAt  time.Time
}

// NewAttempt starts an attempt over the given question set.
func NewAttempt(learner string, qs []quizgen.Question, limit time.Duration) *Attempt {
	return &Attempt{
		ID:        uuid.New().String(),
		Learner:   learner,
		Questions: qs,
		Responses: make(quizgen.ResponseMap),
		TimeLimit: limit,
		Remaining: limit,
		StartedAt: time.Now(),
	}
}

// Current returns the question the learner is on, or nil when the attempt
// has moved past the last question.
func (a *Attempt) Current() *quizgen.Question {
	if a.current < 0 || a.current >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.current]
}

// Index returns the zero-based position of the current question.
func (a *Attempt) Index() int { return a.current }

// Answer records a response for the current question and advances.
// Recording after finish is a no-op: a late submission must not mutate a
// graded attempt.
func (a *Attempt) Answer(r quizgen.Response) {
	if a.finished {
		return
	}
	if q := a.Current(); q != nil {
		a.Responses[q.ID] = r
	}
	a.advance()
}

// Skip advances past the current question without recording anything —
// the question stays absent from the response map, which is the
// "not answered" state, as opposed to an answered-empty multi-select.
func (a *Attempt) Skip() {
	if a.finished {
		return
	}
	a.advance()
}

func (a *Attempt) advance() {
	a.current++
	if a.current >= len(a.Questions) {
		a.Finish()
	}
}

// Tick consumes one second of the countdown. It reports whether this tick
// expired the timer — true at most once per attempt, so a second tick
// arriving after auto-submission can never re-submit or push the clock
// below zero.
func (a *Attempt) Tick() bool {
	if a.finished || a.Remaining <= 0 {
		return false
	}
	a.Remaining -= time.Second
	if a.Remaining <= 0 {
		a.Remaining = 0
		return a.Finish()
	}
	return false
}

// Finish closes the attempt. Idempotent: only the first call transitions
// and reports true.
func (a *Attempt) Finish() bool {
	if a.finished {
		return false
	}
	a.finished = true
	a.endedAt = time.Now()
	return true
}

// Finished reports whether the attempt has been closed.
func (a *Attempt) Finished() bool { return a.finished }

// Duration is the wall time the attempt took. Zero until finished.
func (a *Attempt) Duration() time.Duration {
	if !a.finished {
		return 0
	}
	return a.endedAt.Sub(a.StartedAt)
}

// Grade scores the attempt. Responses are treated as finalized; the
// scorer itself is pure, so grading twice yields identical results.
func (a *Attempt) Grade() scoring.Summary {
	return scoring.Grade(a.Questions, a.Responses)
}
