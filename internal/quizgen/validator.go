package quizgen

import "fmt"

// Validator checks an assembled question against the set invariants.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g.
	// "structural", "answer-shape".
	Name() string

	// Validate returns nil if the question passes, or a ValidationError
	// describing the first violated invariant.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation. Failing
// questions are dropped at assembly rather than surfaced: a bad question
// is a generator bug, and a shorter set beats a broken one.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
