package quizgen

import (
	"fmt"
	"strings"
)

// StructuralValidator checks option-list integrity: a non-empty prompt,
// pairwise-distinct options, and every answer present among the options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{Validator: v.Name(), Message: "prompt is empty"}
	}
	if len(q.Options) < 2 {
		return &ValidationError{Validator: v.Name(), Message: "fewer than 2 options"}
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{Validator: v.Name(), Message: "empty option"}
		}
		if seen[opt] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %q", opt)}
		}
		seen[opt] = true
	}

	for _, ans := range answerValues(q) {
		if !seen[ans] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("answer %q not among options", ans)}
		}
	}
	return nil
}

// ShapeValidator checks kind/answer-shape consistency: single-answer kinds
// carry exactly one Single value, the multi kind carries a Multi set of at
// least two plus a decoy, and true/false options are exactly
// ["True", "False"].
type ShapeValidator struct{}

func (v *ShapeValidator) Name() string { return "answer-shape" }

func (v *ShapeValidator) Validate(q *Question) *ValidationError {
	switch q.Kind {
	case KindSingleChoice:
		if q.Answer.Single == "" || q.Answer.Multi != nil {
			return &ValidationError{Validator: v.Name(), Message: "single-choice answer must be a single string"}
		}

	case KindTrueFalse:
		if q.Answer.Single == "" || q.Answer.Multi != nil {
			return &ValidationError{Validator: v.Name(), Message: "true/false answer must be a single string"}
		}
		if len(q.Options) != 2 || q.Options[0] != "True" || q.Options[1] != "False" {
			return &ValidationError{Validator: v.Name(), Message: `true/false options must be exactly ["True", "False"]`}
		}
		if q.Answer.Single != "True" && q.Answer.Single != "False" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("true/false answer %q invalid", q.Answer.Single)}
		}

	case KindMultiChoice:
		if q.Answer.Single != "" || len(q.Answer.Multi) < 2 {
			return &ValidationError{Validator: v.Name(), Message: "multi-choice answer must be a set of at least 2 strings"}
		}
		if len(q.Options) < len(q.Answer.Multi)+1 {
			return &ValidationError{Validator: v.Name(), Message: "multi-choice needs at least one decoy option"}
		}
		seen := make(map[string]bool, len(q.Answer.Multi))
		for _, a := range q.Answer.Multi {
			if seen[a] {
				return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate answer %q", a)}
			}
			seen[a] = true
		}

	default:
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown kind %q", q.Kind)}
	}
	return nil
}

// answerValues flattens the answer key for containment checks.
func answerValues(q *Question) []string {
	if q.Answer.Multi != nil {
		return q.Answer.Multi
	}
	if q.Answer.Single != "" {
		return []string{q.Answer.Single}
	}
	return nil
}
