package scoring

import (
	"testing"

	"github.com/abhisek/learnify/internal/quizgen"
)

func single(id int, answer string) quizgen.Question {
	return quizgen.Question{
		ID:      id,
		Prompt:  "q",
		Options: []string{answer, "other", "third", "fourth"},
		Answer:  quizgen.AnswerKey{Single: answer},
		Kind:    quizgen.KindSingleChoice,
	}
}

func multi(id int, answers ...string) quizgen.Question {
	return quizgen.Question{
		ID:      id,
		Prompt:  "q",
		Options: append(append([]string(nil), answers...), "decoy"),
		Answer:  quizgen.AnswerKey{Multi: answers},
		Kind:    quizgen.KindMultiChoice,
	}
}

func TestGradeAllCorrect(t *testing.T) {
	qs := []quizgen.Question{single(1, "a"), single(2, "b")}
	resp := quizgen.ResponseMap{
		1: {Single: "a"},
		2: {Single: "b"},
	}
	sum := Grade(qs, resp)
	if sum.Score != 100 || sum.Correct != 2 || sum.Total != 2 {
		t.Errorf("Grade() = %+v, want 100%% with 2/2", sum)
	}
}

func TestGradeRounding(t *testing.T) {
	qs := []quizgen.Question{single(1, "a"), single(2, "b"), single(3, "c")}
	resp := quizgen.ResponseMap{1: {Single: "a"}}
	if got := Score(qs, resp); got != 33 {
		t.Errorf("Score() = %d, want 33 (1 of 3 rounded)", got)
	}

	resp[2] = quizgen.Response{Single: "b"}
	if got := Score(qs, resp); got != 67 {
		t.Errorf("Score() = %d, want 67 (2 of 3 rounded)", got)
	}
}

func TestGradeEmptySetScoresZero(t *testing.T) {
	sum := Grade(nil, nil)
	if sum.Score != 0 || sum.Total != 0 {
		t.Errorf("Grade(nil) = %+v, want zero score without dividing", sum)
	}
}

func TestGradeUnansweredIncorrect(t *testing.T) {
	qs := []quizgen.Question{single(1, "a"), single(2, "b")}
	sum := Grade(qs, quizgen.ResponseMap{1: {Single: "a"}})
	if sum.Correct != 1 {
		t.Errorf("Correct = %d, want 1", sum.Correct)
	}
	if sum.Results[1].Answered {
		t.Error("unanswered question reported as answered")
	}
	if sum.Results[1].Correct {
		t.Error("unanswered question graded correct")
	}
}

func TestGradeCaseSensitive(t *testing.T) {
	qs := []quizgen.Question{single(1, "True")}
	if Score(qs, quizgen.ResponseMap{1: {Single: "true"}}) != 0 {
		t.Error("single-answer comparison should be case-sensitive")
	}
}

func TestGradeMultiSetEquality(t *testing.T) {
	qs := []quizgen.Question{multi(1, "x", "y")}

	if Score(qs, quizgen.ResponseMap{1: {Multi: []string{"y", "x"}}}) != 100 {
		t.Error("order should not matter for multi-select")
	}
	if Score(qs, quizgen.ResponseMap{1: {Multi: []string{"x"}}}) != 0 {
		t.Error("partial selection should not score")
	}
	if Score(qs, quizgen.ResponseMap{1: {Multi: []string{"x", "y", "decoy"}}}) != 0 {
		t.Error("superset selection should not score")
	}
	if Score(qs, quizgen.ResponseMap{1: {Multi: []string{"x", "x"}}}) != 0 {
		t.Error("duplicate submissions should not match the set")
	}
	if Score(qs, quizgen.ResponseMap{1: {Multi: []string{}}}) != 0 {
		t.Error("empty submission should grade incorrect, not error")
	}
}

func TestGradeShapeMismatch(t *testing.T) {
	qs := []quizgen.Question{single(1, "a"), multi(2, "x", "y")}
	resp := quizgen.ResponseMap{
		1: {Multi: []string{"a"}}, // multi shape against single question
		2: {Single: "x"},          // single shape against multi question
	}
	sum := Grade(qs, resp)
	if sum.Correct != 0 {
		t.Errorf("shape-mismatched responses scored %d correct, want 0", sum.Correct)
	}
}

func TestFormatAnswer(t *testing.T) {
	tests := []struct {
		single string
		multi  []string
		want   string
	}{
		{"chlorophyll", nil, "chlorophyll"},
		{"", nil, "Not answered"},
		{"", []string{}, "(none selected)"},
		{"", []string{"x", "y"}, "x, y"},
	}
	for _, tt := range tests {
		if got := FormatAnswer(tt.single, tt.multi); got != tt.want {
			t.Errorf("FormatAnswer(%q, %v) = %q, want %q", tt.single, tt.multi, got, tt.want)
		}
	}
}
