// Package export reads and writes quiz and answer files. Quiz files carry
// their answer keys in the clear: this is single-session tooling for one
// learner, not a sealed exam format.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnify/internal/quizgen"
)

// FormatVersion is bumped when the quiz file layout changes shape.
const FormatVersion = 1

// QuizFile is the on-disk representation of a generated question set.
type QuizFile struct {
	Version   int                `json:"version"`
	QuizID    string             `json:"quiz_id"`
	CreatedAt time.Time          `json:"created_at,omitempty"`
	Kind      quizgen.QuizKind   `json:"kind"`
	Questions []quizgen.Question `json:"questions"`
}

// AnswerFile is a saved response map for later grading.
type AnswerFile struct {
	QuizID    string              `json:"quiz_id"`
	Learner   string              `json:"learner,omitempty"`
	Responses quizgen.ResponseMap `json:"responses"`
}

// NewQuizFile wraps a question set for writing.
func NewQuizFile(kind quizgen.QuizKind, qs []quizgen.Question) *QuizFile {
	return &QuizFile{
		Version:   FormatVersion,
		QuizID:    uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Kind:      kind,
		Questions: qs,
	}
}

// WriteQuiz writes the quiz file as indented JSON.
func WriteQuiz(path string, qf *QuizFile) error {
	data, err := json.MarshalIndent(qf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write quiz: %w", err)
	}
	return nil
}

// ReadQuiz loads and validates a quiz file. The JSON is checked against
// the quiz schema before decoding, so a malformed file fails with a
// description of what is wrong instead of a partial unmarshal.
func ReadQuiz(path string) (*QuizFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	if err := validateJSON("quiz-file", quizFileSchema, data); err != nil {
		return nil, fmt.Errorf("quiz file %s: %w", path, err)
	}

	var qf QuizFile
	if err := json.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("decode quiz %s: %w", path, err)
	}
	if qf.Version > FormatVersion {
		return nil, fmt.Errorf("quiz file %s: version %d is newer than supported %d", path, qf.Version, FormatVersion)
	}
	return &qf, nil
}

// WriteAnswers writes a response map for later grading.
func WriteAnswers(path string, af *AnswerFile) error {
	data, err := json.MarshalIndent(af, "", "  ")
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}
	return nil
}

// ReadAnswers loads and validates an answer file.
func ReadAnswers(path string) (*AnswerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	if err := validateJSON("answer-file", answerFileSchema, data); err != nil {
		return nil, fmt.Errorf("answer file %s: %w", path, err)
	}

	var af AnswerFile
	if err := json.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("decode answers %s: %w", path, err)
	}
	return &af, nil
}
