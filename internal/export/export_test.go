package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnify/internal/quizgen"
)

func sampleQuestions() []quizgen.Question {
	return []quizgen.Question{
		{
			ID:      1,
			Prompt:  "Which pigment absorbs light?",
			Options: []string{"chlorophyll", "keratin", "melanin", "insulin"},
			Answer:  quizgen.AnswerKey{Single: "chlorophyll"},
			Kind:    quizgen.KindSingleChoice,
			Level:   quizgen.LevelComprehension,
		},
		{
			ID:      2,
			Prompt:  "Select everything linked to photosynthesis.",
			Options: []string{"sunlight", "water", "keratin"},
			Answer:  quizgen.AnswerKey{Multi: []string{"sunlight", "water"}},
			Kind:    quizgen.KindMultiChoice,
			Level:   quizgen.LevelAnalysis,
		},
	}
}

func TestQuizRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")

	qf := NewQuizFile(quizgen.QuizMixed, sampleQuestions())
	require.NoError(t, WriteQuiz(path, qf))

	got, err := ReadQuiz(path)
	require.NoError(t, err)

	assert.Equal(t, qf.QuizID, got.QuizID)
	assert.Equal(t, FormatVersion, got.Version)
	assert.Equal(t, quizgen.QuizMixed, got.Kind)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, qf.Questions[0].Prompt, got.Questions[0].Prompt)
	assert.Equal(t, qf.Questions[1].Answer.Multi, got.Questions[1].Answer.Multi)
}

func TestQuizSourceNotExported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")

	qs := sampleQuestions()
	qs[0].Source = "The source sentence stays private."
	require.NoError(t, WriteQuiz(path, NewQuizFile(quizgen.QuizMCQ, qs)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "source sentence")

	got, err := ReadQuiz(path)
	require.NoError(t, err)
	assert.Empty(t, got.Questions[0].Source)
}

func TestReadQuizRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")

	qf := NewQuizFile(quizgen.QuizMCQ, sampleQuestions())
	qf.Version = FormatVersion + 1
	require.NoError(t, WriteQuiz(path, qf))

	_, err := ReadQuiz(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestReadQuizRejectsMalformed(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"not JSON":        `{"version":`,
		"missing quiz_id": `{"version": 1, "kind": "mcq", "questions": [{"id": 1, "prompt": "p", "options": ["a", "b"], "answer": {"single": "a"}, "kind": "true-false", "level": "recall"}]}`,
		"bad kind":        `{"version": 1, "quiz_id": "x", "kind": "essay", "questions": [{"id": 1, "prompt": "p", "options": ["a", "b"], "answer": {"single": "a"}, "kind": "true-false", "level": "recall"}]}`,
		"empty questions": `{"version": 1, "quiz_id": "x", "kind": "mcq", "questions": []}`,
	}
	for name, content := range tests {
		path := filepath.Join(dir, name+".json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := ReadQuiz(path)
		assert.Error(t, err, "case %q should fail validation", name)
	}
}

func TestAnswersRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")

	af := &AnswerFile{
		QuizID:  "quiz-1",
		Learner: "Ada",
		Responses: quizgen.ResponseMap{
			1: {Single: "chlorophyll"},
			2: {Multi: []string{"sunlight", "water"}},
			3: {Multi: []string{}},
		},
	}
	require.NoError(t, WriteAnswers(path, af))

	got, err := ReadAnswers(path)
	require.NoError(t, err)

	assert.Equal(t, "quiz-1", got.QuizID)
	assert.Equal(t, "Ada", got.Learner)
	assert.Equal(t, "chlorophyll", got.Responses[1].Single)
	assert.ElementsMatch(t, []string{"sunlight", "water"}, got.Responses[2].Multi)
}

func TestReadAnswersRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	content := `{"quiz_id": "x", "responses": {"not-a-number": {"single": "a"}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadAnswers(path)
	require.Error(t, err)
}
