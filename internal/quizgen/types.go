package quizgen

// QuestionKind discriminates how a question's answer key and submitted
// responses are interpreted. It replaces any "multiple allowed" boolean:
// a question is exactly one of these, and its AnswerKey shape must match.
type QuestionKind string

const (
	// KindSingleChoice means exactly one option is correct and the learner
	// picks one.
	KindSingleChoice QuestionKind = "multiple-choice-single"

	// KindMultiChoice means two or more options are correct and the learner
	// picks an independent subset.
	KindMultiChoice QuestionKind = "multiple-choice-multi"

	// KindTrueFalse means Options is exactly ["True", "False"].
	KindTrueFalse QuestionKind = "true-false"
)

// CognitiveLevel records which synthesizer produced a question.
// Used for balancing the set and for analytics in the report.
type CognitiveLevel string

const (
	LevelComprehension CognitiveLevel = "comprehension"
	LevelApplication   CognitiveLevel = "application"
	LevelAnalysis      CognitiveLevel = "analysis"
	LevelRecall        CognitiveLevel = "recall" // conceptual fallback questions
)

// AnswerKey is the tagged union holding a question's correct answer(s).
// Exactly one field is populated, chosen by the owning question's Kind:
// Single for KindSingleChoice and KindTrueFalse, Multi for KindMultiChoice.
type AnswerKey struct {
	Single string   `json:"single,omitempty"`
	Multi  []string `json:"multi,omitempty"`
}

// Question is the atomic testable unit produced by the generator.
type Question struct {
	// ID is sequence-unique, assigned contiguously from 1 at final
	// assembly. Generators run independently and never assign IDs.
	ID int `json:"id"`

	// Prompt is the question text. Cloze-style items contain the blank
	// marker "_____" where the answer was removed.
	Prompt string `json:"prompt"`

	// Options is the ordered list of presented choices. Unique, and a
	// superset of the answer key. True/false questions carry exactly
	// ["True", "False"].
	Options []string `json:"options"`

	// Answer holds the correct answer(s), shaped per Kind.
	Answer AnswerKey `json:"answer"`

	Kind  QuestionKind   `json:"kind"`
	Level CognitiveLevel `json:"level"`

	// Source is the sentence the question was synthesized from. Empty for
	// conceptual fallback questions. Not exported to quiz files; kept so
	// tests can assert the used-sentence exclusivity contract.
	Source string `json:"-"`
}

// Response is a learner's submitted answer for one question, shaped by the
// question's Kind the same way AnswerKey is. An empty Multi slice on a
// multi-choice question is a real submission ("none of these"), distinct
// from the question being absent from the ResponseMap.
type Response struct {
	Single string   `json:"single,omitempty"`
	Multi  []string `json:"multi,omitempty"`
}

// ResponseMap maps Question.ID to the submitted response. Unanswered
// questions are simply absent.
type ResponseMap map[int]Response

// QuizKind selects which mix of question types a generation request
// produces.
type QuizKind string

const (
	// QuizMCQ produces single-choice questions balanced across
	// comprehension, application, and analysis levels.
	QuizMCQ QuizKind = "mcq"

	// QuizTrueFalse produces true/false questions only.
	QuizTrueFalse QuizKind = "truefalse"

	// QuizMixed produces a blend: balanced single-choice plus true/false
	// and multi-select slots.
	QuizMixed QuizKind = "mixed"
)

// ParseQuizKind maps a user-supplied string to a QuizKind.
func ParseQuizKind(s string) (QuizKind, bool) {
	switch QuizKind(s) {
	case QuizMCQ, QuizTrueFalse, QuizMixed:
		return QuizKind(s), true
	}
	return "", false
}

// GenerateInput holds everything needed for one generation request.
type GenerateInput struct {
	// Text is the already-extracted document text. May be empty or
	// degenerate; that degrades the result, it never errors.
	Text string

	// Count is the requested number of questions (>= 1). The generator
	// may return fewer when the document cannot support Count questions.
	Count int

	// Kind selects the question mix.
	Kind QuizKind
}

// KeyPhrase is a ranked term or short phrase (at most four words) extracted
// from the document. Ephemeral: consumed during generation, never persisted.
type KeyPhrase struct {
	Text  string  // as first encountered in the document
	Score float64 // composite frequency/boost score
	Count int     // raw occurrence count
}

// candidate is a segmented sentence with ranking metadata. Sentences are a
// single-use resource: once a synthesizer builds a question from one, it is
// claimed in the shared used-set and no later synthesizer may reuse it.
type candidate struct {
	text  string
	score float64
	para  int // paragraph index in the document
	pos   int // sentence index within its paragraph
}
