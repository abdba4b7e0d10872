package setup

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnify/internal/document"
	"github.com/abhisek/learnify/internal/quizgen"
	"github.com/abhisek/learnify/internal/router"
	"github.com/abhisek/learnify/internal/screen"
	"github.com/abhisek/learnify/internal/screens/quiz"
	"github.com/abhisek/learnify/internal/session"
	"github.com/abhisek/learnify/internal/ui/components"
	"github.com/abhisek/learnify/internal/ui/layout"
	"github.com/abhisek/learnify/internal/ui/theme"
)

const (
	defaultCount   = 5
	maxCount       = 20
	defaultMinutes = 5
	maxMinutes     = 60
)

// form fields, asked in order
const (
	fieldName = iota
	fieldPath
	fieldCount
	fieldKind
	fieldLimit
	fieldGenerating
)

var kindOptions = []string{
	"Multiple choice",
	"True / False",
	"Mixed",
}

var kindValues = []quizgen.QuizKind{
	quizgen.QuizMCQ,
	quizgen.QuizTrueFalse,
	quizgen.QuizMixed,
}

// quizReadyMsg carries the generated question set back to the UI loop.
type quizReadyMsg struct {
	Questions []quizgen.Question
	Err       error
}

// SetupScreen collects the quiz parameters one field at a time, then runs
// generation and hands off to the quiz screen.
type SetupScreen struct {
	cfg quizgen.Config

	field  int
	input  components.TextInput
	kinds  components.ChoiceList
	errMsg string

	learner string
	docText string
	docPath string
	count   int
	kind    quizgen.QuizKind
	minutes int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.StepProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(cfg quizgen.Config) *SetupScreen {
	return &SetupScreen{
		cfg:   cfg,
		input: components.NewTextInput("Your name", false, 40),
		kinds: components.NewChoiceList(kindOptions, false),
		count: defaultCount,
		kind:  quizgen.QuizMCQ,
	}
}

func (s *SetupScreen) Title() string {
	return "Quiz Setup"
}

func (s *SetupScreen) Step() (int, int) {
	return 1, 3
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.field == fieldKind {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.handleSubmit()
		}
	}

	if s.field == fieldKind {
		var cmd tea.Cmd
		s.kinds, cmd = s.kinds.Update(msg)
		return s, cmd
	}

	if s.field < fieldGenerating {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// handleSubmit validates the current field and advances the form.
func (s *SetupScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	switch s.field {
	case fieldName:
		name := strings.TrimSpace(s.input.Value())
		if name == "" {
			s.errMsg = "Please enter your name."
			return s, nil
		}
		s.learner = name
		s.nextField("Path to document (.txt, .md)")

	case fieldPath:
		path := strings.TrimSpace(s.input.Value())
		text, err := document.Load(path)
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.docText = text
		s.docPath = path
		s.nextField(fmt.Sprintf("Number of questions (1-%d, default %d)", maxCount, defaultCount))

	case fieldCount:
		raw := strings.TrimSpace(s.input.Value())
		if raw != "" {
			n, err := s.input.NumericValue()
			if err != nil || n < 1 || n > maxCount {
				s.errMsg = fmt.Sprintf("Enter a number between 1 and %d.", maxCount)
				return s, nil
			}
			s.count = n
		}
		s.errMsg = ""
		s.field = fieldKind

	case fieldKind:
		s.kind = kindValues[s.kinds.Cursor]
		s.errMsg = ""
		s.field = fieldLimit
		s.input = components.NewTextInput(
			fmt.Sprintf("Time limit in minutes (1-%d, default %d)", maxMinutes, defaultMinutes),
			true, 3)
		return s, s.input.Init()

	case fieldLimit:
		minutes := defaultMinutes
		raw := strings.TrimSpace(s.input.Value())
		if raw != "" {
			n, err := s.input.NumericValue()
			if err != nil || n < 1 || n > maxMinutes {
				s.errMsg = fmt.Sprintf("Enter a number between 1 and %d.", maxMinutes)
				return s, nil
			}
			minutes = n
		}
		s.minutes = minutes
		s.errMsg = ""
		s.field = fieldGenerating
		return s, s.generate()
	}

	return s, nil
}

func (s *SetupScreen) nextField(placeholder string) {
	s.errMsg = ""
	s.field++
	numeric := s.field == fieldCount
	s.input = components.NewTextInput(placeholder, numeric, 120)
}

// generate runs question synthesis off the UI loop.
func (s *SetupScreen) generate() tea.Cmd {
	gen := quizgen.New(s.cfg)
	input := quizgen.GenerateInput{
		Text:  s.docText,
		Count: s.count,
		Kind:  s.kind,
	}
	return func() tea.Msg {
		qs, err := gen.Generate(context.Background(), input)
		return quizReadyMsg{Questions: qs, Err: err}
	}
}

func (s *SetupScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.field = fieldPath
		s.input = components.NewTextInput("Path to document (.txt, .md)", false, 120)
		return s, s.input.Init()
	}

	limit := time.Duration(s.minutes) * time.Minute
	attempt := session.NewAttempt(s.learner, msg.Questions, limit)
	cfg := s.cfg
	next := quiz.New(attempt, func() screen.Screen { return New(cfg) })
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Set up your quiz"))
	b.WriteString("\n\n")

	done := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(label + ": "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(value))
		b.WriteString("\n")
	}

	if s.field > fieldName {
		done("Name", s.learner)
	}
	if s.field > fieldPath {
		done("Document", s.docPath)
	}
	if s.field > fieldCount {
		done("Questions", fmt.Sprintf("%d", s.count))
	}
	if s.field > fieldKind {
		done("Type", kindLabel(s.kind))
	}
	if s.field > fieldLimit {
		done("Time limit", fmt.Sprintf("%d min", s.minutes))
	}
	b.WriteString("\n")

	switch s.field {
	case fieldName:
		b.WriteString(promptLine("What's your name?"))
		b.WriteString("  " + s.input.View() + "\n")
	case fieldPath:
		b.WriteString(promptLine("Which document should the quiz cover?"))
		b.WriteString("  " + s.input.View() + "\n")
	case fieldCount:
		b.WriteString(promptLine("How many questions?"))
		b.WriteString("  " + s.input.View() + "\n")
	case fieldKind:
		b.WriteString(promptLine("What type of questions?"))
		b.WriteString(s.kinds.View())
	case fieldLimit:
		b.WriteString(promptLine("Time limit?"))
		b.WriteString("  " + s.input.View() + "\n")
	case fieldGenerating:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("\nReading your document and writing questions..."))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func promptLine(text string) string {
	return "  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(text) + "\n\n"
}

func kindLabel(k quizgen.QuizKind) string {
	for i, v := range kindValues {
		if v == k {
			return kindOptions[i]
		}
	}
	return string(k)
}
