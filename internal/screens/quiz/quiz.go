package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnify/internal/quizgen"
	"github.com/abhisek/learnify/internal/router"
	"github.com/abhisek/learnify/internal/screen"
	"github.com/abhisek/learnify/internal/screens/results"
	"github.com/abhisek/learnify/internal/session"
	"github.com/abhisek/learnify/internal/ui/components"
	"github.com/abhisek/learnify/internal/ui/layout"
)

// QuizScreen runs the learner through the attempt one question at a time.
type QuizScreen struct {
	attempt *session.Attempt
	restart func() screen.Screen

	choices     components.ChoiceList
	quitConfirm bool
	done        bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StepProvider = (*QuizScreen)(nil)

// New creates the quiz screen over a freshly started attempt. restart
// builds a fresh setup screen; it is threaded to the results screen so
// the learner can run another quiz.
func New(attempt *session.Attempt, restart func() screen.Screen) *QuizScreen {
	s := &QuizScreen{attempt: attempt, restart: restart}
	s.loadChoices()
	return s
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Step() (int, int) {
	return 2, 3
}

func (s *QuizScreen) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if q := s.attempt.Current(); q != nil && q.Kind == quizgen.KindMultiChoice {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: "Submit"},
		layout.KeyHint{Key: "S", Description: "Skip"},
		layout.KeyHint{Key: "Esc", Description: "End quiz"},
	)
	return hints
}

// loadChoices rebuilds the option list for the current question.
func (s *QuizScreen) loadChoices() {
	q := s.attempt.Current()
	if q == nil {
		return
	}
	s.choices = components.NewChoiceList(q.Options, q.Kind == quizgen.KindMultiChoice)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case attemptDoneMsg:
		return s.handleDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}
	if s.attempt.Tick() {
		// Timer just expired; unanswered questions stay unanswered.
		return s, func() tea.Msg { return attemptDoneMsg{} }
	}
	if s.attempt.Finished() {
		return s, nil
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleDone() (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}
	s.done = true
	s.attempt.Finish()
	next := results.New(s.attempt, s.restart)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return attemptDoneMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc", "q":
		s.quitConfirm = true
		return s, nil

	case "enter":
		return s.submit()

	case "s", "S":
		s.attempt.Skip()
		return s.afterAdvance()
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// submit records the learner's selection for the current question.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.attempt.Current()
	if q == nil {
		return s.afterAdvance()
	}

	var r quizgen.Response
	if q.Kind == quizgen.KindMultiChoice {
		// An empty subset is still a deliberate submission.
		r = quizgen.Response{Multi: s.choices.Picked()}
	} else {
		r = quizgen.Response{Single: s.choices.Selected()}
	}
	s.attempt.Answer(r)
	return s.afterAdvance()
}

func (s *QuizScreen) afterAdvance() (screen.Screen, tea.Cmd) {
	if s.attempt.Finished() {
		return s, func() tea.Msg { return attemptDoneMsg{} }
	}
	s.loadChoices()
	return s, nil
}
