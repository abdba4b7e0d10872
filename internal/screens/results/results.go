package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnify/internal/report"
	"github.com/abhisek/learnify/internal/router"
	"github.com/abhisek/learnify/internal/screen"
	"github.com/abhisek/learnify/internal/scoring"
	"github.com/abhisek/learnify/internal/session"
	"github.com/abhisek/learnify/internal/ui/layout"
	"github.com/abhisek/learnify/internal/ui/theme"
)

// reportWrittenMsg confirms the report file landed on disk (or not).
type reportWrittenMsg struct {
	Path string
	Err  error
}

// ResultsScreen shows the graded attempt and offers a written report.
type ResultsScreen struct {
	attempt *session.Attempt
	restart func() screen.Screen
	summary scoring.Summary

	scroll     int
	reportPath string
	reportErr  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StepProvider = (*ResultsScreen)(nil)

// New grades the attempt and creates the results screen. restart builds
// a fresh setup screen for the "new quiz" action.
func New(attempt *session.Attempt, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		attempt: attempt,
		restart: restart,
		summary: attempt.Grade(),
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Step() (int, int) {
	return 3, 3
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "W", Description: "Write report"},
		{Key: "R", Description: "New quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportWrittenMsg:
		if msg.Err != nil {
			s.reportErr = msg.Err.Error()
		} else {
			s.reportPath = msg.Path
			s.reportErr = ""
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			if s.scroll < len(s.attempt.Questions)-1 {
				s.scroll++
			}
		case "w", "W":
			return s, s.writeReport()
		case "r", "R":
			next := s.restart()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		case "q", "esc":
			return s, tea.Quit
		}
	}

	return s, nil
}

// writeReport saves the plain-text report next to the working directory.
func (s *ResultsScreen) writeReport() tea.Cmd {
	in := report.Input{
		Learner:   s.attempt.Learner,
		AttemptID: s.attempt.ID,
		Date:      time.Now(),
		Questions: s.attempt.Questions,
		Responses: s.attempt.Responses,
		Summary:   s.summary,
		Duration:  s.attempt.Duration(),
	}
	path := fmt.Sprintf("learnify-results-%s.txt", time.Now().Format("20060102-150405"))
	return func() tea.Msg {
		err := report.Write(path, in)
		return reportWrittenMsg{Path: path, Err: err}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(scoreHeadline(s.summary.Score)))
	b.WriteString("\n")

	scoreLine := fmt.Sprintf("%s scored %d%%  (%d of %d correct)",
		s.attempt.Learner, s.summary.Score, s.summary.Correct, s.summary.Total)
	b.WriteString(theme.Subtitle.Width(width).Render(scoreLine))
	b.WriteString("\n\n")

	// Question breakdown, scrolled so the highlighted row stays visible.
	visible := (height - 8) / 3
	if visible < 1 {
		visible = 1
	}
	start := s.scroll
	if start > len(s.attempt.Questions)-visible {
		start = len(s.attempt.Questions) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(s.attempt.Questions) {
		end = len(s.attempt.Questions)
	}

	for i := start; i < end; i++ {
		q := s.attempt.Questions[i]

		verdict := theme.Incorrect.Render("✗")
		if i < len(s.summary.Results) && s.summary.Results[i].Correct {
			verdict = theme.Correct.Render("✓")
		}

		promptStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.scroll {
			promptStyle = promptStyle.Bold(true)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", verdict, promptStyle.Render(truncate(q.Prompt, width-8))))

		your := "Not answered"
		if r, ok := s.attempt.Responses[q.ID]; ok {
			your = scoring.FormatAnswer(r.Single, r.Multi)
		}
		correct := scoring.FormatAnswer(q.Answer.Single, q.Answer.Multi)
		detail := fmt.Sprintf("    You: %s   Correct: %s", truncate(your, width/2-10), truncate(correct, width/2-10))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString("\n\n")
	}

	if s.reportPath != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  Report saved: " + s.reportPath))
		b.WriteString("\n")
	}
	if s.reportErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  Could not save report: " + s.reportErr))
		b.WriteString("\n")
	}

	return b.String()
}

func scoreHeadline(score int) string {
	switch {
	case score >= 90:
		return "Outstanding!"
	case score >= 70:
		return "Nice work!"
	case score >= 50:
		return "Getting there"
	default:
		return "Keep studying"
	}
}

func truncate(s string, limit int) string {
	if limit < 4 {
		limit = 4
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
