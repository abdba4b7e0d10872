package quiz

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnify/internal/quizgen"
	"github.com/abhisek/learnify/internal/ui/components"
	"github.com/abhisek/learnify/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	q := s.attempt.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Scoring your answers...")
	}

	var b strings.Builder

	// Info line: learner on the left, countdown on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.attempt.Learner))

	infoRight := renderTimer(s.attempt.Remaining)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("  Question", s.attempt.Index()+1, len(s.attempt.Questions), width-10)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(width - 4).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(prompt)
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())

	if q.Kind == quizgen.KindMultiChoice {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Space toggles an option; more than one may be correct."))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTimer formats the remaining time as m:ss, flipping to the warning
// style once under a minute remains.
func renderTimer(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	str := fmt.Sprintf("⏱ %d:%02d  ", mins, secs)

	if remaining < time.Minute {
		return theme.TimerLow.Render(str)
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(str)
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End the quiz early?") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Unanswered questions will count as incorrect.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render("[Y] Yes   [N] No"),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
