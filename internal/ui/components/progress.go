package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnify/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// "current/total" fraction.
type ProgressBar struct {
	Label        string
	Percent      float64
	ShowFraction bool
	Current      int
	Total        int
	Width        int
}

// NewProgressBar creates a progress bar showing current of total.
func NewProgressBar(label string, current, total, width int) ProgressBar {
	percent := 0.0
	if total > 0 {
		percent = float64(current) / float64(total)
	}
	return ProgressBar{
		Label:        label,
		Percent:      percent,
		ShowFraction: true,
		Current:      current,
		Total:        total,
		Width:        width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	suffixWidth := 0
	if p.ShowFraction {
		suffixWidth = len(fmt.Sprintf("  %d/%d", p.Current, p.Total))
	}

	barWidth := p.Width - labelWidth - suffixWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowFraction {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", p.Current, p.Total))
	}

	return result
}
