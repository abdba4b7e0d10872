package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnify/internal/ui/theme"
)

// optionLabels letter the choices. Question sets never exceed six options.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceList presents a question's options. In single mode the cursor is
// the selection; in multi mode space toggles options independently and
// the chosen subset may legitimately be empty.
type ChoiceList struct {
	Options []string
	Multi   bool
	Cursor  int
	picked  map[int]bool
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string, multi bool) ChoiceList {
	return ChoiceList{
		Options: options,
		Multi:   multi,
		picked:  make(map[int]bool),
	}
}

// Update handles navigation and toggling. Submission is the parent
// screen's concern.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Multi {
			c.picked[c.Cursor] = !c.picked[c.Cursor]
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(c.Options) {
				c.Cursor = idx
				if c.Multi {
					c.picked[idx] = !c.picked[idx]
				}
			}
		}
	}

	return c, nil
}

// Selected returns the option under the cursor (single mode).
func (c ChoiceList) Selected() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// Picked returns the toggled options in display order (multi mode).
// Never nil: an empty selection is a valid submission.
func (c ChoiceList) Picked() []string {
	out := make([]string, 0, len(c.picked))
	for i, opt := range c.Options {
		if c.picked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// View renders the option list.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		cursor := "  "
		if i == c.Cursor {
			cursor = "> "
		}

		mark := ""
		if c.Multi {
			mark = "[ ] "
			if c.picked[i] {
				mark = "[x] "
			}
		}

		line := fmt.Sprintf("%s%s%s)  %s", cursor, mark, label, opt)

		style := theme.Unselected
		if i == c.Cursor {
			style = theme.Selected
		} else if c.Multi && c.picked[i] {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
