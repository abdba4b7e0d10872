package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnify/internal/quizgen"
	"github.com/abhisek/learnify/internal/router"
	"github.com/abhisek/learnify/internal/screen"
	"github.com/abhisek/learnify/internal/screens/setup"
	"github.com/abhisek/learnify/internal/ui/components"
	"github.com/abhisek/learnify/internal/ui/layout"
	"github.com/abhisek/learnify/internal/ui/theme"
)

const bannerArt = `  ╭──────────────────────────╮
  │   ┌────┐                 │
  │   │ ?! │   L E A R N     │
  │   └────┘   I F Y         │
  │  ═══════════════════     │
  ╰──────────────────────────╯`

// WelcomeScreen shows the banner and the entry menu.
type WelcomeScreen struct {
	cfg          quizgen.Config
	menu         components.Menu
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen. The config is threaded through to the
// setup screen where generation happens.
func New(cfg quizgen.Config) *WelcomeScreen {
	return &WelcomeScreen{
		cfg: cfg,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Start a quiz", Hint: "pick a document and go"},
			{Label: "Quit"},
		}),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		switch w.menu.Selected {
		case 0:
			return w, w.transition()
		case 1:
			return w, tea.Quit
		}
	}

	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := setup.New(w.cfg)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	banner := lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerArt)
	sections = append(sections, banner)
	sections = append(sections, "")

	sections = append(sections, theme.Title.Render("Learnify Quiz Generator"))
	sections = append(sections, theme.Subtitle.Render("Turn any document into a practice quiz"))
	sections = append(sections, "")
	sections = append(sections, w.menu.View())

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
