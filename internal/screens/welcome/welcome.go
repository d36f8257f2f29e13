package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"soliddojo/internal/router"
	"soliddojo/internal/screen"
	"soliddojo/internal/state"
	"soliddojo/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerEnd    = 600 * time.Millisecond
	totalDur     = 1800 * time.Millisecond
)

const banner = ` ███████  ██████  ██      ██ ██████
 ██      ██    ██ ██      ██ ██   ██
 ███████ ██    ██ ██      ██ ██   ██
      ██ ██    ██ ██      ██ ██   ██
 ███████  ██████  ███████ ██ ██████
              D O J O`

type tickMsg time.Time

// WelcomeScreen shows a short splash before transitioning to the home
// screen, including what startup restored from disk.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	report       state.Report
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory.
func New(homeFactory func() screen.Screen, report state.Report) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		report:      report,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(banner))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Practice the SOLID principles, one quiz at a time."))

	if w.elapsed >= bannerEnd {
		sections = append(sections, "")
		sections = append(sections, w.renderStatus())
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) renderStatus() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if !w.report.SnapshotFound {
		return dim.Render("Fresh start — no saved progress found.")
	}
	line := fmt.Sprintf("Restored progress for %d quizzes.", w.report.Restored)
	if w.report.Pruned > 0 {
		line += fmt.Sprintf(" Dropped %d retired entries.", w.report.Pruned)
	}
	return dim.Render(line)
}
