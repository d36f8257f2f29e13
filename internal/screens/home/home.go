package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"soliddojo/internal/catalog"
	"soliddojo/internal/explain"
	"soliddojo/internal/quiz"
	"soliddojo/internal/router"
	"soliddojo/internal/screen"
	"soliddojo/internal/screens/library"
	"soliddojo/internal/screens/progress"
	"soliddojo/internal/screens/quizrun"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
	"soliddojo/internal/ui/components"
	"soliddojo/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	tree       *state.Tree
	total      int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. explainSvc may be nil when no LLM provider
// is configured; the quiz run degrades to static explanations.
func New(tree *state.Tree, events store.EventRepo, cfg quiz.RunConfig, explainSvc *explain.Service) *HomeScreen {
	menuLabels := []string{"QUIZ RUN", "LIBRARY", "PROGRESS", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Hint: "Answer quizzes for one principle or all five", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizrun.NewScopePicker(tree, events, cfg, explainSvc),
				}
			}
		}},
		{Label: menuLabels[1], Hint: "Read the articles behind each principle", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(tree, events, cfg, explainSvc)}
			}
		}},
		{Label: menuLabels[2], Hint: "Per-principle progress and attempt history", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(tree, events)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		tree:       tree,
		total:      len(catalog.Names()),
	}
}

// passed recounts on every render so the card stays in step with runs
// finished since the screen was created.
func (h *HomeScreen) passed() int {
	passed := 0
	for _, name := range h.tree.Names() {
		if inst := h.tree.GetByName(name); inst != nil && inst.Passed() {
			passed++
		}
	}
	return passed
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("SOLID DOJO")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("design principle practice for Go developers")
	sections = append(sections, components.Card(title+"\n"+subtitle, cw))

	stats := fmt.Sprintf("%d of %d quizzes passed", h.passed(), h.total)
	sections = append(sections, components.Card(
		lipgloss.NewStyle().Foreground(theme.Accent).Render(stats), cw))

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return components.Panel(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
