package quizrun

import (
	tea "charm.land/bubbletea/v2"

	"soliddojo/internal/catalog"
	"soliddojo/internal/explain"
	"soliddojo/internal/quiz"
	"soliddojo/internal/router"
	"soliddojo/internal/screen"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
	"soliddojo/internal/ui/components"
)

// ScopePicker lets the learner choose what a run covers: the whole catalog
// or a single principle.
type ScopePicker struct {
	menu components.Menu
}

var _ screen.Screen = (*ScopePicker)(nil)

// NewScopePicker builds the run scope menu.
func NewScopePicker(tree *state.Tree, events store.EventRepo, cfg quiz.RunConfig, explainSvc *explain.Service) *ScopePicker {
	startRun := func(scope string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: NewRunScreen(scope, tree, events, cfg, explainSvc),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "All principles", Action: startRun("all")},
	}
	for _, p := range catalog.AllPrinciples() {
		items = append(items, components.MenuItem{
			Label:  catalog.PrincipleDisplayName(p),
			Action: startRun(string(p)),
		})
	}

	return &ScopePicker{menu: components.NewMenu(items)}
}

func (s *ScopePicker) Init() tea.Cmd {
	return nil
}

func (s *ScopePicker) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ScopePicker) View(width, height int) string {
	return "\n  Choose a scope for this run:\n\n" + s.menu.View()
}

func (s *ScopePicker) Title() string {
	return "Quiz Run"
}
