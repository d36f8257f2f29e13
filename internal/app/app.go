package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"soliddojo/internal/catalog"
	"soliddojo/internal/explain"
	"soliddojo/internal/quiz"
	"soliddojo/internal/router"
	"soliddojo/internal/screen"
	"soliddojo/internal/screens/home"
	"soliddojo/internal/screens/welcome"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
	"soliddojo/internal/ui/layout"
)

// Options carries the dependencies the TUI runs with. ExplainSvc may be
// nil when no LLM provider is configured; quiz feedback then shows only
// the static catalog explanations.
type Options struct {
	Tree       *state.Tree
	Events     store.EventRepo
	RunConfig  quiz.RunConfig
	ExplainSvc *explain.Service
	Report     state.Report
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	tree   *state.Tree
	total  int
	width  int
	height int
}

// newAppModel builds the root model starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Tree, opts.Events, opts.RunConfig, opts.ExplainSvc)
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory, opts.Report)),
		tree:   opts.Tree,
		total:  len(catalog.Names()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// passed counts quizzes with at least one correct attempt, for the header.
func (m AppModel) passed() int {
	n := 0
	for _, name := range m.tree.Names() {
		if inst := m.tree.GetByName(name); inst != nil && inst.Passed() {
			n++
		}
	}
	return n
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.passed(), m.total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
