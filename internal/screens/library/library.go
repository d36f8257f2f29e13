package library

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
	"soliddojo/internal/screens/article"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
	"soliddojo/internal/ui/components"
	"soliddojo/internal/ui/layout"
	"soliddojo/internal/ui/theme"
)

// LibraryScreen lists the articles in reading order, with an optional
// title filter opened with "/".
type LibraryScreen struct {
	articles   []catalog.Article
	cursor     int
	tree       *state.Tree
	events     store.EventRepo
	cfg        quiz.RunConfig
	explainSvc *explain.Service

	filter    components.TextInput
	filtering bool
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library screen.
func New(tree *state.Tree, events store.EventRepo, cfg quiz.RunConfig, explainSvc *explain.Service) *LibraryScreen {
	return &LibraryScreen{
		articles:   catalog.Articles(),
		tree:       tree,
		events:     events,
		cfg:        cfg,
		explainSvc: explainSvc,
		filter:     components.NewTextInput("filter articles", 40),
	}
}

func (l *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (l *LibraryScreen) Title() string {
	return "Library"
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	if l.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "/", Description: "Filter"},
	}
}

// visible returns the articles matching the current filter, in reading order.
func (l *LibraryScreen) visible() []catalog.Article {
	query := strings.ToLower(strings.TrimSpace(l.filter.Value()))
	if query == "" {
		return l.articles
	}
	var out []catalog.Article
	for _, a := range l.articles {
		title := strings.ToLower(a.Title)
		principle := strings.ToLower(catalog.PrincipleDisplayName(a.Principle))
		if strings.Contains(title, query) || strings.Contains(principle, query) {
			out = append(out, a)
		}
	}
	return out
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.filtering {
		if kmsg.String() == "enter" {
			l.filtering = false
			return l, nil
		}
		var cmd tea.Cmd
		l.filter, cmd = l.filter.Update(msg)
		l.cursor = 0
		return l, cmd
	}

	visible := l.visible()

	switch kmsg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(visible)-1 {
			l.cursor++
		}
	case "/":
		l.filtering = true
		l.filter.Reset()
		l.cursor = 0
		return l, l.filter.Init()
	case "enter":
		if len(visible) == 0 {
			return l, nil
		}
		selected := visible[l.cursor]
		return l, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: article.New(selected, l.tree, l.events, l.cfg, l.explainSvc),
			}
		}
	}

	return l, nil
}

// quizStatus renders the pass state of an article's embedded quizzes,
// e.g. "2/3 passed".
func (l *LibraryScreen) quizStatus(a catalog.Article) string {
	if len(a.QuizNames) == 0 {
		return ""
	}
	passed := 0
	for _, name := range a.QuizNames {
		if inst := l.tree.GetByName(name); inst != nil && inst.Passed() {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d passed", passed, len(a.QuizNames))
}

func (l *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	if l.filtering || l.filter.Value() != "" {
		b.WriteString("  " + l.filter.View())
		b.WriteString("\n\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Pick an article. Each one ends with a short quiz set."))
		b.WriteString("\n\n")
	}

	visible := l.visible()
	if len(visible) == 0 {
		b.WriteString(theme.Hint.Render("  No articles match."))
		b.WriteString("\n")
		return b.String()
	}
	if l.cursor >= len(visible) {
		l.cursor = len(visible) - 1
	}

	var lastPrinciple catalog.Principle
	for i, a := range visible {
		if a.Principle != lastPrinciple {
			lastPrinciple = a.Principle
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + catalog.PrincipleDisplayName(a.Principle)))
			b.WriteString("\n")
		}

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == l.cursor {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(style.Render(prefix + a.Title))
		if status := l.quizStatus(a); status != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  · " + status))
		}
		b.WriteString("\n")

		if i == l.cursor && a.Summary != "" {
			wrap := lipgloss.NewStyle().
				Width(min(width-8, 68)).
				Foreground(theme.TextDim).
				Italic(true)
			b.WriteString(wrap.Render("      " + a.Summary))
			b.WriteString("\n")
		}
	}

	return b.String()
}
