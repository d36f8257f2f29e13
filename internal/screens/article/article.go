package article

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
	"soliddojo/internal/screens/quizrun"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
	"soliddojo/internal/ui/layout"
	"soliddojo/internal/ui/theme"
)

// ArticleScreen renders one article with line-based scrolling. The article's
// embedded quizzes start with the "s" key.
type ArticleScreen struct {
	article    catalog.Article
	tree       *state.Tree
	events     store.EventRepo
	cfg        quiz.RunConfig
	explainSvc *explain.Service

	offset int
}

var _ screen.Screen = (*ArticleScreen)(nil)
var _ screen.KeyHintProvider = (*ArticleScreen)(nil)

// New creates an article reader.
func New(a catalog.Article, tree *state.Tree, events store.EventRepo, cfg quiz.RunConfig, explainSvc *explain.Service) *ArticleScreen {
	return &ArticleScreen{
		article:    a,
		tree:       tree,
		events:     events,
		cfg:        cfg,
		explainSvc: explainSvc,
	}
}

func (a *ArticleScreen) Init() tea.Cmd {
	return nil
}

func (a *ArticleScreen) Title() string {
	return a.article.Title
}

func (a *ArticleScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if len(a.article.QuizNames) > 0 {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Start quizzes"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (a *ArticleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.offset > 0 {
			a.offset--
		}
	case "down", "j":
		a.offset++
	case "g":
		a.offset = 0
	case "s":
		if len(a.article.QuizNames) == 0 {
			return a, nil
		}
		rs := quiz.NewRunOver(a.article.Slug, a.quizzes(), a.tree, a.events)
		rs.Configure(a.cfg)
		return a, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quizrun.FromRun(rs, a.explainSvc),
			}
		}
	}

	return a, nil
}

// quizzes resolves the article's quiz names against the catalog. Unknown
// names are skipped; catalog validation rejects them at build time, so a
// miss here means a stale reference and not a user error.
func (a *ArticleScreen) quizzes() []catalog.QuizDefinition {
	defs := make([]catalog.QuizDefinition, 0, len(a.article.QuizNames))
	for _, name := range a.article.QuizNames {
		def, err := catalog.Get(name)
		if err != nil {
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

func (a *ArticleScreen) View(width, height int) string {
	textWidth := min(width-8, 72)
	wrap := lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text)

	var lines []string

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(a.article.Title)
	principle := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(catalog.PrincipleDisplayName(a.article.Principle))
	lines = append(lines, title, principle, "")

	for _, para := range strings.Split(a.article.Body, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines = append(lines, strings.Split(wrap.Render(para), "\n")...)
		lines = append(lines, "")
	}

	if n := len(a.article.QuizNames); n > 0 {
		lines = append(lines, theme.Hint.Render(
			fmt.Sprintf("This article has %d quizzes. Press s to start.", n)))
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if a.offset > maxOffset {
		a.offset = maxOffset
	}

	end := a.offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for _, line := range lines[a.offset:end] {
		b.WriteString("    " + line + "\n")
	}

	if maxOffset > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("    — %d%% —", (a.offset*100)/maxOffset)))
	}

	return b.String()
}
