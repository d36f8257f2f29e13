package quizrun

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"soliddojo/internal/catalog"
	"soliddojo/internal/explain"
	"soliddojo/internal/quiz"
	"soliddojo/internal/router"
	"soliddojo/internal/screen"
	"soliddojo/internal/screens/summary"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
	"soliddojo/internal/ui/components"
	"soliddojo/internal/ui/layout"
	"soliddojo/internal/ui/theme"
)

const explainPollInterval = 150 * time.Millisecond

type explainTickMsg time.Time

// RunScreen drives an active quiz run: question, feedback, next.
type RunScreen struct {
	rs         *quiz.RunState
	choice     components.MultiChoice
	explainSvc *explain.Service

	deepDive       *explain.Explanation
	waitingExplain bool
}

var _ screen.Screen = (*RunScreen)(nil)
var _ screen.KeyHintProvider = (*RunScreen)(nil)

// NewRunScreen starts a run over the given scope.
func NewRunScreen(scope string, tree *state.Tree, events store.EventRepo, cfg quiz.RunConfig, explainSvc *explain.Service) *RunScreen {
	rs := quiz.NewRun(scope, tree, events)
	rs.Configure(cfg)
	return FromRun(rs, explainSvc)
}

// FromRun wraps an already-started run, e.g. one over an article's
// embedded quizzes.
func FromRun(rs *quiz.RunState, explainSvc *explain.Service) *RunScreen {
	r := &RunScreen{
		rs:         rs,
		explainSvc: explainSvc,
	}
	if def := rs.Current(); def != nil {
		r.choice = newChoice(*def)
	}
	return r
}

func newChoice(def catalog.QuizDefinition) components.MultiChoice {
	return components.NewMultiChoice(
		def.Prompt,
		def.Options,
		quiz.CorrectIndices(def),
		def.MultiSelect(),
	)
}

func (r *RunScreen) Init() tea.Cmd {
	return nil
}

func (r *RunScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainTickMsg:
		if !r.waitingExplain {
			return r, nil
		}
		if r.explainSvc.Err() != nil {
			r.explainSvc.Consume()
			r.waitingExplain = false
			return r, nil
		}
		if exp, ok := r.explainSvc.Consume(); ok {
			r.deepDive = exp
			r.waitingExplain = false
			return r, nil
		}
		return r, explainTick()

	case tea.KeyMsg:
		switch r.rs.Phase {
		case quiz.PhaseActive:
			return r.updateActive(msg)
		case quiz.PhaseFeedback:
			return r.updateFeedback(msg)
		}
	}

	return r, nil
}

func (r *RunScreen) updateActive(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "q" || r.rs.Current() == nil {
		return r.endRun()
	}

	var cmd tea.Cmd
	r.choice, cmd = r.choice.Update(msg)
	if !r.choice.Submitted {
		return r, cmd
	}

	def := r.rs.Current()
	selected := r.choice.SelectedLabels()
	correct := r.rs.HandleAnswer(selected)

	r.deepDive = nil
	if r.explainSvc != nil && def != nil {
		r.waitingExplain = true
		r.explainSvc.Request(context.Background(), explain.Input{
			Quiz:     *def,
			Selected: selected,
			Correct:  correct,
		})
		return r, explainTick()
	}
	return r, cmd
}

func (r *RunScreen) updateFeedback(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "q":
		return r.endRun()
	case "enter":
		r.rs.Advance()
		if r.rs.Phase == quiz.PhaseSummary {
			return r.toSummary()
		}
		r.choice = newChoice(*r.rs.Current())
		r.deepDive = nil
		r.waitingExplain = false
		return r, nil
	}
	return r, nil
}

func (r *RunScreen) endRun() (screen.Screen, tea.Cmd) {
	r.rs.Abort()
	return r.toSummary()
}

func (r *RunScreen) toSummary() (screen.Screen, tea.Cmd) {
	sum := quiz.BuildSummary(r.rs)
	return r, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func explainTick() tea.Cmd {
	return tea.Tick(explainPollInterval, func(t time.Time) tea.Msg {
		return explainTickMsg(t)
	})
}

func (r *RunScreen) View(width, height int) string {
	def := r.rs.Current()
	if def == nil {
		return ""
	}

	var sections []string

	position := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %s · quiz %d of %d",
			catalog.PrincipleDisplayName(def.Principle),
			r.rs.Index+1, len(r.rs.Quizzes)))
	sections = append(sections, position)
	sections = append(sections, "")
	sections = append(sections, r.choice.View())

	if r.rs.Phase == quiz.PhaseFeedback {
		sections = append(sections, r.renderFeedback(*def, width))
	}

	return strings.Join(sections, "\n")
}

func (r *RunScreen) renderFeedback(def catalog.QuizDefinition, width int) string {
	var b strings.Builder

	if r.rs.LastCorrect {
		b.WriteString(theme.Correct.Render("  ✓ Correct"))
	} else {
		b.WriteString(theme.Incorrect.Render("  ✗ Incorrect"))
	}
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(width - 4).Foreground(theme.Text)
	b.WriteString(wrap.Render("  " + def.Explanation))
	b.WriteString("\n")

	switch {
	case r.waitingExplain:
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  thinking about a deeper explanation..."))
	case r.deepDive != nil:
		b.WriteString("\n" + r.renderDeepDive(width))
	}

	return b.String()
}

func (r *RunScreen) renderDeepDive(width int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(width - 4).Foreground(theme.Text)

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Deep dive"))
	b.WriteString("\n")
	b.WriteString(wrap.Render("  " + r.deepDive.Why))
	if r.deepDive.Misconception != "" {
		b.WriteString("\n\n")
		b.WriteString(wrap.Render("  " + r.deepDive.Misconception))
	}
	if r.deepDive.GoExample != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(indent(r.deepDive.GoExample, "    ")))
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (r *RunScreen) Title() string {
	return "Quiz Run"
}

func (r *RunScreen) KeyHints() []layout.KeyHint {
	if r.rs.Phase == quiz.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Q", Description: "End run"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Q", Description: "End run"},
	}
	return hints
}
