package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"soliddojo/internal/catalog"
	"soliddojo/internal/screen"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
	"soliddojo/internal/ui/components"
	"soliddojo/internal/ui/layout"
	"soliddojo/internal/ui/theme"
)

// principleProgress holds the computed progress for one principle row.
type principleProgress struct {
	Principle catalog.Principle
	Passed    int
	Total     int
	Attempts  int
	Correct   int
}

// ProgressScreen shows per-principle mastery bars plus all-time attempt
// totals from the event history.
type ProgressScreen struct {
	rows     []principleProgress
	passed   int
	total    int
	statsErr error
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New computes the progress rows from the current tree and attempt history.
// Event history failures degrade to tree-only rows.
func New(tree *state.Tree, events store.EventRepo) *ProgressScreen {
	var stats []store.QuizStats
	var statsErr error
	if events != nil {
		stats, statsErr = events.AttemptStats(context.Background())
	}

	byQuiz := make(map[string]store.QuizStats, len(stats))
	for _, s := range stats {
		byQuiz[s.QuizName] = s
	}

	p := &ProgressScreen{statsErr: statsErr}
	for _, principle := range catalog.AllPrinciples() {
		row := principleProgress{Principle: principle}
		for _, def := range catalog.ByPrinciple(principle) {
			row.Total++
			if inst := tree.GetByName(def.Name); inst != nil && inst.Passed() {
				row.Passed++
			}
			if s, ok := byQuiz[def.Name]; ok {
				row.Attempts += s.Attempts
				row.Correct += s.Correct
			}
		}
		p.rows = append(p.rows, row)
		p.passed += row.Passed
		p.total += row.Total
	}
	return p
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	var b strings.Builder

	overall := 0.0
	if p.total > 0 {
		overall = float64(p.passed) / float64(p.total)
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Overall: %d of %d quizzes passed", p.passed, p.total)))
	b.WriteString("\n  ")
	b.WriteString(components.NewProgressBar("", overall, true, min(width-8, 50)).View())
	b.WriteString("\n\n")

	barWidth := min(width-8, 50)
	for _, row := range p.rows {
		pct := 0.0
		if row.Total > 0 {
			pct = float64(row.Passed) / float64(row.Total)
		}

		name := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(catalog.PrincipleDisplayName(row.Principle))
		b.WriteString("  " + name)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d passed", row.Passed, row.Total)))
		b.WriteString("\n  ")
		b.WriteString(components.NewProgressBar("", pct, true, barWidth).View())
		b.WriteString("\n")

		if row.Attempts > 0 {
			acc := float64(row.Correct) / float64(row.Attempts)
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("%d attempts, %.0f%% accuracy all-time", row.Attempts, acc*100)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if p.statsErr != nil {
		b.WriteString("  " + theme.Hint.Render("attempt history unavailable"))
		b.WriteString("\n")
	}

	return b.String()
}
