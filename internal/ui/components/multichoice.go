package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"soliddojo/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. When MultiSelect is set, space
// toggles options and enter submits the chosen set; otherwise enter submits
// the highlighted option directly.
type MultiChoice struct {
	Question    string
	Options     []string
	Correct     map[int]bool
	MultiSelect bool

	Cursor    int
	Chosen    map[int]bool
	Submitted bool
}

// NewMultiChoice creates a selector with the given answer-key indices.
func NewMultiChoice(question string, options []string, correct []int, multiSelect bool) MultiChoice {
	correctSet := make(map[int]bool, len(correct))
	for _, i := range correct {
		correctSet[i] = true
	}
	return MultiChoice{
		Question:    question,
		Options:     options,
		Correct:     correctSet,
		MultiSelect: multiSelect,
		Chosen:      make(map[int]bool),
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation, toggling, and submission.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case " ", "space":
		if m.MultiSelect {
			m.Chosen[m.Cursor] = !m.Chosen[m.Cursor]
		}
	case "enter":
		if !m.MultiSelect {
			m.Chosen = map[int]bool{m.Cursor: true}
			m.Submitted = true
		} else if len(m.selectedIndices()) > 0 {
			m.Submitted = true
		}
	}

	return m, nil
}

// View renders the selector.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == m.Cursor && !m.Submitted {
			prefix = "▸ "
		}

		marker := ""
		if m.MultiSelect {
			if m.Chosen[i] {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%s)  %s", prefix, marker, label, opt)

		switch {
		case m.Submitted && m.Correct[i]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Submitted && m.Chosen[i]:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if m.MultiSelect && !m.Submitted {
		s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("space to toggle, enter to submit")
	}

	return s
}

// SelectedLabels returns the chosen option labels ("A", "B", ...).
func (m MultiChoice) SelectedLabels() []string {
	var labels []string
	for _, i := range m.selectedIndices() {
		labels = append(labels, string(rune('A'+i)))
	}
	return labels
}

// IsCorrect reports whether the chosen set exactly matches the answer key.
func (m MultiChoice) IsCorrect() bool {
	if !m.Submitted {
		return false
	}
	if len(m.Chosen) == 0 {
		return false
	}
	chosen := 0
	for i, on := range m.Chosen {
		if !on {
			continue
		}
		chosen++
		if !m.Correct[i] {
			return false
		}
	}
	return chosen == len(m.Correct)
}

func (m MultiChoice) selectedIndices() []int {
	var out []int
	for i := range m.Options {
		if m.Chosen[i] {
			out = append(out, i)
		}
	}
	return out
}
