package quiz

import (
	"strings"

	"soliddojo/internal/catalog"
)

// Grade compares the learner's selected answers against a quiz's answer key.
// Returns true when the selection exactly matches the key as a set.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - Each selection may be an option label ("A".."D") or the full option text
// - Duplicate selections count once
func Grade(selected []string, def catalog.QuizDefinition) bool {
	if len(selected) == 0 {
		return false
	}

	want := make(map[int]bool, len(def.Meta.CorrectAnswers))
	for _, ans := range def.Meta.CorrectAnswers {
		idx, ok := optionIndex(ans, def.Options)
		if !ok {
			return false
		}
		want[idx] = true
	}

	got := make(map[int]bool, len(selected))
	for _, sel := range selected {
		idx, ok := resolveSelection(sel, def.Options)
		if !ok {
			return false
		}
		got[idx] = true
	}

	if len(got) != len(want) {
		return false
	}
	for idx := range got {
		if !want[idx] {
			return false
		}
	}
	return true
}

// resolveSelection maps a raw selection to the option index it names.
// A selection that is neither a valid label nor an option's text is rejected.
func resolveSelection(sel string, options []string) (int, bool) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return 0, false
	}

	// Single-letter label: A=first option, B=second, and so on.
	if len(sel) == 1 {
		idx := int(strings.ToUpper(sel)[0]) - 'A'
		if idx >= 0 && idx < len(options) {
			return idx, true
		}
	}

	return optionIndex(sel, options)
}

func optionIndex(text string, options []string) (int, bool) {
	text = strings.TrimSpace(text)
	for i, opt := range options {
		if strings.EqualFold(text, strings.TrimSpace(opt)) {
			return i, true
		}
	}
	return 0, false
}

// CorrectIndices returns the option indices of a quiz's answer key, in
// option order. Answers that don't match any option are skipped; the seed
// catalog is validated against that at init.
func CorrectIndices(def catalog.QuizDefinition) []int {
	var out []int
	for i, opt := range def.Options {
		for _, ans := range def.Meta.CorrectAnswers {
			if strings.EqualFold(strings.TrimSpace(ans), strings.TrimSpace(opt)) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// OptionLabel returns the display label for an option index: "A", "B", ...
func OptionLabel(i int) string {
	return string(rune('A' + i))
}
