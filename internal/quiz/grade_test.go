package quiz

import (
	"testing"

	"soliddojo/internal/catalog"
)

func singleDef() catalog.QuizDefinition {
	return catalog.QuizDefinition{
		Name:    "test-single",
		Options: []string{"Alpha", "Bravo", "Charlie", "Delta"},
		Meta:    catalog.QuizMeta{CorrectAnswers: []string{"Bravo"}},
	}
}

func multiDef() catalog.QuizDefinition {
	return catalog.QuizDefinition{
		Name:    "test-multi",
		Options: []string{"Alpha", "Bravo", "Charlie", "Delta"},
		Meta:    catalog.QuizMeta{CorrectAnswers: []string{"Alpha", "Charlie"}},
	}
}

func TestGradeSingle(t *testing.T) {
	def := singleDef()

	tests := []struct {
		name     string
		selected []string
		want     bool
	}{
		{"by label", []string{"B"}, true},
		{"by lowercase label", []string{"b"}, true},
		{"by text", []string{"Bravo"}, true},
		{"by text case-insensitive", []string{"bravo"}, true},
		{"by text with whitespace", []string{"  Bravo  "}, true},
		{"wrong label", []string{"A"}, false},
		{"wrong text", []string{"Alpha"}, false},
		{"empty selection", nil, false},
		{"unknown option", []string{"Echo"}, false},
		{"label out of range", []string{"Z"}, false},
		{"extra selection", []string{"B", "C"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(tt.selected, def); got != tt.want {
				t.Errorf("Grade(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestGradeMultiSelect(t *testing.T) {
	def := multiDef()

	tests := []struct {
		name     string
		selected []string
		want     bool
	}{
		{"both by label", []string{"A", "C"}, true},
		{"order does not matter", []string{"C", "A"}, true},
		{"mixed label and text", []string{"A", "charlie"}, true},
		{"duplicates count once", []string{"A", "A", "C"}, true},
		{"partial selection", []string{"A"}, false},
		{"superset selection", []string{"A", "B", "C"}, false},
		{"same size wrong set", []string{"A", "B"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(tt.selected, def); got != tt.want {
				t.Errorf("Grade(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestGradeDuplicateSelectionEqualsKeySize(t *testing.T) {
	// Two selections that collapse to one option must not pass a
	// two-answer key.
	def := multiDef()
	if Grade([]string{"A", "Alpha"}, def) {
		t.Error("duplicate option via label and text should not satisfy a two-answer key")
	}
}

func TestOptionLabel(t *testing.T) {
	if OptionLabel(0) != "A" || OptionLabel(3) != "D" {
		t.Errorf("labels = %s..%s, want A..D", OptionLabel(0), OptionLabel(3))
	}
}
