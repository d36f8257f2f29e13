package home

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"soliddojo/internal/catalog"
	"soliddojo/internal/quiz"
	"soliddojo/internal/state"
)

func TestHomeScreen_Title(t *testing.T) {
	h := New(state.NewTree(), nil, quiz.RunConfig{}, nil)
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_PassedCountTracksTree(t *testing.T) {
	tree := state.NewTree()
	for _, name := range catalog.Names() {
		tree.CreateQuiz(name)
	}
	h := New(tree, nil, quiz.RunConfig{}, nil)

	total := len(catalog.Names())
	view := h.View(80, 24)
	if !strings.Contains(view, fmt.Sprintf("0 of %d quizzes passed", total)) {
		t.Error("expected zero passed before any attempt")
	}

	// Progress made after the screen was built must show on re-render.
	inst := tree.GetByName(catalog.Names()[0])
	inst.RecordAttempt([]string{"A"}, true, time.Now())

	view = h.View(80, 24)
	if !strings.Contains(view, fmt.Sprintf("1 of %d quizzes passed", total)) {
		t.Error("expected passed count to refresh per render")
	}
}
