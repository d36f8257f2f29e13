package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"soliddojo/internal/catalog"
	"soliddojo/internal/quiz"
)

func testSummary() *quiz.RunSummary {
	return &quiz.RunSummary{
		Scope:    "all",
		Duration: 9 * time.Minute,
		Answered: 12,
		Correct:  9,
		Accuracy: float64(9) / float64(12),
		PrincipleResults: []quiz.PrincipleResult{
			{Principle: catalog.PrincipleSRP, Answered: 4, Correct: 4},
			{Principle: catalog.PrincipleOCP, Answered: 4, Correct: 3},
			{Principle: catalog.PrincipleDIP, Answered: 4, Correct: 2},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Run Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Run Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Run complete!") {
		t.Error("expected completion headline in view")
	}
	if !strings.Contains(view, "Single Responsibility") {
		t.Error("expected per-principle breakdown in view")
	}
}

func TestSummaryScreen_AbortedRun(t *testing.T) {
	s := New(&quiz.RunSummary{Scope: "all"})
	view := s.View(80, 24)
	if !strings.Contains(view, "Run ended") {
		t.Error("expected aborted headline when nothing was answered")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
