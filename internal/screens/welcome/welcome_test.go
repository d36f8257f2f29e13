package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"soliddojo/internal/router"
	"soliddojo/internal/screen"
	"soliddojo/internal/state"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(report state.Report) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory, report), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestRevealsStatusAndPrompt(t *testing.T) {
	w, _ := newTestWelcome(state.Report{})

	view := w.View(80, 24)
	if strings.Contains(view, "press any key") {
		t.Error("continue prompt should not be visible at start")
	}

	// After 6 ticks (600ms) the startup status appears.
	sendTicks(w, 6)
	if w.elapsed != bannerEnd {
		t.Errorf("expected elapsed %v, got %v", bannerEnd, w.elapsed)
	}
	view = w.View(80, 24)
	if !strings.Contains(view, "Fresh start") {
		t.Error("startup status should be visible after the banner settles")
	}

	// After 18 ticks (1800ms) the continue prompt appears.
	sendTicks(w, 12)
	view = w.View(80, 24)
	if !strings.Contains(view, "press any key") {
		t.Error("continue prompt should be visible after the animation")
	}
}

func TestStatusReflectsRestoredProgress(t *testing.T) {
	w, _ := newTestWelcome(state.Report{SnapshotFound: true, Restored: 7, Pruned: 2})
	sendTicks(w, 6)

	view := w.View(80, 24)
	if !strings.Contains(view, "Restored progress for 7 quizzes.") {
		t.Error("expected restored count in status")
	}
	if !strings.Contains(view, "Dropped 2 retired entries.") {
		t.Error("expected pruned count in status")
	}
}

func TestKeypressDuringAnimationTransitions(t *testing.T) {
	w, callCount := newTestWelcome(state.Report{})
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, callCount := newTestWelcome(state.Report{})

	sendTicks(w, 40)
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome(state.Report{})

	sendTicks(w, 40)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(state.Report{})
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
