package quizrun

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"soliddojo/internal/catalog"
	"soliddojo/internal/quiz"
	"soliddojo/internal/router"
	"soliddojo/internal/screen"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attempts  []store.AttemptEventData
	runEvents []store.RunEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) AppendRunEvent(_ context.Context, data store.RunEventData) error {
	m.runEvents = append(m.runEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QuizAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) AttemptStats(_ context.Context) ([]store.QuizStats, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []store.SnapshotData
	pruned    int
}

func (m *mockSnapshotRepo) Save(_ context.Context, _ *store.Snapshot) error { return nil }
func (m *mockSnapshotRepo) SaveCurrent(_ context.Context, data store.SnapshotData) error {
	m.snapshots = append(m.snapshots, data)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) { return nil, nil }
func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	m.pruned = keep
	return nil
}
func (m *mockSnapshotRepo) DeleteAll(_ context.Context) (int, error) { return 0, nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDefs() []catalog.QuizDefinition {
	return []catalog.QuizDefinition{
		{
			Name:        "srp-test-one",
			Principle:   catalog.PrincipleSRP,
			Prompt:      "Which class violates SRP?",
			Options:     []string{"ReportPrinter", "ReportManager", "ReportFormatter"},
			Meta:        catalog.QuizMeta{CorrectAnswers: []string{"ReportManager"}},
			Explanation: "A manager class tends to collect unrelated reasons to change.",
		},
		{
			Name:        "srp-test-two",
			Principle:   catalog.PrincipleSRP,
			Prompt:      "What counts as a reason to change?",
			Options:     []string{"A new actor", "A new file", "A new test"},
			Meta:        catalog.QuizMeta{CorrectAnswers: []string{"A new actor"}},
			Explanation: "Responsibilities map to actors, not artifacts.",
		},
	}
}

func testRunScreen() (*RunScreen, *mockEventRepo, *mockSnapshotRepo) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}

	tree := state.NewTree()
	for _, def := range testDefs() {
		inst := tree.CreateQuiz(def.Name)
		inst.SetCorrectAnswers(def.Meta.CorrectAnswers)
	}

	rs := quiz.NewRunOver("srp", testDefs(), tree, events)
	rs.Configure(quiz.RunConfig{Snapshots: snaps, SnapshotKeep: 5})
	return FromRun(rs, nil), events, snaps
}

func TestRunScreen_Title(t *testing.T) {
	r, _, _ := testRunScreen()
	if r.Title() != "Quiz Run" {
		t.Errorf("Title = %q, want %q", r.Title(), "Quiz Run")
	}
}

func TestRunScreen_View(t *testing.T) {
	r, _, _ := testRunScreen()
	view := r.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for active quiz")
	}
}

func TestRunScreen_StartEventAppended(t *testing.T) {
	_, events, _ := testRunScreen()
	if len(events.runEvents) != 1 || events.runEvents[0].Action != "start" {
		t.Fatalf("expected a single start event, got %+v", events.runEvents)
	}
}

func TestRunScreen_AnswerSubmit(t *testing.T) {
	r, events, _ := testRunScreen()

	// Move to the correct option (index 1) and submit.
	var scr screen.Screen = r
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	rr := scr.(*RunScreen)

	if rr.rs.Phase != quiz.PhaseFeedback {
		t.Error("expected feedback phase after submit")
	}
	if !rr.rs.LastCorrect {
		t.Error("expected correct grading for option B")
	}
	if len(events.attempts) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(events.attempts))
	}
	if events.attempts[0].QuizName != "srp-test-one" {
		t.Errorf("attempt quiz = %q, want srp-test-one", events.attempts[0].QuizName)
	}
}

func TestRunScreen_FeedbackShowsExplanation(t *testing.T) {
	r, _, _ := testRunScreen()

	var scr screen.Screen = r
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	view := scr.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty feedback view")
	}
	if !containsStr(view, "unrelated reasons to change") {
		t.Error("expected quiz explanation in feedback view")
	}
}

func TestRunScreen_AdvanceToNextQuiz(t *testing.T) {
	r, _, _ := testRunScreen()

	var scr screen.Screen = r
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // answer first quiz
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // advance
	rr := scr.(*RunScreen)

	if rr.rs.Phase != quiz.PhaseActive {
		t.Error("expected active phase on the next quiz")
	}
	if rr.rs.Index != 1 {
		t.Errorf("Index = %d, want 1", rr.rs.Index)
	}
}

func TestRunScreen_FinishWritesSnapshot(t *testing.T) {
	r, events, snaps := testRunScreen()

	var scr screen.Screen = r
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // answer quiz 1
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // advance
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // answer quiz 2
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected a command after the run finishes")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected replace to summary screen")
	}
	if len(snaps.snapshots) != 1 {
		t.Fatalf("snapshots written = %d, want 1", len(snaps.snapshots))
	}
	if snaps.pruned != 5 {
		t.Errorf("prune keep = %d, want 5", snaps.pruned)
	}
	last := events.runEvents[len(events.runEvents)-1]
	if last.Action != "end" || last.QuizzesServed != 2 {
		t.Errorf("end event = %+v, want end with 2 served", last)
	}
}

func TestRunScreen_QuitEndsRun(t *testing.T) {
	r, events, snaps := testRunScreen()

	var scr screen.Screen = r
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // answer quiz 1
	_, cmd := scr.Update(keyPress('q'))

	if cmd == nil {
		t.Fatal("expected a command on quit")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected replace to summary screen")
	}
	last := events.runEvents[len(events.runEvents)-1]
	if last.Action != "end" || last.QuizzesServed != 1 {
		t.Errorf("end event = %+v, want end with 1 served", last)
	}
	if len(snaps.snapshots) != 1 {
		t.Errorf("snapshots written = %d, want 1", len(snaps.snapshots))
	}
}

func TestRunScreen_QuitWithoutAnswersSkipsSnapshot(t *testing.T) {
	r, _, snaps := testRunScreen()

	_, cmd := r.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a command on quit")
	}
	if len(snaps.snapshots) != 0 {
		t.Errorf("snapshots written = %d, want 0 for an unanswered run", len(snaps.snapshots))
	}
}

func TestRunScreen_KeyHints(t *testing.T) {
	r, _, _ := testRunScreen()
	if len(r.KeyHints()) == 0 {
		t.Error("expected key hints in active phase")
	}

	r.Update(specialKey(tea.KeyEnter))
	if len(r.KeyHints()) != 2 {
		t.Errorf("feedback hints = %d, want 2", len(r.KeyHints()))
	}
}

func containsStr(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
