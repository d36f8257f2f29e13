package state

import (
	"testing"
	"time"

	"soliddojo/internal/store"
)

func TestTreeCreateAndGet(t *testing.T) {
	tree := NewTree()

	if tree.Has("srp-1") {
		t.Fatal("empty tree should not have srp-1")
	}
	if tree.GetByName("srp-1") != nil {
		t.Fatal("expected nil for absent quiz")
	}

	inst := tree.CreateQuiz("srp-1")
	if inst == nil {
		t.Fatal("expected instance")
	}
	if !tree.Has("srp-1") {
		t.Error("tree should have srp-1 after create")
	}
	if got := tree.GetByName("srp-1"); got != inst {
		t.Error("GetByName returned a different instance")
	}
	if tree.Len() != 1 {
		t.Errorf("len = %d, want 1", tree.Len())
	}
}

func TestTreeCreateReplacesExisting(t *testing.T) {
	tree := NewTree()
	first := tree.CreateQuiz("srp-1")
	first.Attempts = 5

	second := tree.CreateQuiz("srp-1")
	if second == first {
		t.Fatal("expected a fresh instance")
	}
	if got := tree.GetByName("srp-1"); got.Attempts != 0 {
		t.Errorf("attempts = %d, want 0 after replace", got.Attempts)
	}
}

func TestTreeHydrate(t *testing.T) {
	tree := NewTree()
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tree.Hydrate(store.SnapshotData{
		Version: 1,
		Quizzes: map[string]*store.QuizStateData{
			"srp-1": {
				Name:            "srp-1",
				CorrectAnswers:  []string{"B"},
				SelectedAnswers: []string{"A"},
				Attempts:        2,
				CorrectCount:    1,
				LastAttemptAt:   at.Format(time.RFC3339),
			},
			"":      {Name: ""}, // skipped
			"ocp-1": nil,        // skipped
		},
	})

	if tree.Len() != 1 {
		t.Fatalf("len = %d, want 1", tree.Len())
	}
	inst := tree.GetByName("srp-1")
	if inst == nil {
		t.Fatal("expected srp-1 after hydrate")
	}
	if inst.Attempts != 2 || inst.CorrectCount != 1 {
		t.Errorf("progress = %d/%d, want 1/2", inst.CorrectCount, inst.Attempts)
	}
	if inst.LastAttemptAt == nil || !inst.LastAttemptAt.Equal(at) {
		t.Errorf("last attempt = %v, want %v", inst.LastAttemptAt, at)
	}
	if got := inst.CorrectAnswers(); len(got) != 1 || got[0] != "B" {
		t.Errorf("correct answers = %v, want [B]", got)
	}
}

func TestTreeHydrateNilMap(t *testing.T) {
	tree := NewTree()
	tree.Hydrate(store.SnapshotData{Version: 1})
	if tree.Len() != 0 {
		t.Errorf("len = %d, want 0", tree.Len())
	}
}

func TestTreeHydrateBadTimestamp(t *testing.T) {
	tree := NewTree()
	tree.Hydrate(store.SnapshotData{
		Version: 1,
		Quizzes: map[string]*store.QuizStateData{
			"srp-1": {Name: "srp-1", LastAttemptAt: "not-a-time"},
		},
	})
	inst := tree.GetByName("srp-1")
	if inst == nil {
		t.Fatal("expected srp-1")
	}
	if inst.LastAttemptAt != nil {
		t.Errorf("last attempt = %v, want nil for unparseable timestamp", inst.LastAttemptAt)
	}
}

func TestTreeNamesSorted(t *testing.T) {
	tree := NewTree()
	for _, name := range []string{"ocp-1", "dip-2", "srp-1"} {
		tree.CreateQuiz(name)
	}
	names := tree.Names()
	want := []string{"dip-2", "ocp-1", "srp-1"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestTreeSnapshotDataRoundTrip(t *testing.T) {
	tree := NewTree()
	inst := tree.CreateQuiz("lsp-1")
	inst.SetCorrectAnswers([]string{"A", "C"})
	inst.RecordAttempt([]string{"A", "C"}, true, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	data := tree.SnapshotData()
	if data.Version != store.SnapshotVersion {
		t.Errorf("version = %d, want %d", data.Version, store.SnapshotVersion)
	}

	other := NewTree()
	other.Hydrate(data)
	got := other.GetByName("lsp-1")
	if got == nil {
		t.Fatal("expected lsp-1 after round trip")
	}
	if got.Attempts != 1 || got.CorrectCount != 1 {
		t.Errorf("progress = %d/%d, want 1/1", got.CorrectCount, got.Attempts)
	}
	if ans := got.CorrectAnswers(); len(ans) != 2 || ans[0] != "A" || ans[1] != "C" {
		t.Errorf("correct answers = %v, want [A C]", ans)
	}
}

func TestInstanceSetCorrectAnswersCopies(t *testing.T) {
	inst := NewQuizInstance("srp-1")
	src := []string{"B"}
	inst.SetCorrectAnswers(src)
	src[0] = "Z"
	if got := inst.CorrectAnswers(); got[0] != "B" {
		t.Errorf("correct answers = %v, want [B]; caller mutation leaked in", got)
	}
}

func TestInstanceRecordAttempt(t *testing.T) {
	inst := NewQuizInstance("srp-1")
	if inst.Passed() {
		t.Error("fresh instance should not be passed")
	}
	if inst.Accuracy() != 0 {
		t.Errorf("accuracy = %f, want 0", inst.Accuracy())
	}

	now := time.Now()
	inst.RecordAttempt([]string{"A"}, false, now)
	inst.RecordAttempt([]string{"B"}, true, now)

	if inst.Attempts != 2 || inst.CorrectCount != 1 {
		t.Errorf("progress = %d/%d, want 1/2", inst.CorrectCount, inst.Attempts)
	}
	if !inst.Passed() {
		t.Error("expected passed after a correct attempt")
	}
	if inst.Accuracy() != 0.5 {
		t.Errorf("accuracy = %f, want 0.5", inst.Accuracy())
	}
	if len(inst.SelectedAnswers) != 1 || inst.SelectedAnswers[0] != "B" {
		t.Errorf("selected = %v, want [B]", inst.SelectedAnswers)
	}
}
