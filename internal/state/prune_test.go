package state

import (
	"testing"

	"soliddojo/internal/store"
)

func TestPruneSnapshotDropsStale(t *testing.T) {
	data := store.SnapshotData{
		Version: 1,
		Quizzes: map[string]*store.QuizStateData{
			"srp-1":     {Name: "srp-1", Attempts: 2},
			"ocp-1":     {Name: "ocp-1", Attempts: 1},
			"retired-9": {Name: "retired-9", Attempts: 7},
		},
	}
	valid := map[string]bool{"srp-1": true, "ocp-1": true}

	pruned := PruneSnapshot(data, func(name string) bool { return valid[name] })

	if len(pruned.Quizzes) != 2 {
		t.Fatalf("pruned len = %d, want 2", len(pruned.Quizzes))
	}
	if _, ok := pruned.Quizzes["retired-9"]; ok {
		t.Error("retired-9 should have been pruned")
	}
	if pruned.Quizzes["srp-1"].Attempts != 2 {
		t.Error("surviving entry lost its data")
	}
	if pruned.Version != 1 {
		t.Errorf("version = %d, want 1", pruned.Version)
	}
}

func TestPruneSnapshotDoesNotMutateInput(t *testing.T) {
	data := store.SnapshotData{
		Version: 1,
		Quizzes: map[string]*store.QuizStateData{
			"stale-1": {Name: "stale-1"},
		},
	}

	_ = PruneSnapshot(data, func(string) bool { return false })

	if len(data.Quizzes) != 1 {
		t.Errorf("input quizzes len = %d, want 1 (input must not be mutated)", len(data.Quizzes))
	}
}

func TestPruneSnapshotNilMap(t *testing.T) {
	pruned := PruneSnapshot(store.SnapshotData{Version: 1}, func(string) bool { return true })
	if pruned.Quizzes == nil {
		t.Fatal("expected non-nil map")
	}
	if len(pruned.Quizzes) != 0 {
		t.Errorf("len = %d, want 0", len(pruned.Quizzes))
	}
}
