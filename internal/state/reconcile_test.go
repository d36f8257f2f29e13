package state

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"soliddojo/internal/catalog"
	"soliddojo/internal/store"
)

// fakeReader serves a fixed snapshot (or error) and counts reads.
type fakeReader struct {
	snap  *store.Snapshot
	err   error
	reads int
}

func (f *fakeReader) Latest(ctx context.Context) (*store.Snapshot, error) {
	f.reads++
	return f.snap, f.err
}

func testDefs() []catalog.QuizDefinition {
	return []catalog.QuizDefinition{
		{Name: "srp-1", Meta: catalog.QuizMeta{CorrectAnswers: []string{"B"}}},
		{Name: "ocp-1", Meta: catalog.QuizMeta{CorrectAnswers: []string{"C"}}},
		{Name: "lsp-1", Meta: catalog.QuizMeta{CorrectAnswers: []string{"A", "D"}}},
	}
}

func TestReconcileNoSnapshot(t *testing.T) {
	defs := testDefs()
	reader := &fakeReader{}
	tree := NewTree()

	rep := Reconcile(context.Background(), defs, reader, tree)

	if rep.SnapshotFound {
		t.Error("no snapshot should have been found")
	}
	if rep.Created != len(defs) {
		t.Errorf("created = %d, want %d", rep.Created, len(defs))
	}
	for _, def := range defs {
		inst := tree.GetByName(def.Name)
		if inst == nil {
			t.Fatalf("missing instance for %s", def.Name)
		}
		if inst.Attempts != 0 {
			t.Errorf("%s attempts = %d, want 0", def.Name, inst.Attempts)
		}
		if got := inst.CorrectAnswers(); !reflect.DeepEqual(got, def.Meta.CorrectAnswers) {
			t.Errorf("%s answers = %v, want %v", def.Name, got, def.Meta.CorrectAnswers)
		}
	}
	if tree.Len() != len(defs) {
		t.Errorf("tree len = %d, want %d", tree.Len(), len(defs))
	}
}

func TestReconcileRestoresProgressAndOverwritesAnswers(t *testing.T) {
	defs := testDefs()
	reader := &fakeReader{
		snap: &store.Snapshot{
			Sequence:  7,
			Timestamp: time.Now(),
			Data: store.SnapshotData{
				Version: 1,
				Quizzes: map[string]*store.QuizStateData{
					// Persisted answer key is stale on purpose.
					"srp-1": {
						Name:           "srp-1",
						CorrectAnswers: []string{"A"},
						Attempts:       4,
						CorrectCount:   3,
					},
				},
			},
		},
	}
	tree := NewTree()

	rep := Reconcile(context.Background(), defs, reader, tree)

	if !rep.SnapshotFound {
		t.Error("expected snapshot found")
	}
	if rep.Restored != 1 {
		t.Errorf("restored = %d, want 1", rep.Restored)
	}
	if rep.Created != 2 {
		t.Errorf("created = %d, want 2", rep.Created)
	}

	inst := tree.GetByName("srp-1")
	if inst.Attempts != 4 || inst.CorrectCount != 3 {
		t.Errorf("progress = %d/%d, want 3/4 (progress must survive)", inst.CorrectCount, inst.Attempts)
	}
	// The catalog, not the snapshot, decides correctness.
	if got := inst.CorrectAnswers(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("answers = %v, want [B] from catalog", got)
	}
}

func TestReconcilePrunesStaleEntries(t *testing.T) {
	defs := testDefs()
	reader := &fakeReader{
		snap: &store.Snapshot{
			Data: store.SnapshotData{
				Version: 1,
				Quizzes: map[string]*store.QuizStateData{
					"srp-1":     {Name: "srp-1", Attempts: 1},
					"retired-9": {Name: "retired-9", Attempts: 12},
				},
			},
		},
	}
	tree := NewTree()

	rep := Reconcile(context.Background(), defs, reader, tree)

	if rep.Pruned != 1 {
		t.Errorf("pruned = %d, want 1", rep.Pruned)
	}
	if tree.Has("retired-9") {
		t.Error("retired-9 should not be in the tree")
	}
	if tree.Len() != len(defs) {
		t.Errorf("tree len = %d, want %d", tree.Len(), len(defs))
	}
}

func TestReconcileMalformedQuizzesMap(t *testing.T) {
	defs := testDefs()
	reader := &fakeReader{
		snap: &store.Snapshot{
			Data: store.SnapshotData{Version: 1, Quizzes: nil},
		},
	}
	tree := NewTree()

	rep := Reconcile(context.Background(), defs, reader, tree)

	if rep.Created != len(defs) {
		t.Errorf("created = %d, want %d", rep.Created, len(defs))
	}
	for _, def := range defs {
		if !tree.Has(def.Name) {
			t.Errorf("missing %s", def.Name)
		}
	}
}

func TestReconcileReadErrorDegradesToFresh(t *testing.T) {
	defs := testDefs()
	reader := &fakeReader{err: errors.New("disk io")}
	tree := NewTree()

	rep := Reconcile(context.Background(), defs, reader, tree)

	if rep.LoadErr == nil {
		t.Error("expected load error in report")
	}
	if rep.SnapshotFound {
		t.Error("errored read must count as no snapshot")
	}
	if tree.Len() != len(defs) {
		t.Errorf("tree len = %d, want %d", tree.Len(), len(defs))
	}
}

func TestReconcileSingleRead(t *testing.T) {
	reader := &fakeReader{}
	Reconcile(context.Background(), testDefs(), reader, NewTree())
	if reader.reads != 1 {
		t.Errorf("reads = %d, want 1", reader.reads)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	defs := testDefs()
	reader := &fakeReader{
		snap: &store.Snapshot{
			Data: store.SnapshotData{
				Version: 1,
				Quizzes: map[string]*store.QuizStateData{
					"ocp-1": {Name: "ocp-1", Attempts: 2, CorrectCount: 2},
				},
			},
		},
	}

	run := func() *Tree {
		tree := NewTree()
		Reconcile(context.Background(), defs, reader, tree)
		return tree
	}

	a, b := run(), run()

	if !reflect.DeepEqual(a.Names(), b.Names()) {
		t.Fatalf("names differ: %v vs %v", a.Names(), b.Names())
	}
	for _, name := range a.Names() {
		ia, ib := a.GetByName(name), b.GetByName(name)
		if !reflect.DeepEqual(ia.CorrectAnswers(), ib.CorrectAnswers()) {
			t.Errorf("%s answers differ", name)
		}
		if ia.Attempts != ib.Attempts || ia.CorrectCount != ib.CorrectCount {
			t.Errorf("%s progress differs", name)
		}
	}
}

func TestReconcileAgainstSeededCatalog(t *testing.T) {
	defs := catalog.All()
	tree := NewTree()

	Reconcile(context.Background(), defs, &fakeReader{}, tree)

	for _, name := range catalog.Names() {
		inst := tree.GetByName(name)
		if inst == nil {
			t.Fatalf("missing instance for catalog quiz %s", name)
		}
		def, err := catalog.Get(name)
		if err != nil {
			t.Fatalf("catalog get %s: %v", name, err)
		}
		if !reflect.DeepEqual(inst.CorrectAnswers(), def.Meta.CorrectAnswers) {
			t.Errorf("%s answers = %v, want %v", name, inst.CorrectAnswers(), def.Meta.CorrectAnswers)
		}
	}
}
