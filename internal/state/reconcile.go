package state

import (
	"context"

	"soliddojo/internal/catalog"
	"soliddojo/internal/store"
)

// SnapshotReader is the read-side of the snapshot store needed at startup.
// *store.Store's SnapshotRepo satisfies it.
type SnapshotReader interface {
	Latest(ctx context.Context) (*store.Snapshot, error)
}

// Report summarizes what Reconcile did, for logging and the welcome screen.
type Report struct {
	SnapshotFound bool
	Restored      int // quiz entries hydrated from the snapshot
	Pruned        int // stale snapshot entries dropped
	Created       int // catalog quizzes with no persisted state
	LoadErr       error
}

// Reconcile aligns the state tree with the quiz catalog at startup.
//
// It reads the latest snapshot once, drops entries for quizzes no longer in
// the catalog, hydrates the tree from what remains, then walks every catalog
// quiz: missing instances are created fresh, and every instance has its
// answer key overwritten from the catalog. Persisted answer keys are never
// trusted; the catalog is the single source of truth for correctness.
//
// Reconcile never fails. A snapshot that cannot be read is recorded in the
// report and treated as absent, so a corrupted database degrades to a fresh
// start instead of blocking startup. It performs no writes.
func Reconcile(ctx context.Context, defs []catalog.QuizDefinition, reader SnapshotReader, tree *Tree) Report {
	var rep Report

	snap, err := reader.Latest(ctx)
	if err != nil {
		rep.LoadErr = err
		snap = nil
	}

	known := make(map[string]bool, len(defs))
	for _, def := range defs {
		known[def.Name] = true
	}

	if snap != nil {
		rep.SnapshotFound = true
		before := len(snap.Data.Quizzes)
		pruned := PruneSnapshot(snap.Data, func(name string) bool { return known[name] })
		rep.Pruned = before - len(pruned.Quizzes)
		tree.Hydrate(pruned)
		rep.Restored = tree.Len()
	}

	for _, def := range defs {
		inst := tree.GetByName(def.Name)
		if inst == nil {
			inst = tree.CreateQuiz(def.Name)
			rep.Created++
		}
		inst.SetCorrectAnswers(def.Meta.CorrectAnswers)
	}

	return rep
}
