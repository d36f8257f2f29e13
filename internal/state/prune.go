package state

import "soliddojo/internal/store"

// PruneSnapshot returns a copy of the snapshot data with every quiz entry
// whose name is not in valid removed. The input is never mutated, so the
// caller can still persist or inspect the original.
func PruneSnapshot(data store.SnapshotData, valid func(name string) bool) store.SnapshotData {
	out := store.SnapshotData{
		Version: data.Version,
		Quizzes: make(map[string]*store.QuizStateData, len(data.Quizzes)),
	}
	for name, qs := range data.Quizzes {
		if !valid(name) {
			continue
		}
		out.Quizzes[name] = qs
	}
	return out
}
