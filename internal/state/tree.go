package state

import (
	"sort"
	"time"

	"soliddojo/internal/store"
)

// Tree is the in-memory application state: one QuizInstance per quiz,
// keyed by quiz name. It is built once at startup and owned by the UI
// goroutine; it is not safe for concurrent use.
type Tree struct {
	quizzes map[string]*QuizInstance
}

// NewTree creates an empty state tree.
func NewTree() *Tree {
	return &Tree{quizzes: make(map[string]*QuizInstance)}
}

// Hydrate loads quiz entries from persisted snapshot data. Entries with an
// empty name are skipped; a nil Quizzes map hydrates nothing. Hydrating the
// same name twice keeps the later entry.
func (t *Tree) Hydrate(data store.SnapshotData) {
	for name, qs := range data.Quizzes {
		if name == "" || qs == nil {
			continue
		}
		inst := NewQuizInstance(name)
		inst.SetCorrectAnswers(qs.CorrectAnswers)
		inst.SelectedAnswers = append([]string(nil), qs.SelectedAnswers...)
		inst.Attempts = qs.Attempts
		inst.CorrectCount = qs.CorrectCount
		if qs.LastAttemptAt != "" {
			if at, err := time.Parse(time.RFC3339, qs.LastAttemptAt); err == nil {
				at = at.UTC()
				inst.LastAttemptAt = &at
			}
		}
		t.quizzes[name] = inst
	}
}

// Has reports whether an instance exists for the quiz name.
func (t *Tree) Has(name string) bool {
	_, ok := t.quizzes[name]
	return ok
}

// CreateQuiz registers a fresh instance for the name, replacing any
// existing one.
func (t *Tree) CreateQuiz(name string) *QuizInstance {
	inst := NewQuizInstance(name)
	t.quizzes[name] = inst
	return inst
}

// GetByName returns the instance for the name, or nil when absent.
func (t *Tree) GetByName(name string) *QuizInstance {
	return t.quizzes[name]
}

// Names returns all quiz names in the tree, sorted.
func (t *Tree) Names() []string {
	names := make([]string, 0, len(t.quizzes))
	for name := range t.quizzes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of quiz instances.
func (t *Tree) Len() int {
	return len(t.quizzes)
}

// SnapshotData serializes the tree back into persistable form.
func (t *Tree) SnapshotData() store.SnapshotData {
	out := store.SnapshotData{
		Version: store.SnapshotVersion,
		Quizzes: make(map[string]*store.QuizStateData, len(t.quizzes)),
	}
	for name, inst := range t.quizzes {
		qs := &store.QuizStateData{
			Name:            name,
			CorrectAnswers:  inst.CorrectAnswers(),
			SelectedAnswers: append([]string(nil), inst.SelectedAnswers...),
			Attempts:        inst.Attempts,
			CorrectCount:    inst.CorrectCount,
		}
		if inst.LastAttemptAt != nil {
			qs.LastAttemptAt = inst.LastAttemptAt.Format(time.RFC3339)
		}
		out.Quizzes[name] = qs
	}
	return out
}
