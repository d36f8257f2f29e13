package state

import "time"

// QuizInstance holds the in-memory state for a single quiz: its answer key
// and the learner's accumulated progress against it.
type QuizInstance struct {
	Name            string
	correctAnswers  []string
	SelectedAnswers []string
	Attempts        int
	CorrectCount    int
	LastAttemptAt   *time.Time
}

// NewQuizInstance creates an instance with empty progress.
func NewQuizInstance(name string) *QuizInstance {
	return &QuizInstance{Name: name}
}

// SetCorrectAnswers replaces the answer key. The input slice is copied so
// later mutation by the caller cannot alias into the instance.
func (q *QuizInstance) SetCorrectAnswers(answers []string) {
	q.correctAnswers = append([]string(nil), answers...)
}

// CorrectAnswers returns a copy of the answer key.
func (q *QuizInstance) CorrectAnswers() []string {
	return append([]string(nil), q.correctAnswers...)
}

// RecordAttempt updates progress after one grading pass.
func (q *QuizInstance) RecordAttempt(selected []string, correct bool, at time.Time) {
	q.SelectedAnswers = append([]string(nil), selected...)
	q.Attempts++
	if correct {
		q.CorrectCount++
	}
	t := at.UTC()
	q.LastAttemptAt = &t
}

// Passed reports whether the quiz has ever been answered correctly.
func (q *QuizInstance) Passed() bool {
	return q.CorrectCount > 0
}

// Accuracy returns the fraction of attempts answered correctly,
// or zero when unattempted.
func (q *QuizInstance) Accuracy() float64 {
	if q.Attempts == 0 {
		return 0
	}
	return float64(q.CorrectCount) / float64(q.Attempts)
}
