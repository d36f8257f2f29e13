package catalog

// QuizMeta carries the authoritative grading data for a quiz.
// CorrectAnswers is always the current source of truth: persisted
// learner state never overrides it.
type QuizMeta struct {
	// CorrectAnswers holds the option texts considered correct.
	// A quiz with more than one entry requires all of them to be selected.
	CorrectAnswers []string
}

// QuizDefinition is a single quiz in the static catalog.
// Definitions are immutable at runtime and never persisted.
type QuizDefinition struct {
	// Name uniquely identifies the quiz, e.g. "ocp-1".
	Name string

	// Principle is the SOLID principle this quiz belongs to.
	Principle Principle

	// Prompt is the question shown to the learner.
	Prompt string

	// Options are the selectable answers, shown in declared order.
	Options []string

	// Meta holds the correct-answer set.
	Meta QuizMeta

	// Explanation is shown after the quiz is answered.
	Explanation string
}

// MultiSelect reports whether the quiz requires selecting more than one option.
func (q QuizDefinition) MultiSelect() bool {
	return len(q.Meta.CorrectAnswers) > 1
}
