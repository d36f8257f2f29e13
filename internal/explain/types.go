package explain

import "soliddojo/internal/catalog"

// Input carries everything the generator needs about the attempt.
type Input struct {
	Quiz     catalog.QuizDefinition
	Selected []string
	Correct  bool
}

// Explanation is a generated deep-dive on a quiz answer.
type Explanation struct {
	QuizName string

	// Why explains why the correct answers are correct.
	Why string

	// Misconception addresses the learner's specific wrong selection.
	// Empty when the attempt was correct.
	Misconception string

	// GoExample is a short Go snippet illustrating the principle.
	GoExample string
}
