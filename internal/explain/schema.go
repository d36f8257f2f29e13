package explain

import "soliddojo/internal/llm"

// Schema defines the JSON schema for quiz answer deep-dives.
var Schema = &llm.Schema{
	Name:        "quiz-explanation",
	Description: "A deep-dive explanation of a SOLID design quiz answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"why": map[string]any{
				"type":        "string",
				"description": "Why the correct answers are correct, in terms of the principle (3-5 sentences)",
			},
			"misconception": map[string]any{
				"type":        "string",
				"description": "What the learner's wrong selection confuses, and how to tell the two apart. Empty string when the attempt was correct.",
			},
			"go_example": map[string]any{
				"type":        "string",
				"description": "A short idiomatic Go snippet (under 15 lines) illustrating the principle in this quiz's scenario",
			},
		},
		"required":             []any{"why", "misconception", "go_example"},
		"additionalProperties": false,
	},
}
