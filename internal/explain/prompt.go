package explain

import (
	"fmt"
	"strings"

	"soliddojo/internal/catalog"
	"soliddojo/internal/quiz"
)

const systemPrompt = `You are a pragmatic software design mentor helping a working Go developer internalize the SOLID principles. The developer just answered a multiple-choice design quiz and wants to understand the reasoning, not just the verdict.`

func buildUserMessage(input Input) string {
	var b strings.Builder

	def := input.Quiz
	b.WriteString(fmt.Sprintf("Principle: %s\n", catalog.PrincipleDisplayName(def.Principle)))
	b.WriteString(fmt.Sprintf("Question: %s\n", def.Prompt))

	b.WriteString("\nOptions:\n")
	for i, opt := range def.Options {
		b.WriteString(fmt.Sprintf("%s. %s\n", quiz.OptionLabel(i), opt))
	}

	b.WriteString("\nCorrect answers:\n")
	for _, ans := range def.Meta.CorrectAnswers {
		b.WriteString(fmt.Sprintf("- %s\n", ans))
	}

	b.WriteString("\nDeveloper selected:\n")
	if len(input.Selected) == 0 {
		b.WriteString("(nothing)\n")
	} else {
		for _, sel := range input.Selected {
			b.WriteString(fmt.Sprintf("- %s\n", sel))
		}
	}
	if input.Correct {
		b.WriteString("Result: correct\n")
	} else {
		b.WriteString("Result: incorrect\n")
	}

	b.WriteString(`
Instructions:
1. Explain why the correct answers are correct in terms of the principle, in 3-5 sentences. Be concrete about what changes or what breaks, not abstract.
2. If the developer answered incorrectly, explain what their selection confuses and how to tell the two apart. If they answered correctly, return an empty string for the misconception field.
3. Provide a short idiomatic Go snippet (under 15 lines) showing the principle applied to this quiz's scenario. Plain Go, no comments in the snippet.`)

	return b.String()
}
