package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the static content.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(quizzes []QuizDefinition, articles []Article) error {
	var errs []string

	nameSet := make(map[string]bool, len(quizzes))
	for _, q := range quizzes {
		if q.Name == "" {
			errs = append(errs, "quiz with empty name")
			continue
		}
		if nameSet[q.Name] {
			errs = append(errs, fmt.Sprintf("duplicate quiz name: %q", q.Name))
		}
		nameSet[q.Name] = true

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("quiz %q has fewer than 2 options", q.Name))
		}
		if len(q.Meta.CorrectAnswers) == 0 {
			errs = append(errs, fmt.Sprintf("quiz %q has no correct answers", q.Name))
		}

		optSet := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			optSet[o] = true
		}
		for _, a := range q.Meta.CorrectAnswers {
			if !optSet[a] {
				errs = append(errs, fmt.Sprintf("quiz %q correct answer %q is not among its options", q.Name, a))
			}
		}
	}

	slugSet := make(map[string]bool, len(articles))
	for _, a := range articles {
		if slugSet[a.Slug] {
			errs = append(errs, fmt.Sprintf("duplicate article slug: %q", a.Slug))
		}
		slugSet[a.Slug] = true

		for _, qn := range a.QuizNames {
			if !nameSet[qn] {
				errs = append(errs, fmt.Sprintf("article %q references nonexistent quiz %q", a.Slug, qn))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
