package catalog

import (
	"strings"
	"testing"
)

func validQuiz(name string) QuizDefinition {
	return QuizDefinition{
		Name:      name,
		Principle: PrincipleSRP,
		Prompt:    "prompt",
		Options:   []string{"a", "b", "c"},
		Meta:      QuizMeta{CorrectAnswers: []string{"a"}},
	}
}

func TestValidateAcceptsSeed(t *testing.T) {
	if err := validateCatalog(seedQuizzes, seedArticles); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestValidateDuplicateName(t *testing.T) {
	err := validateCatalog([]QuizDefinition{validQuiz("q-1"), validQuiz("q-1")}, nil)
	if err == nil || !strings.Contains(err.Error(), "duplicate quiz name") {
		t.Fatalf("expected duplicate-name error, got %v", err)
	}
}

func TestValidateNoCorrectAnswers(t *testing.T) {
	q := validQuiz("q-1")
	q.Meta.CorrectAnswers = nil
	err := validateCatalog([]QuizDefinition{q}, nil)
	if err == nil || !strings.Contains(err.Error(), "no correct answers") {
		t.Fatalf("expected no-correct-answers error, got %v", err)
	}
}

func TestValidateAnswerNotAnOption(t *testing.T) {
	q := validQuiz("q-1")
	q.Meta.CorrectAnswers = []string{"z"}
	err := validateCatalog([]QuizDefinition{q}, nil)
	if err == nil || !strings.Contains(err.Error(), "not among its options") {
		t.Fatalf("expected answer-not-option error, got %v", err)
	}
}

func TestValidateDanglingArticleQuiz(t *testing.T) {
	a := Article{Slug: "a-1", Title: "t", Principle: PrincipleSRP, QuizNames: []string{"missing"}}
	err := validateCatalog([]QuizDefinition{validQuiz("q-1")}, []Article{a})
	if err == nil || !strings.Contains(err.Error(), "nonexistent quiz") {
		t.Fatalf("expected dangling-quiz error, got %v", err)
	}
}

func TestValidateTooFewOptions(t *testing.T) {
	q := validQuiz("q-1")
	q.Options = []string{"only"}
	q.Meta.CorrectAnswers = []string{"only"}
	err := validateCatalog([]QuizDefinition{q}, nil)
	if err == nil || !strings.Contains(err.Error(), "fewer than 2 options") {
		t.Fatalf("expected option-count error, got %v", err)
	}
}
