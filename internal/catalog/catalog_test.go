package catalog

import (
	"sort"
	"testing"
)

func TestNamesSortedAndUnique(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name: %q", n)
		}
		seen[n] = true
	}
}

func TestGetKnownQuiz(t *testing.T) {
	q, err := Get("ocp-1")
	if err != nil {
		t.Fatalf("get ocp-1: %v", err)
	}
	if q.Principle != PrincipleOCP {
		t.Errorf("principle = %q, want %q", q.Principle, PrincipleOCP)
	}
	if len(q.Meta.CorrectAnswers) == 0 {
		t.Error("expected correct answers")
	}
}

func TestGetUnknownQuiz(t *testing.T) {
	if _, err := Get("no-such-quiz"); err == nil {
		t.Fatal("expected error for unknown quiz")
	}
	if Has("no-such-quiz") {
		t.Error("Has reported unknown quiz as present")
	}
}

func TestByPrincipleCoversAllQuizzes(t *testing.T) {
	total := 0
	for _, p := range AllPrinciples() {
		qs := ByPrinciple(p)
		for _, q := range qs {
			if q.Principle != p {
				t.Errorf("quiz %q filed under %q but declares %q", q.Name, p, q.Principle)
			}
		}
		total += len(qs)
	}
	if total != len(Names()) {
		t.Errorf("principle buckets hold %d quizzes, catalog has %d", total, len(Names()))
	}
}

func TestEveryArticleQuizResolves(t *testing.T) {
	for _, a := range Articles() {
		if len(a.QuizNames) == 0 {
			t.Errorf("article %q has no quizzes", a.Slug)
		}
		for _, qn := range a.QuizNames {
			if _, err := Get(qn); err != nil {
				t.Errorf("article %q references %q: %v", a.Slug, qn, err)
			}
		}
	}
}

func TestMultiSelect(t *testing.T) {
	q, err := Get("srp-2")
	if err != nil {
		t.Fatalf("get srp-2: %v", err)
	}
	if !q.MultiSelect() {
		t.Error("srp-2 should be multi-select")
	}

	q, err = Get("srp-1")
	if err != nil {
		t.Fatalf("get srp-1: %v", err)
	}
	if q.MultiSelect() {
		t.Error("srp-1 should be single-select")
	}
}
