package quiz

import (
	"testing"

	"soliddojo/internal/catalog"
	"soliddojo/internal/state"
)

func newRunTree(t *testing.T) *state.Tree {
	t.Helper()
	tree := state.NewTree()
	for _, def := range catalog.All() {
		inst := tree.CreateQuiz(def.Name)
		inst.SetCorrectAnswers(def.Meta.CorrectAnswers)
	}
	return tree
}

func TestNewRunScopes(t *testing.T) {
	tree := newRunTree(t)

	all := NewRun("all", tree, nil)
	if len(all.Quizzes) != len(catalog.All()) {
		t.Errorf("all scope quizzes = %d, want %d", len(all.Quizzes), len(catalog.All()))
	}
	if all.RunID == "" {
		t.Error("expected run ID")
	}

	srp := NewRun("srp", tree, nil)
	if len(srp.Quizzes) == 0 {
		t.Fatal("expected srp quizzes")
	}
	for _, def := range srp.Quizzes {
		if def.Principle != catalog.PrincipleSRP {
			t.Errorf("quiz %s principle = %s, want srp", def.Name, def.Principle)
		}
	}

	empty := NewRun("", tree, nil)
	if empty.Scope != "all" {
		t.Errorf("scope = %q, want all", empty.Scope)
	}
}

func TestRunAnswerAndAdvance(t *testing.T) {
	tree := newRunTree(t)
	rs := NewRun("srp", tree, nil)

	def := rs.Current()
	if def == nil {
		t.Fatal("expected a current quiz")
	}

	correct := rs.HandleAnswer(def.Meta.CorrectAnswers)
	if !correct {
		t.Error("answer key itself should grade correct")
	}
	if rs.Phase != PhaseFeedback {
		t.Errorf("phase = %v, want feedback", rs.Phase)
	}
	if rs.Answered != 1 || rs.TotalCorrect != 1 {
		t.Errorf("answered/correct = %d/%d, want 1/1", rs.Answered, rs.TotalCorrect)
	}

	inst := tree.GetByName(def.Name)
	if inst.Attempts != 1 || inst.CorrectCount != 1 {
		t.Errorf("instance progress = %d/%d, want 1/1", inst.CorrectCount, inst.Attempts)
	}

	rs.Advance()
	if rs.Index != 1 {
		t.Errorf("index = %d, want 1", rs.Index)
	}
	if rs.Phase != PhaseActive {
		t.Errorf("phase = %v, want active", rs.Phase)
	}
}

func TestRunExhaustionEndsInSummary(t *testing.T) {
	tree := newRunTree(t)
	rs := NewRun("srp", tree, nil)

	for rs.Current() != nil {
		rs.HandleAnswer([]string{"nonsense"})
		rs.Advance()
	}

	if rs.Phase != PhaseSummary {
		t.Errorf("phase = %v, want summary", rs.Phase)
	}
	if rs.TotalCorrect != 0 {
		t.Errorf("correct = %d, want 0", rs.TotalCorrect)
	}
	if rs.Served() != len(rs.Quizzes) {
		t.Errorf("served = %d, want %d", rs.Served(), len(rs.Quizzes))
	}
}

func TestRunAbort(t *testing.T) {
	tree := newRunTree(t)
	rs := NewRun("all", tree, nil)

	def := rs.Current()
	rs.HandleAnswer(def.Meta.CorrectAnswers)
	rs.Abort()

	if rs.Phase != PhaseSummary {
		t.Errorf("phase = %v, want summary", rs.Phase)
	}
	if rs.Served() != 1 {
		t.Errorf("served = %d, want 1", rs.Served())
	}
}

func TestBuildSummary(t *testing.T) {
	tree := newRunTree(t)
	rs := NewRun("all", tree, nil)

	// Answer the first two correctly, the third wrong.
	for i := 0; i < 3 && rs.Current() != nil; i++ {
		def := rs.Current()
		if i < 2 {
			rs.HandleAnswer(def.Meta.CorrectAnswers)
		} else {
			rs.HandleAnswer([]string{"nonsense"})
		}
		rs.Advance()
	}
	rs.Abort()

	sum := BuildSummary(rs)
	if sum.Answered != 3 {
		t.Errorf("answered = %d, want 3", sum.Answered)
	}
	if sum.Correct != 2 {
		t.Errorf("correct = %d, want 2", sum.Correct)
	}
	wantAcc := 2.0 / 3.0
	if sum.Accuracy < wantAcc-0.001 || sum.Accuracy > wantAcc+0.001 {
		t.Errorf("accuracy = %f, want %f", sum.Accuracy, wantAcc)
	}

	var answered, correct int
	for _, pr := range sum.PrincipleResults {
		answered += pr.Answered
		correct += pr.Correct
	}
	if answered != 3 || correct != 2 {
		t.Errorf("principle totals = %d/%d, want 3 answered 2 correct", answered, correct)
	}
}
