package quiz

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"soliddojo/internal/catalog"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
)

// RunPhase represents the current phase of a quiz run.
type RunPhase int

const (
	PhaseActive   RunPhase = iota // serving quizzes
	PhaseFeedback                 // showing answer feedback
	PhaseSummary                  // run finished, showing summary
)

// QuizOutcome records the grading result for one served quiz.
type QuizOutcome struct {
	Name      string
	Principle catalog.Principle
	Correct   bool
}

// RunState tracks the runtime state of an active quiz run.
type RunState struct {
	// RunID correlates the run's events.
	RunID string

	// Scope is "all" or a principle key ("srp", "ocp", ...).
	Scope string

	// Quizzes is the ordered set served in this run.
	Quizzes []catalog.QuizDefinition

	// Index points at the current quiz.
	Index int

	// Answered counts quizzes graded so far.
	Answered int

	// TotalCorrect counts correct answers so far.
	TotalCorrect int

	// LastCorrect holds the grading outcome of the most recent answer.
	LastCorrect bool

	// Outcomes records the per-quiz grading results, in serve order.
	Outcomes []QuizOutcome

	Phase RunPhase

	StartTime         time.Time
	QuestionStartTime time.Time

	Tree   *state.Tree
	Events store.EventRepo

	// Config carries cross-cutting run settings, applied via Configure.
	Config RunConfig
}

// RunConfig carries run settings wired from app configuration.
type RunConfig struct {
	// Snapshots, when set, receives the tree's full snapshot at run end.
	// Runs with no answered quizzes write nothing.
	Snapshots store.SnapshotRepo

	// SnapshotKeep bounds retained snapshots; 0 means SnapshotKeepDefault.
	SnapshotKeep int

	// Shuffle randomizes quiz order within the run.
	Shuffle bool
}

// SnapshotKeepDefault is the snapshot retention bound used when a run
// doesn't specify one.
const SnapshotKeepDefault = 10

// NewRun starts a run over the given scope. A principle key (long or short
// form) serves that principle's quizzes; anything else serves the whole
// catalog.
func NewRun(scope string, tree *state.Tree, events store.EventRepo) *RunState {
	var defs []catalog.QuizDefinition
	if p, ok := catalog.ParsePrinciple(scope); ok {
		scope = string(p)
		defs = catalog.ByPrinciple(p)
	} else {
		scope = "all"
		defs = catalog.All()
	}
	return NewRunOver(scope, defs, tree, events)
}

// NewRunOver starts a run over an explicit quiz set, e.g. an article's
// embedded quizzes. Scope labels the run's events.
func NewRunOver(scope string, defs []catalog.QuizDefinition, tree *state.Tree, events store.EventRepo) *RunState {
	now := time.Now()
	rs := &RunState{
		RunID:             uuid.NewString(),
		Scope:             scope,
		Quizzes:           defs,
		Phase:             PhaseActive,
		StartTime:         now,
		QuestionStartTime: now,
		Tree:              tree,
		Events:            events,
	}

	if rs.Events != nil {
		_ = rs.Events.AppendRunEvent(context.Background(), store.RunEventData{
			RunID:  rs.RunID,
			Action: "start",
			Scope:  scope,
		})
	}
	return rs
}

// Configure applies run settings. Call before the first quiz is served.
func (rs *RunState) Configure(cfg RunConfig) {
	rs.Config = cfg
	if cfg.Shuffle {
		rand.Shuffle(len(rs.Quizzes), func(i, j int) {
			rs.Quizzes[i], rs.Quizzes[j] = rs.Quizzes[j], rs.Quizzes[i]
		})
	}
}

// Current returns the quiz being served, or nil when the run is exhausted.
func (rs *RunState) Current() *catalog.QuizDefinition {
	if rs.Index >= len(rs.Quizzes) {
		return nil
	}
	return &rs.Quizzes[rs.Index]
}

// HandleAnswer grades the learner's selection against the current quiz,
// updates tree state, and appends an attempt event. Returns the grading
// outcome.
func (rs *RunState) HandleAnswer(selected []string) bool {
	def := rs.Current()
	if def == nil {
		return false
	}

	correct := Grade(selected, *def)
	rs.LastCorrect = correct
	rs.Answered++
	if correct {
		rs.TotalCorrect++
	}
	rs.Outcomes = append(rs.Outcomes, QuizOutcome{
		Name:      def.Name,
		Principle: def.Principle,
		Correct:   correct,
	})

	now := time.Now()
	if inst := rs.Tree.GetByName(def.Name); inst != nil {
		inst.RecordAttempt(selected, correct, now)
	}

	if rs.Events != nil {
		_ = rs.Events.AppendAttempt(context.Background(), store.AttemptEventData{
			RunID:          rs.RunID,
			QuizName:       def.Name,
			Principle:      string(def.Principle),
			Selected:       selected,
			CorrectAnswers: def.Meta.CorrectAnswers,
			Correct:        correct,
			TimeMs:         int(now.Sub(rs.QuestionStartTime).Milliseconds()),
		})
	}

	rs.Phase = PhaseFeedback
	return correct
}

// Advance moves to the next quiz, or ends the run when none remain.
func (rs *RunState) Advance() {
	rs.Index++
	rs.QuestionStartTime = time.Now()
	if rs.Index >= len(rs.Quizzes) {
		rs.finish()
		return
	}
	rs.Phase = PhaseActive
}

// Served returns how many quizzes have been answered so far.
func (rs *RunState) Served() int {
	return rs.Answered
}

// Abort ends the run early, still emitting the end event for what was served.
func (rs *RunState) Abort() {
	if rs.Phase == PhaseSummary {
		return
	}
	rs.finish()
}

func (rs *RunState) finish() {
	rs.Phase = PhaseSummary

	if rs.Config.Snapshots != nil && rs.Answered > 0 {
		ctx := context.Background()
		if err := rs.Config.Snapshots.SaveCurrent(ctx, rs.Tree.SnapshotData()); err == nil {
			keep := rs.Config.SnapshotKeep
			if keep <= 0 {
				keep = SnapshotKeepDefault
			}
			_ = rs.Config.Snapshots.Prune(ctx, keep)
		}
	}

	if rs.Events != nil {
		_ = rs.Events.AppendRunEvent(context.Background(), store.RunEventData{
			RunID:         rs.RunID,
			Action:        "end",
			Scope:         rs.Scope,
			QuizzesServed: rs.Served(),
			CorrectCount:  rs.TotalCorrect,
			DurationSecs:  int(time.Since(rs.StartTime).Seconds()),
		})
	}
}
