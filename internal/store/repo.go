package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuizStateData is the persisted form of one quiz instance.
type QuizStateData struct {
	Name            string   `json:"name"`
	CorrectAnswers  []string `json:"correct_answers"`
	SelectedAnswers []string `json:"selected_answers,omitempty"`
	Attempts        int      `json:"attempts"`
	CorrectCount    int      `json:"correct_count"`
	LastAttemptAt   string   `json:"last_attempt_at,omitempty"` // RFC3339
}

// SnapshotVersion is the current snapshot data format version.
const SnapshotVersion = 1

// SnapshotData captures the full quiz-progress state at a point in time.
// Quizzes maps quiz name to its persisted instance state. The field may be
// nil in snapshots written by older builds or corrupted by hand-editing;
// readers must treat a nil map as empty rather than fail.
type SnapshotData struct {
	Version int                       `json:"version"`
	Quizzes map[string]*QuizStateData `json:"quizzes"`
}

// Snapshot represents a point-in-time capture of quiz-progress state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages quiz-progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// SaveCurrent stores data as a new snapshot stamped with the next
	// global sequence number and the current time.
	SaveCurrent(ctx context.Context, data SnapshotData) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// DeleteAll removes every snapshot. Used by `soliddojo reset`.
	DeleteAll(ctx context.Context) (int, error)
}

// AttemptEventData captures the data for a single quiz attempt.
type AttemptEventData struct {
	RunID          string
	QuizName       string
	Principle      string
	Selected       []string
	CorrectAnswers []string
	Correct        bool
	TimeMs         int
}

// RunEventData captures a quiz-run lifecycle event.
type RunEventData struct {
	RunID         string
	Action        string // "start" or "end"
	Scope         string
	QuizzesServed int
	CorrectCount  int
	DurationSecs  int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is the read model for a persisted LLM request event.
type LLMRequestEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QuizStats summarizes attempt history for one quiz.
type QuizStats struct {
	QuizName string
	Attempts int
	Correct  int
}

// LLMUsageStats aggregates LLM calls by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a quiz attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendRunEvent records a run start or end.
	AppendRunEvent(ctx context.Context, data RunEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuizAccuracy returns the all-time accuracy for a quiz (0 when unattempted).
	QuizAccuracy(ctx context.Context, quizName string) (float64, error)

	// AttemptStats returns per-quiz attempt totals across all history.
	AttemptStats(ctx context.Context) ([]QuizStats, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single LLM request event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model, for cost estimates.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
