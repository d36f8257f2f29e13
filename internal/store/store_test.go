package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Quizzes: map[string]*QuizStateData{
				"srp-1": {
					Name:           "srp-1",
					CorrectAnswers: []string{"B"},
					Attempts:       3,
					CorrectCount:   2,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	qs, ok := snap.Data.Quizzes["srp-1"]
	if !ok {
		t.Fatal("expected srp-1 in snapshot quizzes")
	}
	if qs.Attempts != 3 || qs.CorrectCount != 2 {
		t.Errorf("srp-1 stats = %d/%d, want 3/2", qs.CorrectCount, qs.Attempts)
	}
	if len(qs.CorrectAnswers) != 1 || qs.CorrectAnswers[0] != "B" {
		t.Errorf("srp-1 correct answers = %v, want [B]", qs.CorrectAnswers)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotNilQuizzesMap(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC(),
		Data:      SnapshotData{Version: 1, Quizzes: nil},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	// Callers must tolerate a nil map; it round-trips without error.
	if len(snap.Data.Quizzes) != 0 {
		t.Errorf("quizzes = %v, want empty", snap.Data.Quizzes)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after delete: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot after delete all")
	}
}

func TestSnapshotSaveCurrent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	data := SnapshotData{
		Version: SnapshotVersion,
		Quizzes: map[string]*QuizStateData{
			"ocp-1": {Name: "ocp-1", CorrectAnswers: []string{"A"}, Attempts: 1, CorrectCount: 1},
		},
	}
	if err := repo.SaveCurrent(ctx, data); err != nil {
		t.Fatalf("save current: %v", err)
	}
	if err := repo.SaveCurrent(ctx, data); err != nil {
		t.Fatalf("save current again: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	// Sequence comes from the global counter, so the second save wins.
	if snap.Sequence != 2 {
		t.Errorf("sequence = %d, want 2", snap.Sequence)
	}
	if snap.Timestamp.IsZero() {
		t.Error("expected timestamp to be stamped")
	}
	if _, ok := snap.Data.Quizzes["ocp-1"]; !ok {
		t.Error("expected ocp-1 in snapshot data")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAttemptAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{RunID: "run-1", QuizName: "srp-1", Principle: "srp", Selected: []string{"B"}, CorrectAnswers: []string{"B"}, Correct: true, TimeMs: 4200},
		{RunID: "run-1", QuizName: "srp-1", Principle: "srp", Selected: []string{"A"}, CorrectAnswers: []string{"B"}, Correct: false, TimeMs: 3100},
		{RunID: "run-2", QuizName: "srp-1", Principle: "srp", Selected: []string{"B"}, CorrectAnswers: []string{"B"}, Correct: true, TimeMs: 2900},
		{RunID: "run-2", QuizName: "dip-1", Principle: "dip", Selected: []string{"C"}, CorrectAnswers: []string{"C"}, Correct: true, TimeMs: 5000},
	}
	for i, a := range attempts {
		if err := events.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	acc, err := events.QuizAccuracy(ctx, "srp-1")
	if err != nil {
		t.Fatalf("quiz accuracy: %v", err)
	}
	want := 2.0 / 3.0
	if acc < want-0.001 || acc > want+0.001 {
		t.Errorf("accuracy = %f, want %f", acc, want)
	}

	// Unattempted quiz reports zero, not an error.
	acc, err = events.QuizAccuracy(ctx, "ocp-1")
	if err != nil {
		t.Fatalf("quiz accuracy (unattempted): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %f, want 0", acc)
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{RunID: "run-1", QuizName: "srp-1", Principle: "srp", Correct: true},
		{RunID: "run-1", QuizName: "srp-1", Principle: "srp", Correct: false},
		{RunID: "run-1", QuizName: "dip-1", Principle: "dip", Correct: true},
	}
	for i, a := range attempts {
		if err := events.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	stats, err := events.AttemptStats(ctx)
	if err != nil {
		t.Fatalf("attempt stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats len = %d, want 2", len(stats))
	}
	// Ordered by quiz name.
	if stats[0].QuizName != "dip-1" || stats[0].Attempts != 1 || stats[0].Correct != 1 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].QuizName != "srp-1" || stats[1].Attempts != 2 || stats[1].Correct != 1 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}

func TestRunEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendRunEvent(ctx, RunEventData{
		RunID:  "run-1",
		Action: "start",
		Scope:  "srp",
	})
	if err != nil {
		t.Fatalf("append run start: %v", err)
	}

	err = events.AppendRunEvent(ctx, RunEventData{
		RunID:         "run-1",
		Action:        "end",
		Scope:         "srp",
		QuizzesServed: 2,
		CorrectCount:  1,
		DurationSecs:  35,
	})
	if err != nil {
		t.Fatalf("append run end: %v", err)
	}

	count, err := s.Client().RunEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("run events = %d, want 2", count)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := events.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-20250514",
			Purpose:      "explanation",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    int64(900 + i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	got, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events len = %d, want 2", len(got))
	}

	one, err := events.GetLLMEvent(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("get llm event: %v", err)
	}
	if one == nil {
		t.Fatal("expected event")
	}
	if one.Provider != "anthropic" || one.Purpose != "explanation" {
		t.Errorf("event = %+v", one)
	}

	missing, err := events.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing llm event: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "deep-dive", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "deep-dive", InputTokens: 300, OutputTokens: 150, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "explanation", InputTokens: 40, OutputTokens: 20, LatencyMs: 400, Success: true},
	}
	for i, r := range reqs {
		if err := events.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	var deepDive *LLMUsageStats
	for i := range byPurpose {
		if byPurpose[i].Purpose == "deep-dive" {
			deepDive = &byPurpose[i]
		}
	}
	if deepDive == nil {
		t.Fatal("expected deep-dive aggregate")
	}
	if deepDive.Calls != 2 || deepDive.InputTokens != 400 || deepDive.OutputTokens != 200 {
		t.Errorf("deep-dive = %+v", deepDive)
	}
	if deepDive.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", deepDive.AvgLatencyMs)
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	for _, m := range byModel {
		if m.Model == "gpt-4o-mini" && m.Calls != 1 {
			t.Errorf("gpt-4o-mini calls = %d, want 1", m.Calls)
		}
	}
}
