package store

import (
	"context"
	"fmt"

	"soliddojo/ent"
	"soliddojo/ent/attemptevent"
	"soliddojo/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetQuizName(data.QuizName).
		SetPrinciple(data.Principle).
		SetSelected(data.Selected).
		SetCorrectAnswers(data.CorrectAnswers).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRunEvent(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetAction(data.Action).
		SetScope(data.Scope).
		SetQuizzesServed(data.QuizzesServed).
		SetCorrectAnswers(data.CorrectCount).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizAccuracy(ctx context.Context, quizName string) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.QuizName(quizName)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query quiz accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) AttemptStats(ctx context.Context) ([]QuizStats, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldQuizName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	byName := make(map[string]*QuizStats)
	var order []string
	for _, e := range events {
		st, ok := byName[e.QuizName]
		if !ok {
			st = &QuizStats{QuizName: e.QuizName}
			byName[e.QuizName] = st
			order = append(order, e.QuizName)
		}
		st.Attempts++
		if e.Correct {
			st.Correct++
		}
	}

	result := make([]QuizStats, 0, len(order))
	for _, name := range order {
		result = append(result, *byName[name])
	}
	return result, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	result := make([]LLMRequestEvent, 0, len(events))
	for _, e := range events {
		result = append(result, entLLMEventToEvent(e))
	}
	return result, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	out := entLLMEventToEvent(e)
	return &out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldPurpose)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	latency := make(map[string]int64)
	var order []string
	for _, e := range events {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			order = append(order, e.Purpose)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		latency[e.Purpose] += e.LatencyMs
	}

	result := make([]LLMUsageStats, 0, len(order))
	for _, p := range order {
		st := byPurpose[p]
		st.AvgLatencyMs = latency[p] / int64(st.Calls)
		result = append(result, *st)
	}
	return result, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldModel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	var order []string
	for _, e := range events {
		mu, ok := byModel[e.Model]
		if !ok {
			mu = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = mu
			order = append(order, e.Model)
		}
		mu.Calls++
		mu.InputTokens += e.InputTokens
		mu.OutputTokens += e.OutputTokens
	}

	result := make([]LLMModelUsage, 0, len(order))
	for _, m := range order {
		result = append(result, *byModel[m])
	}
	return result, nil
}

func entLLMEventToEvent(e *ent.LLMRequestEvent) LLMRequestEvent {
	return LLMRequestEvent{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
