package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"soliddojo/internal/llm"
)

// Service generates quiz answer deep-dives asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async explanation generation. Only one explanation is
// in-flight at a time; a new request replaces the pending one.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		exp, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = exp
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending explanation if one is ready.
// Returns (nil, false) while generation is still in flight.
// After consumption, the pending slot is cleared.
func (s *Service) Consume() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	exp := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return exp, exp != nil
}

// Err returns the error from the most recent completed generation,
// cleared on Consume.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type explanationOutput struct {
	Why           string `json:"why"`
	Misconception string `json:"misconception"`
	GoExample     string `json:"go_example"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeDeepDive)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		QuizName:      input.Quiz.Name,
		Why:           out.Why,
		Misconception: out.Misconception,
		GoExample:     out.GoExample,
	}, nil
}
