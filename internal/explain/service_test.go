package explain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"soliddojo/internal/catalog"
	"soliddojo/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"why": "The type has two reasons to change: billing rules and report formatting. Splitting them means a change to one cannot break the other.",
		"misconception": "Counting methods measures size, not responsibility. A type with one method can still serve two masters.",
		"go_example": "type Invoice struct{}\ntype InvoiceRenderer struct{}"
	}`)
}

func testQuiz(t *testing.T) catalog.QuizDefinition {
	t.Helper()
	defs := catalog.All()
	if len(defs) == 0 {
		t.Fatal("no quizzes in catalog")
	}
	return defs[0]
}

func consumeWithin(t *testing.T, svc *Service, d time.Duration) (*Explanation, bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if exp, ok := svc.Consume(); ok {
			return exp, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	def := testQuiz(t)
	svc.Request(t.Context(), Input{
		Quiz:     def,
		Selected: []string{"A"},
		Correct:  false,
	})

	exp, ok := consumeWithin(t, svc, 5*time.Second)
	if !ok || exp == nil {
		t.Fatal("expected explanation to be generated")
	}
	if exp.QuizName != def.Name {
		t.Errorf("quiz name = %q, want %q", exp.QuizName, def.Name)
	}
	if exp.Why == "" {
		t.Error("expected non-empty why")
	}
	if exp.Misconception == "" {
		t.Error("expected non-empty misconception for a wrong answer fixture")
	}
	if exp.GoExample == "" {
		t.Error("expected non-empty go example")
	}

	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

// purposeCapture records the purpose label each request carries.
type purposeCapture struct {
	llm.Provider
	purpose string
}

func (p *purposeCapture) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.purpose = llm.PurposeFrom(ctx)
	return p.Provider.Generate(ctx, req)
}

func TestService_TagsRequestsAsDeepDive(t *testing.T) {
	capture := &purposeCapture{
		Provider: llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()}),
	}
	svc := NewService(capture, DefaultConfig())

	svc.Request(t.Context(), Input{Quiz: testQuiz(t)})

	if _, ok := consumeWithin(t, svc, 5*time.Second); !ok {
		t.Fatal("expected explanation")
	}
	if capture.purpose != llm.PurposeDeepDive {
		t.Errorf("purpose = %q, want %q", capture.purpose, llm.PurposeDeepDive)
	}
}

func TestService_ConsumeClearsPending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Quiz: testQuiz(t)})

	if _, ok := consumeWithin(t, svc, 5*time.Second); !ok {
		t.Fatal("expected explanation")
	}
	if _, ok := svc.Consume(); ok {
		t.Error("second consume should return nothing")
	}
}

func TestService_GenerationError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("provider down"),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Quiz: testQuiz(t)})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if svc.Err() != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if svc.Err() == nil {
		t.Fatal("expected generation error to surface")
	}
	if exp, ok := svc.Consume(); ok || exp != nil {
		t.Error("errored generation should not yield an explanation")
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Quiz: testQuiz(t)})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if svc.Err() != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if svc.Err() == nil {
		t.Fatal("expected parse error")
	}
}
