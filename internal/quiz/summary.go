package quiz

import (
	"time"

	"soliddojo/internal/catalog"
)

// PrincipleResult aggregates run results for one principle.
type PrincipleResult struct {
	Principle catalog.Principle
	Answered  int
	Correct   int
}

// RunSummary holds the data displayed on the summary screen.
type RunSummary struct {
	Scope            string
	Duration         time.Duration
	Answered         int
	Correct          int
	Accuracy         float64
	PrincipleResults []PrincipleResult
}

// BuildSummary creates a RunSummary from a finished run.
func BuildSummary(rs *RunState) *RunSummary {
	byPrinciple := make(map[catalog.Principle]*PrincipleResult)
	var order []catalog.Principle

	for _, out := range rs.Outcomes {
		pr, ok := byPrinciple[out.Principle]
		if !ok {
			pr = &PrincipleResult{Principle: out.Principle}
			byPrinciple[out.Principle] = pr
			order = append(order, out.Principle)
		}
		pr.Answered++
		if out.Correct {
			pr.Correct++
		}
	}

	var accuracy float64
	if rs.Answered > 0 {
		accuracy = float64(rs.TotalCorrect) / float64(rs.Answered)
	}

	results := make([]PrincipleResult, 0, len(order))
	for _, p := range order {
		results = append(results, *byPrinciple[p])
	}

	return &RunSummary{
		Scope:            rs.Scope,
		Duration:         time.Since(rs.StartTime),
		Answered:         rs.Answered,
		Correct:          rs.TotalCorrect,
		Accuracy:         accuracy,
		PrincipleResults: results,
	}
}
