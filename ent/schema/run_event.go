package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent records quiz-run lifecycle events (start/end).
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID grouping events in a run"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("scope").
			Default("").
			Comment("Article slug or principle the run covered (on start only)"),
		field.Int("quizzes_served").
			Default(0).
			Comment("Total quizzes (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("action"),
	}
}
