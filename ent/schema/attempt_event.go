package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single quiz attempt within a run.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Links to RunEvent"),
		field.String("quiz_name").
			NotEmpty().
			Comment("Catalog name of the quiz"),
		field.String("principle").
			NotEmpty().
			Comment("SOLID principle the quiz belongs to"),
		field.JSON("selected", []string{}).
			Comment("Options the learner selected"),
		field.JSON("correct_answers", []string{}).
			Comment("The catalog's correct-answer set at attempt time"),
		field.Bool("correct").
			Comment("Whether the selection matched the correct set"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("quiz_name"),
		index.Fields("correct"),
	}
}
