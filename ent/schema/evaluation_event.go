package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent is the append-only audit trail of computed evaluation
// results, kept per student for trend analysis.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Immutable().
			Comment("Student the evaluation was computed for"),
		field.String("kind").
			NotEmpty().
			Immutable().
			Comment("theory, practice, or overall"),
		field.Float("theory_score").
			Default(0).
			Immutable().
			Comment("Theory component (0-100, zero when not applicable)"),
		field.Float("practice_score").
			Default(0).
			Immutable().
			Comment("Practice component (0-100, zero when not applicable)"),
		field.Float("overall_score").
			Default(0).
			Immutable().
			Comment("Weighted overall (0-100, zero for single-component kinds)"),
		field.String("grade").
			NotEmpty().
			Immutable().
			Comment("Grade band label"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("student_id", "kind"),
	}
}
