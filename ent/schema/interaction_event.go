package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records a single learner interaction. Rows are append-only:
// they are never updated or deleted, and all derived statistics are recomputed
// from the full history.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at append time"),
		field.String("student_id").
			NotEmpty().
			Immutable().
			Comment("Student this interaction belongs to"),
		field.String("kind").
			NotEmpty().
			Immutable().
			Comment("theory_question, theory_test, practice_operation, expert_consult, or stage_switch"),
		field.JSON("payload", map[string]any{}).
			Optional().
			Immutable().
			Comment("Opaque structured data: topic, question text, operation, etc."),
		field.Bool("success").
			Optional().
			Nillable().
			Immutable().
			Comment("Outcome flag; unset for kinds where success is undefined"),
		field.Float("score").
			Optional().
			Nillable().
			Immutable().
			Comment("Numeric score when the interaction carries one"),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("student_id", "kind"),
	}
}
