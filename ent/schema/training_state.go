package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingState holds the per-student stage machine state: one row per
// student, updated in place on score submission and stage switch.
type TrainingState struct {
	ent.Schema
}

func (TrainingState) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Owning student; state never moves between students"),
		field.String("stage").
			Default("theory").
			Comment("theory, practice, or complete"),
		field.Float("theory_score").
			Optional().
			Nillable().
			Comment("Latest theory test score (0-100), unset until computed"),
		field.Float("practice_score").
			Optional().
			Nillable().
			Comment("Latest practice session score (0-100), unset until computed"),
		field.Bool("theory_completed").
			Default(false),
		field.Bool("practice_completed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (TrainingState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage"),
	}
}
