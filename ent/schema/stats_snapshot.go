package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatsSnapshot persists the current aggregate learning statistics for a
// student alongside the event sequence they were computed at. Recomputation
// from the interaction log remains the source of truth; snapshots exist for
// external readers and fast display.
type StatsSnapshot struct {
	ent.Schema
}

func (StatsSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student the statistics belong to"),
		field.Int64("sequence").
			Comment("Event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Aggregate statistics as JSON"),
	}
}

func (StatsSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "timestamp"),
		index.Fields("sequence"),
	}
}
