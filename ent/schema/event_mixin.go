package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the ordering fields every append-only table shares.
// Interaction and evaluation events live in separate tables, so the
// ledger's chronological view depends on the sequence being unique
// across all of them; both fields are immutable once written.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Append order shared across all event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock time the event was appended"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
