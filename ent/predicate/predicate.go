// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EvaluationEvent is the predicate function for evaluationevent builders.
type EvaluationEvent func(*sql.Selector)

// InteractionEvent is the predicate function for interactionevent builders.
type InteractionEvent func(*sql.Selector)

// StatsSnapshot is the predicate function for statssnapshot builders.
type StatsSnapshot func(*sql.Selector)

// TrainingState is the predicate function for trainingstate builders.
type TrainingState func(*sql.Selector)
