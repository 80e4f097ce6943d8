// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvaluationEventsColumns holds the columns for the "evaluation_events" table.
	EvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "theory_score", Type: field.TypeFloat64, Default: 0},
		{Name: "practice_score", Type: field.TypeFloat64, Default: 0},
		{Name: "overall_score", Type: field.TypeFloat64, Default: 0},
		{Name: "grade", Type: field.TypeString},
	}
	// EvaluationEventsTable holds the schema information for the "evaluation_events" table.
	EvaluationEventsTable = &schema.Table{
		Name:       "evaluation_events",
		Columns:    EvaluationEventsColumns,
		PrimaryKey: []*schema.Column{EvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[1]},
			},
			{
				Name:    "evaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[2]},
			},
			{
				Name:    "evaluationevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[3]},
			},
			{
				Name:    "evaluationevent_student_id_kind",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[3], EvaluationEventsColumns[4]},
			},
		},
	}
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[4]},
			},
			{
				Name:    "interactionevent_student_id_kind",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[4], InteractionEventsColumns[5]},
			},
		},
	}
	// StatsSnapshotsColumns holds the columns for the "stats_snapshots" table.
	StatsSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// StatsSnapshotsTable holds the schema information for the "stats_snapshots" table.
	StatsSnapshotsTable = &schema.Table{
		Name:       "stats_snapshots",
		Columns:    StatsSnapshotsColumns,
		PrimaryKey: []*schema.Column{StatsSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statssnapshot_student_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StatsSnapshotsColumns[1], StatsSnapshotsColumns[3]},
			},
			{
				Name:    "statssnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{StatsSnapshotsColumns[2]},
			},
		},
	}
	// TrainingStatesColumns holds the columns for the "training_states" table.
	TrainingStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeString, Default: "theory"},
		{Name: "theory_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "practice_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "theory_completed", Type: field.TypeBool, Default: false},
		{Name: "practice_completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// TrainingStatesTable holds the schema information for the "training_states" table.
	TrainingStatesTable = &schema.Table{
		Name:       "training_states",
		Columns:    TrainingStatesColumns,
		PrimaryKey: []*schema.Column{TrainingStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trainingstate_stage",
				Unique:  false,
				Columns: []*schema.Column{TrainingStatesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvaluationEventsTable,
		InteractionEventsTable,
		StatsSnapshotsTable,
		TrainingStatesTable,
	}
)

func init() {
}
