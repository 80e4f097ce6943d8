// Code generated by ent, DO NOT EDIT.

package trainingstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trainingstate type in the database.
	Label = "training_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldTheoryScore holds the string denoting the theory_score field in the database.
	FieldTheoryScore = "theory_score"
	// FieldPracticeScore holds the string denoting the practice_score field in the database.
	FieldPracticeScore = "practice_score"
	// FieldTheoryCompleted holds the string denoting the theory_completed field in the database.
	FieldTheoryCompleted = "theory_completed"
	// FieldPracticeCompleted holds the string denoting the practice_completed field in the database.
	FieldPracticeCompleted = "practice_completed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the trainingstate in the database.
	Table = "training_states"
)

// Columns holds all SQL columns for trainingstate fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldStage,
	FieldTheoryScore,
	FieldPracticeScore,
	FieldTheoryCompleted,
	FieldPracticeCompleted,
	FieldCreatedAt,
	FieldLastUpdated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// DefaultStage holds the default value on creation for the "stage" field.
	DefaultStage string
	// DefaultTheoryCompleted holds the default value on creation for the "theory_completed" field.
	DefaultTheoryCompleted bool
	// DefaultPracticeCompleted holds the default value on creation for the "practice_completed" field.
	DefaultPracticeCompleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the TrainingState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByTheoryScore orders the results by the theory_score field.
func ByTheoryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheoryScore, opts...).ToFunc()
}

// ByPracticeScore orders the results by the practice_score field.
func ByPracticeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeScore, opts...).ToFunc()
}

// ByTheoryCompleted orders the results by the theory_completed field.
func ByTheoryCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheoryCompleted, opts...).ToFunc()
}

// ByPracticeCompleted orders the results by the practice_completed field.
func ByPracticeCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCompleted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
