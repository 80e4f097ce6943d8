// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evaluationevent type in the database.
	Label = "evaluation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTheoryScore holds the string denoting the theory_score field in the database.
	FieldTheoryScore = "theory_score"
	// FieldPracticeScore holds the string denoting the practice_score field in the database.
	FieldPracticeScore = "practice_score"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// Table holds the table name of the evaluationevent in the database.
	Table = "evaluation_events"
)

// Columns holds all SQL columns for evaluationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldKind,
	FieldTheoryScore,
	FieldPracticeScore,
	FieldOverallScore,
	FieldGrade,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultTheoryScore holds the default value on creation for the "theory_score" field.
	DefaultTheoryScore float64
	// DefaultPracticeScore holds the default value on creation for the "practice_score" field.
	DefaultPracticeScore float64
	// DefaultOverallScore holds the default value on creation for the "overall_score" field.
	DefaultOverallScore float64
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
)

// OrderOption defines the ordering options for the EvaluationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTheoryScore orders the results by the theory_score field.
func ByTheoryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheoryScore, opts...).ToFunc()
}

// ByPracticeScore orders the results by the practice_score field.
func ByPracticeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeScore, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}
