// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yclin/fabtrainer/ent/evaluationevent"
)

// EvaluationEvent is the model entity for the EvaluationEvent schema.
type EvaluationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Append order shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Student the evaluation was computed for
	StudentID string `json:"student_id,omitempty"`
	// theory, practice, or overall
	Kind string `json:"kind,omitempty"`
	// Theory component (0-100, zero when not applicable)
	TheoryScore float64 `json:"theory_score,omitempty"`
	// Practice component (0-100, zero when not applicable)
	PracticeScore float64 `json:"practice_score,omitempty"`
	// Weighted overall (0-100, zero for single-component kinds)
	OverallScore float64 `json:"overall_score,omitempty"`
	// Grade band label
	Grade        string `json:"grade,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldTheoryScore, evaluationevent.FieldPracticeScore, evaluationevent.FieldOverallScore:
			values[i] = new(sql.NullFloat64)
		case evaluationevent.FieldID, evaluationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case evaluationevent.FieldStudentID, evaluationevent.FieldKind, evaluationevent.FieldGrade:
			values[i] = new(sql.NullString)
		case evaluationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationEvent fields.
func (_m *EvaluationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case evaluationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case evaluationevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case evaluationevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case evaluationevent.FieldTheoryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theory_score", values[i])
			} else if value.Valid {
				_m.TheoryScore = value.Float64
			}
		case evaluationevent.FieldPracticeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_score", values[i])
			} else if value.Valid {
				_m.PracticeScore = value.Float64
			}
		case evaluationevent.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case evaluationevent.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationEvent.
// Note that you need to call EvaluationEvent.Unwrap() before calling this method if this EvaluationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationEvent) Update() *EvaluationEventUpdateOne {
	return NewEvaluationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationEvent) Unwrap() *EvaluationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("theory_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TheoryScore))
	builder.WriteString(", ")
	builder.WriteString("practice_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeScore))
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationEvents is a parsable slice of EvaluationEvent.
type EvaluationEvents []*EvaluationEvent
