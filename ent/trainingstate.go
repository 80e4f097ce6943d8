// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yclin/fabtrainer/ent/trainingstate"
)

// TrainingState is the model entity for the TrainingState schema.
type TrainingState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning student; state never moves between students
	StudentID string `json:"student_id,omitempty"`
	// theory, practice, or complete
	Stage string `json:"stage,omitempty"`
	// Latest theory test score (0-100), unset until computed
	TheoryScore *float64 `json:"theory_score,omitempty"`
	// Latest practice session score (0-100), unset until computed
	PracticeScore *float64 `json:"practice_score,omitempty"`
	// TheoryCompleted holds the value of the "theory_completed" field.
	TheoryCompleted bool `json:"theory_completed,omitempty"`
	// PracticeCompleted holds the value of the "practice_completed" field.
	PracticeCompleted bool `json:"practice_completed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingstate.FieldTheoryCompleted, trainingstate.FieldPracticeCompleted:
			values[i] = new(sql.NullBool)
		case trainingstate.FieldTheoryScore, trainingstate.FieldPracticeScore:
			values[i] = new(sql.NullFloat64)
		case trainingstate.FieldID:
			values[i] = new(sql.NullInt64)
		case trainingstate.FieldStudentID, trainingstate.FieldStage:
			values[i] = new(sql.NullString)
		case trainingstate.FieldCreatedAt, trainingstate.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingState fields.
func (_m *TrainingState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trainingstate.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case trainingstate.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case trainingstate.FieldTheoryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theory_score", values[i])
			} else if value.Valid {
				_m.TheoryScore = new(float64)
				*_m.TheoryScore = value.Float64
			}
		case trainingstate.FieldPracticeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_score", values[i])
			} else if value.Valid {
				_m.PracticeScore = new(float64)
				*_m.PracticeScore = value.Float64
			}
		case trainingstate.FieldTheoryCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field theory_completed", values[i])
			} else if value.Valid {
				_m.TheoryCompleted = value.Bool
			}
		case trainingstate.FieldPracticeCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field practice_completed", values[i])
			} else if value.Valid {
				_m.PracticeCompleted = value.Bool
			}
		case trainingstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case trainingstate.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingState.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrainingState.
// Note that you need to call TrainingState.Unwrap() before calling this method if this TrainingState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingState) Update() *TrainingStateUpdateOne {
	return NewTrainingStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingState) Unwrap() *TrainingState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingState) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	if v := _m.TheoryScore; v != nil {
		builder.WriteString("theory_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PracticeScore; v != nil {
		builder.WriteString("practice_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("theory_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TheoryCompleted))
	builder.WriteString(", ")
	builder.WriteString("practice_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCompleted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrainingStates is a parsable slice of TrainingState.
type TrainingStates []*TrainingState
