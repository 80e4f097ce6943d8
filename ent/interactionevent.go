// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yclin/fabtrainer/ent/interactionevent"
)

// InteractionEvent is the model entity for the InteractionEvent schema.
type InteractionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Append order shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned at append time
	RecordID string `json:"record_id,omitempty"`
	// Student this interaction belongs to
	StudentID string `json:"student_id,omitempty"`
	// theory_question, theory_test, practice_operation, expert_consult, or stage_switch
	Kind string `json:"kind,omitempty"`
	// Opaque structured data: topic, question text, operation, etc.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Outcome flag; unset for kinds where success is undefined
	Success *bool `json:"success,omitempty"`
	// Numeric score when the interaction carries one
	Score        *float64 `json:"score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InteractionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldPayload:
			values[i] = new([]byte)
		case interactionevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case interactionevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case interactionevent.FieldID, interactionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case interactionevent.FieldRecordID, interactionevent.FieldStudentID, interactionevent.FieldKind:
			values[i] = new(sql.NullString)
		case interactionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InteractionEvent fields.
func (_m *InteractionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interactionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interactionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interactionevent.FieldRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value.Valid {
				_m.RecordID = value.String
			}
		case interactionevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case interactionevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case interactionevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case interactionevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = new(bool)
				*_m.Success = value.Bool
			}
		case interactionevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float64)
				*_m.Score = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InteractionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InteractionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InteractionEvent.
// Note that you need to call InteractionEvent.Unwrap() before calling this method if this InteractionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InteractionEvent) Update() *InteractionEventUpdateOne {
	return NewInteractionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InteractionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InteractionEvent) Unwrap() *InteractionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InteractionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InteractionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InteractionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("record_id=")
	builder.WriteString(_m.RecordID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	if v := _m.Success; v != nil {
		builder.WriteString("success=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// InteractionEvents is a parsable slice of InteractionEvent.
type InteractionEvents []*InteractionEvent
