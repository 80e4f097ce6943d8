// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yclin/fabtrainer/ent/evaluationevent"
	"github.com/yclin/fabtrainer/ent/interactionevent"
	"github.com/yclin/fabtrainer/ent/predicate"
	"github.com/yclin/fabtrainer/ent/statssnapshot"
	"github.com/yclin/fabtrainer/ent/trainingstate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvaluationEvent  = "EvaluationEvent"
	TypeInteractionEvent = "InteractionEvent"
	TypeStatsSnapshot    = "StatsSnapshot"
	TypeTrainingState    = "TrainingState"
)

// EvaluationEventMutation represents an operation that mutates the EvaluationEvent nodes in the graph.
type EvaluationEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	student_id        *string
	kind              *string
	theory_score      *float64
	addtheory_score   *float64
	practice_score    *float64
	addpractice_score *float64
	overall_score     *float64
	addoverall_score  *float64
	grade             *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*EvaluationEvent, error)
	predicates        []predicate.EvaluationEvent
}

var _ ent.Mutation = (*EvaluationEventMutation)(nil)

// evaluationeventOption allows management of the mutation configuration using functional options.
type evaluationeventOption func(*EvaluationEventMutation)

// newEvaluationEventMutation creates new mutation for the EvaluationEvent entity.
func newEvaluationEventMutation(c config, op Op, opts ...evaluationeventOption) *EvaluationEventMutation {
	m := &EvaluationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationEventID sets the ID field of the mutation.
func withEvaluationEventID(id int) evaluationeventOption {
	return func(m *EvaluationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationEvent
		)
		m.oldValue = func(ctx context.Context) (*EvaluationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationEvent sets the old EvaluationEvent of the mutation.
func withEvaluationEvent(node *EvaluationEvent) evaluationeventOption {
	return func(m *EvaluationEventMutation) {
		m.oldValue = func(context.Context) (*EvaluationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *EvaluationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EvaluationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EvaluationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EvaluationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EvaluationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EvaluationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EvaluationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EvaluationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetStudentID sets the "student_id" field.
func (m *EvaluationEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *EvaluationEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *EvaluationEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetKind sets the "kind" field.
func (m *EvaluationEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EvaluationEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EvaluationEventMutation) ResetKind() {
	m.kind = nil
}

// SetTheoryScore sets the "theory_score" field.
func (m *EvaluationEventMutation) SetTheoryScore(f float64) {
	m.theory_score = &f
	m.addtheory_score = nil
}

// TheoryScore returns the value of the "theory_score" field in the mutation.
func (m *EvaluationEventMutation) TheoryScore() (r float64, exists bool) {
	v := m.theory_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTheoryScore returns the old "theory_score" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldTheoryScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheoryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheoryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheoryScore: %w", err)
	}
	return oldValue.TheoryScore, nil
}

// AddTheoryScore adds f to the "theory_score" field.
func (m *EvaluationEventMutation) AddTheoryScore(f float64) {
	if m.addtheory_score != nil {
		*m.addtheory_score += f
	} else {
		m.addtheory_score = &f
	}
}

// AddedTheoryScore returns the value that was added to the "theory_score" field in this mutation.
func (m *EvaluationEventMutation) AddedTheoryScore() (r float64, exists bool) {
	v := m.addtheory_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTheoryScore resets all changes to the "theory_score" field.
func (m *EvaluationEventMutation) ResetTheoryScore() {
	m.theory_score = nil
	m.addtheory_score = nil
}

// SetPracticeScore sets the "practice_score" field.
func (m *EvaluationEventMutation) SetPracticeScore(f float64) {
	m.practice_score = &f
	m.addpractice_score = nil
}

// PracticeScore returns the value of the "practice_score" field in the mutation.
func (m *EvaluationEventMutation) PracticeScore() (r float64, exists bool) {
	v := m.practice_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeScore returns the old "practice_score" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldPracticeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeScore: %w", err)
	}
	return oldValue.PracticeScore, nil
}

// AddPracticeScore adds f to the "practice_score" field.
func (m *EvaluationEventMutation) AddPracticeScore(f float64) {
	if m.addpractice_score != nil {
		*m.addpractice_score += f
	} else {
		m.addpractice_score = &f
	}
}

// AddedPracticeScore returns the value that was added to the "practice_score" field in this mutation.
func (m *EvaluationEventMutation) AddedPracticeScore() (r float64, exists bool) {
	v := m.addpractice_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeScore resets all changes to the "practice_score" field.
func (m *EvaluationEventMutation) ResetPracticeScore() {
	m.practice_score = nil
	m.addpractice_score = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *EvaluationEventMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *EvaluationEventMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *EvaluationEventMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *EvaluationEventMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *EvaluationEventMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetGrade sets the "grade" field.
func (m *EvaluationEventMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *EvaluationEventMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *EvaluationEventMutation) ResetGrade() {
	m.grade = nil
}

// Where appends a list predicates to the EvaluationEventMutation builder.
func (m *EvaluationEventMutation) Where(ps ...predicate.EvaluationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationEvent).
func (m *EvaluationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, evaluationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, evaluationevent.FieldTimestamp)
	}
	if m.student_id != nil {
		fields = append(fields, evaluationevent.FieldStudentID)
	}
	if m.kind != nil {
		fields = append(fields, evaluationevent.FieldKind)
	}
	if m.theory_score != nil {
		fields = append(fields, evaluationevent.FieldTheoryScore)
	}
	if m.practice_score != nil {
		fields = append(fields, evaluationevent.FieldPracticeScore)
	}
	if m.overall_score != nil {
		fields = append(fields, evaluationevent.FieldOverallScore)
	}
	if m.grade != nil {
		fields = append(fields, evaluationevent.FieldGrade)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.Sequence()
	case evaluationevent.FieldTimestamp:
		return m.Timestamp()
	case evaluationevent.FieldStudentID:
		return m.StudentID()
	case evaluationevent.FieldKind:
		return m.Kind()
	case evaluationevent.FieldTheoryScore:
		return m.TheoryScore()
	case evaluationevent.FieldPracticeScore:
		return m.PracticeScore()
	case evaluationevent.FieldOverallScore:
		return m.OverallScore()
	case evaluationevent.FieldGrade:
		return m.Grade()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.OldSequence(ctx)
	case evaluationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case evaluationevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case evaluationevent.FieldKind:
		return m.OldKind(ctx)
	case evaluationevent.FieldTheoryScore:
		return m.OldTheoryScore(ctx)
	case evaluationevent.FieldPracticeScore:
		return m.OldPracticeScore(ctx)
	case evaluationevent.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case evaluationevent.FieldGrade:
		return m.OldGrade(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case evaluationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case evaluationevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case evaluationevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case evaluationevent.FieldTheoryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheoryScore(v)
		return nil
	case evaluationevent.FieldPracticeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeScore(v)
		return nil
	case evaluationevent.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case evaluationevent.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, evaluationevent.FieldSequence)
	}
	if m.addtheory_score != nil {
		fields = append(fields, evaluationevent.FieldTheoryScore)
	}
	if m.addpractice_score != nil {
		fields = append(fields, evaluationevent.FieldPracticeScore)
	}
	if m.addoverall_score != nil {
		fields = append(fields, evaluationevent.FieldOverallScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.AddedSequence()
	case evaluationevent.FieldTheoryScore:
		return m.AddedTheoryScore()
	case evaluationevent.FieldPracticeScore:
		return m.AddedPracticeScore()
	case evaluationevent.FieldOverallScore:
		return m.AddedOverallScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case evaluationevent.FieldTheoryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTheoryScore(v)
		return nil
	case evaluationevent.FieldPracticeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeScore(v)
		return nil
	case evaluationevent.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvaluationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationEventMutation) ResetField(name string) error {
	switch name {
	case evaluationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case evaluationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case evaluationevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case evaluationevent.FieldKind:
		m.ResetKind()
		return nil
	case evaluationevent.FieldTheoryScore:
		m.ResetTheoryScore()
		return nil
	case evaluationevent.FieldPracticeScore:
		m.ResetPracticeScore()
		return nil
	case evaluationevent.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case evaluationevent.FieldGrade:
		m.ResetGrade()
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvaluationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvaluationEvent edge %s", name)
}

// InteractionEventMutation represents an operation that mutates the InteractionEvent nodes in the graph.
type InteractionEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	record_id     *string
	student_id    *string
	kind          *string
	payload       *map[string]interface{}
	success       *bool
	score         *float64
	addscore      *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InteractionEvent, error)
	predicates    []predicate.InteractionEvent
}

var _ ent.Mutation = (*InteractionEventMutation)(nil)

// interactioneventOption allows management of the mutation configuration using functional options.
type interactioneventOption func(*InteractionEventMutation)

// newInteractionEventMutation creates new mutation for the InteractionEvent entity.
func newInteractionEventMutation(c config, op Op, opts ...interactioneventOption) *InteractionEventMutation {
	m := &InteractionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInteractionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionEventID sets the ID field of the mutation.
func withInteractionEventID(id int) interactioneventOption {
	return func(m *InteractionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InteractionEvent
		)
		m.oldValue = func(ctx context.Context) (*InteractionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InteractionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteractionEvent sets the old InteractionEvent of the mutation.
func withInteractionEvent(node *InteractionEvent) interactioneventOption {
	return func(m *InteractionEventMutation) {
		m.oldValue = func(context.Context) (*InteractionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InteractionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *InteractionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *InteractionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *InteractionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *InteractionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *InteractionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *InteractionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InteractionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InteractionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRecordID sets the "record_id" field.
func (m *InteractionEventMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *InteractionEventMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *InteractionEventMutation) ResetRecordID() {
	m.record_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *InteractionEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *InteractionEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *InteractionEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetKind sets the "kind" field.
func (m *InteractionEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *InteractionEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *InteractionEventMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *InteractionEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InteractionEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *InteractionEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[interactionevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *InteractionEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *InteractionEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, interactionevent.FieldPayload)
}

// SetSuccess sets the "success" field.
func (m *InteractionEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *InteractionEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldSuccess(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ClearSuccess clears the value of the "success" field.
func (m *InteractionEventMutation) ClearSuccess() {
	m.success = nil
	m.clearedFields[interactionevent.FieldSuccess] = struct{}{}
}

// SuccessCleared returns if the "success" field was cleared in this mutation.
func (m *InteractionEventMutation) SuccessCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldSuccess]
	return ok
}

// ResetSuccess resets all changes to the "success" field.
func (m *InteractionEventMutation) ResetSuccess() {
	m.success = nil
	delete(m.clearedFields, interactionevent.FieldSuccess)
}

// SetScore sets the "score" field.
func (m *InteractionEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *InteractionEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *InteractionEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *InteractionEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *InteractionEventMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[interactionevent.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *InteractionEventMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *InteractionEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, interactionevent.FieldScore)
}

// Where appends a list predicates to the InteractionEventMutation builder.
func (m *InteractionEventMutation) Where(ps ...predicate.InteractionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InteractionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InteractionEvent).
func (m *InteractionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, interactionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, interactionevent.FieldTimestamp)
	}
	if m.record_id != nil {
		fields = append(fields, interactionevent.FieldRecordID)
	}
	if m.student_id != nil {
		fields = append(fields, interactionevent.FieldStudentID)
	}
	if m.kind != nil {
		fields = append(fields, interactionevent.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, interactionevent.FieldPayload)
	}
	if m.success != nil {
		fields = append(fields, interactionevent.FieldSuccess)
	}
	if m.score != nil {
		fields = append(fields, interactionevent.FieldScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldSequence:
		return m.Sequence()
	case interactionevent.FieldTimestamp:
		return m.Timestamp()
	case interactionevent.FieldRecordID:
		return m.RecordID()
	case interactionevent.FieldStudentID:
		return m.StudentID()
	case interactionevent.FieldKind:
		return m.Kind()
	case interactionevent.FieldPayload:
		return m.Payload()
	case interactionevent.FieldSuccess:
		return m.Success()
	case interactionevent.FieldScore:
		return m.Score()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interactionevent.FieldSequence:
		return m.OldSequence(ctx)
	case interactionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case interactionevent.FieldRecordID:
		return m.OldRecordID(ctx)
	case interactionevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case interactionevent.FieldKind:
		return m.OldKind(ctx)
	case interactionevent.FieldPayload:
		return m.OldPayload(ctx)
	case interactionevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case interactionevent.FieldScore:
		return m.OldScore(ctx)
	}
	return nil, fmt.Errorf("unknown InteractionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case interactionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case interactionevent.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case interactionevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case interactionevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case interactionevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case interactionevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case interactionevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, interactionevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, interactionevent.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldSequence:
		return m.AddedSequence()
	case interactionevent.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case interactionevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interactionevent.FieldPayload) {
		fields = append(fields, interactionevent.FieldPayload)
	}
	if m.FieldCleared(interactionevent.FieldSuccess) {
		fields = append(fields, interactionevent.FieldSuccess)
	}
	if m.FieldCleared(interactionevent.FieldScore) {
		fields = append(fields, interactionevent.FieldScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionEventMutation) ClearField(name string) error {
	switch name {
	case interactionevent.FieldPayload:
		m.ClearPayload()
		return nil
	case interactionevent.FieldSuccess:
		m.ClearSuccess()
		return nil
	case interactionevent.FieldScore:
		m.ClearScore()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionEventMutation) ResetField(name string) error {
	switch name {
	case interactionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case interactionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case interactionevent.FieldRecordID:
		m.ResetRecordID()
		return nil
	case interactionevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case interactionevent.FieldKind:
		m.ResetKind()
		return nil
	case interactionevent.FieldPayload:
		m.ResetPayload()
		return nil
	case interactionevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case interactionevent.FieldScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent edge %s", name)
}

// StatsSnapshotMutation represents an operation that mutates the StatsSnapshot nodes in the graph.
type StatsSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	student_id    *string
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StatsSnapshot, error)
	predicates    []predicate.StatsSnapshot
}

var _ ent.Mutation = (*StatsSnapshotMutation)(nil)

// statssnapshotOption allows management of the mutation configuration using functional options.
type statssnapshotOption func(*StatsSnapshotMutation)

// newStatsSnapshotMutation creates new mutation for the StatsSnapshot entity.
func newStatsSnapshotMutation(c config, op Op, opts ...statssnapshotOption) *StatsSnapshotMutation {
	m := &StatsSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeStatsSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatsSnapshotID sets the ID field of the mutation.
func withStatsSnapshotID(id int) statssnapshotOption {
	return func(m *StatsSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *StatsSnapshot
		)
		m.oldValue = func(ctx context.Context) (*StatsSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatsSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatsSnapshot sets the old StatsSnapshot of the mutation.
func withStatsSnapshot(node *StatsSnapshot) statssnapshotOption {
	return func(m *StatsSnapshotMutation) {
		m.oldValue = func(context.Context) (*StatsSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatsSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatsSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatsSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatsSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatsSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *StatsSnapshotMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *StatsSnapshotMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *StatsSnapshotMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSequence sets the "sequence" field.
func (m *StatsSnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StatsSnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *StatsSnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StatsSnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StatsSnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *StatsSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StatsSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StatsSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *StatsSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *StatsSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *StatsSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the StatsSnapshotMutation builder.
func (m *StatsSnapshotMutation) Where(ps ...predicate.StatsSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatsSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatsSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatsSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatsSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatsSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatsSnapshot).
func (m *StatsSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatsSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.student_id != nil {
		fields = append(fields, statssnapshot.FieldStudentID)
	}
	if m.sequence != nil {
		fields = append(fields, statssnapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, statssnapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, statssnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatsSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statssnapshot.FieldStudentID:
		return m.StudentID()
	case statssnapshot.FieldSequence:
		return m.Sequence()
	case statssnapshot.FieldTimestamp:
		return m.Timestamp()
	case statssnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatsSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statssnapshot.FieldStudentID:
		return m.OldStudentID(ctx)
	case statssnapshot.FieldSequence:
		return m.OldSequence(ctx)
	case statssnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case statssnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatsSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statssnapshot.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case statssnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case statssnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case statssnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatsSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, statssnapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatsSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statssnapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatsSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statssnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatsSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatsSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatsSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StatsSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatsSnapshotMutation) ResetField(name string) error {
	switch name {
	case statssnapshot.FieldStudentID:
		m.ResetStudentID()
		return nil
	case statssnapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case statssnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case statssnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatsSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatsSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatsSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatsSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatsSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatsSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatsSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StatsSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatsSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StatsSnapshot edge %s", name)
}

// TrainingStateMutation represents an operation that mutates the TrainingState nodes in the graph.
type TrainingStateMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	student_id         *string
	stage              *string
	theory_score       *float64
	addtheory_score    *float64
	practice_score     *float64
	addpractice_score  *float64
	theory_completed   *bool
	practice_completed *bool
	created_at         *time.Time
	last_updated       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TrainingState, error)
	predicates         []predicate.TrainingState
}

var _ ent.Mutation = (*TrainingStateMutation)(nil)

// trainingstateOption allows management of the mutation configuration using functional options.
type trainingstateOption func(*TrainingStateMutation)

// newTrainingStateMutation creates new mutation for the TrainingState entity.
func newTrainingStateMutation(c config, op Op, opts ...trainingstateOption) *TrainingStateMutation {
	m := &TrainingStateMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingStateID sets the ID field of the mutation.
func withTrainingStateID(id int) trainingstateOption {
	return func(m *TrainingStateMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingState
		)
		m.oldValue = func(ctx context.Context) (*TrainingState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingState sets the old TrainingState of the mutation.
func withTrainingState(node *TrainingState) trainingstateOption {
	return func(m *TrainingStateMutation) {
		m.oldValue = func(context.Context) (*TrainingState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *TrainingStateMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *TrainingStateMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *TrainingStateMutation) ResetStudentID() {
	m.student_id = nil
}

// SetStage sets the "stage" field.
func (m *TrainingStateMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *TrainingStateMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *TrainingStateMutation) ResetStage() {
	m.stage = nil
}

// SetTheoryScore sets the "theory_score" field.
func (m *TrainingStateMutation) SetTheoryScore(f float64) {
	m.theory_score = &f
	m.addtheory_score = nil
}

// TheoryScore returns the value of the "theory_score" field in the mutation.
func (m *TrainingStateMutation) TheoryScore() (r float64, exists bool) {
	v := m.theory_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTheoryScore returns the old "theory_score" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldTheoryScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheoryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheoryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheoryScore: %w", err)
	}
	return oldValue.TheoryScore, nil
}

// AddTheoryScore adds f to the "theory_score" field.
func (m *TrainingStateMutation) AddTheoryScore(f float64) {
	if m.addtheory_score != nil {
		*m.addtheory_score += f
	} else {
		m.addtheory_score = &f
	}
}

// AddedTheoryScore returns the value that was added to the "theory_score" field in this mutation.
func (m *TrainingStateMutation) AddedTheoryScore() (r float64, exists bool) {
	v := m.addtheory_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearTheoryScore clears the value of the "theory_score" field.
func (m *TrainingStateMutation) ClearTheoryScore() {
	m.theory_score = nil
	m.addtheory_score = nil
	m.clearedFields[trainingstate.FieldTheoryScore] = struct{}{}
}

// TheoryScoreCleared returns if the "theory_score" field was cleared in this mutation.
func (m *TrainingStateMutation) TheoryScoreCleared() bool {
	_, ok := m.clearedFields[trainingstate.FieldTheoryScore]
	return ok
}

// ResetTheoryScore resets all changes to the "theory_score" field.
func (m *TrainingStateMutation) ResetTheoryScore() {
	m.theory_score = nil
	m.addtheory_score = nil
	delete(m.clearedFields, trainingstate.FieldTheoryScore)
}

// SetPracticeScore sets the "practice_score" field.
func (m *TrainingStateMutation) SetPracticeScore(f float64) {
	m.practice_score = &f
	m.addpractice_score = nil
}

// PracticeScore returns the value of the "practice_score" field in the mutation.
func (m *TrainingStateMutation) PracticeScore() (r float64, exists bool) {
	v := m.practice_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeScore returns the old "practice_score" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldPracticeScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeScore: %w", err)
	}
	return oldValue.PracticeScore, nil
}

// AddPracticeScore adds f to the "practice_score" field.
func (m *TrainingStateMutation) AddPracticeScore(f float64) {
	if m.addpractice_score != nil {
		*m.addpractice_score += f
	} else {
		m.addpractice_score = &f
	}
}

// AddedPracticeScore returns the value that was added to the "practice_score" field in this mutation.
func (m *TrainingStateMutation) AddedPracticeScore() (r float64, exists bool) {
	v := m.addpractice_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearPracticeScore clears the value of the "practice_score" field.
func (m *TrainingStateMutation) ClearPracticeScore() {
	m.practice_score = nil
	m.addpractice_score = nil
	m.clearedFields[trainingstate.FieldPracticeScore] = struct{}{}
}

// PracticeScoreCleared returns if the "practice_score" field was cleared in this mutation.
func (m *TrainingStateMutation) PracticeScoreCleared() bool {
	_, ok := m.clearedFields[trainingstate.FieldPracticeScore]
	return ok
}

// ResetPracticeScore resets all changes to the "practice_score" field.
func (m *TrainingStateMutation) ResetPracticeScore() {
	m.practice_score = nil
	m.addpractice_score = nil
	delete(m.clearedFields, trainingstate.FieldPracticeScore)
}

// SetTheoryCompleted sets the "theory_completed" field.
func (m *TrainingStateMutation) SetTheoryCompleted(b bool) {
	m.theory_completed = &b
}

// TheoryCompleted returns the value of the "theory_completed" field in the mutation.
func (m *TrainingStateMutation) TheoryCompleted() (r bool, exists bool) {
	v := m.theory_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTheoryCompleted returns the old "theory_completed" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldTheoryCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheoryCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheoryCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheoryCompleted: %w", err)
	}
	return oldValue.TheoryCompleted, nil
}

// ResetTheoryCompleted resets all changes to the "theory_completed" field.
func (m *TrainingStateMutation) ResetTheoryCompleted() {
	m.theory_completed = nil
}

// SetPracticeCompleted sets the "practice_completed" field.
func (m *TrainingStateMutation) SetPracticeCompleted(b bool) {
	m.practice_completed = &b
}

// PracticeCompleted returns the value of the "practice_completed" field in the mutation.
func (m *TrainingStateMutation) PracticeCompleted() (r bool, exists bool) {
	v := m.practice_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeCompleted returns the old "practice_completed" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldPracticeCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeCompleted: %w", err)
	}
	return oldValue.PracticeCompleted, nil
}

// ResetPracticeCompleted resets all changes to the "practice_completed" field.
func (m *TrainingStateMutation) ResetPracticeCompleted() {
	m.practice_completed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrainingStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrainingStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrainingStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *TrainingStateMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *TrainingStateMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the TrainingState entity.
// If the TrainingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingStateMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *TrainingStateMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the TrainingStateMutation builder.
func (m *TrainingStateMutation) Where(ps ...predicate.TrainingState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingState).
func (m *TrainingStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingStateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.student_id != nil {
		fields = append(fields, trainingstate.FieldStudentID)
	}
	if m.stage != nil {
		fields = append(fields, trainingstate.FieldStage)
	}
	if m.theory_score != nil {
		fields = append(fields, trainingstate.FieldTheoryScore)
	}
	if m.practice_score != nil {
		fields = append(fields, trainingstate.FieldPracticeScore)
	}
	if m.theory_completed != nil {
		fields = append(fields, trainingstate.FieldTheoryCompleted)
	}
	if m.practice_completed != nil {
		fields = append(fields, trainingstate.FieldPracticeCompleted)
	}
	if m.created_at != nil {
		fields = append(fields, trainingstate.FieldCreatedAt)
	}
	if m.last_updated != nil {
		fields = append(fields, trainingstate.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingstate.FieldStudentID:
		return m.StudentID()
	case trainingstate.FieldStage:
		return m.Stage()
	case trainingstate.FieldTheoryScore:
		return m.TheoryScore()
	case trainingstate.FieldPracticeScore:
		return m.PracticeScore()
	case trainingstate.FieldTheoryCompleted:
		return m.TheoryCompleted()
	case trainingstate.FieldPracticeCompleted:
		return m.PracticeCompleted()
	case trainingstate.FieldCreatedAt:
		return m.CreatedAt()
	case trainingstate.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingstate.FieldStudentID:
		return m.OldStudentID(ctx)
	case trainingstate.FieldStage:
		return m.OldStage(ctx)
	case trainingstate.FieldTheoryScore:
		return m.OldTheoryScore(ctx)
	case trainingstate.FieldPracticeScore:
		return m.OldPracticeScore(ctx)
	case trainingstate.FieldTheoryCompleted:
		return m.OldTheoryCompleted(ctx)
	case trainingstate.FieldPracticeCompleted:
		return m.OldPracticeCompleted(ctx)
	case trainingstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case trainingstate.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingstate.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case trainingstate.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case trainingstate.FieldTheoryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheoryScore(v)
		return nil
	case trainingstate.FieldPracticeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeScore(v)
		return nil
	case trainingstate.FieldTheoryCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheoryCompleted(v)
		return nil
	case trainingstate.FieldPracticeCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeCompleted(v)
		return nil
	case trainingstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case trainingstate.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingStateMutation) AddedFields() []string {
	var fields []string
	if m.addtheory_score != nil {
		fields = append(fields, trainingstate.FieldTheoryScore)
	}
	if m.addpractice_score != nil {
		fields = append(fields, trainingstate.FieldPracticeScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trainingstate.FieldTheoryScore:
		return m.AddedTheoryScore()
	case trainingstate.FieldPracticeScore:
		return m.AddedPracticeScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trainingstate.FieldTheoryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTheoryScore(v)
		return nil
	case trainingstate.FieldPracticeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeScore(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trainingstate.FieldTheoryScore) {
		fields = append(fields, trainingstate.FieldTheoryScore)
	}
	if m.FieldCleared(trainingstate.FieldPracticeScore) {
		fields = append(fields, trainingstate.FieldPracticeScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingStateMutation) ClearField(name string) error {
	switch name {
	case trainingstate.FieldTheoryScore:
		m.ClearTheoryScore()
		return nil
	case trainingstate.FieldPracticeScore:
		m.ClearPracticeScore()
		return nil
	}
	return fmt.Errorf("unknown TrainingState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingStateMutation) ResetField(name string) error {
	switch name {
	case trainingstate.FieldStudentID:
		m.ResetStudentID()
		return nil
	case trainingstate.FieldStage:
		m.ResetStage()
		return nil
	case trainingstate.FieldTheoryScore:
		m.ResetTheoryScore()
		return nil
	case trainingstate.FieldPracticeScore:
		m.ResetPracticeScore()
		return nil
	case trainingstate.FieldTheoryCompleted:
		m.ResetTheoryCompleted()
		return nil
	case trainingstate.FieldPracticeCompleted:
		m.ResetPracticeCompleted()
		return nil
	case trainingstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case trainingstate.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown TrainingState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrainingState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrainingState edge %s", name)
}
