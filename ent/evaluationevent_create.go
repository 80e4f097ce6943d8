// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yclin/fabtrainer/ent/evaluationevent"
)

// EvaluationEventCreate is the builder for creating a EvaluationEvent entity.
type EvaluationEventCreate struct {
	config
	mutation *EvaluationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationEventCreate) SetSequence(v int64) *EvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluationEventCreate) SetTimestamp(v time.Time) *EvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimestamp(v *time.Time) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *EvaluationEventCreate) SetStudentID(v string) *EvaluationEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *EvaluationEventCreate) SetKind(v string) *EvaluationEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTheoryScore sets the "theory_score" field.
func (_c *EvaluationEventCreate) SetTheoryScore(v float64) *EvaluationEventCreate {
	_c.mutation.SetTheoryScore(v)
	return _c
}

// SetNillableTheoryScore sets the "theory_score" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTheoryScore(v *float64) *EvaluationEventCreate {
	if v != nil {
		_c.SetTheoryScore(*v)
	}
	return _c
}

// SetPracticeScore sets the "practice_score" field.
func (_c *EvaluationEventCreate) SetPracticeScore(v float64) *EvaluationEventCreate {
	_c.mutation.SetPracticeScore(v)
	return _c
}

// SetNillablePracticeScore sets the "practice_score" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillablePracticeScore(v *float64) *EvaluationEventCreate {
	if v != nil {
		_c.SetPracticeScore(*v)
	}
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *EvaluationEventCreate) SetOverallScore(v float64) *EvaluationEventCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableOverallScore(v *float64) *EvaluationEventCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *EvaluationEventCreate) SetGrade(v string) *EvaluationEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_c *EvaluationEventCreate) Mutation() *EvaluationEventMutation {
	return _c.mutation
}

// Save creates the EvaluationEvent in the database.
func (_c *EvaluationEventCreate) Save(ctx context.Context) (*EvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationEventCreate) SaveX(ctx context.Context) *EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TheoryScore(); !ok {
		v := evaluationevent.DefaultTheoryScore
		_c.mutation.SetTheoryScore(v)
	}
	if _, ok := _c.mutation.PracticeScore(); !ok {
		v := evaluationevent.DefaultPracticeScore
		_c.mutation.SetPracticeScore(v)
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		v := evaluationevent.DefaultOverallScore
		_c.mutation.SetOverallScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "EvaluationEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := evaluationevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "EvaluationEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := evaluationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TheoryScore(); !ok {
		return &ValidationError{Name: "theory_score", err: errors.New(`ent: missing required field "EvaluationEvent.theory_score"`)}
	}
	if _, ok := _c.mutation.PracticeScore(); !ok {
		return &ValidationError{Name: "practice_score", err: errors.New(`ent: missing required field "EvaluationEvent.practice_score"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "EvaluationEvent.overall_score"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "EvaluationEvent.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := evaluationevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_c *EvaluationEventCreate) sqlSave(ctx context.Context) (*EvaluationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationEventCreate) createSpec() (*EvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationevent.Table, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(evaluationevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(evaluationevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TheoryScore(); ok {
		_spec.SetField(evaluationevent.FieldTheoryScore, field.TypeFloat64, value)
		_node.TheoryScore = value
	}
	if value, ok := _c.mutation.PracticeScore(); ok {
		_spec.SetField(evaluationevent.FieldPracticeScore, field.TypeFloat64, value)
		_node.PracticeScore = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(evaluationevent.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(evaluationevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	return _node, _spec
}

// EvaluationEventCreateBulk is the builder for creating many EvaluationEvent entities in bulk.
type EvaluationEventCreateBulk struct {
	config
	err      error
	builders []*EvaluationEventCreate
}

// Save creates the EvaluationEvent entities in the database.
func (_c *EvaluationEventCreateBulk) Save(ctx context.Context) ([]*EvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) SaveX(ctx context.Context) []*EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
