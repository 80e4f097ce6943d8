// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yclin/fabtrainer/ent/trainingstate"
)

// TrainingStateCreate is the builder for creating a TrainingState entity.
type TrainingStateCreate struct {
	config
	mutation *TrainingStateMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *TrainingStateCreate) SetStudentID(v string) *TrainingStateCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *TrainingStateCreate) SetStage(v string) *TrainingStateCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *TrainingStateCreate) SetNillableStage(v *string) *TrainingStateCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetTheoryScore sets the "theory_score" field.
func (_c *TrainingStateCreate) SetTheoryScore(v float64) *TrainingStateCreate {
	_c.mutation.SetTheoryScore(v)
	return _c
}

// SetNillableTheoryScore sets the "theory_score" field if the given value is not nil.
func (_c *TrainingStateCreate) SetNillableTheoryScore(v *float64) *TrainingStateCreate {
	if v != nil {
		_c.SetTheoryScore(*v)
	}
	return _c
}

// SetPracticeScore sets the "practice_score" field.
func (_c *TrainingStateCreate) SetPracticeScore(v float64) *TrainingStateCreate {
	_c.mutation.SetPracticeScore(v)
	return _c
}

// SetNillablePracticeScore sets the "practice_score" field if the given value is not nil.
func (_c *TrainingStateCreate) SetNillablePracticeScore(v *float64) *TrainingStateCreate {
	if v != nil {
		_c.SetPracticeScore(*v)
	}
	return _c
}

// SetTheoryCompleted sets the "theory_completed" field.
func (_c *TrainingStateCreate) SetTheoryCompleted(v bool) *TrainingStateCreate {
	_c.mutation.SetTheoryCompleted(v)
	return _c
}

// SetNillableTheoryCompleted sets the "theory_completed" field if the given value is not nil.
func (_c *TrainingStateCreate) SetNillableTheoryCompleted(v *bool) *TrainingStateCreate {
	if v != nil {
		_c.SetTheoryCompleted(*v)
	}
	return _c
}

// SetPracticeCompleted sets the "practice_completed" field.
func (_c *TrainingStateCreate) SetPracticeCompleted(v bool) *TrainingStateCreate {
	_c.mutation.SetPracticeCompleted(v)
	return _c
}

// SetNillablePracticeCompleted sets the "practice_completed" field if the given value is not nil.
func (_c *TrainingStateCreate) SetNillablePracticeCompleted(v *bool) *TrainingStateCreate {
	if v != nil {
		_c.SetPracticeCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingStateCreate) SetCreatedAt(v time.Time) *TrainingStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingStateCreate) SetNillableCreatedAt(v *time.Time) *TrainingStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *TrainingStateCreate) SetLastUpdated(v time.Time) *TrainingStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *TrainingStateCreate) SetNillableLastUpdated(v *time.Time) *TrainingStateCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the TrainingStateMutation object of the builder.
func (_c *TrainingStateCreate) Mutation() *TrainingStateMutation {
	return _c.mutation
}

// Save creates the TrainingState in the database.
func (_c *TrainingStateCreate) Save(ctx context.Context) (*TrainingState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingStateCreate) SaveX(ctx context.Context) *TrainingState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingStateCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := trainingstate.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.TheoryCompleted(); !ok {
		v := trainingstate.DefaultTheoryCompleted
		_c.mutation.SetTheoryCompleted(v)
	}
	if _, ok := _c.mutation.PracticeCompleted(); !ok {
		v := trainingstate.DefaultPracticeCompleted
		_c.mutation.SetPracticeCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := trainingstate.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingStateCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "TrainingState.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := trainingstate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "TrainingState.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "TrainingState.stage"`)}
	}
	if _, ok := _c.mutation.TheoryCompleted(); !ok {
		return &ValidationError{Name: "theory_completed", err: errors.New(`ent: missing required field "TrainingState.theory_completed"`)}
	}
	if _, ok := _c.mutation.PracticeCompleted(); !ok {
		return &ValidationError{Name: "practice_completed", err: errors.New(`ent: missing required field "TrainingState.practice_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingState.created_at"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "TrainingState.last_updated"`)}
	}
	return nil
}

func (_c *TrainingStateCreate) sqlSave(ctx context.Context) (*TrainingState, error) {
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

func (_c *TrainingStateCreate) createSpec() (*TrainingState, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingstate.Table, sqlgraph.NewFieldSpec(trainingstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(trainingstate.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(trainingstate.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.TheoryScore(); ok {
		_spec.SetField(trainingstate.FieldTheoryScore, field.TypeFloat64, value)
		_node.TheoryScore = &value
	}
	if value, ok := _c.mutation.PracticeScore(); ok {
		_spec.SetField(trainingstate.FieldPracticeScore, field.TypeFloat64, value)
		_node.PracticeScore = &value
	}
	if value, ok := _c.mutation.TheoryCompleted(); ok {
		_spec.SetField(trainingstate.FieldTheoryCompleted, field.TypeBool, value)
		_node.TheoryCompleted = value
	}
	if value, ok := _c.mutation.PracticeCompleted(); ok {
		_spec.SetField(trainingstate.FieldPracticeCompleted, field.TypeBool, value)
		_node.PracticeCompleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(trainingstate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// TrainingStateCreateBulk is the builder for creating many TrainingState entities in bulk.
type TrainingStateCreateBulk struct {
	config
	err      error
	builders []*TrainingStateCreate
}

// Save creates the TrainingState entities in the database.
func (_c *TrainingStateCreateBulk) Save(ctx context.Context) ([]*TrainingState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingStateMutation)
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
func (_c *TrainingStateCreateBulk) SaveX(ctx context.Context) []*TrainingState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
