// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yclin/fabtrainer/ent/predicate"
	"github.com/yclin/fabtrainer/ent/trainingstate"
)

// TrainingStateUpdate is the builder for updating TrainingState entities.
type TrainingStateUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingStateMutation
}

// Where appends a list predicates to the TrainingStateUpdate builder.
func (_u *TrainingStateUpdate) Where(ps ...predicate.TrainingState) *TrainingStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *TrainingStateUpdate) SetStage(v string) *TrainingStateUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *TrainingStateUpdate) SetNillableStage(v *string) *TrainingStateUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetTheoryScore sets the "theory_score" field.
func (_u *TrainingStateUpdate) SetTheoryScore(v float64) *TrainingStateUpdate {
	_u.mutation.ResetTheoryScore()
	_u.mutation.SetTheoryScore(v)
	return _u
}

// SetNillableTheoryScore sets the "theory_score" field if the given value is not nil.
func (_u *TrainingStateUpdate) SetNillableTheoryScore(v *float64) *TrainingStateUpdate {
	if v != nil {
		_u.SetTheoryScore(*v)
	}
	return _u
}

// AddTheoryScore adds value to the "theory_score" field.
func (_u *TrainingStateUpdate) AddTheoryScore(v float64) *TrainingStateUpdate {
	_u.mutation.AddTheoryScore(v)
	return _u
}

// ClearTheoryScore clears the value of the "theory_score" field.
func (_u *TrainingStateUpdate) ClearTheoryScore() *TrainingStateUpdate {
	_u.mutation.ClearTheoryScore()
	return _u
}

// SetPracticeScore sets the "practice_score" field.
func (_u *TrainingStateUpdate) SetPracticeScore(v float64) *TrainingStateUpdate {
	_u.mutation.ResetPracticeScore()
	_u.mutation.SetPracticeScore(v)
	return _u
}

// SetNillablePracticeScore sets the "practice_score" field if the given value is not nil.
func (_u *TrainingStateUpdate) SetNillablePracticeScore(v *float64) *TrainingStateUpdate {
	if v != nil {
		_u.SetPracticeScore(*v)
	}
	return _u
}

// AddPracticeScore adds value to the "practice_score" field.
func (_u *TrainingStateUpdate) AddPracticeScore(v float64) *TrainingStateUpdate {
	_u.mutation.AddPracticeScore(v)
	return _u
}

// ClearPracticeScore clears the value of the "practice_score" field.
func (_u *TrainingStateUpdate) ClearPracticeScore() *TrainingStateUpdate {
	_u.mutation.ClearPracticeScore()
	return _u
}

// SetTheoryCompleted sets the "theory_completed" field.
func (_u *TrainingStateUpdate) SetTheoryCompleted(v bool) *TrainingStateUpdate {
	_u.mutation.SetTheoryCompleted(v)
	return _u
}

// SetNillableTheoryCompleted sets the "theory_completed" field if the given value is not nil.
func (_u *TrainingStateUpdate) SetNillableTheoryCompleted(v *bool) *TrainingStateUpdate {
	if v != nil {
		_u.SetTheoryCompleted(*v)
	}
	return _u
}

// SetPracticeCompleted sets the "practice_completed" field.
func (_u *TrainingStateUpdate) SetPracticeCompleted(v bool) *TrainingStateUpdate {
	_u.mutation.SetPracticeCompleted(v)
	return _u
}

// SetNillablePracticeCompleted sets the "practice_completed" field if the given value is not nil.
func (_u *TrainingStateUpdate) SetNillablePracticeCompleted(v *bool) *TrainingStateUpdate {
	if v != nil {
		_u.SetPracticeCompleted(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TrainingStateUpdate) SetLastUpdated(v time.Time) *TrainingStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the TrainingStateMutation object of the builder.
func (_u *TrainingStateUpdate) Mutation() *TrainingStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrainingStateUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := trainingstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *TrainingStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trainingstate.Table, trainingstate.Columns, sqlgraph.NewFieldSpec(trainingstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(trainingstate.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TheoryScore(); ok {
		_spec.SetField(trainingstate.FieldTheoryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheoryScore(); ok {
		_spec.AddField(trainingstate.FieldTheoryScore, field.TypeFloat64, value)
	}
	if _u.mutation.TheoryScoreCleared() {
		_spec.ClearField(trainingstate.FieldTheoryScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PracticeScore(); ok {
		_spec.SetField(trainingstate.FieldPracticeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPracticeScore(); ok {
		_spec.AddField(trainingstate.FieldPracticeScore, field.TypeFloat64, value)
	}
	if _u.mutation.PracticeScoreCleared() {
		_spec.ClearField(trainingstate.FieldPracticeScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TheoryCompleted(); ok {
		_spec.SetField(trainingstate.FieldTheoryCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PracticeCompleted(); ok {
		_spec.SetField(trainingstate.FieldPracticeCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(trainingstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingStateUpdateOne is the builder for updating a single TrainingState entity.
type TrainingStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingStateMutation
}

// SetStage sets the "stage" field.
func (_u *TrainingStateUpdateOne) SetStage(v string) *TrainingStateUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *TrainingStateUpdateOne) SetNillableStage(v *string) *TrainingStateUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetTheoryScore sets the "theory_score" field.
func (_u *TrainingStateUpdateOne) SetTheoryScore(v float64) *TrainingStateUpdateOne {
	_u.mutation.ResetTheoryScore()
	_u.mutation.SetTheoryScore(v)
	return _u
}

// SetNillableTheoryScore sets the "theory_score" field if the given value is not nil.
func (_u *TrainingStateUpdateOne) SetNillableTheoryScore(v *float64) *TrainingStateUpdateOne {
	if v != nil {
		_u.SetTheoryScore(*v)
	}
	return _u
}

// AddTheoryScore adds value to the "theory_score" field.
func (_u *TrainingStateUpdateOne) AddTheoryScore(v float64) *TrainingStateUpdateOne {
	_u.mutation.AddTheoryScore(v)
	return _u
}

// ClearTheoryScore clears the value of the "theory_score" field.
func (_u *TrainingStateUpdateOne) ClearTheoryScore() *TrainingStateUpdateOne {
	_u.mutation.ClearTheoryScore()
	return _u
}

// SetPracticeScore sets the "practice_score" field.
func (_u *TrainingStateUpdateOne) SetPracticeScore(v float64) *TrainingStateUpdateOne {
	_u.mutation.ResetPracticeScore()
	_u.mutation.SetPracticeScore(v)
	return _u
}

// SetNillablePracticeScore sets the "practice_score" field if the given value is not nil.
func (_u *TrainingStateUpdateOne) SetNillablePracticeScore(v *float64) *TrainingStateUpdateOne {
	if v != nil {
		_u.SetPracticeScore(*v)
	}
	return _u
}

// AddPracticeScore adds value to the "practice_score" field.
func (_u *TrainingStateUpdateOne) AddPracticeScore(v float64) *TrainingStateUpdateOne {
	_u.mutation.AddPracticeScore(v)
	return _u
}

// ClearPracticeScore clears the value of the "practice_score" field.
func (_u *TrainingStateUpdateOne) ClearPracticeScore() *TrainingStateUpdateOne {
	_u.mutation.ClearPracticeScore()
	return _u
}

// SetTheoryCompleted sets the "theory_completed" field.
func (_u *TrainingStateUpdateOne) SetTheoryCompleted(v bool) *TrainingStateUpdateOne {
	_u.mutation.SetTheoryCompleted(v)
	return _u
}

// SetNillableTheoryCompleted sets the "theory_completed" field if the given value is not nil.
func (_u *TrainingStateUpdateOne) SetNillableTheoryCompleted(v *bool) *TrainingStateUpdateOne {
	if v != nil {
		_u.SetTheoryCompleted(*v)
	}
	return _u
}

// SetPracticeCompleted sets the "practice_completed" field.
func (_u *TrainingStateUpdateOne) SetPracticeCompleted(v bool) *TrainingStateUpdateOne {
	_u.mutation.SetPracticeCompleted(v)
	return _u
}

// SetNillablePracticeCompleted sets the "practice_completed" field if the given value is not nil.
func (_u *TrainingStateUpdateOne) SetNillablePracticeCompleted(v *bool) *TrainingStateUpdateOne {
	if v != nil {
		_u.SetPracticeCompleted(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TrainingStateUpdateOne) SetLastUpdated(v time.Time) *TrainingStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the TrainingStateMutation object of the builder.
func (_u *TrainingStateUpdateOne) Mutation() *TrainingStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrainingStateUpdate builder.
func (_u *TrainingStateUpdateOne) Where(ps ...predicate.TrainingState) *TrainingStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingStateUpdateOne) Select(field string, fields ...string) *TrainingStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingState entity.
func (_u *TrainingStateUpdateOne) Save(ctx context.Context) (*TrainingState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingStateUpdateOne) SaveX(ctx context.Context) *TrainingState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrainingStateUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := trainingstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *TrainingStateUpdateOne) sqlSave(ctx context.Context) (_node *TrainingState, err error) {
	_spec := sqlgraph.NewUpdateSpec(trainingstate.Table, trainingstate.Columns, sqlgraph.NewFieldSpec(trainingstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingstate.FieldID)
		for _, f := range fields {
			if !trainingstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(trainingstate.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TheoryScore(); ok {
		_spec.SetField(trainingstate.FieldTheoryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheoryScore(); ok {
		_spec.AddField(trainingstate.FieldTheoryScore, field.TypeFloat64, value)
	}
	if _u.mutation.TheoryScoreCleared() {
		_spec.ClearField(trainingstate.FieldTheoryScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PracticeScore(); ok {
		_spec.SetField(trainingstate.FieldPracticeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPracticeScore(); ok {
		_spec.AddField(trainingstate.FieldPracticeScore, field.TypeFloat64, value)
	}
	if _u.mutation.PracticeScoreCleared() {
		_spec.ClearField(trainingstate.FieldPracticeScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TheoryCompleted(); ok {
		_spec.SetField(trainingstate.FieldTheoryCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PracticeCompleted(); ok {
		_spec.SetField(trainingstate.FieldPracticeCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(trainingstate.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &TrainingState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
