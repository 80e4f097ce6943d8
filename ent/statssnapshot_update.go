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
	"github.com/yclin/fabtrainer/ent/statssnapshot"
)

// StatsSnapshotUpdate is the builder for updating StatsSnapshot entities.
type StatsSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *StatsSnapshotMutation
}

// Where appends a list predicates to the StatsSnapshotUpdate builder.
func (_u *StatsSnapshotUpdate) Where(ps ...predicate.StatsSnapshot) *StatsSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *StatsSnapshotUpdate) SetStudentID(v string) *StatsSnapshotUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableStudentID(v *string) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *StatsSnapshotUpdate) SetSequence(v int64) *StatsSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableSequence(v *int64) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *StatsSnapshotUpdate) AddSequence(v int64) *StatsSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *StatsSnapshotUpdate) SetTimestamp(v time.Time) *StatsSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTimestamp(v *time.Time) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StatsSnapshotUpdate) SetData(v map[string]interface{}) *StatsSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the StatsSnapshotMutation object of the builder.
func (_u *StatsSnapshotUpdate) Mutation() *StatsSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatsSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatsSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatsSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatsSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatsSnapshotUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := statssnapshot.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StatsSnapshot.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StatsSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statssnapshot.Table, statssnapshot.Columns, sqlgraph.NewFieldSpec(statssnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(statssnapshot.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(statssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(statssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(statssnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(statssnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatsSnapshotUpdateOne is the builder for updating a single StatsSnapshot entity.
type StatsSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatsSnapshotMutation
}

// SetStudentID sets the "student_id" field.
func (_u *StatsSnapshotUpdateOne) SetStudentID(v string) *StatsSnapshotUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableStudentID(v *string) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *StatsSnapshotUpdateOne) SetSequence(v int64) *StatsSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableSequence(v *int64) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *StatsSnapshotUpdateOne) AddSequence(v int64) *StatsSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *StatsSnapshotUpdateOne) SetTimestamp(v time.Time) *StatsSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StatsSnapshotUpdateOne) SetData(v map[string]interface{}) *StatsSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the StatsSnapshotMutation object of the builder.
func (_u *StatsSnapshotUpdateOne) Mutation() *StatsSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the StatsSnapshotUpdate builder.
func (_u *StatsSnapshotUpdateOne) Where(ps ...predicate.StatsSnapshot) *StatsSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatsSnapshotUpdateOne) Select(field string, fields ...string) *StatsSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StatsSnapshot entity.
func (_u *StatsSnapshotUpdateOne) Save(ctx context.Context) (*StatsSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatsSnapshotUpdateOne) SaveX(ctx context.Context) *StatsSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatsSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatsSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatsSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := statssnapshot.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StatsSnapshot.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StatsSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *StatsSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statssnapshot.Table, statssnapshot.Columns, sqlgraph.NewFieldSpec(statssnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StatsSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statssnapshot.FieldID)
		for _, f := range fields {
			if !statssnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statssnapshot.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(statssnapshot.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(statssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(statssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(statssnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(statssnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &StatsSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
