// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yclin/fabtrainer/ent/interactionevent"
	"github.com/yclin/fabtrainer/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(interactionevent.FieldPayload, field.TypeJSON)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(interactionevent.FieldSuccess, field.TypeBool)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(interactionevent.FieldScore, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(interactionevent.FieldPayload, field.TypeJSON)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(interactionevent.FieldSuccess, field.TypeBool)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(interactionevent.FieldScore, field.TypeFloat64)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
