// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/parentpreferences"
	"github.com/cubeai/bubix/ent/predicate"
)

// ParentPreferencesDelete is the builder for deleting a ParentPreferences entity.
type ParentPreferencesDelete struct {
	config
	hooks    []Hook
	mutation *ParentPreferencesMutation
}

// Where appends a list predicates to the ParentPreferencesDelete builder.
func (_d *ParentPreferencesDelete) Where(ps ...predicate.ParentPreferences) *ParentPreferencesDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ParentPreferencesDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParentPreferencesDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ParentPreferencesDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(parentpreferences.Table, sqlgraph.NewFieldSpec(parentpreferences.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ParentPreferencesDeleteOne is the builder for deleting a single ParentPreferences entity.
type ParentPreferencesDeleteOne struct {
	_d *ParentPreferencesDelete
}

// Where appends a list predicates to the ParentPreferencesDelete builder.
func (_d *ParentPreferencesDeleteOne) Where(ps ...predicate.ParentPreferences) *ParentPreferencesDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ParentPreferencesDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{parentpreferences.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParentPreferencesDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
