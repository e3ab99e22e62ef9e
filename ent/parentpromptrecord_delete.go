// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
	"github.com/cubeai/bubix/ent/predicate"
)

// ParentPromptRecordDelete is the builder for deleting a ParentPromptRecord entity.
type ParentPromptRecordDelete struct {
	config
	hooks    []Hook
	mutation *ParentPromptRecordMutation
}

// Where appends a list predicates to the ParentPromptRecordDelete builder.
func (_d *ParentPromptRecordDelete) Where(ps ...predicate.ParentPromptRecord) *ParentPromptRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ParentPromptRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParentPromptRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ParentPromptRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(parentpromptrecord.Table, sqlgraph.NewFieldSpec(parentpromptrecord.FieldID, field.TypeInt))
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

// ParentPromptRecordDeleteOne is the builder for deleting a single ParentPromptRecord entity.
type ParentPromptRecordDeleteOne struct {
	_d *ParentPromptRecordDelete
}

// Where appends a list predicates to the ParentPromptRecordDelete builder.
func (_d *ParentPromptRecordDeleteOne) Where(ps ...predicate.ParentPromptRecord) *ParentPromptRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ParentPromptRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{parentpromptrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParentPromptRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
