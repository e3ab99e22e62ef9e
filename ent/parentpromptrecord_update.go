// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
	"github.com/cubeai/bubix/ent/predicate"
)

// ParentPromptRecordUpdate is the builder for updating ParentPromptRecord entities.
type ParentPromptRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ParentPromptRecordMutation
}

// Where appends a list predicates to the ParentPromptRecordUpdate builder.
func (_u *ParentPromptRecordUpdate) Where(ps ...predicate.ParentPromptRecord) *ParentPromptRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ParentPromptRecordUpdate) SetParentID(v string) *ParentPromptRecordUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ParentPromptRecordUpdate) SetNillableParentID(v *string) *ParentPromptRecordUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *ParentPromptRecordUpdate) SetChildID(v string) *ParentPromptRecordUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ParentPromptRecordUpdate) SetNillableChildID(v *string) *ParentPromptRecordUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ParentPromptRecordUpdate) SetAccountID(v string) *ParentPromptRecordUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ParentPromptRecordUpdate) SetNillableAccountID(v *string) *ParentPromptRecordUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ParentPromptRecordUpdate) SetContent(v string) *ParentPromptRecordUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ParentPromptRecordUpdate) SetNillableContent(v *string) *ParentPromptRecordUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAiResponse sets the "ai_response" field.
func (_u *ParentPromptRecordUpdate) SetAiResponse(v string) *ParentPromptRecordUpdate {
	_u.mutation.SetAiResponse(v)
	return _u
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_u *ParentPromptRecordUpdate) SetNillableAiResponse(v *string) *ParentPromptRecordUpdate {
	if v != nil {
		_u.SetAiResponse(*v)
	}
	return _u
}

// SetPromptType sets the "prompt_type" field.
func (_u *ParentPromptRecordUpdate) SetPromptType(v string) *ParentPromptRecordUpdate {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *ParentPromptRecordUpdate) SetNillablePromptType(v *string) *ParentPromptRecordUpdate {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParentPromptRecordUpdate) SetStatus(v string) *ParentPromptRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParentPromptRecordUpdate) SetNillableStatus(v *string) *ParentPromptRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ParentPromptRecordMutation object of the builder.
func (_u *ParentPromptRecordUpdate) Mutation() *ParentPromptRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParentPromptRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParentPromptRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParentPromptRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParentPromptRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParentPromptRecordUpdate) check() error {
	if v, ok := _u.mutation.ParentID(); ok {
		if err := parentpromptrecord.ParentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_id", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.parent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountID(); ok {
		if err := parentpromptrecord.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := parentpromptrecord.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptType(); ok {
		if err := parentpromptrecord.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.prompt_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ParentPromptRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parentpromptrecord.Table, parentpromptrecord.Columns, sqlgraph.NewFieldSpec(parentpromptrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(parentpromptrecord.FieldParentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(parentpromptrecord.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(parentpromptrecord.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(parentpromptrecord.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(parentpromptrecord.FieldAiResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(parentpromptrecord.FieldPromptType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parentpromptrecord.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parentpromptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParentPromptRecordUpdateOne is the builder for updating a single ParentPromptRecord entity.
type ParentPromptRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParentPromptRecordMutation
}

// SetParentID sets the "parent_id" field.
func (_u *ParentPromptRecordUpdateOne) SetParentID(v string) *ParentPromptRecordUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ParentPromptRecordUpdateOne) SetNillableParentID(v *string) *ParentPromptRecordUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *ParentPromptRecordUpdateOne) SetChildID(v string) *ParentPromptRecordUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ParentPromptRecordUpdateOne) SetNillableChildID(v *string) *ParentPromptRecordUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ParentPromptRecordUpdateOne) SetAccountID(v string) *ParentPromptRecordUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ParentPromptRecordUpdateOne) SetNillableAccountID(v *string) *ParentPromptRecordUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ParentPromptRecordUpdateOne) SetContent(v string) *ParentPromptRecordUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ParentPromptRecordUpdateOne) SetNillableContent(v *string) *ParentPromptRecordUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAiResponse sets the "ai_response" field.
func (_u *ParentPromptRecordUpdateOne) SetAiResponse(v string) *ParentPromptRecordUpdateOne {
	_u.mutation.SetAiResponse(v)
	return _u
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_u *ParentPromptRecordUpdateOne) SetNillableAiResponse(v *string) *ParentPromptRecordUpdateOne {
	if v != nil {
		_u.SetAiResponse(*v)
	}
	return _u
}

// SetPromptType sets the "prompt_type" field.
func (_u *ParentPromptRecordUpdateOne) SetPromptType(v string) *ParentPromptRecordUpdateOne {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *ParentPromptRecordUpdateOne) SetNillablePromptType(v *string) *ParentPromptRecordUpdateOne {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParentPromptRecordUpdateOne) SetStatus(v string) *ParentPromptRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParentPromptRecordUpdateOne) SetNillableStatus(v *string) *ParentPromptRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ParentPromptRecordMutation object of the builder.
func (_u *ParentPromptRecordUpdateOne) Mutation() *ParentPromptRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParentPromptRecordUpdate builder.
func (_u *ParentPromptRecordUpdateOne) Where(ps ...predicate.ParentPromptRecord) *ParentPromptRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParentPromptRecordUpdateOne) Select(field string, fields ...string) *ParentPromptRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParentPromptRecord entity.
func (_u *ParentPromptRecordUpdateOne) Save(ctx context.Context) (*ParentPromptRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParentPromptRecordUpdateOne) SaveX(ctx context.Context) *ParentPromptRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParentPromptRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParentPromptRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParentPromptRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ParentID(); ok {
		if err := parentpromptrecord.ParentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_id", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.parent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountID(); ok {
		if err := parentpromptrecord.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := parentpromptrecord.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptType(); ok {
		if err := parentpromptrecord.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.prompt_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ParentPromptRecordUpdateOne) sqlSave(ctx context.Context) (_node *ParentPromptRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parentpromptrecord.Table, parentpromptrecord.Columns, sqlgraph.NewFieldSpec(parentpromptrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParentPromptRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parentpromptrecord.FieldID)
		for _, f := range fields {
			if !parentpromptrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parentpromptrecord.FieldID {
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
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(parentpromptrecord.FieldParentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(parentpromptrecord.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(parentpromptrecord.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(parentpromptrecord.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(parentpromptrecord.FieldAiResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(parentpromptrecord.FieldPromptType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parentpromptrecord.FieldStatus, field.TypeString, value)
	}
	_node = &ParentPromptRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parentpromptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
