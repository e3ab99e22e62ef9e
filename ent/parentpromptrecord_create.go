// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
)

// ParentPromptRecordCreate is the builder for creating a ParentPromptRecord entity.
type ParentPromptRecordCreate struct {
	config
	mutation *ParentPromptRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ParentPromptRecordCreate) SetSequence(v int64) *ParentPromptRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ParentPromptRecordCreate) SetTimestamp(v time.Time) *ParentPromptRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ParentPromptRecordCreate) SetNillableTimestamp(v *time.Time) *ParentPromptRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *ParentPromptRecordCreate) SetParentID(v string) *ParentPromptRecordCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *ParentPromptRecordCreate) SetChildID(v string) *ParentPromptRecordCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_c *ParentPromptRecordCreate) SetNillableChildID(v *string) *ParentPromptRecordCreate {
	if v != nil {
		_c.SetChildID(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *ParentPromptRecordCreate) SetAccountID(v string) *ParentPromptRecordCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ParentPromptRecordCreate) SetContent(v string) *ParentPromptRecordCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAiResponse sets the "ai_response" field.
func (_c *ParentPromptRecordCreate) SetAiResponse(v string) *ParentPromptRecordCreate {
	_c.mutation.SetAiResponse(v)
	return _c
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_c *ParentPromptRecordCreate) SetNillableAiResponse(v *string) *ParentPromptRecordCreate {
	if v != nil {
		_c.SetAiResponse(*v)
	}
	return _c
}

// SetPromptType sets the "prompt_type" field.
func (_c *ParentPromptRecordCreate) SetPromptType(v string) *ParentPromptRecordCreate {
	_c.mutation.SetPromptType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ParentPromptRecordCreate) SetStatus(v string) *ParentPromptRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ParentPromptRecordCreate) SetNillableStatus(v *string) *ParentPromptRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// Mutation returns the ParentPromptRecordMutation object of the builder.
func (_c *ParentPromptRecordCreate) Mutation() *ParentPromptRecordMutation {
	return _c.mutation
}

// Save creates the ParentPromptRecord in the database.
func (_c *ParentPromptRecordCreate) Save(ctx context.Context) (*ParentPromptRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParentPromptRecordCreate) SaveX(ctx context.Context) *ParentPromptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParentPromptRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParentPromptRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParentPromptRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := parentpromptrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		v := parentpromptrecord.DefaultChildID
		_c.mutation.SetChildID(v)
	}
	if _, ok := _c.mutation.AiResponse(); !ok {
		v := parentpromptrecord.DefaultAiResponse
		_c.mutation.SetAiResponse(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := parentpromptrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParentPromptRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ParentPromptRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ParentPromptRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "ParentPromptRecord.parent_id"`)}
	}
	if v, ok := _c.mutation.ParentID(); ok {
		if err := parentpromptrecord.ParentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_id", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.parent_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "ParentPromptRecord.child_id"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "ParentPromptRecord.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := parentpromptrecord.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ParentPromptRecord.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := parentpromptrecord.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiResponse(); !ok {
		return &ValidationError{Name: "ai_response", err: errors.New(`ent: missing required field "ParentPromptRecord.ai_response"`)}
	}
	if _, ok := _c.mutation.PromptType(); !ok {
		return &ValidationError{Name: "prompt_type", err: errors.New(`ent: missing required field "ParentPromptRecord.prompt_type"`)}
	}
	if v, ok := _c.mutation.PromptType(); ok {
		if err := parentpromptrecord.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "ParentPromptRecord.prompt_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ParentPromptRecord.status"`)}
	}
	return nil
}

func (_c *ParentPromptRecordCreate) sqlSave(ctx context.Context) (*ParentPromptRecord, error) {
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

func (_c *ParentPromptRecordCreate) createSpec() (*ParentPromptRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ParentPromptRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parentpromptrecord.Table, sqlgraph.NewFieldSpec(parentpromptrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(parentpromptrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(parentpromptrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(parentpromptrecord.FieldParentID, field.TypeString, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(parentpromptrecord.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(parentpromptrecord.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(parentpromptrecord.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.AiResponse(); ok {
		_spec.SetField(parentpromptrecord.FieldAiResponse, field.TypeString, value)
		_node.AiResponse = value
	}
	if value, ok := _c.mutation.PromptType(); ok {
		_spec.SetField(parentpromptrecord.FieldPromptType, field.TypeString, value)
		_node.PromptType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(parentpromptrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// ParentPromptRecordCreateBulk is the builder for creating many ParentPromptRecord entities in bulk.
type ParentPromptRecordCreateBulk struct {
	config
	err      error
	builders []*ParentPromptRecordCreate
}

// Save creates the ParentPromptRecord entities in the database.
func (_c *ParentPromptRecordCreateBulk) Save(ctx context.Context) ([]*ParentPromptRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParentPromptRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParentPromptRecordMutation)
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
func (_c *ParentPromptRecordCreateBulk) SaveX(ctx context.Context) []*ParentPromptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParentPromptRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParentPromptRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
