// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/activityrecord"
)

// ActivityRecordCreate is the builder for creating a ActivityRecord entity.
type ActivityRecordCreate struct {
	config
	mutation *ActivityRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ActivityRecordCreate) SetUserID(v string) *ActivityRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *ActivityRecordCreate) SetDomain(v string) *ActivityRecordCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNodeKey sets the "node_key" field.
func (_c *ActivityRecordCreate) SetNodeKey(v string) *ActivityRecordCreate {
	_c.mutation.SetNodeKey(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ActivityRecordCreate) SetScore(v int) *ActivityRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ActivityRecordCreate) SetAttempts(v int) *ActivityRecordCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ActivityRecordCreate) SetNillableAttempts(v *int) *ActivityRecordCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ActivityRecordCreate) SetDurationMs(v int64) *ActivityRecordCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ActivityRecordCreate) SetNillableDurationMs(v *int64) *ActivityRecordCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityRecordCreate) SetCreatedAt(v time.Time) *ActivityRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityRecordCreate) SetNillableCreatedAt(v *time.Time) *ActivityRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ActivityRecordMutation object of the builder.
func (_c *ActivityRecordCreate) Mutation() *ActivityRecordMutation {
	return _c.mutation
}

// Save creates the ActivityRecord in the database.
func (_c *ActivityRecordCreate) Save(ctx context.Context) (*ActivityRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityRecordCreate) SaveX(ctx context.Context) *ActivityRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityRecordCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := activityrecord.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := activityrecord.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activityrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ActivityRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := activityrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "ActivityRecord.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := activityrecord.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "ActivityRecord.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeKey(); !ok {
		return &ValidationError{Name: "node_key", err: errors.New(`ent: missing required field "ActivityRecord.node_key"`)}
	}
	if v, ok := _c.mutation.NodeKey(); ok {
		if err := activityrecord.NodeKeyValidator(v); err != nil {
			return &ValidationError{Name: "node_key", err: fmt.Errorf(`ent: validator failed for field "ActivityRecord.node_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ActivityRecord.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := activityrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ActivityRecord.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ActivityRecord.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := activityrecord.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "ActivityRecord.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ActivityRecord.duration_ms"`)}
	}
	if v, ok := _c.mutation.DurationMs(); ok {
		if err := activityrecord.DurationMsValidator(v); err != nil {
			return &ValidationError{Name: "duration_ms", err: fmt.Errorf(`ent: validator failed for field "ActivityRecord.duration_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActivityRecord.created_at"`)}
	}
	return nil
}

func (_c *ActivityRecordCreate) sqlSave(ctx context.Context) (*ActivityRecord, error) {
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

func (_c *ActivityRecordCreate) createSpec() (*ActivityRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityrecord.Table, sqlgraph.NewFieldSpec(activityrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(activityrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(activityrecord.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.NodeKey(); ok {
		_spec.SetField(activityrecord.FieldNodeKey, field.TypeString, value)
		_node.NodeKey = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(activityrecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(activityrecord.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(activityrecord.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activityrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ActivityRecordCreateBulk is the builder for creating many ActivityRecord entities in bulk.
type ActivityRecordCreateBulk struct {
	config
	err      error
	builders []*ActivityRecordCreate
}

// Save creates the ActivityRecord entities in the database.
func (_c *ActivityRecordCreateBulk) Save(ctx context.Context) ([]*ActivityRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityRecordMutation)
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
func (_c *ActivityRecordCreateBulk) SaveX(ctx context.Context) []*ActivityRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
