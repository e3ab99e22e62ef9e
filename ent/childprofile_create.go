// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/childprofile"
)

// ChildProfileCreate is the builder for creating a ChildProfile entity.
type ChildProfileCreate struct {
	config
	mutation *ChildProfileMutation
	hooks    []Hook
}

// SetChildID sets the "child_id" field.
func (_c *ChildProfileCreate) SetChildID(v string) *ChildProfileCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetLearningGoals sets the "learning_goals" field.
func (_c *ChildProfileCreate) SetLearningGoals(v []string) *ChildProfileCreate {
	_c.mutation.SetLearningGoals(v)
	return _c
}

// SetPreferredSubjects sets the "preferred_subjects" field.
func (_c *ChildProfileCreate) SetPreferredSubjects(v []string) *ChildProfileCreate {
	_c.mutation.SetPreferredSubjects(v)
	return _c
}

// SetLearningStyle sets the "learning_style" field.
func (_c *ChildProfileCreate) SetLearningStyle(v string) *ChildProfileCreate {
	_c.mutation.SetLearningStyle(v)
	return _c
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableLearningStyle(v *string) *ChildProfileCreate {
	if v != nil {
		_c.SetLearningStyle(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ChildProfileCreate) SetDifficulty(v string) *ChildProfileCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableDifficulty(v *string) *ChildProfileCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetInterests sets the "interests" field.
func (_c *ChildProfileCreate) SetInterests(v []string) *ChildProfileCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetSpecialNeeds sets the "special_needs" field.
func (_c *ChildProfileCreate) SetSpecialNeeds(v []string) *ChildProfileCreate {
	_c.mutation.SetSpecialNeeds(v)
	return _c
}

// SetCustomNotes sets the "custom_notes" field.
func (_c *ChildProfileCreate) SetCustomNotes(v string) *ChildProfileCreate {
	_c.mutation.SetCustomNotes(v)
	return _c
}

// SetNillableCustomNotes sets the "custom_notes" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableCustomNotes(v *string) *ChildProfileCreate {
	if v != nil {
		_c.SetCustomNotes(*v)
	}
	return _c
}

// SetParentWishes sets the "parent_wishes" field.
func (_c *ChildProfileCreate) SetParentWishes(v string) *ChildProfileCreate {
	_c.mutation.SetParentWishes(v)
	return _c
}

// SetNillableParentWishes sets the "parent_wishes" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableParentWishes(v *string) *ChildProfileCreate {
	if v != nil {
		_c.SetParentWishes(*v)
	}
	return _c
}

// Mutation returns the ChildProfileMutation object of the builder.
func (_c *ChildProfileCreate) Mutation() *ChildProfileMutation {
	return _c.mutation
}

// Save creates the ChildProfile in the database.
func (_c *ChildProfileCreate) Save(ctx context.Context) (*ChildProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChildProfileCreate) SaveX(ctx context.Context) *ChildProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChildProfileCreate) defaults() {
	if _, ok := _c.mutation.LearningStyle(); !ok {
		v := childprofile.DefaultLearningStyle
		_c.mutation.SetLearningStyle(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := childprofile.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.CustomNotes(); !ok {
		v := childprofile.DefaultCustomNotes
		_c.mutation.SetCustomNotes(v)
	}
	if _, ok := _c.mutation.ParentWishes(); !ok {
		v := childprofile.DefaultParentWishes
		_c.mutation.SetParentWishes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChildProfileCreate) check() error {
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "ChildProfile.child_id"`)}
	}
	if v, ok := _c.mutation.ChildID(); ok {
		if err := childprofile.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.child_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		return &ValidationError{Name: "learning_style", err: errors.New(`ent: missing required field "ChildProfile.learning_style"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ChildProfile.difficulty"`)}
	}
	if _, ok := _c.mutation.CustomNotes(); !ok {
		return &ValidationError{Name: "custom_notes", err: errors.New(`ent: missing required field "ChildProfile.custom_notes"`)}
	}
	if _, ok := _c.mutation.ParentWishes(); !ok {
		return &ValidationError{Name: "parent_wishes", err: errors.New(`ent: missing required field "ChildProfile.parent_wishes"`)}
	}
	return nil
}

func (_c *ChildProfileCreate) sqlSave(ctx context.Context) (*ChildProfile, error) {
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

func (_c *ChildProfileCreate) createSpec() (*ChildProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &ChildProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(childprofile.Table, sqlgraph.NewFieldSpec(childprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(childprofile.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.LearningGoals(); ok {
		_spec.SetField(childprofile.FieldLearningGoals, field.TypeJSON, value)
		_node.LearningGoals = value
	}
	if value, ok := _c.mutation.PreferredSubjects(); ok {
		_spec.SetField(childprofile.FieldPreferredSubjects, field.TypeJSON, value)
		_node.PreferredSubjects = value
	}
	if value, ok := _c.mutation.LearningStyle(); ok {
		_spec.SetField(childprofile.FieldLearningStyle, field.TypeString, value)
		_node.LearningStyle = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(childprofile.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(childprofile.FieldInterests, field.TypeJSON, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.SpecialNeeds(); ok {
		_spec.SetField(childprofile.FieldSpecialNeeds, field.TypeJSON, value)
		_node.SpecialNeeds = value
	}
	if value, ok := _c.mutation.CustomNotes(); ok {
		_spec.SetField(childprofile.FieldCustomNotes, field.TypeString, value)
		_node.CustomNotes = value
	}
	if value, ok := _c.mutation.ParentWishes(); ok {
		_spec.SetField(childprofile.FieldParentWishes, field.TypeString, value)
		_node.ParentWishes = value
	}
	return _node, _spec
}

// ChildProfileCreateBulk is the builder for creating many ChildProfile entities in bulk.
type ChildProfileCreateBulk struct {
	config
	err      error
	builders []*ChildProfileCreate
}

// Save creates the ChildProfile entities in the database.
func (_c *ChildProfileCreateBulk) Save(ctx context.Context) ([]*ChildProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChildProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChildProfileMutation)
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
func (_c *ChildProfileCreateBulk) SaveX(ctx context.Context) []*ChildProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
