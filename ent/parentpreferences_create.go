// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/parentpreferences"
)

// ParentPreferencesCreate is the builder for creating a ParentPreferences entity.
type ParentPreferencesCreate struct {
	config
	mutation *ParentPreferencesMutation
	hooks    []Hook
}

// SetParentID sets the "parent_id" field.
func (_c *ParentPreferencesCreate) SetParentID(v string) *ParentPreferencesCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetChildStrengths sets the "child_strengths" field.
func (_c *ParentPreferencesCreate) SetChildStrengths(v []string) *ParentPreferencesCreate {
	_c.mutation.SetChildStrengths(v)
	return _c
}

// SetFocusAreas sets the "focus_areas" field.
func (_c *ParentPreferencesCreate) SetFocusAreas(v []string) *ParentPreferencesCreate {
	_c.mutation.SetFocusAreas(v)
	return _c
}

// SetLearningGoals sets the "learning_goals" field.
func (_c *ParentPreferencesCreate) SetLearningGoals(v []string) *ParentPreferencesCreate {
	_c.mutation.SetLearningGoals(v)
	return _c
}

// SetConcerns sets the "concerns" field.
func (_c *ParentPreferencesCreate) SetConcerns(v []string) *ParentPreferencesCreate {
	_c.mutation.SetConcerns(v)
	return _c
}

// SetLearningStyle sets the "learning_style" field.
func (_c *ParentPreferencesCreate) SetLearningStyle(v string) *ParentPreferencesCreate {
	_c.mutation.SetLearningStyle(v)
	return _c
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_c *ParentPreferencesCreate) SetNillableLearningStyle(v *string) *ParentPreferencesCreate {
	if v != nil {
		_c.SetLearningStyle(*v)
	}
	return _c
}

// SetMotivationFactors sets the "motivation_factors" field.
func (_c *ParentPreferencesCreate) SetMotivationFactors(v []string) *ParentPreferencesCreate {
	_c.mutation.SetMotivationFactors(v)
	return _c
}

// SetStudyDuration sets the "study_duration" field.
func (_c *ParentPreferencesCreate) SetStudyDuration(v int) *ParentPreferencesCreate {
	_c.mutation.SetStudyDuration(v)
	return _c
}

// SetNillableStudyDuration sets the "study_duration" field if the given value is not nil.
func (_c *ParentPreferencesCreate) SetNillableStudyDuration(v *int) *ParentPreferencesCreate {
	if v != nil {
		_c.SetStudyDuration(*v)
	}
	return _c
}

// SetBreakFrequency sets the "break_frequency" field.
func (_c *ParentPreferencesCreate) SetBreakFrequency(v int) *ParentPreferencesCreate {
	_c.mutation.SetBreakFrequency(v)
	return _c
}

// SetNillableBreakFrequency sets the "break_frequency" field if the given value is not nil.
func (_c *ParentPreferencesCreate) SetNillableBreakFrequency(v *int) *ParentPreferencesCreate {
	if v != nil {
		_c.SetBreakFrequency(*v)
	}
	return _c
}

// Mutation returns the ParentPreferencesMutation object of the builder.
func (_c *ParentPreferencesCreate) Mutation() *ParentPreferencesMutation {
	return _c.mutation
}

// Save creates the ParentPreferences in the database.
func (_c *ParentPreferencesCreate) Save(ctx context.Context) (*ParentPreferences, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParentPreferencesCreate) SaveX(ctx context.Context) *ParentPreferences {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParentPreferencesCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParentPreferencesCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParentPreferencesCreate) defaults() {
	if _, ok := _c.mutation.LearningStyle(); !ok {
		v := parentpreferences.DefaultLearningStyle
		_c.mutation.SetLearningStyle(v)
	}
	if _, ok := _c.mutation.StudyDuration(); !ok {
		v := parentpreferences.DefaultStudyDuration
		_c.mutation.SetStudyDuration(v)
	}
	if _, ok := _c.mutation.BreakFrequency(); !ok {
		v := parentpreferences.DefaultBreakFrequency
		_c.mutation.SetBreakFrequency(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParentPreferencesCreate) check() error {
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "ParentPreferences.parent_id"`)}
	}
	if v, ok := _c.mutation.ParentID(); ok {
		if err := parentpreferences.ParentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_id", err: fmt.Errorf(`ent: validator failed for field "ParentPreferences.parent_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		return &ValidationError{Name: "learning_style", err: errors.New(`ent: missing required field "ParentPreferences.learning_style"`)}
	}
	if _, ok := _c.mutation.StudyDuration(); !ok {
		return &ValidationError{Name: "study_duration", err: errors.New(`ent: missing required field "ParentPreferences.study_duration"`)}
	}
	if _, ok := _c.mutation.BreakFrequency(); !ok {
		return &ValidationError{Name: "break_frequency", err: errors.New(`ent: missing required field "ParentPreferences.break_frequency"`)}
	}
	return nil
}

func (_c *ParentPreferencesCreate) sqlSave(ctx context.Context) (*ParentPreferences, error) {
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

func (_c *ParentPreferencesCreate) createSpec() (*ParentPreferences, *sqlgraph.CreateSpec) {
	var (
		_node = &ParentPreferences{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parentpreferences.Table, sqlgraph.NewFieldSpec(parentpreferences.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(parentpreferences.FieldParentID, field.TypeString, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.ChildStrengths(); ok {
		_spec.SetField(parentpreferences.FieldChildStrengths, field.TypeJSON, value)
		_node.ChildStrengths = value
	}
	if value, ok := _c.mutation.FocusAreas(); ok {
		_spec.SetField(parentpreferences.FieldFocusAreas, field.TypeJSON, value)
		_node.FocusAreas = value
	}
	if value, ok := _c.mutation.LearningGoals(); ok {
		_spec.SetField(parentpreferences.FieldLearningGoals, field.TypeJSON, value)
		_node.LearningGoals = value
	}
	if value, ok := _c.mutation.Concerns(); ok {
		_spec.SetField(parentpreferences.FieldConcerns, field.TypeJSON, value)
		_node.Concerns = value
	}
	if value, ok := _c.mutation.LearningStyle(); ok {
		_spec.SetField(parentpreferences.FieldLearningStyle, field.TypeString, value)
		_node.LearningStyle = value
	}
	if value, ok := _c.mutation.MotivationFactors(); ok {
		_spec.SetField(parentpreferences.FieldMotivationFactors, field.TypeJSON, value)
		_node.MotivationFactors = value
	}
	if value, ok := _c.mutation.StudyDuration(); ok {
		_spec.SetField(parentpreferences.FieldStudyDuration, field.TypeInt, value)
		_node.StudyDuration = value
	}
	if value, ok := _c.mutation.BreakFrequency(); ok {
		_spec.SetField(parentpreferences.FieldBreakFrequency, field.TypeInt, value)
		_node.BreakFrequency = value
	}
	return _node, _spec
}

// ParentPreferencesCreateBulk is the builder for creating many ParentPreferences entities in bulk.
type ParentPreferencesCreateBulk struct {
	config
	err      error
	builders []*ParentPreferencesCreate
}

// Save creates the ParentPreferences entities in the database.
func (_c *ParentPreferencesCreateBulk) Save(ctx context.Context) ([]*ParentPreferences, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParentPreferences, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParentPreferencesMutation)
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
func (_c *ParentPreferencesCreateBulk) SaveX(ctx context.Context) []*ParentPreferences {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParentPreferencesCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParentPreferencesCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
