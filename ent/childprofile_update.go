// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/childprofile"
	"github.com/cubeai/bubix/ent/predicate"
)

// ChildProfileUpdate is the builder for updating ChildProfile entities.
type ChildProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ChildProfileMutation
}

// Where appends a list predicates to the ChildProfileUpdate builder.
func (_u *ChildProfileUpdate) Where(ps ...predicate.ChildProfile) *ChildProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *ChildProfileUpdate) SetChildID(v string) *ChildProfileUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableChildID(v *string) *ChildProfileUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetLearningGoals sets the "learning_goals" field.
func (_u *ChildProfileUpdate) SetLearningGoals(v []string) *ChildProfileUpdate {
	_u.mutation.SetLearningGoals(v)
	return _u
}

// AppendLearningGoals appends value to the "learning_goals" field.
func (_u *ChildProfileUpdate) AppendLearningGoals(v []string) *ChildProfileUpdate {
	_u.mutation.AppendLearningGoals(v)
	return _u
}

// ClearLearningGoals clears the value of the "learning_goals" field.
func (_u *ChildProfileUpdate) ClearLearningGoals() *ChildProfileUpdate {
	_u.mutation.ClearLearningGoals()
	return _u
}

// SetPreferredSubjects sets the "preferred_subjects" field.
func (_u *ChildProfileUpdate) SetPreferredSubjects(v []string) *ChildProfileUpdate {
	_u.mutation.SetPreferredSubjects(v)
	return _u
}

// AppendPreferredSubjects appends value to the "preferred_subjects" field.
func (_u *ChildProfileUpdate) AppendPreferredSubjects(v []string) *ChildProfileUpdate {
	_u.mutation.AppendPreferredSubjects(v)
	return _u
}

// ClearPreferredSubjects clears the value of the "preferred_subjects" field.
func (_u *ChildProfileUpdate) ClearPreferredSubjects() *ChildProfileUpdate {
	_u.mutation.ClearPreferredSubjects()
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *ChildProfileUpdate) SetLearningStyle(v string) *ChildProfileUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableLearningStyle(v *string) *ChildProfileUpdate {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChildProfileUpdate) SetDifficulty(v string) *ChildProfileUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableDifficulty(v *string) *ChildProfileUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *ChildProfileUpdate) SetInterests(v []string) *ChildProfileUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *ChildProfileUpdate) AppendInterests(v []string) *ChildProfileUpdate {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *ChildProfileUpdate) ClearInterests() *ChildProfileUpdate {
	_u.mutation.ClearInterests()
	return _u
}

// SetSpecialNeeds sets the "special_needs" field.
func (_u *ChildProfileUpdate) SetSpecialNeeds(v []string) *ChildProfileUpdate {
	_u.mutation.SetSpecialNeeds(v)
	return _u
}

// AppendSpecialNeeds appends value to the "special_needs" field.
func (_u *ChildProfileUpdate) AppendSpecialNeeds(v []string) *ChildProfileUpdate {
	_u.mutation.AppendSpecialNeeds(v)
	return _u
}

// ClearSpecialNeeds clears the value of the "special_needs" field.
func (_u *ChildProfileUpdate) ClearSpecialNeeds() *ChildProfileUpdate {
	_u.mutation.ClearSpecialNeeds()
	return _u
}

// SetCustomNotes sets the "custom_notes" field.
func (_u *ChildProfileUpdate) SetCustomNotes(v string) *ChildProfileUpdate {
	_u.mutation.SetCustomNotes(v)
	return _u
}

// SetNillableCustomNotes sets the "custom_notes" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableCustomNotes(v *string) *ChildProfileUpdate {
	if v != nil {
		_u.SetCustomNotes(*v)
	}
	return _u
}

// SetParentWishes sets the "parent_wishes" field.
func (_u *ChildProfileUpdate) SetParentWishes(v string) *ChildProfileUpdate {
	_u.mutation.SetParentWishes(v)
	return _u
}

// SetNillableParentWishes sets the "parent_wishes" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableParentWishes(v *string) *ChildProfileUpdate {
	if v != nil {
		_u.SetParentWishes(*v)
	}
	return _u
}

// Mutation returns the ChildProfileMutation object of the builder.
func (_u *ChildProfileUpdate) Mutation() *ChildProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChildProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChildProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChildProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChildProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChildProfileUpdate) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := childprofile.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.child_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ChildProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(childprofile.Table, childprofile.Columns, sqlgraph.NewFieldSpec(childprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(childprofile.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoals(); ok {
		_spec.SetField(childprofile.FieldLearningGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldLearningGoals, value)
		})
	}
	if _u.mutation.LearningGoalsCleared() {
		_spec.ClearField(childprofile.FieldLearningGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreferredSubjects(); ok {
		_spec.SetField(childprofile.FieldPreferredSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldPreferredSubjects, value)
		})
	}
	if _u.mutation.PreferredSubjectsCleared() {
		_spec.ClearField(childprofile.FieldPreferredSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(childprofile.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(childprofile.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(childprofile.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(childprofile.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecialNeeds(); ok {
		_spec.SetField(childprofile.FieldSpecialNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldSpecialNeeds, value)
		})
	}
	if _u.mutation.SpecialNeedsCleared() {
		_spec.ClearField(childprofile.FieldSpecialNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomNotes(); ok {
		_spec.SetField(childprofile.FieldCustomNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentWishes(); ok {
		_spec.SetField(childprofile.FieldParentWishes, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{childprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChildProfileUpdateOne is the builder for updating a single ChildProfile entity.
type ChildProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChildProfileMutation
}

// SetChildID sets the "child_id" field.
func (_u *ChildProfileUpdateOne) SetChildID(v string) *ChildProfileUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableChildID(v *string) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetLearningGoals sets the "learning_goals" field.
func (_u *ChildProfileUpdateOne) SetLearningGoals(v []string) *ChildProfileUpdateOne {
	_u.mutation.SetLearningGoals(v)
	return _u
}

// AppendLearningGoals appends value to the "learning_goals" field.
func (_u *ChildProfileUpdateOne) AppendLearningGoals(v []string) *ChildProfileUpdateOne {
	_u.mutation.AppendLearningGoals(v)
	return _u
}

// ClearLearningGoals clears the value of the "learning_goals" field.
func (_u *ChildProfileUpdateOne) ClearLearningGoals() *ChildProfileUpdateOne {
	_u.mutation.ClearLearningGoals()
	return _u
}

// SetPreferredSubjects sets the "preferred_subjects" field.
func (_u *ChildProfileUpdateOne) SetPreferredSubjects(v []string) *ChildProfileUpdateOne {
	_u.mutation.SetPreferredSubjects(v)
	return _u
}

// AppendPreferredSubjects appends value to the "preferred_subjects" field.
func (_u *ChildProfileUpdateOne) AppendPreferredSubjects(v []string) *ChildProfileUpdateOne {
	_u.mutation.AppendPreferredSubjects(v)
	return _u
}

// ClearPreferredSubjects clears the value of the "preferred_subjects" field.
func (_u *ChildProfileUpdateOne) ClearPreferredSubjects() *ChildProfileUpdateOne {
	_u.mutation.ClearPreferredSubjects()
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *ChildProfileUpdateOne) SetLearningStyle(v string) *ChildProfileUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableLearningStyle(v *string) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChildProfileUpdateOne) SetDifficulty(v string) *ChildProfileUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableDifficulty(v *string) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *ChildProfileUpdateOne) SetInterests(v []string) *ChildProfileUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *ChildProfileUpdateOne) AppendInterests(v []string) *ChildProfileUpdateOne {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *ChildProfileUpdateOne) ClearInterests() *ChildProfileUpdateOne {
	_u.mutation.ClearInterests()
	return _u
}

// SetSpecialNeeds sets the "special_needs" field.
func (_u *ChildProfileUpdateOne) SetSpecialNeeds(v []string) *ChildProfileUpdateOne {
	_u.mutation.SetSpecialNeeds(v)
	return _u
}

// AppendSpecialNeeds appends value to the "special_needs" field.
func (_u *ChildProfileUpdateOne) AppendSpecialNeeds(v []string) *ChildProfileUpdateOne {
	_u.mutation.AppendSpecialNeeds(v)
	return _u
}

// ClearSpecialNeeds clears the value of the "special_needs" field.
func (_u *ChildProfileUpdateOne) ClearSpecialNeeds() *ChildProfileUpdateOne {
	_u.mutation.ClearSpecialNeeds()
	return _u
}

// SetCustomNotes sets the "custom_notes" field.
func (_u *ChildProfileUpdateOne) SetCustomNotes(v string) *ChildProfileUpdateOne {
	_u.mutation.SetCustomNotes(v)
	return _u
}

// SetNillableCustomNotes sets the "custom_notes" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableCustomNotes(v *string) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetCustomNotes(*v)
	}
	return _u
}

// SetParentWishes sets the "parent_wishes" field.
func (_u *ChildProfileUpdateOne) SetParentWishes(v string) *ChildProfileUpdateOne {
	_u.mutation.SetParentWishes(v)
	return _u
}

// SetNillableParentWishes sets the "parent_wishes" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableParentWishes(v *string) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetParentWishes(*v)
	}
	return _u
}

// Mutation returns the ChildProfileMutation object of the builder.
func (_u *ChildProfileUpdateOne) Mutation() *ChildProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChildProfileUpdate builder.
func (_u *ChildProfileUpdateOne) Where(ps ...predicate.ChildProfile) *ChildProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChildProfileUpdateOne) Select(field string, fields ...string) *ChildProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChildProfile entity.
func (_u *ChildProfileUpdateOne) Save(ctx context.Context) (*ChildProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChildProfileUpdateOne) SaveX(ctx context.Context) *ChildProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChildProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChildProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChildProfileUpdateOne) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := childprofile.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.child_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ChildProfileUpdateOne) sqlSave(ctx context.Context) (_node *ChildProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(childprofile.Table, childprofile.Columns, sqlgraph.NewFieldSpec(childprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChildProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, childprofile.FieldID)
		for _, f := range fields {
			if !childprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != childprofile.FieldID {
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
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(childprofile.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoals(); ok {
		_spec.SetField(childprofile.FieldLearningGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldLearningGoals, value)
		})
	}
	if _u.mutation.LearningGoalsCleared() {
		_spec.ClearField(childprofile.FieldLearningGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreferredSubjects(); ok {
		_spec.SetField(childprofile.FieldPreferredSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldPreferredSubjects, value)
		})
	}
	if _u.mutation.PreferredSubjectsCleared() {
		_spec.ClearField(childprofile.FieldPreferredSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(childprofile.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(childprofile.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(childprofile.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(childprofile.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecialNeeds(); ok {
		_spec.SetField(childprofile.FieldSpecialNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldSpecialNeeds, value)
		})
	}
	if _u.mutation.SpecialNeedsCleared() {
		_spec.ClearField(childprofile.FieldSpecialNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomNotes(); ok {
		_spec.SetField(childprofile.FieldCustomNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentWishes(); ok {
		_spec.SetField(childprofile.FieldParentWishes, field.TypeString, value)
	}
	_node = &ChildProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{childprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
