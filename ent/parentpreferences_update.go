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
	"github.com/cubeai/bubix/ent/parentpreferences"
	"github.com/cubeai/bubix/ent/predicate"
)

// ParentPreferencesUpdate is the builder for updating ParentPreferences entities.
type ParentPreferencesUpdate struct {
	config
	hooks    []Hook
	mutation *ParentPreferencesMutation
}

// Where appends a list predicates to the ParentPreferencesUpdate builder.
func (_u *ParentPreferencesUpdate) Where(ps ...predicate.ParentPreferences) *ParentPreferencesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ParentPreferencesUpdate) SetParentID(v string) *ParentPreferencesUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ParentPreferencesUpdate) SetNillableParentID(v *string) *ParentPreferencesUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// SetChildStrengths sets the "child_strengths" field.
func (_u *ParentPreferencesUpdate) SetChildStrengths(v []string) *ParentPreferencesUpdate {
	_u.mutation.SetChildStrengths(v)
	return _u
}

// AppendChildStrengths appends value to the "child_strengths" field.
func (_u *ParentPreferencesUpdate) AppendChildStrengths(v []string) *ParentPreferencesUpdate {
	_u.mutation.AppendChildStrengths(v)
	return _u
}

// ClearChildStrengths clears the value of the "child_strengths" field.
func (_u *ParentPreferencesUpdate) ClearChildStrengths() *ParentPreferencesUpdate {
	_u.mutation.ClearChildStrengths()
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *ParentPreferencesUpdate) SetFocusAreas(v []string) *ParentPreferencesUpdate {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *ParentPreferencesUpdate) AppendFocusAreas(v []string) *ParentPreferencesUpdate {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *ParentPreferencesUpdate) ClearFocusAreas() *ParentPreferencesUpdate {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetLearningGoals sets the "learning_goals" field.
func (_u *ParentPreferencesUpdate) SetLearningGoals(v []string) *ParentPreferencesUpdate {
	_u.mutation.SetLearningGoals(v)
	return _u
}

// AppendLearningGoals appends value to the "learning_goals" field.
func (_u *ParentPreferencesUpdate) AppendLearningGoals(v []string) *ParentPreferencesUpdate {
	_u.mutation.AppendLearningGoals(v)
	return _u
}

// ClearLearningGoals clears the value of the "learning_goals" field.
func (_u *ParentPreferencesUpdate) ClearLearningGoals() *ParentPreferencesUpdate {
	_u.mutation.ClearLearningGoals()
	return _u
}

// SetConcerns sets the "concerns" field.
func (_u *ParentPreferencesUpdate) SetConcerns(v []string) *ParentPreferencesUpdate {
	_u.mutation.SetConcerns(v)
	return _u
}

// AppendConcerns appends value to the "concerns" field.
func (_u *ParentPreferencesUpdate) AppendConcerns(v []string) *ParentPreferencesUpdate {
	_u.mutation.AppendConcerns(v)
	return _u
}

// ClearConcerns clears the value of the "concerns" field.
func (_u *ParentPreferencesUpdate) ClearConcerns() *ParentPreferencesUpdate {
	_u.mutation.ClearConcerns()
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *ParentPreferencesUpdate) SetLearningStyle(v string) *ParentPreferencesUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *ParentPreferencesUpdate) SetNillableLearningStyle(v *string) *ParentPreferencesUpdate {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetMotivationFactors sets the "motivation_factors" field.
func (_u *ParentPreferencesUpdate) SetMotivationFactors(v []string) *ParentPreferencesUpdate {
	_u.mutation.SetMotivationFactors(v)
	return _u
}

// AppendMotivationFactors appends value to the "motivation_factors" field.
func (_u *ParentPreferencesUpdate) AppendMotivationFactors(v []string) *ParentPreferencesUpdate {
	_u.mutation.AppendMotivationFactors(v)
	return _u
}

// ClearMotivationFactors clears the value of the "motivation_factors" field.
func (_u *ParentPreferencesUpdate) ClearMotivationFactors() *ParentPreferencesUpdate {
	_u.mutation.ClearMotivationFactors()
	return _u
}

// SetStudyDuration sets the "study_duration" field.
func (_u *ParentPreferencesUpdate) SetStudyDuration(v int) *ParentPreferencesUpdate {
	_u.mutation.ResetStudyDuration()
	_u.mutation.SetStudyDuration(v)
	return _u
}

// SetNillableStudyDuration sets the "study_duration" field if the given value is not nil.
func (_u *ParentPreferencesUpdate) SetNillableStudyDuration(v *int) *ParentPreferencesUpdate {
	if v != nil {
		_u.SetStudyDuration(*v)
	}
	return _u
}

// AddStudyDuration adds value to the "study_duration" field.
func (_u *ParentPreferencesUpdate) AddStudyDuration(v int) *ParentPreferencesUpdate {
	_u.mutation.AddStudyDuration(v)
	return _u
}

// SetBreakFrequency sets the "break_frequency" field.
func (_u *ParentPreferencesUpdate) SetBreakFrequency(v int) *ParentPreferencesUpdate {
	_u.mutation.ResetBreakFrequency()
	_u.mutation.SetBreakFrequency(v)
	return _u
}

// SetNillableBreakFrequency sets the "break_frequency" field if the given value is not nil.
func (_u *ParentPreferencesUpdate) SetNillableBreakFrequency(v *int) *ParentPreferencesUpdate {
	if v != nil {
		_u.SetBreakFrequency(*v)
	}
	return _u
}

// AddBreakFrequency adds value to the "break_frequency" field.
func (_u *ParentPreferencesUpdate) AddBreakFrequency(v int) *ParentPreferencesUpdate {
	_u.mutation.AddBreakFrequency(v)
	return _u
}

// Mutation returns the ParentPreferencesMutation object of the builder.
func (_u *ParentPreferencesUpdate) Mutation() *ParentPreferencesMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParentPreferencesUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParentPreferencesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParentPreferencesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParentPreferencesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParentPreferencesUpdate) check() error {
	if v, ok := _u.mutation.ParentID(); ok {
		if err := parentpreferences.ParentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_id", err: fmt.Errorf(`ent: validator failed for field "ParentPreferences.parent_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ParentPreferencesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parentpreferences.Table, parentpreferences.Columns, sqlgraph.NewFieldSpec(parentpreferences.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(parentpreferences.FieldParentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildStrengths(); ok {
		_spec.SetField(parentpreferences.FieldChildStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldChildStrengths, value)
		})
	}
	if _u.mutation.ChildStrengthsCleared() {
		_spec.ClearField(parentpreferences.FieldChildStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(parentpreferences.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(parentpreferences.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningGoals(); ok {
		_spec.SetField(parentpreferences.FieldLearningGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldLearningGoals, value)
		})
	}
	if _u.mutation.LearningGoalsCleared() {
		_spec.ClearField(parentpreferences.FieldLearningGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Concerns(); ok {
		_spec.SetField(parentpreferences.FieldConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldConcerns, value)
		})
	}
	if _u.mutation.ConcernsCleared() {
		_spec.ClearField(parentpreferences.FieldConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(parentpreferences.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MotivationFactors(); ok {
		_spec.SetField(parentpreferences.FieldMotivationFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMotivationFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldMotivationFactors, value)
		})
	}
	if _u.mutation.MotivationFactorsCleared() {
		_spec.ClearField(parentpreferences.FieldMotivationFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyDuration(); ok {
		_spec.SetField(parentpreferences.FieldStudyDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyDuration(); ok {
		_spec.AddField(parentpreferences.FieldStudyDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BreakFrequency(); ok {
		_spec.SetField(parentpreferences.FieldBreakFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBreakFrequency(); ok {
		_spec.AddField(parentpreferences.FieldBreakFrequency, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parentpreferences.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParentPreferencesUpdateOne is the builder for updating a single ParentPreferences entity.
type ParentPreferencesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParentPreferencesMutation
}

// SetParentID sets the "parent_id" field.
func (_u *ParentPreferencesUpdateOne) SetParentID(v string) *ParentPreferencesUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ParentPreferencesUpdateOne) SetNillableParentID(v *string) *ParentPreferencesUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// SetChildStrengths sets the "child_strengths" field.
func (_u *ParentPreferencesUpdateOne) SetChildStrengths(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.SetChildStrengths(v)
	return _u
}

// AppendChildStrengths appends value to the "child_strengths" field.
func (_u *ParentPreferencesUpdateOne) AppendChildStrengths(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.AppendChildStrengths(v)
	return _u
}

// ClearChildStrengths clears the value of the "child_strengths" field.
func (_u *ParentPreferencesUpdateOne) ClearChildStrengths() *ParentPreferencesUpdateOne {
	_u.mutation.ClearChildStrengths()
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *ParentPreferencesUpdateOne) SetFocusAreas(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *ParentPreferencesUpdateOne) AppendFocusAreas(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *ParentPreferencesUpdateOne) ClearFocusAreas() *ParentPreferencesUpdateOne {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetLearningGoals sets the "learning_goals" field.
func (_u *ParentPreferencesUpdateOne) SetLearningGoals(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.SetLearningGoals(v)
	return _u
}

// AppendLearningGoals appends value to the "learning_goals" field.
func (_u *ParentPreferencesUpdateOne) AppendLearningGoals(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.AppendLearningGoals(v)
	return _u
}

// ClearLearningGoals clears the value of the "learning_goals" field.
func (_u *ParentPreferencesUpdateOne) ClearLearningGoals() *ParentPreferencesUpdateOne {
	_u.mutation.ClearLearningGoals()
	return _u
}

// SetConcerns sets the "concerns" field.
func (_u *ParentPreferencesUpdateOne) SetConcerns(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.SetConcerns(v)
	return _u
}

// AppendConcerns appends value to the "concerns" field.
func (_u *ParentPreferencesUpdateOne) AppendConcerns(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.AppendConcerns(v)
	return _u
}

// ClearConcerns clears the value of the "concerns" field.
func (_u *ParentPreferencesUpdateOne) ClearConcerns() *ParentPreferencesUpdateOne {
	_u.mutation.ClearConcerns()
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *ParentPreferencesUpdateOne) SetLearningStyle(v string) *ParentPreferencesUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *ParentPreferencesUpdateOne) SetNillableLearningStyle(v *string) *ParentPreferencesUpdateOne {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetMotivationFactors sets the "motivation_factors" field.
func (_u *ParentPreferencesUpdateOne) SetMotivationFactors(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.SetMotivationFactors(v)
	return _u
}

// AppendMotivationFactors appends value to the "motivation_factors" field.
func (_u *ParentPreferencesUpdateOne) AppendMotivationFactors(v []string) *ParentPreferencesUpdateOne {
	_u.mutation.AppendMotivationFactors(v)
	return _u
}

// ClearMotivationFactors clears the value of the "motivation_factors" field.
func (_u *ParentPreferencesUpdateOne) ClearMotivationFactors() *ParentPreferencesUpdateOne {
	_u.mutation.ClearMotivationFactors()
	return _u
}

// SetStudyDuration sets the "study_duration" field.
func (_u *ParentPreferencesUpdateOne) SetStudyDuration(v int) *ParentPreferencesUpdateOne {
	_u.mutation.ResetStudyDuration()
	_u.mutation.SetStudyDuration(v)
	return _u
}

// SetNillableStudyDuration sets the "study_duration" field if the given value is not nil.
func (_u *ParentPreferencesUpdateOne) SetNillableStudyDuration(v *int) *ParentPreferencesUpdateOne {
	if v != nil {
		_u.SetStudyDuration(*v)
	}
	return _u
}

// AddStudyDuration adds value to the "study_duration" field.
func (_u *ParentPreferencesUpdateOne) AddStudyDuration(v int) *ParentPreferencesUpdateOne {
	_u.mutation.AddStudyDuration(v)
	return _u
}

// SetBreakFrequency sets the "break_frequency" field.
func (_u *ParentPreferencesUpdateOne) SetBreakFrequency(v int) *ParentPreferencesUpdateOne {
	_u.mutation.ResetBreakFrequency()
	_u.mutation.SetBreakFrequency(v)
	return _u
}

// SetNillableBreakFrequency sets the "break_frequency" field if the given value is not nil.
func (_u *ParentPreferencesUpdateOne) SetNillableBreakFrequency(v *int) *ParentPreferencesUpdateOne {
	if v != nil {
		_u.SetBreakFrequency(*v)
	}
	return _u
}

// AddBreakFrequency adds value to the "break_frequency" field.
func (_u *ParentPreferencesUpdateOne) AddBreakFrequency(v int) *ParentPreferencesUpdateOne {
	_u.mutation.AddBreakFrequency(v)
	return _u
}

// Mutation returns the ParentPreferencesMutation object of the builder.
func (_u *ParentPreferencesUpdateOne) Mutation() *ParentPreferencesMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParentPreferencesUpdate builder.
func (_u *ParentPreferencesUpdateOne) Where(ps ...predicate.ParentPreferences) *ParentPreferencesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParentPreferencesUpdateOne) Select(field string, fields ...string) *ParentPreferencesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParentPreferences entity.
func (_u *ParentPreferencesUpdateOne) Save(ctx context.Context) (*ParentPreferences, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParentPreferencesUpdateOne) SaveX(ctx context.Context) *ParentPreferences {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParentPreferencesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParentPreferencesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParentPreferencesUpdateOne) check() error {
	if v, ok := _u.mutation.ParentID(); ok {
		if err := parentpreferences.ParentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_id", err: fmt.Errorf(`ent: validator failed for field "ParentPreferences.parent_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ParentPreferencesUpdateOne) sqlSave(ctx context.Context) (_node *ParentPreferences, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parentpreferences.Table, parentpreferences.Columns, sqlgraph.NewFieldSpec(parentpreferences.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParentPreferences.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parentpreferences.FieldID)
		for _, f := range fields {
			if !parentpreferences.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parentpreferences.FieldID {
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
		_spec.SetField(parentpreferences.FieldParentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildStrengths(); ok {
		_spec.SetField(parentpreferences.FieldChildStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldChildStrengths, value)
		})
	}
	if _u.mutation.ChildStrengthsCleared() {
		_spec.ClearField(parentpreferences.FieldChildStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(parentpreferences.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(parentpreferences.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningGoals(); ok {
		_spec.SetField(parentpreferences.FieldLearningGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldLearningGoals, value)
		})
	}
	if _u.mutation.LearningGoalsCleared() {
		_spec.ClearField(parentpreferences.FieldLearningGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Concerns(); ok {
		_spec.SetField(parentpreferences.FieldConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldConcerns, value)
		})
	}
	if _u.mutation.ConcernsCleared() {
		_spec.ClearField(parentpreferences.FieldConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(parentpreferences.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MotivationFactors(); ok {
		_spec.SetField(parentpreferences.FieldMotivationFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMotivationFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parentpreferences.FieldMotivationFactors, value)
		})
	}
	if _u.mutation.MotivationFactorsCleared() {
		_spec.ClearField(parentpreferences.FieldMotivationFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyDuration(); ok {
		_spec.SetField(parentpreferences.FieldStudyDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyDuration(); ok {
		_spec.AddField(parentpreferences.FieldStudyDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BreakFrequency(); ok {
		_spec.SetField(parentpreferences.FieldBreakFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBreakFrequency(); ok {
		_spec.AddField(parentpreferences.FieldBreakFrequency, field.TypeInt, value)
	}
	_node = &ParentPreferences{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parentpreferences.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
