// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cubeai/bubix/ent/predicate"
	"github.com/cubeai/bubix/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *UserProfileUpdate) SetAccountID(v string) *UserProfileUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAccountID(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserProfileUpdate) SetFirstName(v string) *UserProfileUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableFirstName(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *UserProfileUpdate) SetLastName(v string) *UserProfileUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableLastName(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *UserProfileUpdate) SetGender(v string) *UserProfileUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableGender(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetUserType sets the "user_type" field.
func (_u *UserProfileUpdate) SetUserType(v userprofile.UserType) *UserProfileUpdate {
	_u.mutation.SetUserType(v)
	return _u
}

// SetNillableUserType sets the "user_type" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableUserType(v *userprofile.UserType) *UserProfileUpdate {
	if v != nil {
		_u.SetUserType(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *UserProfileUpdate) SetAge(v int) *UserProfileUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAge(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *UserProfileUpdate) AddAge(v int) *UserProfileUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *UserProfileUpdate) ClearAge() *UserProfileUpdate {
	_u.mutation.ClearAge()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserProfileUpdate) SetLastLoginAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableLastLoginAt(v *time.Time) *UserProfileUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserProfileUpdate) ClearLastLoginAt() *UserProfileUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProfileUpdate) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := userprofile.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "UserProfile.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := userprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "UserProfile.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := userprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "UserProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserType(); ok {
		if err := userprofile.UserTypeValidator(v); err != nil {
			return &ValidationError{Name: "user_type", err: fmt.Errorf(`ent: validator failed for field "UserProfile.user_type": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(userprofile.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(userprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(userprofile.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(userprofile.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserType(); ok {
		_spec.SetField(userprofile.FieldUserType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(userprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(userprofile.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(userprofile.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(userprofile.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(userprofile.FieldLastLoginAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetAccountID sets the "account_id" field.
func (_u *UserProfileUpdateOne) SetAccountID(v string) *UserProfileUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAccountID(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserProfileUpdateOne) SetFirstName(v string) *UserProfileUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableFirstName(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *UserProfileUpdateOne) SetLastName(v string) *UserProfileUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableLastName(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *UserProfileUpdateOne) SetGender(v string) *UserProfileUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableGender(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetUserType sets the "user_type" field.
func (_u *UserProfileUpdateOne) SetUserType(v userprofile.UserType) *UserProfileUpdateOne {
	_u.mutation.SetUserType(v)
	return _u
}

// SetNillableUserType sets the "user_type" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableUserType(v *userprofile.UserType) *UserProfileUpdateOne {
	if v != nil {
		_u.SetUserType(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *UserProfileUpdateOne) SetAge(v int) *UserProfileUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAge(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *UserProfileUpdateOne) AddAge(v int) *UserProfileUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *UserProfileUpdateOne) ClearAge() *UserProfileUpdateOne {
	_u.mutation.ClearAge()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserProfileUpdateOne) SetLastLoginAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserProfileUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserProfileUpdateOne) ClearLastLoginAt() *UserProfileUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProfileUpdateOne) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := userprofile.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "UserProfile.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := userprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "UserProfile.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := userprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "UserProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserType(); ok {
		if err := userprofile.UserTypeValidator(v); err != nil {
			return &ValidationError{Name: "user_type", err: fmt.Errorf(`ent: validator failed for field "UserProfile.user_type": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(userprofile.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(userprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(userprofile.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(userprofile.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserType(); ok {
		_spec.SetField(userprofile.FieldUserType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(userprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(userprofile.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(userprofile.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(userprofile.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(userprofile.FieldLastLoginAt, field.TypeTime)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
