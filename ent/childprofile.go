// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cubeai/bubix/ent/childprofile"
)

// ChildProfile is the model entity for the ChildProfile schema.
type ChildProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID string `json:"child_id,omitempty"`
	// LearningGoals holds the value of the "learning_goals" field.
	LearningGoals []string `json:"learning_goals,omitempty"`
	// PreferredSubjects holds the value of the "preferred_subjects" field.
	PreferredSubjects []string `json:"preferred_subjects,omitempty"`
	// LearningStyle holds the value of the "learning_style" field.
	LearningStyle string `json:"learning_style,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Interests holds the value of the "interests" field.
	Interests []string `json:"interests,omitempty"`
	// SpecialNeeds holds the value of the "special_needs" field.
	SpecialNeeds []string `json:"special_needs,omitempty"`
	// CustomNotes holds the value of the "custom_notes" field.
	CustomNotes string `json:"custom_notes,omitempty"`
	// ParentWishes holds the value of the "parent_wishes" field.
	ParentWishes string `json:"parent_wishes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChildProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case childprofile.FieldLearningGoals, childprofile.FieldPreferredSubjects, childprofile.FieldInterests, childprofile.FieldSpecialNeeds:
			values[i] = new([]byte)
		case childprofile.FieldID:
			values[i] = new(sql.NullInt64)
		case childprofile.FieldChildID, childprofile.FieldLearningStyle, childprofile.FieldDifficulty, childprofile.FieldCustomNotes, childprofile.FieldParentWishes:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChildProfile fields.
func (_m *ChildProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case childprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case childprofile.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case childprofile.FieldLearningGoals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_goals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearningGoals); err != nil {
					return fmt.Errorf("unmarshal field learning_goals: %w", err)
				}
			}
		case childprofile.FieldPreferredSubjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_subjects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredSubjects); err != nil {
					return fmt.Errorf("unmarshal field preferred_subjects: %w", err)
				}
			}
		case childprofile.FieldLearningStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_style", values[i])
			} else if value.Valid {
				_m.LearningStyle = value.String
			}
		case childprofile.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case childprofile.FieldInterests:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field interests", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Interests); err != nil {
					return fmt.Errorf("unmarshal field interests: %w", err)
				}
			}
		case childprofile.FieldSpecialNeeds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field special_needs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpecialNeeds); err != nil {
					return fmt.Errorf("unmarshal field special_needs: %w", err)
				}
			}
		case childprofile.FieldCustomNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_notes", values[i])
			} else if value.Valid {
				_m.CustomNotes = value.String
			}
		case childprofile.FieldParentWishes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_wishes", values[i])
			} else if value.Valid {
				_m.ParentWishes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChildProfile.
// This includes values selected through modifiers, order, etc.
func (_m *ChildProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChildProfile.
// Note that you need to call ChildProfile.Unwrap() before calling this method if this ChildProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChildProfile) Update() *ChildProfileUpdateOne {
	return NewChildProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChildProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChildProfile) Unwrap() *ChildProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChildProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChildProfile) String() string {
	var builder strings.Builder
	builder.WriteString("ChildProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("learning_goals=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningGoals))
	builder.WriteString(", ")
	builder.WriteString("preferred_subjects=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredSubjects))
	builder.WriteString(", ")
	builder.WriteString("learning_style=")
	builder.WriteString(_m.LearningStyle)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("interests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interests))
	builder.WriteString(", ")
	builder.WriteString("special_needs=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecialNeeds))
	builder.WriteString(", ")
	builder.WriteString("custom_notes=")
	builder.WriteString(_m.CustomNotes)
	builder.WriteString(", ")
	builder.WriteString("parent_wishes=")
	builder.WriteString(_m.ParentWishes)
	builder.WriteByte(')')
	return builder.String()
}

// ChildProfiles is a parsable slice of ChildProfile.
type ChildProfiles []*ChildProfile
