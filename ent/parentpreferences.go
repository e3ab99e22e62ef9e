// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cubeai/bubix/ent/parentpreferences"
)

// ParentPreferences is the model entity for the ParentPreferences schema.
type ParentPreferences struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID string `json:"parent_id,omitempty"`
	// ChildStrengths holds the value of the "child_strengths" field.
	ChildStrengths []string `json:"child_strengths,omitempty"`
	// FocusAreas holds the value of the "focus_areas" field.
	FocusAreas []string `json:"focus_areas,omitempty"`
	// LearningGoals holds the value of the "learning_goals" field.
	LearningGoals []string `json:"learning_goals,omitempty"`
	// Concerns holds the value of the "concerns" field.
	Concerns []string `json:"concerns,omitempty"`
	// LearningStyle holds the value of the "learning_style" field.
	LearningStyle string `json:"learning_style,omitempty"`
	// MotivationFactors holds the value of the "motivation_factors" field.
	MotivationFactors []string `json:"motivation_factors,omitempty"`
	// Preferred session length in minutes
	StudyDuration int `json:"study_duration,omitempty"`
	// Preferred minutes between breaks
	BreakFrequency int `json:"break_frequency,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParentPreferences) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parentpreferences.FieldChildStrengths, parentpreferences.FieldFocusAreas, parentpreferences.FieldLearningGoals, parentpreferences.FieldConcerns, parentpreferences.FieldMotivationFactors:
			values[i] = new([]byte)
		case parentpreferences.FieldID, parentpreferences.FieldStudyDuration, parentpreferences.FieldBreakFrequency:
			values[i] = new(sql.NullInt64)
		case parentpreferences.FieldParentID, parentpreferences.FieldLearningStyle:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParentPreferences fields.
func (_m *ParentPreferences) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parentpreferences.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case parentpreferences.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = value.String
			}
		case parentpreferences.FieldChildStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field child_strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChildStrengths); err != nil {
					return fmt.Errorf("unmarshal field child_strengths: %w", err)
				}
			}
		case parentpreferences.FieldFocusAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field focus_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FocusAreas); err != nil {
					return fmt.Errorf("unmarshal field focus_areas: %w", err)
				}
			}
		case parentpreferences.FieldLearningGoals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_goals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearningGoals); err != nil {
					return fmt.Errorf("unmarshal field learning_goals: %w", err)
				}
			}
		case parentpreferences.FieldConcerns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concerns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Concerns); err != nil {
					return fmt.Errorf("unmarshal field concerns: %w", err)
				}
			}
		case parentpreferences.FieldLearningStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_style", values[i])
			} else if value.Valid {
				_m.LearningStyle = value.String
			}
		case parentpreferences.FieldMotivationFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field motivation_factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MotivationFactors); err != nil {
					return fmt.Errorf("unmarshal field motivation_factors: %w", err)
				}
			}
		case parentpreferences.FieldStudyDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field study_duration", values[i])
			} else if value.Valid {
				_m.StudyDuration = int(value.Int64)
			}
		case parentpreferences.FieldBreakFrequency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field break_frequency", values[i])
			} else if value.Valid {
				_m.BreakFrequency = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParentPreferences.
// This includes values selected through modifiers, order, etc.
func (_m *ParentPreferences) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ParentPreferences.
// Note that you need to call ParentPreferences.Unwrap() before calling this method if this ParentPreferences
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParentPreferences) Update() *ParentPreferencesUpdateOne {
	return NewParentPreferencesClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParentPreferences entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParentPreferences) Unwrap() *ParentPreferences {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParentPreferences is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParentPreferences) String() string {
	var builder strings.Builder
	builder.WriteString("ParentPreferences(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("parent_id=")
	builder.WriteString(_m.ParentID)
	builder.WriteString(", ")
	builder.WriteString("child_strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildStrengths))
	builder.WriteString(", ")
	builder.WriteString("focus_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusAreas))
	builder.WriteString(", ")
	builder.WriteString("learning_goals=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningGoals))
	builder.WriteString(", ")
	builder.WriteString("concerns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concerns))
	builder.WriteString(", ")
	builder.WriteString("learning_style=")
	builder.WriteString(_m.LearningStyle)
	builder.WriteString(", ")
	builder.WriteString("motivation_factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.MotivationFactors))
	builder.WriteString(", ")
	builder.WriteString("study_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyDuration))
	builder.WriteString(", ")
	builder.WriteString("break_frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.BreakFrequency))
	builder.WriteByte(')')
	return builder.String()
}

// ParentPreferencesSlice is a parsable slice of ParentPreferences.
type ParentPreferencesSlice []*ParentPreferences
