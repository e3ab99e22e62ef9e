// Code generated by ent, DO NOT EDIT.

package parentpreferences

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the parentpreferences type in the database.
	Label = "parent_preferences"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldChildStrengths holds the string denoting the child_strengths field in the database.
	FieldChildStrengths = "child_strengths"
	// FieldFocusAreas holds the string denoting the focus_areas field in the database.
	FieldFocusAreas = "focus_areas"
	// FieldLearningGoals holds the string denoting the learning_goals field in the database.
	FieldLearningGoals = "learning_goals"
	// FieldConcerns holds the string denoting the concerns field in the database.
	FieldConcerns = "concerns"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldMotivationFactors holds the string denoting the motivation_factors field in the database.
	FieldMotivationFactors = "motivation_factors"
	// FieldStudyDuration holds the string denoting the study_duration field in the database.
	FieldStudyDuration = "study_duration"
	// FieldBreakFrequency holds the string denoting the break_frequency field in the database.
	FieldBreakFrequency = "break_frequency"
	// Table holds the table name of the parentpreferences in the database.
	Table = "parent_preferences"
)

// Columns holds all SQL columns for parentpreferences fields.
var Columns = []string{
	FieldID,
	FieldParentID,
	FieldChildStrengths,
	FieldFocusAreas,
	FieldLearningGoals,
	FieldConcerns,
	FieldLearningStyle,
	FieldMotivationFactors,
	FieldStudyDuration,
	FieldBreakFrequency,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ParentIDValidator is a validator for the "parent_id" field. It is called by the builders before save.
	ParentIDValidator func(string) error
	// DefaultLearningStyle holds the default value on creation for the "learning_style" field.
	DefaultLearningStyle string
	// DefaultStudyDuration holds the default value on creation for the "study_duration" field.
	DefaultStudyDuration int
	// DefaultBreakFrequency holds the default value on creation for the "break_frequency" field.
	DefaultBreakFrequency int
)

// OrderOption defines the ordering options for the ParentPreferences queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByLearningStyle orders the results by the learning_style field.
func ByLearningStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStyle, opts...).ToFunc()
}

// ByStudyDuration orders the results by the study_duration field.
func ByStudyDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyDuration, opts...).ToFunc()
}

// ByBreakFrequency orders the results by the break_frequency field.
func ByBreakFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakFrequency, opts...).ToFunc()
}
