// Code generated by ent, DO NOT EDIT.

package childprofile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the childprofile type in the database.
	Label = "child_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldLearningGoals holds the string denoting the learning_goals field in the database.
	FieldLearningGoals = "learning_goals"
	// FieldPreferredSubjects holds the string denoting the preferred_subjects field in the database.
	FieldPreferredSubjects = "preferred_subjects"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldSpecialNeeds holds the string denoting the special_needs field in the database.
	FieldSpecialNeeds = "special_needs"
	// FieldCustomNotes holds the string denoting the custom_notes field in the database.
	FieldCustomNotes = "custom_notes"
	// FieldParentWishes holds the string denoting the parent_wishes field in the database.
	FieldParentWishes = "parent_wishes"
	// Table holds the table name of the childprofile in the database.
	Table = "child_profiles"
)

// Columns holds all SQL columns for childprofile fields.
var Columns = []string{
	FieldID,
	FieldChildID,
	FieldLearningGoals,
	FieldPreferredSubjects,
	FieldLearningStyle,
	FieldDifficulty,
	FieldInterests,
	FieldSpecialNeeds,
	FieldCustomNotes,
	FieldParentWishes,
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
	// ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	ChildIDValidator func(string) error
	// DefaultLearningStyle holds the default value on creation for the "learning_style" field.
	DefaultLearningStyle string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultCustomNotes holds the default value on creation for the "custom_notes" field.
	DefaultCustomNotes string
	// DefaultParentWishes holds the default value on creation for the "parent_wishes" field.
	DefaultParentWishes string
)

// OrderOption defines the ordering options for the ChildProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// ByLearningStyle orders the results by the learning_style field.
func ByLearningStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStyle, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCustomNotes orders the results by the custom_notes field.
func ByCustomNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomNotes, opts...).ToFunc()
}

// ByParentWishes orders the results by the parent_wishes field.
func ByParentWishes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentWishes, opts...).ToFunc()
}
