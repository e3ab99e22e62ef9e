// Code generated by ent, DO NOT EDIT.

package childprofile

import (
	"entgo.io/ent/dialect/sql"
	"github.com/cubeai/bubix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldID, id))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldChildID, v))
}

// LearningStyle applies equality check predicate on the "learning_style" field. It's identical to LearningStyleEQ.
func LearningStyle(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldLearningStyle, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldDifficulty, v))
}

// CustomNotes applies equality check predicate on the "custom_notes" field. It's identical to CustomNotesEQ.
func CustomNotes(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldCustomNotes, v))
}

// ParentWishes applies equality check predicate on the "parent_wishes" field. It's identical to ParentWishesEQ.
func ParentWishes(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldParentWishes, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContainsFold(FieldChildID, v))
}

// LearningGoalsIsNil applies the IsNil predicate on the "learning_goals" field.
func LearningGoalsIsNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIsNull(FieldLearningGoals))
}

// LearningGoalsNotNil applies the NotNil predicate on the "learning_goals" field.
func LearningGoalsNotNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotNull(FieldLearningGoals))
}

// PreferredSubjectsIsNil applies the IsNil predicate on the "preferred_subjects" field.
func PreferredSubjectsIsNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIsNull(FieldPreferredSubjects))
}

// PreferredSubjectsNotNil applies the NotNil predicate on the "preferred_subjects" field.
func PreferredSubjectsNotNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotNull(FieldPreferredSubjects))
}

// LearningStyleEQ applies the EQ predicate on the "learning_style" field.
func LearningStyleEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldLearningStyle, v))
}

// LearningStyleNEQ applies the NEQ predicate on the "learning_style" field.
func LearningStyleNEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldLearningStyle, v))
}

// LearningStyleIn applies the In predicate on the "learning_style" field.
func LearningStyleIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldLearningStyle, vs...))
}

// LearningStyleNotIn applies the NotIn predicate on the "learning_style" field.
func LearningStyleNotIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldLearningStyle, vs...))
}

// LearningStyleGT applies the GT predicate on the "learning_style" field.
func LearningStyleGT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldLearningStyle, v))
}

// LearningStyleGTE applies the GTE predicate on the "learning_style" field.
func LearningStyleGTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldLearningStyle, v))
}

// LearningStyleLT applies the LT predicate on the "learning_style" field.
func LearningStyleLT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldLearningStyle, v))
}

// LearningStyleLTE applies the LTE predicate on the "learning_style" field.
func LearningStyleLTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldLearningStyle, v))
}

// LearningStyleContains applies the Contains predicate on the "learning_style" field.
func LearningStyleContains(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContains(FieldLearningStyle, v))
}

// LearningStyleHasPrefix applies the HasPrefix predicate on the "learning_style" field.
func LearningStyleHasPrefix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasPrefix(FieldLearningStyle, v))
}

// LearningStyleHasSuffix applies the HasSuffix predicate on the "learning_style" field.
func LearningStyleHasSuffix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasSuffix(FieldLearningStyle, v))
}

// LearningStyleEqualFold applies the EqualFold predicate on the "learning_style" field.
func LearningStyleEqualFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEqualFold(FieldLearningStyle, v))
}

// LearningStyleContainsFold applies the ContainsFold predicate on the "learning_style" field.
func LearningStyleContainsFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContainsFold(FieldLearningStyle, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContainsFold(FieldDifficulty, v))
}

// InterestsIsNil applies the IsNil predicate on the "interests" field.
func InterestsIsNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIsNull(FieldInterests))
}

// InterestsNotNil applies the NotNil predicate on the "interests" field.
func InterestsNotNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotNull(FieldInterests))
}

// SpecialNeedsIsNil applies the IsNil predicate on the "special_needs" field.
func SpecialNeedsIsNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIsNull(FieldSpecialNeeds))
}

// SpecialNeedsNotNil applies the NotNil predicate on the "special_needs" field.
func SpecialNeedsNotNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotNull(FieldSpecialNeeds))
}

// CustomNotesEQ applies the EQ predicate on the "custom_notes" field.
func CustomNotesEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldCustomNotes, v))
}

// CustomNotesNEQ applies the NEQ predicate on the "custom_notes" field.
func CustomNotesNEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldCustomNotes, v))
}

// CustomNotesIn applies the In predicate on the "custom_notes" field.
func CustomNotesIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldCustomNotes, vs...))
}

// CustomNotesNotIn applies the NotIn predicate on the "custom_notes" field.
func CustomNotesNotIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldCustomNotes, vs...))
}

// CustomNotesGT applies the GT predicate on the "custom_notes" field.
func CustomNotesGT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldCustomNotes, v))
}

// CustomNotesGTE applies the GTE predicate on the "custom_notes" field.
func CustomNotesGTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldCustomNotes, v))
}

// CustomNotesLT applies the LT predicate on the "custom_notes" field.
func CustomNotesLT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldCustomNotes, v))
}

// CustomNotesLTE applies the LTE predicate on the "custom_notes" field.
func CustomNotesLTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldCustomNotes, v))
}

// CustomNotesContains applies the Contains predicate on the "custom_notes" field.
func CustomNotesContains(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContains(FieldCustomNotes, v))
}

// CustomNotesHasPrefix applies the HasPrefix predicate on the "custom_notes" field.
func CustomNotesHasPrefix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasPrefix(FieldCustomNotes, v))
}

// CustomNotesHasSuffix applies the HasSuffix predicate on the "custom_notes" field.
func CustomNotesHasSuffix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasSuffix(FieldCustomNotes, v))
}

// CustomNotesEqualFold applies the EqualFold predicate on the "custom_notes" field.
func CustomNotesEqualFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEqualFold(FieldCustomNotes, v))
}

// CustomNotesContainsFold applies the ContainsFold predicate on the "custom_notes" field.
func CustomNotesContainsFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContainsFold(FieldCustomNotes, v))
}

// ParentWishesEQ applies the EQ predicate on the "parent_wishes" field.
func ParentWishesEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldParentWishes, v))
}

// ParentWishesNEQ applies the NEQ predicate on the "parent_wishes" field.
func ParentWishesNEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldParentWishes, v))
}

// ParentWishesIn applies the In predicate on the "parent_wishes" field.
func ParentWishesIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldParentWishes, vs...))
}

// ParentWishesNotIn applies the NotIn predicate on the "parent_wishes" field.
func ParentWishesNotIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldParentWishes, vs...))
}

// ParentWishesGT applies the GT predicate on the "parent_wishes" field.
func ParentWishesGT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldParentWishes, v))
}

// ParentWishesGTE applies the GTE predicate on the "parent_wishes" field.
func ParentWishesGTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldParentWishes, v))
}

// ParentWishesLT applies the LT predicate on the "parent_wishes" field.
func ParentWishesLT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldParentWishes, v))
}

// ParentWishesLTE applies the LTE predicate on the "parent_wishes" field.
func ParentWishesLTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldParentWishes, v))
}

// ParentWishesContains applies the Contains predicate on the "parent_wishes" field.
func ParentWishesContains(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContains(FieldParentWishes, v))
}

// ParentWishesHasPrefix applies the HasPrefix predicate on the "parent_wishes" field.
func ParentWishesHasPrefix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasPrefix(FieldParentWishes, v))
}

// ParentWishesHasSuffix applies the HasSuffix predicate on the "parent_wishes" field.
func ParentWishesHasSuffix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasSuffix(FieldParentWishes, v))
}

// ParentWishesEqualFold applies the EqualFold predicate on the "parent_wishes" field.
func ParentWishesEqualFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEqualFold(FieldParentWishes, v))
}

// ParentWishesContainsFold applies the ContainsFold predicate on the "parent_wishes" field.
func ParentWishesContainsFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContainsFold(FieldParentWishes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChildProfile) predicate.ChildProfile {
	return predicate.ChildProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChildProfile) predicate.ChildProfile {
	return predicate.ChildProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChildProfile) predicate.ChildProfile {
	return predicate.ChildProfile(sql.NotPredicates(p))
}
