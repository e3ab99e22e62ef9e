// Code generated by ent, DO NOT EDIT.

package parentpreferences

import (
	"entgo.io/ent/dialect/sql"
	"github.com/cubeai/bubix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLTE(FieldID, id))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldParentID, v))
}

// LearningStyle applies equality check predicate on the "learning_style" field. It's identical to LearningStyleEQ.
func LearningStyle(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldLearningStyle, v))
}

// StudyDuration applies equality check predicate on the "study_duration" field. It's identical to StudyDurationEQ.
func StudyDuration(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldStudyDuration, v))
}

// BreakFrequency applies equality check predicate on the "break_frequency" field. It's identical to BreakFrequencyEQ.
func BreakFrequency(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldBreakFrequency, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldContainsFold(FieldParentID, v))
}

// ChildStrengthsIsNil applies the IsNil predicate on the "child_strengths" field.
func ChildStrengthsIsNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIsNull(FieldChildStrengths))
}

// ChildStrengthsNotNil applies the NotNil predicate on the "child_strengths" field.
func ChildStrengthsNotNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotNull(FieldChildStrengths))
}

// FocusAreasIsNil applies the IsNil predicate on the "focus_areas" field.
func FocusAreasIsNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIsNull(FieldFocusAreas))
}

// FocusAreasNotNil applies the NotNil predicate on the "focus_areas" field.
func FocusAreasNotNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotNull(FieldFocusAreas))
}

// LearningGoalsIsNil applies the IsNil predicate on the "learning_goals" field.
func LearningGoalsIsNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIsNull(FieldLearningGoals))
}

// LearningGoalsNotNil applies the NotNil predicate on the "learning_goals" field.
func LearningGoalsNotNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotNull(FieldLearningGoals))
}

// ConcernsIsNil applies the IsNil predicate on the "concerns" field.
func ConcernsIsNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIsNull(FieldConcerns))
}

// ConcernsNotNil applies the NotNil predicate on the "concerns" field.
func ConcernsNotNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotNull(FieldConcerns))
}

// LearningStyleEQ applies the EQ predicate on the "learning_style" field.
func LearningStyleEQ(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldLearningStyle, v))
}

// LearningStyleNEQ applies the NEQ predicate on the "learning_style" field.
func LearningStyleNEQ(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNEQ(FieldLearningStyle, v))
}

// LearningStyleIn applies the In predicate on the "learning_style" field.
func LearningStyleIn(vs ...string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIn(FieldLearningStyle, vs...))
}

// LearningStyleNotIn applies the NotIn predicate on the "learning_style" field.
func LearningStyleNotIn(vs ...string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotIn(FieldLearningStyle, vs...))
}

// LearningStyleGT applies the GT predicate on the "learning_style" field.
func LearningStyleGT(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGT(FieldLearningStyle, v))
}

// LearningStyleGTE applies the GTE predicate on the "learning_style" field.
func LearningStyleGTE(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGTE(FieldLearningStyle, v))
}

// LearningStyleLT applies the LT predicate on the "learning_style" field.
func LearningStyleLT(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLT(FieldLearningStyle, v))
}

// LearningStyleLTE applies the LTE predicate on the "learning_style" field.
func LearningStyleLTE(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLTE(FieldLearningStyle, v))
}

// LearningStyleContains applies the Contains predicate on the "learning_style" field.
func LearningStyleContains(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldContains(FieldLearningStyle, v))
}

// LearningStyleHasPrefix applies the HasPrefix predicate on the "learning_style" field.
func LearningStyleHasPrefix(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldHasPrefix(FieldLearningStyle, v))
}

// LearningStyleHasSuffix applies the HasSuffix predicate on the "learning_style" field.
func LearningStyleHasSuffix(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldHasSuffix(FieldLearningStyle, v))
}

// LearningStyleEqualFold applies the EqualFold predicate on the "learning_style" field.
func LearningStyleEqualFold(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEqualFold(FieldLearningStyle, v))
}

// LearningStyleContainsFold applies the ContainsFold predicate on the "learning_style" field.
func LearningStyleContainsFold(v string) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldContainsFold(FieldLearningStyle, v))
}

// MotivationFactorsIsNil applies the IsNil predicate on the "motivation_factors" field.
func MotivationFactorsIsNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIsNull(FieldMotivationFactors))
}

// MotivationFactorsNotNil applies the NotNil predicate on the "motivation_factors" field.
func MotivationFactorsNotNil() predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotNull(FieldMotivationFactors))
}

// StudyDurationEQ applies the EQ predicate on the "study_duration" field.
func StudyDurationEQ(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldStudyDuration, v))
}

// StudyDurationNEQ applies the NEQ predicate on the "study_duration" field.
func StudyDurationNEQ(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNEQ(FieldStudyDuration, v))
}

// StudyDurationIn applies the In predicate on the "study_duration" field.
func StudyDurationIn(vs ...int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIn(FieldStudyDuration, vs...))
}

// StudyDurationNotIn applies the NotIn predicate on the "study_duration" field.
func StudyDurationNotIn(vs ...int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotIn(FieldStudyDuration, vs...))
}

// StudyDurationGT applies the GT predicate on the "study_duration" field.
func StudyDurationGT(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGT(FieldStudyDuration, v))
}

// StudyDurationGTE applies the GTE predicate on the "study_duration" field.
func StudyDurationGTE(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGTE(FieldStudyDuration, v))
}

// StudyDurationLT applies the LT predicate on the "study_duration" field.
func StudyDurationLT(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLT(FieldStudyDuration, v))
}

// StudyDurationLTE applies the LTE predicate on the "study_duration" field.
func StudyDurationLTE(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLTE(FieldStudyDuration, v))
}

// BreakFrequencyEQ applies the EQ predicate on the "break_frequency" field.
func BreakFrequencyEQ(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldEQ(FieldBreakFrequency, v))
}

// BreakFrequencyNEQ applies the NEQ predicate on the "break_frequency" field.
func BreakFrequencyNEQ(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNEQ(FieldBreakFrequency, v))
}

// BreakFrequencyIn applies the In predicate on the "break_frequency" field.
func BreakFrequencyIn(vs ...int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldIn(FieldBreakFrequency, vs...))
}

// BreakFrequencyNotIn applies the NotIn predicate on the "break_frequency" field.
func BreakFrequencyNotIn(vs ...int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldNotIn(FieldBreakFrequency, vs...))
}

// BreakFrequencyGT applies the GT predicate on the "break_frequency" field.
func BreakFrequencyGT(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGT(FieldBreakFrequency, v))
}

// BreakFrequencyGTE applies the GTE predicate on the "break_frequency" field.
func BreakFrequencyGTE(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldGTE(FieldBreakFrequency, v))
}

// BreakFrequencyLT applies the LT predicate on the "break_frequency" field.
func BreakFrequencyLT(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLT(FieldBreakFrequency, v))
}

// BreakFrequencyLTE applies the LTE predicate on the "break_frequency" field.
func BreakFrequencyLTE(v int) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.FieldLTE(FieldBreakFrequency, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParentPreferences) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParentPreferences) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParentPreferences) predicate.ParentPreferences {
	return predicate.ParentPreferences(sql.NotPredicates(p))
}
