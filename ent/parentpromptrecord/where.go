// Code generated by ent, DO NOT EDIT.

package parentpromptrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cubeai/bubix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldTimestamp, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldParentID, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldChildID, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldAccountID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldContent, v))
}

// AiResponse applies equality check predicate on the "ai_response" field. It's identical to AiResponseEQ.
func AiResponse(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldAiResponse, v))
}

// PromptType applies equality check predicate on the "prompt_type" field. It's identical to PromptTypeEQ.
func PromptType(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldPromptType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldStatus, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldTimestamp, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContainsFold(FieldParentID, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContainsFold(FieldChildID, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContainsFold(FieldAccountID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContainsFold(FieldContent, v))
}

// AiResponseEQ applies the EQ predicate on the "ai_response" field.
func AiResponseEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldAiResponse, v))
}

// AiResponseNEQ applies the NEQ predicate on the "ai_response" field.
func AiResponseNEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldAiResponse, v))
}

// AiResponseIn applies the In predicate on the "ai_response" field.
func AiResponseIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldAiResponse, vs...))
}

// AiResponseNotIn applies the NotIn predicate on the "ai_response" field.
func AiResponseNotIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldAiResponse, vs...))
}

// AiResponseGT applies the GT predicate on the "ai_response" field.
func AiResponseGT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldAiResponse, v))
}

// AiResponseGTE applies the GTE predicate on the "ai_response" field.
func AiResponseGTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldAiResponse, v))
}

// AiResponseLT applies the LT predicate on the "ai_response" field.
func AiResponseLT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldAiResponse, v))
}

// AiResponseLTE applies the LTE predicate on the "ai_response" field.
func AiResponseLTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldAiResponse, v))
}

// AiResponseContains applies the Contains predicate on the "ai_response" field.
func AiResponseContains(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContains(FieldAiResponse, v))
}

// AiResponseHasPrefix applies the HasPrefix predicate on the "ai_response" field.
func AiResponseHasPrefix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasPrefix(FieldAiResponse, v))
}

// AiResponseHasSuffix applies the HasSuffix predicate on the "ai_response" field.
func AiResponseHasSuffix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasSuffix(FieldAiResponse, v))
}

// AiResponseEqualFold applies the EqualFold predicate on the "ai_response" field.
func AiResponseEqualFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEqualFold(FieldAiResponse, v))
}

// AiResponseContainsFold applies the ContainsFold predicate on the "ai_response" field.
func AiResponseContainsFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContainsFold(FieldAiResponse, v))
}

// PromptTypeEQ applies the EQ predicate on the "prompt_type" field.
func PromptTypeEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldPromptType, v))
}

// PromptTypeNEQ applies the NEQ predicate on the "prompt_type" field.
func PromptTypeNEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldPromptType, v))
}

// PromptTypeIn applies the In predicate on the "prompt_type" field.
func PromptTypeIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldPromptType, vs...))
}

// PromptTypeNotIn applies the NotIn predicate on the "prompt_type" field.
func PromptTypeNotIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldPromptType, vs...))
}

// PromptTypeGT applies the GT predicate on the "prompt_type" field.
func PromptTypeGT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldPromptType, v))
}

// PromptTypeGTE applies the GTE predicate on the "prompt_type" field.
func PromptTypeGTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldPromptType, v))
}

// PromptTypeLT applies the LT predicate on the "prompt_type" field.
func PromptTypeLT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldPromptType, v))
}

// PromptTypeLTE applies the LTE predicate on the "prompt_type" field.
func PromptTypeLTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldPromptType, v))
}

// PromptTypeContains applies the Contains predicate on the "prompt_type" field.
func PromptTypeContains(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContains(FieldPromptType, v))
}

// PromptTypeHasPrefix applies the HasPrefix predicate on the "prompt_type" field.
func PromptTypeHasPrefix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasPrefix(FieldPromptType, v))
}

// PromptTypeHasSuffix applies the HasSuffix predicate on the "prompt_type" field.
func PromptTypeHasSuffix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasSuffix(FieldPromptType, v))
}

// PromptTypeEqualFold applies the EqualFold predicate on the "prompt_type" field.
func PromptTypeEqualFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEqualFold(FieldPromptType, v))
}

// PromptTypeContainsFold applies the ContainsFold predicate on the "prompt_type" field.
func PromptTypeContainsFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContainsFold(FieldPromptType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParentPromptRecord) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParentPromptRecord) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParentPromptRecord) predicate.ParentPromptRecord {
	return predicate.ParentPromptRecord(sql.NotPredicates(p))
}
