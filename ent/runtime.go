// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cubeai/bubix/ent/account"
	"github.com/cubeai/bubix/ent/activityrecord"
	"github.com/cubeai/bubix/ent/childprofile"
	"github.com/cubeai/bubix/ent/llmrequestevent"
	"github.com/cubeai/bubix/ent/parentpreferences"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
	"github.com/cubeai/bubix/ent/schema"
	"github.com/cubeai/bubix/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[1].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescSubscriptionType is the schema descriptor for subscription_type field.
	accountDescSubscriptionType := accountFields[2].Descriptor()
	// account.DefaultSubscriptionType holds the default value on creation for the subscription_type field.
	account.DefaultSubscriptionType = accountDescSubscriptionType.Default.(string)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[3].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	activityrecordFields := schema.ActivityRecord{}.Fields()
	_ = activityrecordFields
	// activityrecordDescUserID is the schema descriptor for user_id field.
	activityrecordDescUserID := activityrecordFields[0].Descriptor()
	// activityrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityrecord.UserIDValidator = activityrecordDescUserID.Validators[0].(func(string) error)
	// activityrecordDescDomain is the schema descriptor for domain field.
	activityrecordDescDomain := activityrecordFields[1].Descriptor()
	// activityrecord.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	activityrecord.DomainValidator = activityrecordDescDomain.Validators[0].(func(string) error)
	// activityrecordDescNodeKey is the schema descriptor for node_key field.
	activityrecordDescNodeKey := activityrecordFields[2].Descriptor()
	// activityrecord.NodeKeyValidator is a validator for the "node_key" field. It is called by the builders before save.
	activityrecord.NodeKeyValidator = activityrecordDescNodeKey.Validators[0].(func(string) error)
	// activityrecordDescScore is the schema descriptor for score field.
	activityrecordDescScore := activityrecordFields[3].Descriptor()
	// activityrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	activityrecord.ScoreValidator = func() func(int) error {
		validators := activityrecordDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activityrecordDescAttempts is the schema descriptor for attempts field.
	activityrecordDescAttempts := activityrecordFields[4].Descriptor()
	// activityrecord.DefaultAttempts holds the default value on creation for the attempts field.
	activityrecord.DefaultAttempts = activityrecordDescAttempts.Default.(int)
	// activityrecord.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	activityrecord.AttemptsValidator = activityrecordDescAttempts.Validators[0].(func(int) error)
	// activityrecordDescDurationMs is the schema descriptor for duration_ms field.
	activityrecordDescDurationMs := activityrecordFields[5].Descriptor()
	// activityrecord.DefaultDurationMs holds the default value on creation for the duration_ms field.
	activityrecord.DefaultDurationMs = activityrecordDescDurationMs.Default.(int64)
	// activityrecord.DurationMsValidator is a validator for the "duration_ms" field. It is called by the builders before save.
	activityrecord.DurationMsValidator = activityrecordDescDurationMs.Validators[0].(func(int64) error)
	// activityrecordDescCreatedAt is the schema descriptor for created_at field.
	activityrecordDescCreatedAt := activityrecordFields[6].Descriptor()
	// activityrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityrecord.DefaultCreatedAt = activityrecordDescCreatedAt.Default.(func() time.Time)
	childprofileFields := schema.ChildProfile{}.Fields()
	_ = childprofileFields
	// childprofileDescChildID is the schema descriptor for child_id field.
	childprofileDescChildID := childprofileFields[0].Descriptor()
	// childprofile.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	childprofile.ChildIDValidator = childprofileDescChildID.Validators[0].(func(string) error)
	// childprofileDescLearningStyle is the schema descriptor for learning_style field.
	childprofileDescLearningStyle := childprofileFields[3].Descriptor()
	// childprofile.DefaultLearningStyle holds the default value on creation for the learning_style field.
	childprofile.DefaultLearningStyle = childprofileDescLearningStyle.Default.(string)
	// childprofileDescDifficulty is the schema descriptor for difficulty field.
	childprofileDescDifficulty := childprofileFields[4].Descriptor()
	// childprofile.DefaultDifficulty holds the default value on creation for the difficulty field.
	childprofile.DefaultDifficulty = childprofileDescDifficulty.Default.(string)
	// childprofileDescCustomNotes is the schema descriptor for custom_notes field.
	childprofileDescCustomNotes := childprofileFields[7].Descriptor()
	// childprofile.DefaultCustomNotes holds the default value on creation for the custom_notes field.
	childprofile.DefaultCustomNotes = childprofileDescCustomNotes.Default.(string)
	// childprofileDescParentWishes is the schema descriptor for parent_wishes field.
	childprofileDescParentWishes := childprofileFields[8].Descriptor()
	// childprofile.DefaultParentWishes holds the default value on creation for the parent_wishes field.
	childprofile.DefaultParentWishes = childprofileDescParentWishes.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	parentpreferencesFields := schema.ParentPreferences{}.Fields()
	_ = parentpreferencesFields
	// parentpreferencesDescParentID is the schema descriptor for parent_id field.
	parentpreferencesDescParentID := parentpreferencesFields[0].Descriptor()
	// parentpreferences.ParentIDValidator is a validator for the "parent_id" field. It is called by the builders before save.
	parentpreferences.ParentIDValidator = parentpreferencesDescParentID.Validators[0].(func(string) error)
	// parentpreferencesDescLearningStyle is the schema descriptor for learning_style field.
	parentpreferencesDescLearningStyle := parentpreferencesFields[5].Descriptor()
	// parentpreferences.DefaultLearningStyle holds the default value on creation for the learning_style field.
	parentpreferences.DefaultLearningStyle = parentpreferencesDescLearningStyle.Default.(string)
	// parentpreferencesDescStudyDuration is the schema descriptor for study_duration field.
	parentpreferencesDescStudyDuration := parentpreferencesFields[7].Descriptor()
	// parentpreferences.DefaultStudyDuration holds the default value on creation for the study_duration field.
	parentpreferences.DefaultStudyDuration = parentpreferencesDescStudyDuration.Default.(int)
	// parentpreferencesDescBreakFrequency is the schema descriptor for break_frequency field.
	parentpreferencesDescBreakFrequency := parentpreferencesFields[8].Descriptor()
	// parentpreferences.DefaultBreakFrequency holds the default value on creation for the break_frequency field.
	parentpreferences.DefaultBreakFrequency = parentpreferencesDescBreakFrequency.Default.(int)
	parentpromptrecordMixin := schema.ParentPromptRecord{}.Mixin()
	parentpromptrecordMixinFields0 := parentpromptrecordMixin[0].Fields()
	_ = parentpromptrecordMixinFields0
	parentpromptrecordFields := schema.ParentPromptRecord{}.Fields()
	_ = parentpromptrecordFields
	// parentpromptrecordDescTimestamp is the schema descriptor for timestamp field.
	parentpromptrecordDescTimestamp := parentpromptrecordMixinFields0[1].Descriptor()
	// parentpromptrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	parentpromptrecord.DefaultTimestamp = parentpromptrecordDescTimestamp.Default.(func() time.Time)
	// parentpromptrecordDescParentID is the schema descriptor for parent_id field.
	parentpromptrecordDescParentID := parentpromptrecordFields[0].Descriptor()
	// parentpromptrecord.ParentIDValidator is a validator for the "parent_id" field. It is called by the builders before save.
	parentpromptrecord.ParentIDValidator = parentpromptrecordDescParentID.Validators[0].(func(string) error)
	// parentpromptrecordDescChildID is the schema descriptor for child_id field.
	parentpromptrecordDescChildID := parentpromptrecordFields[1].Descriptor()
	// parentpromptrecord.DefaultChildID holds the default value on creation for the child_id field.
	parentpromptrecord.DefaultChildID = parentpromptrecordDescChildID.Default.(string)
	// parentpromptrecordDescAccountID is the schema descriptor for account_id field.
	parentpromptrecordDescAccountID := parentpromptrecordFields[2].Descriptor()
	// parentpromptrecord.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	parentpromptrecord.AccountIDValidator = parentpromptrecordDescAccountID.Validators[0].(func(string) error)
	// parentpromptrecordDescContent is the schema descriptor for content field.
	parentpromptrecordDescContent := parentpromptrecordFields[3].Descriptor()
	// parentpromptrecord.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	parentpromptrecord.ContentValidator = parentpromptrecordDescContent.Validators[0].(func(string) error)
	// parentpromptrecordDescAiResponse is the schema descriptor for ai_response field.
	parentpromptrecordDescAiResponse := parentpromptrecordFields[4].Descriptor()
	// parentpromptrecord.DefaultAiResponse holds the default value on creation for the ai_response field.
	parentpromptrecord.DefaultAiResponse = parentpromptrecordDescAiResponse.Default.(string)
	// parentpromptrecordDescPromptType is the schema descriptor for prompt_type field.
	parentpromptrecordDescPromptType := parentpromptrecordFields[5].Descriptor()
	// parentpromptrecord.PromptTypeValidator is a validator for the "prompt_type" field. It is called by the builders before save.
	parentpromptrecord.PromptTypeValidator = parentpromptrecordDescPromptType.Validators[0].(func(string) error)
	// parentpromptrecordDescStatus is the schema descriptor for status field.
	parentpromptrecordDescStatus := parentpromptrecordFields[6].Descriptor()
	// parentpromptrecord.DefaultStatus holds the default value on creation for the status field.
	parentpromptrecord.DefaultStatus = parentpromptrecordDescStatus.Default.(string)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescAccountID is the schema descriptor for account_id field.
	userprofileDescAccountID := userprofileFields[1].Descriptor()
	// userprofile.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	userprofile.AccountIDValidator = userprofileDescAccountID.Validators[0].(func(string) error)
	// userprofileDescFirstName is the schema descriptor for first_name field.
	userprofileDescFirstName := userprofileFields[2].Descriptor()
	// userprofile.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	userprofile.FirstNameValidator = userprofileDescFirstName.Validators[0].(func(string) error)
	// userprofileDescLastName is the schema descriptor for last_name field.
	userprofileDescLastName := userprofileFields[3].Descriptor()
	// userprofile.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	userprofile.LastNameValidator = userprofileDescLastName.Validators[0].(func(string) error)
	// userprofileDescGender is the schema descriptor for gender field.
	userprofileDescGender := userprofileFields[4].Descriptor()
	// userprofile.DefaultGender holds the default value on creation for the gender field.
	userprofile.DefaultGender = userprofileDescGender.Default.(string)
	// userprofileDescCreatedAt is the schema descriptor for created_at field.
	userprofileDescCreatedAt := userprofileFields[8].Descriptor()
	// userprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprofile.DefaultCreatedAt = userprofileDescCreatedAt.Default.(func() time.Time)
}
