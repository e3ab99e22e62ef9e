// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "subscription_type", Type: field.TypeString, Default: "FREE"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// ActivityRecordsColumns holds the columns for the "activity_records" table.
	ActivityRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "node_key", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActivityRecordsTable holds the schema information for the "activity_records" table.
	ActivityRecordsTable = &schema.Table{
		Name:       "activity_records",
		Columns:    ActivityRecordsColumns,
		PrimaryKey: []*schema.Column{ActivityRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityRecordsColumns[1]},
			},
			{
				Name:    "activityrecord_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityRecordsColumns[1], ActivityRecordsColumns[7]},
			},
			{
				Name:    "activityrecord_domain",
				Unique:  false,
				Columns: []*schema.Column{ActivityRecordsColumns[2]},
			},
		},
	}
	// ChildProfilesColumns holds the columns for the "child_profiles" table.
	ChildProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "child_id", Type: field.TypeString, Unique: true},
		{Name: "learning_goals", Type: field.TypeJSON, Nullable: true},
		{Name: "preferred_subjects", Type: field.TypeJSON, Nullable: true},
		{Name: "learning_style", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "interests", Type: field.TypeJSON, Nullable: true},
		{Name: "special_needs", Type: field.TypeJSON, Nullable: true},
		{Name: "custom_notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "parent_wishes", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// ChildProfilesTable holds the schema information for the "child_profiles" table.
	ChildProfilesTable = &schema.Table{
		Name:       "child_profiles",
		Columns:    ChildProfilesColumns,
		PrimaryKey: []*schema.Column{ChildProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "childprofile_child_id",
				Unique:  false,
				Columns: []*schema.Column{ChildProfilesColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ParentPreferencesColumns holds the columns for the "parent_preferences" table.
	ParentPreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "parent_id", Type: field.TypeString, Unique: true},
		{Name: "child_strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "focus_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "learning_goals", Type: field.TypeJSON, Nullable: true},
		{Name: "concerns", Type: field.TypeJSON, Nullable: true},
		{Name: "learning_style", Type: field.TypeString, Default: ""},
		{Name: "motivation_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "study_duration", Type: field.TypeInt, Default: 0},
		{Name: "break_frequency", Type: field.TypeInt, Default: 0},
	}
	// ParentPreferencesTable holds the schema information for the "parent_preferences" table.
	ParentPreferencesTable = &schema.Table{
		Name:       "parent_preferences",
		Columns:    ParentPreferencesColumns,
		PrimaryKey: []*schema.Column{ParentPreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "parentpreferences_parent_id",
				Unique:  false,
				Columns: []*schema.Column{ParentPreferencesColumns[1]},
			},
		},
	}
	// ParentPromptRecordsColumns holds the columns for the "parent_prompt_records" table.
	ParentPromptRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeString},
		{Name: "child_id", Type: field.TypeString, Default: ""},
		{Name: "account_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "ai_response", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "prompt_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PROCESSED"},
	}
	// ParentPromptRecordsTable holds the schema information for the "parent_prompt_records" table.
	ParentPromptRecordsTable = &schema.Table{
		Name:       "parent_prompt_records",
		Columns:    ParentPromptRecordsColumns,
		PrimaryKey: []*schema.Column{ParentPromptRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "parentpromptrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{ParentPromptRecordsColumns[1]},
			},
			{
				Name:    "parentpromptrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ParentPromptRecordsColumns[2]},
			},
			{
				Name:    "parentpromptrecord_parent_id",
				Unique:  false,
				Columns: []*schema.Column{ParentPromptRecordsColumns[3]},
			},
			{
				Name:    "parentpromptrecord_account_id",
				Unique:  false,
				Columns: []*schema.Column{ParentPromptRecordsColumns[5]},
			},
			{
				Name:    "parentpromptrecord_prompt_type",
				Unique:  false,
				Columns: []*schema.Column{ParentPromptRecordsColumns[8]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString, Default: ""},
		{Name: "user_type", Type: field.TypeEnum, Enums: []string{"CHILD", "PARENT"}},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_account_id",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[1]},
			},
			{
				Name:    "userprofile_account_id_user_type",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[1], UserProfilesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		ActivityRecordsTable,
		ChildProfilesTable,
		LlmRequestEventsTable,
		ParentPreferencesTable,
		ParentPromptRecordsTable,
		UserProfilesTable,
	}
)

func init() {
}
