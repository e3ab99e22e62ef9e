// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// ActivityRecord is the predicate function for activityrecord builders.
type ActivityRecord func(*sql.Selector)

// ChildProfile is the predicate function for childprofile builders.
type ChildProfile func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ParentPreferences is the predicate function for parentpreferences builders.
type ParentPreferences func(*sql.Selector)

// ParentPromptRecord is the predicate function for parentpromptrecord builders.
type ParentPromptRecord func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
