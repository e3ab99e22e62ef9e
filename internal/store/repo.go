package store

import (
	"context"
	"time"
)

// Profile is one family member as seen by the rest of the application.
type Profile struct {
	ID          string
	AccountID   string
	FirstName   string
	LastName    string
	Gender      string
	UserType    string // CHILD or PARENT
	Age         *int   // nil for parents
	LastLoginAt *time.Time
}

// AccountInfo is the subscription context read alongside a profile.
type AccountInfo struct {
	ID               string
	Email            string
	SubscriptionType string
}

// Activity is one completed learning activity row.
type Activity struct {
	ID         int
	UserID     string
	Domain     string
	NodeKey    string
	Score      int
	Attempts   int
	DurationMs int64
	CreatedAt  time.Time
}

// Preferences are the structured wishes a parent declared.
type Preferences struct {
	ParentID          string
	ChildStrengths    []string
	FocusAreas        []string
	LearningGoals     []string
	Concerns          []string
	LearningStyle     string
	MotivationFactors []string
	StudyDuration     int
	BreakFrequency    int
}

// ChildSettings are the per-child learning settings.
type ChildSettings struct {
	ChildID           string
	LearningGoals     []string
	PreferredSubjects []string
	LearningStyle     string
	Difficulty        string
	Interests         []string
	SpecialNeeds      []string
	CustomNotes       string
	ParentWishes      string
}

// ProfileRepo reads and writes family members and their settings.
type ProfileRepo interface {
	// Get returns a profile by id, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Profile, error)

	// All returns every profile, oldest first.
	All(ctx context.Context) ([]Profile, error)

	// Account returns the account a profile belongs to.
	Account(ctx context.Context, accountID string) (*AccountInfo, error)

	// ChildrenOf returns the CHILD profiles of an account, oldest first.
	ChildrenOf(ctx context.Context, accountID string) ([]Profile, error)

	// Preferences returns a parent's declared preferences, or nil when the
	// parent never filled them in.
	Preferences(ctx context.Context, parentID string) (*Preferences, error)

	// ChildSettings returns a child's learning settings, or nil.
	ChildSettings(ctx context.Context, childID string) (*ChildSettings, error)

	// CreateAccount and CreateProfile exist for seeding and tests.
	CreateAccount(ctx context.Context, acc AccountInfo) error
	CreateProfile(ctx context.Context, p Profile) error
	SavePreferences(ctx context.Context, prefs Preferences) error
	SaveChildSettings(ctx context.Context, cs ChildSettings) error
}

// ActivityRepo provides read and append access to activity records.
type ActivityRepo interface {
	// RecentByUser returns up to limit activities for a user, newest first.
	RecentByUser(ctx context.Context, userID string, limit int) ([]Activity, error)

	// Append stores a new activity record.
	Append(ctx context.Context, a Activity) error
}

// ParentPromptData captures one parent chat submission for persistence.
type ParentPromptData struct {
	ParentID   string
	ChildID    string
	AccountID  string
	Content    string
	AIResponse string
	PromptType string
	Status     string
}

// ParentPrompt is a persisted parent prompt row.
type ParentPrompt struct {
	ID         int
	Sequence   int64
	Timestamp  time.Time
	ParentID   string
	ChildID    string
	AccountID  string
	Content    string
	AIResponse string
	PromptType string
	Status     string
}

// PromptRepo provides append and query access to parent prompt records.
type PromptRepo interface {
	// AppendParentPrompt logs a parent submission and the reply it received.
	AppendParentPrompt(ctx context.Context, data ParentPromptData) error

	// RecentByAccount returns up to limit prompt records, newest first.
	RecentByAccount(ctx context.Context, accountID string, limit int) ([]ParentPrompt, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM request event row.
type LLMRequestEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage under one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage per model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by id, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates calls, tokens and latency per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
