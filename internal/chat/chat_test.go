package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cubeai/bubix/internal/intent"
	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/session"
	"github.com/cubeai/bubix/internal/store"
)

type fakeProfiles struct {
	store.ProfileRepo
	profiles map[string]store.Profile
	children map[string][]store.Profile
	accounts map[string]store.AccountInfo
	getErr   error
}

func (f *fakeProfiles) Get(_ context.Context, id string) (*store.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.profiles[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProfiles) Account(_ context.Context, accountID string) (*store.AccountInfo, error) {
	if a, ok := f.accounts[accountID]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeProfiles) ChildrenOf(_ context.Context, accountID string) ([]store.Profile, error) {
	return f.children[accountID], nil
}

type fakeActivities struct {
	store.ActivityRepo
	byUser map[string][]store.Activity
}

func (f *fakeActivities) RecentByUser(_ context.Context, userID string, limit int) ([]store.Activity, error) {
	rows := f.byUser[userID]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakePrompts struct {
	store.PromptRepo
	saved []store.ParentPromptData
}

func (f *fakePrompts) AppendParentPrompt(_ context.Context, data store.ParentPromptData) error {
	f.saved = append(f.saved, data)
	return nil
}

// slowProvider blocks past any reasonable turn timeout.
type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Second):
		return &llm.Response{Content: json.RawMessage(`{"text":"trop tard"}`)}, nil
	}
}

func (slowProvider) ModelID() string { return "slow" }

func testFixtures() (*fakeProfiles, *fakeActivities, *fakePrompts) {
	age := 8
	profiles := &fakeProfiles{
		profiles: map[string]store.Profile{
			"emma":  {ID: "emma", AccountID: "acc-1", FirstName: "Emma", LastName: "Martin", UserType: "CHILD", Age: &age},
			"marie": {ID: "marie", AccountID: "acc-1", FirstName: "Marie", LastName: "Martin", UserType: "PARENT"},
		},
		children: map[string][]store.Profile{
			"acc-1": {{ID: "emma", AccountID: "acc-1", FirstName: "Emma", LastName: "Martin", UserType: "CHILD", Age: &age}},
		},
		accounts: map[string]store.AccountInfo{
			"acc-1": {ID: "acc-1", Email: "m@example.com", SubscriptionType: "PREMIUM"},
		},
	}
	activities := &fakeActivities{byUser: map[string][]store.Activity{
		"emma": {{Domain: "maths", Score: 85}, {Domain: "maths", Score: 95}},
	}}
	return profiles, activities, &fakePrompts{}
}

func newTestService(provider llm.Provider) (*Service, *fakePrompts) {
	profiles, activities, prompts := testFixtures()
	s := New(provider, profiles, activities, prompts, session.NewMemoryStore())
	return s, prompts
}

func structuredReply(text string) llm.MockResponse {
	body, _ := json.Marshal(map[string]any{
		"text":    text,
		"actions": []map[string]string{{"label": "Continuer", "href": "/exercices"}},
	})
	return llm.MockResponse{Content: body}
}

func TestSendChildTurn(t *testing.T) {
	mock := llm.NewMockProvider(structuredReply("Salut Emma ! On s'entraîne sur les fractions ?"))
	s, _ := newTestService(mock)

	reply := s.Send(context.Background(), "emma", "Aide-moi avec les maths", nil)

	if reply.Fallback {
		t.Fatalf("expected a real reply, got fallback %q", reply.Text)
	}
	if reply.Text != "Salut Emma ! On s'entraîne sur les fractions ?" {
		t.Errorf("Text = %q", reply.Text)
	}
	if len(reply.Actions) != 1 || reply.Actions[0].Label != "Continuer" {
		t.Errorf("Actions = %+v", reply.Actions)
	}
	if reply.Intent != intent.LearningDifficulty {
		t.Errorf("Intent = %s, want LEARNING_DIFFICULTY", reply.Intent)
	}

	req := mock.Calls[0]
	if req.MaxTokens != childMaxTokens || req.Temperature != childTemperature {
		t.Errorf("child params = %d/%v, want %d/%v", req.MaxTokens, req.Temperature, childMaxTokens, childTemperature)
	}
	if req.Schema == nil || req.Schema.Name != "chat-reply" {
		t.Error("request must carry the chat-reply schema")
	}
	if !strings.Contains(req.System, "**MODE ENFANT - COMPORTEMENT OBLIGATOIRE :**") {
		t.Error("child turn must use child behavior rules")
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != llm.RoleUser || last.Content != "Aide-moi avec les maths" {
		t.Errorf("last message must be the query, got %+v", last)
	}
}

func TestSendParentTurnSavesPrompt(t *testing.T) {
	mock := llm.NewMockProvider(structuredReply("Emma progresse très bien en mathématiques."))
	s, prompts := newTestService(mock)

	reply := s.Send(context.Background(), "marie", "Quels sont les progrès d'Emma ?", nil)

	req := mock.Calls[0]
	if req.MaxTokens != parentMaxTokens || req.Temperature != parentTemperature {
		t.Errorf("parent params = %d/%v, want %d/%v", req.MaxTokens, req.Temperature, parentMaxTokens, parentTemperature)
	}
	if !strings.Contains(req.System, "**MODE PARENT - EXPERT PÉDAGOGIQUE CUBEAI:**") {
		t.Error("parent turn must use parent behavior rules")
	}
	if !strings.Contains(req.System, "a les meilleures performances") {
		t.Error("parent system prompt must carry the family insights")
	}

	if len(prompts.saved) != 1 {
		t.Fatalf("parent turn must persist one prompt record, got %d", len(prompts.saved))
	}
	saved := prompts.saved[0]
	if saved.ParentID != "marie" || saved.AccountID != "acc-1" {
		t.Errorf("saved record links = %+v", saved)
	}
	if saved.Content != "Quels sont les progrès d'Emma ?" || saved.AIResponse != reply.Text {
		t.Errorf("saved record content = %+v", saved)
	}
	if saved.PromptType != string(intent.ProgressUpdate) {
		t.Errorf("saved PromptType = %s, want PROGRESS_UPDATE", saved.PromptType)
	}
}

func TestSendChildTurnDoesNotSavePrompt(t *testing.T) {
	mock := llm.NewMockProvider(structuredReply("ok"))
	s, prompts := newTestService(mock)

	s.Send(context.Background(), "emma", "bonjour", nil)
	if len(prompts.saved) != 0 {
		t.Errorf("child turns must not persist prompt records, got %d", len(prompts.saved))
	}
}

func TestSendUnknownUserNotAuthenticated(t *testing.T) {
	mock := llm.NewMockProvider()
	s, _ := newTestService(mock)

	reply := s.Send(context.Background(), "ghost", "bonjour", nil)

	if !reply.Fallback || reply.Text != notAuthenticatedMessage {
		t.Errorf("unknown user must get the authentication fallback, got %q", reply.Text)
	}
	if mock.CallCount() != 0 {
		t.Error("no LLM call must be made for an unauthenticated user")
	}
}

func TestSendLookupFailureUserInfoError(t *testing.T) {
	profiles, activities, prompts := testFixtures()
	profiles.getErr = errors.New("db locked")
	s := New(llm.NewMockProvider(), profiles, activities, prompts, session.NewMemoryStore())

	reply := s.Send(context.Background(), "emma", "bonjour", nil)
	if !reply.Fallback || reply.Text != userInfoErrorMessage {
		t.Errorf("lookup failure must map to the user-info fallback, got %q", reply.Text)
	}
}

func TestSendProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields ErrProviderUnavailable
	s, _ := newTestService(mock)

	reply := s.Send(context.Background(), "emma", "bonjour", nil)
	if !reply.Fallback || reply.Text != llmUnavailableMessage {
		t.Errorf("provider error must map to the unavailable fallback, got %q", reply.Text)
	}
}

func TestSendTimeoutFallsBackWithActions(t *testing.T) {
	s, _ := newTestService(slowProvider{})
	s.SetTimeout(20 * time.Millisecond)

	reply := s.Send(context.Background(), "emma", "bonjour", nil)

	if !reply.Fallback || reply.Text != timeoutMessage {
		t.Fatalf("timeout must map to the canned message, got %q", reply.Text)
	}
	if len(reply.Actions) != 2 || reply.Actions[0].Label != "Aide" || reply.Actions[1].Label != "Contact" {
		t.Errorf("timeout fallback must carry Aide/Contact actions, got %+v", reply.Actions)
	}
}

func TestSendPublicTurn(t *testing.T) {
	mock := llm.NewMockProvider(structuredReply("CubeAI est une plateforme éducative."))
	s, _ := newTestService(mock)

	reply := s.Send(context.Background(), "", "C'est quoi CubeAI ?", nil)

	if reply.Fallback {
		t.Fatalf("public turn must succeed, got %q", reply.Text)
	}
	if !strings.Contains(mock.Calls[0].System, "- Utilisateur non connecté") {
		t.Error("public turn must not carry user context")
	}
}

func TestParseReplyPlainTextFallback(t *testing.T) {
	resp := &llm.Response{Content: json.RawMessage(`"Bonjour !"`), Model: "mock"}
	got := parseReply(resp)
	if got.Text != "Bonjour !" {
		t.Errorf("plain JSON string must be unwrapped, got %q", got.Text)
	}

	raw := &llm.Response{Content: json.RawMessage(`Bonjour sans JSON`)}
	if got := parseReply(raw); got.Text != "Bonjour sans JSON" {
		t.Errorf("invalid JSON must pass through raw, got %q", got.Text)
	}
}

func TestWelcomePerRole(t *testing.T) {
	s, _ := newTestService(llm.NewMockProvider())
	ctx := context.Background()

	if got := s.Welcome(ctx, "emma"); !strings.Contains(got, "Salut Emma !") {
		t.Errorf("child welcome = %q", got)
	}
	if got := s.Welcome(ctx, "marie"); !strings.Contains(got, "Bonjour Marie !") {
		t.Errorf("parent welcome = %q", got)
	}
	if got := s.Welcome(ctx, ""); !strings.Contains(got, "l'assistant IA intelligent de CubeAI") {
		t.Errorf("public welcome = %q", got)
	}
}
