// Package chat orchestrates one conversation turn: classify the message,
// retrieve the user's context, pick the persona, assemble the prompt, and
// run a single LLM attempt under a bounded wait. A turn always completes
// with user-facing text; LLM failures and timeouts map to fixed fallback
// messages, never to a raw error.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cubeai/bubix/internal/intent"
	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/persona"
	"github.com/cubeai/bubix/internal/prompt"
	"github.com/cubeai/bubix/internal/retriever"
	"github.com/cubeai/bubix/internal/session"
	"github.com/cubeai/bubix/internal/store"
)

// DefaultTimeout bounds the LLM attempt of one turn.
const DefaultTimeout = 3500 * time.Millisecond

// Per-role generation parameters.
const (
	childMaxTokens   = 150
	childTemperature = 0.7

	parentMaxTokens   = 300
	parentTemperature = 0.5
)

// Action is a follow-up button attached to a reply.
type Action struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Reply is what one turn produces for display.
type Reply struct {
	Text     string
	Actions  []Action
	Model    string
	Intent   intent.PromptType
	Fallback bool
}

// Fixed fallback texts. A turn that cannot reach the LLM returns one of
// these instead of failing.
const (
	timeoutMessage = "Je mets un peu trop de temps à répondre. Réessayez dans un instant, ou consultez l'aide."

	llmUnavailableMessage = "Le service intelligent est momentanément indisponible. Réessayez dans quelques instants."

	notAuthenticatedMessage = "Veuillez vous connecter pour discuter avec Bubix."

	userInfoErrorMessage = "Impossible de récupérer vos informations pour le moment. Réessayez plus tard."
)

var fallbackActions = []Action{
	{Label: "Aide", Href: "/aide"},
	{Label: "Contact", Href: "/contact"},
}

// replySchema is the structured output contract sent to the provider.
var replySchema = &llm.Schema{
	Name:        "chat-reply",
	Description: "Réponse de l'assistant avec des actions de suivi optionnelles",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "La réponse à afficher à l'utilisateur",
			},
			"actions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label": map[string]any{"type": "string"},
						"href":  map[string]any{"type": "string"},
					},
					"required": []string{"label"},
				},
			},
		},
		"required": []string{"text"},
	},
}

// Service runs chat turns against injected collaborators.
type Service struct {
	provider  llm.Provider
	profiles  store.ProfileRepo
	retriever *retriever.Retriever
	prompts   store.PromptRepo
	sessions  session.Store
	timeout   time.Duration
}

// New creates a chat Service. The turn timeout comes from
// BUBIX_CHAT_TIMEOUT (a Go duration) and defaults to 3.5s.
func New(provider llm.Provider, profiles store.ProfileRepo, activities store.ActivityRepo, prompts store.PromptRepo, sessions session.Store) *Service {
	return &Service{
		provider:  provider,
		profiles:  profiles,
		retriever: retriever.New(profiles, activities),
		prompts:   prompts,
		sessions:  sessions,
		timeout:   timeoutFromEnv(),
	}
}

// SetTimeout overrides the turn timeout.
func (s *Service) SetTimeout(d time.Duration) { s.timeout = d }

func timeoutFromEnv() time.Duration {
	if v := os.Getenv("BUBIX_CHAT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return DefaultTimeout
}

// Welcome returns the greeting shown when a conversation opens.
func (s *Service) Welcome(ctx context.Context, userID string) string {
	user, children, _, err := s.lookup(ctx, userID)
	if err != nil || user == nil {
		return prompt.Welcome(prompt.RolePublic, nil, nil)
	}
	return prompt.Welcome(roleOf(user), promptUser(user, nil), children)
}

// Send runs one turn. It never returns an error to the caller: failures
// map to one of the fixed fallback replies.
func (s *Service) Send(ctx context.Context, userID, message string, history []llm.Message) Reply {
	detected := intent.Classify(message)

	user, childLines, parentCtx, err := s.lookup(ctx, userID)
	if err != nil {
		return Reply{Text: userInfoErrorMessage, Actions: fallbackActions, Intent: detected, Fallback: true}
	}
	if userID != "" && user == nil {
		return Reply{Text: notAuthenticatedMessage, Actions: fallbackActions, Intent: detected, Fallback: true}
	}

	role := prompt.RolePublic
	var account *store.AccountInfo
	if user != nil {
		role = roleOf(user)
		account, _ = s.profiles.Account(ctx, user.AccountID)
		s.sessions.Track(session.User{ID: user.ID, FirstName: user.FirstName, UserType: user.UserType})
	}

	in := prompt.Input{
		Role:       role,
		Persona:    persona.Select(userTypeOf(user)),
		SubProfile: persona.SelectSubProfile(message + " " + string(detected)),
		Methods:    persona.Methods(),
		User:       promptUser(user, account),
		Children:   childLines,
		Context:    sessionContext(user),
		Intent:     string(detected),
		History:    history,
		UserQuery:  message,
	}
	if role == prompt.RoleChild && user != nil {
		childCtx := s.retriever.GetChildContext(ctx, user.ID)
		in.Context = fmt.Sprintf("%s | Activités récentes: %s", in.Context, childCtx.RecentActivitiesSummary)
	}
	if parentCtx != nil {
		in.Insights = parentCtx.Insights
	}

	system, messages := prompt.Build(in)

	req := llm.Request{
		System:      system,
		Messages:    messages,
		Schema:      replySchema,
		MaxTokens:   childMaxTokens,
		Temperature: childTemperature,
	}
	if role == prompt.RoleParent {
		req.MaxTokens = parentMaxTokens
		req.Temperature = parentTemperature
	}

	reply := s.generate(ctx, req)
	reply.Intent = detected

	if role == prompt.RoleParent && user != nil {
		s.saveParentPrompt(ctx, user, message, reply)
	}
	return reply
}

// generate runs the single LLM attempt raced against the turn timeout.
// Whichever resolves first wins; a timeout is "no answer", not an error.
func (s *Service) generate(ctx context.Context, req llm.Request) Reply {
	attemptCtx, cancel := context.WithTimeout(llm.WithPurpose(ctx, "chat-turn"), s.timeout)
	defer cancel()

	type outcome struct {
		resp *llm.Response
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		resp, err := s.provider.Generate(attemptCtx, req)
		ch <- outcome{resp, err}
	}()

	select {
	case <-attemptCtx.Done():
		return Reply{Text: timeoutMessage, Actions: fallbackActions, Fallback: true}
	case out := <-ch:
		if errors.Is(out.err, context.DeadlineExceeded) {
			return Reply{Text: timeoutMessage, Actions: fallbackActions, Fallback: true}
		}
		if out.err != nil {
			return Reply{Text: llmUnavailableMessage, Actions: fallbackActions, Fallback: true}
		}
		return parseReply(out.resp)
	}
}

// parseReply decodes the structured reply, falling back to the raw content
// when the provider returned plain text.
func parseReply(resp *llm.Response) Reply {
	var decoded struct {
		Text    string   `json:"text"`
		Actions []Action `json:"actions"`
	}
	if err := json.Unmarshal(resp.Content, &decoded); err == nil && decoded.Text != "" {
		return Reply{Text: decoded.Text, Actions: decoded.Actions, Model: resp.Model}
	}

	var plain string
	if err := json.Unmarshal(resp.Content, &plain); err == nil {
		return Reply{Text: plain, Model: resp.Model}
	}
	return Reply{Text: string(resp.Content), Model: resp.Model}
}

// lookup resolves the user and, for parents, the per-child aggregates.
// A missing user is (nil, nil, nil, nil); only lookup failures error.
func (s *Service) lookup(ctx context.Context, userID string) (*store.Profile, []prompt.ChildLine, *retriever.ParentContext, error) {
	if userID == "" {
		return nil, nil, nil, nil
	}
	user, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	if user == nil || user.UserType != "PARENT" {
		return user, nil, nil, nil
	}

	parentCtx := s.retriever.GetParentContext(ctx, user.AccountID)
	lines := make([]prompt.ChildLine, 0, len(parentCtx.Children))
	for _, c := range parentCtx.Children {
		lines = append(lines, prompt.ChildLine{
			FirstName:     c.Profile.FirstName,
			LastName:      c.Profile.LastName,
			UserType:      c.Profile.UserType,
			ActivityCount: c.ActivityCount,
			LastLoginAt:   c.Profile.LastLoginAt,
		})
	}
	return user, lines, &parentCtx, nil
}

// saveParentPrompt persists the turn; persistence failures only warn.
func (s *Service) saveParentPrompt(ctx context.Context, user *store.Profile, message string, reply Reply) {
	err := s.prompts.AppendParentPrompt(ctx, store.ParentPromptData{
		ParentID:   user.ID,
		AccountID:  user.AccountID,
		Content:    message,
		AIResponse: reply.Text,
		PromptType: string(reply.Intent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save parent prompt: %v\n", err)
	}
}

func roleOf(user *store.Profile) prompt.Role {
	switch user.UserType {
	case "CHILD":
		return prompt.RoleChild
	case "PARENT":
		return prompt.RoleParent
	default:
		return prompt.RolePublic
	}
}

func userTypeOf(user *store.Profile) persona.UserType {
	if user == nil {
		return persona.UserTypePublic
	}
	return persona.UserType(user.UserType)
}

func promptUser(user *store.Profile, account *store.AccountInfo) *prompt.User {
	if user == nil {
		return nil
	}
	u := &prompt.User{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserType:  user.UserType,
	}
	if account != nil {
		u.SubscriptionType = account.SubscriptionType
	}
	return u
}

func sessionContext(user *store.Profile) string {
	if user == nil {
		return "Visiteur non connecté"
	}
	return fmt.Sprintf("Session active pour %s %s (%s)", user.FirstName, user.LastName, user.UserType)
}
