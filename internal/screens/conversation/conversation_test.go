package conversation

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cubeai/bubix/internal/chat"
	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/screen"
	"github.com/cubeai/bubix/internal/session"
)

func structuredReply(text string) llm.MockResponse {
	body, _ := json.Marshal(map[string]any{
		"text":    text,
		"actions": []map[string]string{{"label": "Aide", "href": "/aide"}},
	})
	return llm.MockResponse{Content: body}
}

// newVisitorScreen builds a conversation screen chatting as a visitor, so
// no store access happens during the turn.
func newVisitorScreen(responses ...llm.MockResponse) *ConversationScreen {
	svc := chat.New(llm.NewMockProvider(responses...), nil, nil, nil, session.NewMemoryStore())
	return New(svc, nil)
}

func runCmd(t *testing.T, s screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, _ := s.Update(cmd())
	return updated
}

func TestInitShowsWelcome(t *testing.T) {
	c := newVisitorScreen()

	updated := runCmd(t, c, c.Init())
	c = updated.(*ConversationScreen)

	if len(c.entries) != 1 || c.entries[0].author != "Bubix" {
		t.Fatalf("entries = %+v", c.entries)
	}
	if !strings.Contains(c.entries[0].text, "l'assistant IA intelligent de CubeAI") {
		t.Errorf("welcome text = %q", c.entries[0].text)
	}
}

func TestEnterSendsOneTurn(t *testing.T) {
	c := newVisitorScreen(structuredReply("Bonjour !"))

	c.input.Model.SetValue("C'est quoi CubeAI ?")
	updated, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	c = updated.(*ConversationScreen)

	if !c.waiting {
		t.Error("screen must wait while the turn is in flight")
	}
	if len(c.entries) != 1 || c.entries[0].author != "Visiteur" {
		t.Fatalf("user entry missing, entries = %+v", c.entries)
	}
	if c.input.Value() != "" {
		t.Error("input must clear on submit")
	}

	updated = runCmd(t, c, cmd)
	c = updated.(*ConversationScreen)

	if c.waiting {
		t.Error("waiting must clear once the reply lands")
	}
	last := c.entries[len(c.entries)-1]
	if last.author != "Bubix" || last.text != "Bonjour !" {
		t.Errorf("reply entry = %+v", last)
	}
	if len(last.actions) != 1 || last.actions[0].Label != "Aide" {
		t.Errorf("reply actions = %+v", last.actions)
	}

	if len(c.history) != 2 ||
		c.history[0].Role != llm.RoleUser ||
		c.history[1].Role != llm.RoleAssistant {
		t.Errorf("history = %+v", c.history)
	}
}

func TestEmptyInputDoesNotSend(t *testing.T) {
	c := newVisitorScreen()

	c.input.Model.SetValue("   ")
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank input must not produce a turn")
	}
}

func TestEnterIgnoredWhileWaiting(t *testing.T) {
	c := newVisitorScreen(structuredReply("a"), structuredReply("b"))

	c.input.Model.SetValue("première question")
	updated, _ := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	c = updated.(*ConversationScreen)

	c.input.Model.SetValue("deuxième question")
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("a second turn must not start while one is in flight")
	}
}

func TestHistoryWindowBounded(t *testing.T) {
	c := newVisitorScreen()
	for i := 0; i < historyKeep+6; i++ {
		c.history = append(c.history, llm.Message{Role: llm.RoleUser, Content: "x"})
	}
	c.trimHistory()
	if len(c.history) != historyKeep {
		t.Errorf("history length = %d, want %d", len(c.history), historyKeep)
	}
}

func TestTitlePerUser(t *testing.T) {
	if got := newVisitorScreen().Title(); got != "Bubix · Visiteur" {
		t.Errorf("visitor title = %q", got)
	}
}
