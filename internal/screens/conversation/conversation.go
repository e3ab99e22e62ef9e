// Package conversation is the chat screen: a transcript, a text input,
// and one in-flight turn at a time against the chat service.
package conversation

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cubeai/bubix/internal/chat"
	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/screen"
	"github.com/cubeai/bubix/internal/store"
	"github.com/cubeai/bubix/internal/ui/components"
	"github.com/cubeai/bubix/internal/ui/layout"
	"github.com/cubeai/bubix/internal/ui/theme"
)

// historyKeep bounds the transcript carried into the next turn.
const historyKeep = 20

type entry struct {
	author  string
	text    string
	actions []chat.Action
}

type welcomeMsg string

type replyMsg chat.Reply

// ConversationScreen runs a chat conversation for one user, or for an
// anonymous visitor when user is nil.
type ConversationScreen struct {
	svc     *chat.Service
	user    *store.Profile
	input   components.TextInput
	entries []entry
	history []llm.Message
	waiting bool
}

var _ screen.Screen = (*ConversationScreen)(nil)
var _ screen.KeyHintProvider = (*ConversationScreen)(nil)

// New creates a conversation screen. A nil user chats as a visitor.
func New(svc *chat.Service, user *store.Profile) *ConversationScreen {
	return &ConversationScreen{
		svc:   svc,
		user:  user,
		input: components.NewTextInput("Écrivez votre message…", false, 0),
	}
}

func (c *ConversationScreen) Init() tea.Cmd {
	svc, userID := c.svc, c.userID()
	return func() tea.Msg {
		return welcomeMsg(svc.Welcome(context.Background(), userID))
	}
}

func (c *ConversationScreen) userID() string {
	if c.user == nil {
		return ""
	}
	return c.user.ID
}

func (c *ConversationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case welcomeMsg:
		c.entries = append(c.entries, entry{author: "Bubix", text: string(msg)})
		return c, nil

	case replyMsg:
		c.waiting = false
		c.entries = append(c.entries, entry{author: "Bubix", text: msg.Text, actions: msg.Actions})
		c.history = append(c.history, llm.Message{Role: llm.RoleAssistant, Content: msg.Text})
		c.trimHistory()
		return c, nil

	case tea.KeyPressMsg:
		if msg.Code == tea.KeyEnter {
			return c, c.submit()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// submit sends the typed message as one chat turn.
func (c *ConversationScreen) submit() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" || c.waiting {
		return nil
	}

	author := "Visiteur"
	if c.user != nil {
		author = c.user.FirstName
	}
	c.entries = append(c.entries, entry{author: author, text: text})

	// The turn runs against the history as it stood before this message;
	// the service appends the query itself.
	svc, userID := c.svc, c.userID()
	history := make([]llm.Message, len(c.history))
	copy(history, c.history)

	c.history = append(c.history, llm.Message{Role: llm.RoleUser, Content: text})
	c.trimHistory()
	c.input.Model.SetValue("")
	c.waiting = true

	return func() tea.Msg {
		return replyMsg(svc.Send(context.Background(), userID, text, history))
	}
}

func (c *ConversationScreen) trimHistory() {
	if len(c.history) > historyKeep {
		c.history = c.history[len(c.history)-historyKeep:]
	}
}

func (c *ConversationScreen) View(width, height int) string {
	authorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	userStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4)
	actionStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	var lines []string
	for _, e := range c.entries {
		name := authorStyle
		if e.author != "Bubix" {
			name = userStyle
		}
		lines = append(lines, name.Render("  "+e.author))
		lines = append(lines, textStyle.Render("  "+e.text))
		if len(e.actions) > 0 {
			var btns []string
			for _, a := range e.actions {
				btns = append(btns, actionStyle.Render("["+a.Label+"]"))
			}
			lines = append(lines, "  "+strings.Join(btns, " "))
		}
		lines = append(lines, "")
	}

	if c.waiting {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Bubix réfléchit…"))
	}

	// Keep the most recent lines that fit above the input row.
	transcriptHeight := height - 2
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}
	if len(lines) > transcriptHeight {
		lines = lines[len(lines)-transcriptHeight:]
	}

	transcript := lipgloss.NewStyle().
		Width(width).
		Height(transcriptHeight).
		Render(strings.Join(lines, "\n"))

	inputRow := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("  ❯ ") + c.input.View()

	return transcript + "\n" + inputRow
}

func (c *ConversationScreen) Title() string {
	if c.user == nil {
		return "Bubix · Visiteur"
	}
	return fmt.Sprintf("Bubix · %s", c.user.FirstName)
}

func (c *ConversationScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Envoyer"},
		{Key: "Esc", Description: "Retour"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}
