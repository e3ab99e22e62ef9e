// Package sessions shows who is currently connected.
package sessions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cubeai/bubix/internal/screen"
	"github.com/cubeai/bubix/internal/session"
	"github.com/cubeai/bubix/internal/ui/layout"
	"github.com/cubeai/bubix/internal/ui/theme"
)

// SessionsScreen lists the active sessions of the running process.
type SessionsScreen struct {
	store session.Store
}

var _ screen.Screen = (*SessionsScreen)(nil)
var _ screen.KeyHintProvider = (*SessionsScreen)(nil)

// New creates the sessions screen.
func New(store session.Store) *SessionsScreen {
	return &SessionsScreen{store: store}
}

func (s *SessionsScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *SessionsScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	active := s.store.Active()
	if len(active) == 0 {
		return frame.Foreground(theme.TextDim).Render("Aucune session active.")
	}

	idStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

	var rows []string
	for _, sess := range active {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			nameStyle.Render(sess.User.FirstName),
			idStyle.Render(sess.ID),
			timeStyle.Render(fmt.Sprintf("connecté %s · actif %s",
				sess.ConnectedAt.Format("15:04"),
				sess.LastActivity.Format("15:04"))),
		))
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Sessions actives (%d)", len(active)))

	return frame.Render(title + "\n\n" + strings.Join(rows, "\n"))
}

func (s *SessionsScreen) Title() string {
	return "Sessions"
}

func (s *SessionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Retour"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}
