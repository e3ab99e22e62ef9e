// Package profiles lets the user pick which family member talks to Bubix.
package profiles

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cubeai/bubix/internal/chat"
	"github.com/cubeai/bubix/internal/router"
	"github.com/cubeai/bubix/internal/screen"
	"github.com/cubeai/bubix/internal/screens/conversation"
	"github.com/cubeai/bubix/internal/store"
	"github.com/cubeai/bubix/internal/ui/components"
	"github.com/cubeai/bubix/internal/ui/theme"
)

type loadedMsg struct {
	profiles []store.Profile
	err      error
}

// ProfilesScreen lists every profile; selecting one opens a conversation.
type ProfilesScreen struct {
	svc      *chat.Service
	repo     store.ProfileRepo
	menu     components.Menu
	loaded   bool
	loadErr  error
	profiles []store.Profile
}

var _ screen.Screen = (*ProfilesScreen)(nil)

// New creates the profile picker.
func New(svc *chat.Service, repo store.ProfileRepo) *ProfilesScreen {
	return &ProfilesScreen{svc: svc, repo: repo}
}

func (p *ProfilesScreen) Init() tea.Cmd {
	repo := p.repo
	return func() tea.Msg {
		rows, err := repo.All(context.Background())
		return loadedMsg{profiles: rows, err: err}
	}
}

func (p *ProfilesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		p.loaded = true
		p.loadErr = msg.err
		p.profiles = msg.profiles
		p.menu = components.NewMenu(p.menuItems())
		return p, nil
	}

	if !p.loaded {
		return p, nil
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *ProfilesScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(p.profiles))
	for _, prof := range p.profiles {
		prof := prof
		items = append(items, components.MenuItem{
			Label: profileLabel(prof),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: conversation.New(p.svc, &prof)}
				}
			},
		})
	}
	return items
}

func profileLabel(p store.Profile) string {
	switch p.UserType {
	case "CHILD":
		if p.Age != nil {
			return fmt.Sprintf("%s %s (enfant, %d ans)", p.FirstName, p.LastName, *p.Age)
		}
		return fmt.Sprintf("%s %s (enfant)", p.FirstName, p.LastName)
	case "PARENT":
		return fmt.Sprintf("%s %s (parent)", p.FirstName, p.LastName)
	default:
		return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
	}
}

func (p *ProfilesScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if !p.loaded {
		return frame.Foreground(theme.TextDim).Render("Chargement des profils…")
	}
	if p.loadErr != nil {
		return frame.Foreground(theme.Error).Render("Impossible de charger les profils.")
	}
	if len(p.profiles) == 0 {
		return frame.Foreground(theme.TextDim).
			Render("Aucun profil enregistré.\n\nLancez `bubix seed` pour créer une famille de démonstration.")
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Qui parle à Bubix ?")

	return frame.Render(title + "\n\n" + p.menu.View())
}

func (p *ProfilesScreen) Title() string {
	return "Profils"
}
