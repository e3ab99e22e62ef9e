package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/cubeai/bubix/internal/chat"
	"github.com/cubeai/bubix/internal/router"
	"github.com/cubeai/bubix/internal/screen"
	"github.com/cubeai/bubix/internal/screens/conversation"
	"github.com/cubeai/bubix/internal/screens/placeholder"
	profilescreen "github.com/cubeai/bubix/internal/screens/profiles"
	sessionscreen "github.com/cubeai/bubix/internal/screens/sessions"
	"github.com/cubeai/bubix/internal/session"
	"github.com/cubeai/bubix/internal/store"
	"github.com/cubeai/bubix/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	disabled      map[int]bool
	profileCount  int
	childCount    int
	sessions      session.Store
	llmConfigured bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *chat.Service, profileRepo store.ProfileRepo, sessions session.Store, llmConfigured bool) *HomeScreen {
	var profileCount, childCount int
	if profileRepo != nil {
		if rows, err := profileRepo.All(context.Background()); err == nil {
			profileCount = len(rows)
			for _, p := range rows {
				if p.UserType == "CHILD" {
					childCount++
				}
			}
		}
	}

	menuLabels := []string{"DISCUTER AVEC BUBIX", "MODE VISITEUR", "SESSIONS ACTIVES", "QUITTER"}
	disabled := map[int]bool{}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if svc == nil || profileRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Profils")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(svc, profileRepo)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if svc == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Mode visiteur")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: conversation.New(svc, nil)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(sessions)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		disabled:      disabled,
		profileCount:  profileCount,
		childCount:    childCount,
		sessions:      sessions,
		llmConfigured: llmConfigured,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	activeSessions := 0
	if h.sessions != nil {
		activeSessions = len(h.sessions.Active())
	}

	mascotVariant := MascotIdle
	if !h.llmConfigured {
		mascotVariant = MascotAlert
	} else if activeSessions > 0 {
		mascotVariant = MascotGreeting
	}

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(mascotVariant, cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.profileCount, h.childCount, activeSessions, cw, compact))

	// 4. Menu (same width box)
	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	// 5. LLM key warning
	if !h.llmConfigured {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}
