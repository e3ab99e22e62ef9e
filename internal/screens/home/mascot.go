package home

import (
	"charm.land/lipgloss/v2"

	"github.com/cubeai/bubix/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle     MascotVariant = iota // Default purple cube
	MascotGreeting                      // Gold, star eyes — someone is connected
	MascotAlert                         // Orange, exclamation — no LLM key configured
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ A I │
└─────┘`

const mascotGreeting = `┌─────┐
│ ★ ★ │
│  ▿  │
│ A I │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ A I │
└─────┘`

// RenderMascot returns the Bubix cube art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotGreeting:
		art = mascotGreeting
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
