package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cubeai/bubix/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ██████╗ ██╗   ██╗██████╗ ██╗██╗  ██╗
 ██╔══██╗██║   ██║██╔══██╗██║╚██╗██╔╝
 ██████╔╝██║   ██║██████╔╝██║ ╚███╔╝
 ██╔══██╗██║   ██║██╔══██╗██║ ██╔██╗
 ██████╔╝╚██████╔╝██████╔╝██║██╔╝ ██╗
 ╚═════╝  ╚═════╝ ╚═════╝ ╚═╝╚═╝  ╚═╝`

const arcadeTitleCompact = "B · U · B · I · X"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the family stats in a bordered box matching content width.
func renderStatsBar(profiles, children, sessions, cw int, compact bool) string {
	profileStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	childStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	sessionStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			profileStyle.Render(fmt.Sprintf("◉%d", profiles)),
			childStyle.Render(fmt.Sprintf("◆%d", children)),
			sessionText(sessions, true, sessionStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			profileStyle.Render(fmt.Sprintf("◉ %d PROFILS", profiles)),
			childStyle.Render(fmt.Sprintf("◆ %d ENFANTS", children)),
			sessionText(sessions, false, sessionStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func sessionText(active int, compact bool, on, dim lipgloss.Style) string {
	if active == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ AUCUNE SESSION")
	}
	if compact {
		return on.Render(fmt.Sprintf("⚡%d", active))
	}
	return on.Render(fmt.Sprintf("⚡ %d SESSIONS", active))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Configurez une clé API LLM pour discuter (voir bubix --help)")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderCabinetFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
