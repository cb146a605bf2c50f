package ui

import (
	"github.com/charmbracelet/lipgloss"

	"reviewdesk/internal/ui/theme"
)

// Chip visual states for pill rendering
type chipState int

const (
	chipStateNormal chipState = iota
	chipStateHighlight
	chipStateSelected
)

// Powerline characters for pill-shaped chips
const (
	pillLeft  = "\ue0b6" // Left half-circle (rounded left edge)
	pillRight = "\ue0b4" // Right half-circle (rounded right edge)
)

// renderPillChip renders a label as a pill-shaped chip using powerline glyphs.
// Normal chips use the theme's primary colour with its contrast-picked text
// colour, so a token always reads the way a primary button does.
func renderPillChip(label string, state chipState) string {
	var bgColor, fgColor lipgloss.TerminalColor

	t := theme.Current()
	switch state {
	case chipStateHighlight:
		bgColor = t.BorderFocused()
		fgColor = t.Background()
	case chipStateSelected:
		bgColor = t.BackgroundSecondary()
		fgColor = t.Text()
	default:
		bgColor = t.Primary()
		fgColor = t.PrimaryText()
	}

	// Caps take the chip colour as foreground to draw the curved edge
	leftCap := lipgloss.NewStyle().Foreground(bgColor).Render(pillLeft)

	labelStyle := lipgloss.NewStyle().
		Foreground(fgColor).
		Background(bgColor)
	if state != chipStateNormal {
		labelStyle = labelStyle.Bold(true)
	}
	labelText := labelStyle.Render(label)

	rightCap := lipgloss.NewStyle().Foreground(bgColor).Render(pillRight)

	return leftCap + labelText + rightCap
}
