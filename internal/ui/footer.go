package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reviewdesk/internal/ui/theme"
)

// footerHint defines a key hint for the footer bar.
// These are shorter than the KeyMap help text.
type footerHint struct {
	key  string // Short symbol: "⇥", "^n", etc.
	desc string // Short description: "Tags", "Next", etc.
}

// Global footer hints (always shown)
var globalFooterHints = []footerHint{
	{"^n", "Next"},
	{"^s", "Seed"},
	{"^d", "Mode"},
	{"^t", "Preset"},
	{"^y", "Copy"},
	{"^r", "Reset"},
	{"^q", "Quit"},
}

// Context-specific footer hints
var editorFooterHints = []footerHint{
	{"⇥", "Tags"},
	{"alt+1-9", "Insert"},
}

var tagBarFooterHints = []footerHint{
	{"←→", "Pick"},
	{"⏎", "Insert"},
	{"esc", "Back"},
}

var seedFooterHints = []footerHint{
	{"⏎", "Apply"},
	{"esc", "Cancel"},
}

// renderFooter renders the footer bar with pill-style key hints.
func (m *App) renderFooter() string {
	var hints []footerHint

	// Context-specific keys (shown first, leftmost)
	switch {
	case m.focus == FocusSeed:
		hints = append(hints, seedFooterHints...)
	case m.Editor().TagBarFocused():
		hints = append(hints, tagBarFooterHints...)
	default:
		hints = append(hints, editorFooterHints...)
	}
	contextCount := len(hints)

	// Global keys
	hints = append(hints, globalFooterHints...)

	statusText := m.Channel().Title() + " · " + string(m.design.Snapshot().Mode) + " · " + theme.CurrentName()
	statusRendered := styleMuted().Render(statusText)
	statusWidth := lipgloss.Width(statusRendered)
	availableWidth := m.width - statusWidth - 4 // padding

	// Progressively remove hints if too wide
	hints = trimHintsToFit(hints, contextCount, availableWidth)

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}

	left := strings.Join(parts, "  ")
	leftWidth := lipgloss.Width(left)

	spacing := max(m.width-leftWidth-statusWidth, 2)
	return left + strings.Repeat(" ", spacing) + statusRendered
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit drops global hints from the end first, then context hints,
// until the row fits.
func trimHintsToFit(hints []footerHint, contextCount, availableWidth int) []footerHint {
	for len(hints) > 0 {
		if renderHintsWidth(hints) <= availableWidth {
			break
		}
		if len(hints) > contextCount {
			hints = hints[:len(hints)-1]
		} else {
			hints = hints[1:]
		}
	}
	return hints
}

// renderHintsWidth calculates the visual width of rendered hints.
func renderHintsWidth(hints []footerHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
