package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reviewdesk/internal/colors"
	"reviewdesk/internal/tagtext"
)

// swatchRoles are the palette roles shown in the theme strip.
var swatchRoles = []colors.Role{
	colors.RolePrimary,
	colors.RoleSecondary,
	colors.RoleAccent,
	colors.RoleMuted,
	colors.RoleBorder,
	colors.RoleRing,
	colors.RoleDestructive,
	colors.RoleBackground,
	colors.RoleForeground,
}

// renderSwatch draws a role as a badge in its own colour, labelled in the
// contrast-picked text colour together with the ratio it achieves.
func renderSwatch(role colors.Role, c colors.OKLCH) string {
	bg := c.Hex()
	fg := colors.PickForeground(bg)
	label := string(role)
	if ratio, err := colors.Contrast(bg, fg); err == nil {
		label = fmt.Sprintf("%s %.1f %s", role, ratio, colors.Level(ratio))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// renderSwatches lays the palette's swatches out in rows no wider than width.
func renderSwatches(p colors.Palette, width int) string {
	bar := TagBar{Width: width}
	rendered := make([]string, 0, len(swatchRoles))
	for _, role := range swatchRoles {
		rendered = append(rendered, renderSwatch(role, p.Get(role)))
	}
	return bar.wrapChips(rendered)
}

// previewMarkdown expands a template with sample values and keeps its line
// breaks when rendered as markdown.
func previewMarkdown(serialized string, tags []tagtext.Tag, samples map[string]string) string {
	expanded := tagtext.Expand(serialized, tags, samples)
	lines := strings.Split(strings.TrimRight(expanded, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "  \n")
}

// DefaultSamples are the preview values for the stock tags.
var DefaultSamples = map[string]string{
	"Company name": "Acme Bakery",
	"Name":         "Jane",
	"Your link":    "https://acme.example/review",
}
