package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"reviewdesk/internal/ui/theme"
)

// Styles are built on demand because the active theme changes whenever the
// seed colour or a preset changes.

func styleAppHeader() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.PrimaryText()).
		Background(t.Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleTab(active bool) lipgloss.Style {
	t := theme.Current()
	if active {
		return lipgloss.NewStyle().
			Foreground(t.Primary()).
			Bold(true).
			Underline(true).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().Foreground(t.TextMuted()).Padding(0, 1)
}

func stylePane(focused bool) lipgloss.Style {
	t := theme.Current()
	if focused {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused()).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderNormal()).
		Padding(0, 1)
}

func styleSectionHeader() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent()).Bold(true)
}

func styleText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleSelection() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().Background(t.BackgroundSecondary()).Foreground(t.TextEmphasized())
}

func styleCaret() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().BorderFocused()).Bold(true)
}

// Footer bar styles
func styleKeyPill() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.Primary()).
		Foreground(t.PrimaryText()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleErrorToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error()).
		Foreground(t.Text()).
		Padding(0, 1)
}

func styleSuccessToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success()).
		Foreground(t.Text()).
		Padding(0, 1)
}

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
