package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"reviewdesk/internal/tagtext"
)

var testTags = []tagtext.Tag{
	{Value: "Company name", Label: "company name"},
	{Value: "Name", Label: "name"},
	{Value: "Your link", Label: "landing link"},
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// pressEditor feeds keys to the editor and returns the last command.
func pressEditor(e TagEditor, msgs ...tea.KeyMsg) (TagEditor, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		e, cmd = e.Update(msg)
	}
	return e, cmd
}
