package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reviewdesk/internal/tagtext"
)

// TagBarResult tells the owner what a key did in the tag bar.
type TagBarResult int

const (
	// TagBarNone - key consumed, nothing for the owner to do.
	TagBarNone TagBarResult = iota
	// TagBarPick - the highlighted tag should be inserted.
	TagBarPick
	// TagBarExit - focus should return to the editing surface.
	TagBarExit
)

// TagBar is the row of insertable tags under the editor. It never edits the
// document itself; the owning editor acts on the result of HandleKey.
type TagBar struct {
	Width int

	tags     []tagtext.Tag
	navIndex int
	focused  bool
}

// NewTagBar creates a bar for tags.
func NewTagBar(tags []tagtext.Tag) TagBar {
	return TagBar{
		Width:    40,
		tags:     tags,
		navIndex: 0,
	}
}

// HandleKey processes a key while the bar is focused.
func (b TagBar) HandleKey(msg tea.KeyMsg) (TagBar, TagBarResult) {
	switch {
	case msg.Type == tea.KeyLeft:
		if b.navIndex > 0 {
			b.navIndex--
		}
		return b, TagBarNone
	case msg.Type == tea.KeyRight:
		if b.navIndex < len(b.tags)-1 {
			b.navIndex++
		}
		return b, TagBarNone
	case msg.Type == tea.KeyHome:
		b.navIndex = 0
		return b, TagBarNone
	case msg.Type == tea.KeyEnd:
		b.navIndex = max(len(b.tags)-1, 0)
		return b, TagBarNone
	case msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace:
		if len(b.tags) == 0 {
			return b, TagBarExit
		}
		return b, TagBarPick
	case msg.Type == tea.KeyEsc || msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab:
		return b, TagBarExit
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		// Digits jump straight to a tag.
		if n, err := strconv.Atoi(string(msg.Runes)); err == nil && n >= 1 && n <= len(b.tags) {
			b.navIndex = n - 1
			return b, TagBarPick
		}
	}
	return b, TagBarNone
}

// Selected returns the highlighted tag.
func (b TagBar) Selected() (tagtext.Tag, bool) {
	if b.navIndex < 0 || b.navIndex >= len(b.tags) {
		return tagtext.Tag{}, false
	}
	return b.tags[b.navIndex], true
}

// Focus focuses the bar. The highlight is kept from the last visit.
func (b *TagBar) Focus() {
	b.focused = true
}

// Blur removes focus.
func (b *TagBar) Blur() {
	b.focused = false
}

// Focused returns whether the bar has focus.
func (b TagBar) Focused() bool {
	return b.focused
}

// NavIndex returns the highlighted index (for testing).
func (b TagBar) NavIndex() int {
	return b.navIndex
}

// View renders the bar as numbered pills, wrapped to Width.
func (b TagBar) View() string {
	if len(b.tags) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(b.tags))
	for i, t := range b.tags {
		state := chipStateNormal
		if b.focused && i == b.navIndex {
			state = chipStateHighlight
		}
		hint := ""
		if i < 9 {
			hint = styleKeyDesc().Render(strconv.Itoa(i+1)) + " "
		}
		rendered = append(rendered, hint+renderPillChip(t.DisplayLabel(), state))
	}
	return b.wrapChips(rendered)
}

func (b TagBar) wrapChips(renderedChips []string) string {
	if b.Width <= 0 {
		return strings.Join(renderedChips, " ")
	}

	var lines []string
	var currentLine []string
	currentWidth := 0

	for _, chip := range renderedChips {
		chipWidth := lipgloss.Width(chip)
		spaceNeeded := chipWidth
		if len(currentLine) > 0 {
			spaceNeeded++ // +1 for space separator
		}

		if currentWidth+spaceNeeded > b.Width && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{chip}
			currentWidth = chipWidth
		} else {
			currentLine = append(currentLine, chip)
			currentWidth += spaceNeeded
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}

	return strings.Join(lines, "\n")
}
