package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"reviewdesk/internal/tagtext"
)

const (
	caretGlyph = "▏"
	tabWidth   = 4
)

// View renders the editing surface and the tag bar below it.
func (e TagEditor) View() string {
	width := e.Width
	if width <= 0 {
		width = 60
	}
	surface := strings.Join(e.visibleLines(e.surfaceLines(width)), "\n")
	surface = stylePane(e.focused && e.focus == editorFocusSurface).Width(width + 2).Render(surface)

	bar := e.tagBar
	bar.Width = width
	barView := bar.View()
	if barView == "" {
		return surface
	}
	return surface + "\n" + styleMuted().Render("Insert: ") + "\n" + barView
}

// surfaceLines lays the document out as display lines no wider than width.
// The caret is drawn as a thin bar in front of the unit it precedes.
func (e TagEditor) surfaceLines(width int) []string {
	cells := e.doc.Cells()
	showCaret := e.focused && e.focus == editorFocusSurface
	caret := e.doc.CaretOffset()
	selFrom, selTo, hasSel := e.doc.Selection()

	if len(cells) == 0 {
		line := styleMuted().Render(e.Placeholder)
		if showCaret {
			line = styleCaret().Render(caretGlyph) + line
		}
		return []string{line}
	}

	var (
		lines   []string
		current strings.Builder
		col     int
	)
	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		col = 0
	}
	emit := func(s string) {
		w := ansi.StringWidth(s)
		if col > 0 && col+w > width {
			flush()
		}
		current.WriteString(s)
		col += w
	}

	for i, c := range cells {
		if showCaret && i == caret {
			emit(styleCaret().Render(caretGlyph))
		}
		selected := hasSel && i >= selFrom && i < selTo
		if c.LineBreak() {
			if selected {
				emit(styleSelection().Render(" "))
			}
			flush()
			continue
		}
		emit(renderCell(c, selected))
	}
	if showCaret && caret >= len(cells) {
		emit(styleCaret().Render(caretGlyph))
	}
	flush()
	return lines
}

func renderCell(c tagtext.Cell, selected bool) string {
	if c.Token {
		state := chipStateNormal
		if selected {
			state = chipStateSelected
		}
		return renderPillChip(c.Tag.DisplayLabel(), state)
	}
	text := c.Text
	if text == "\t" {
		text = strings.Repeat(" ", tabWidth)
	}
	if selected {
		return styleSelection().Render(text)
	}
	return styleText().Render(text)
}

// visibleLines applies Height, keeping the caret's line in view.
func (e TagEditor) visibleLines(lines []string) []string {
	if e.Height <= 0 || len(lines) <= e.Height {
		return lines
	}
	caretLine := 0
	for i, l := range lines {
		if strings.Contains(l, caretGlyph) {
			caretLine = i
			break
		}
	}
	start := 0
	if caretLine >= e.Height {
		start = caretLine - e.Height + 1
	}
	return lines[start : start+e.Height]
}
