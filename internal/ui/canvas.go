package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas is a lightweight helper around cellbuf.Screen that lets us compose
// lipgloss-rendered strings into a cell buffer before turning the frame back
// into a string for Bubble Tea. Toasts are drawn over the frame this way.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Fill paints the entire canvas with the provided background color.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column 0 relative to x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	c.writer.PrintCropAt(x, y, strings.ReplaceAll(normalized, "\n", "\r\n"), "")
}

// bottomRightOverlay positions the overlay anchored to the bottom-right corner
// with the provided padding inside the canvas.
func (c *Canvas) bottomRightOverlay(overlay string, padding int) {
	lines := splitLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	padding = max(padding, 0)

	startY := max(c.height-len(lines)-padding, 0)
	startX := max(c.width-maxLineWidth(lines)-padding, 0)

	for i, line := range lines {
		row := startY + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(startX, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string suitable for
// Bubble Tea consumption.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}
