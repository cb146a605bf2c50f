package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdesk/internal/tagtext"
)

func newFocusedEditor(value string) TagEditor {
	e := NewTagEditor(testTags)
	e.SetValue(value)
	e.Focus()
	return e
}

func TestTagEditorTyping(t *testing.T) {
	e := newFocusedEditor("")

	e, cmd := pressEditor(e, runes("Hi"), keyOf(tea.KeySpace), runes("there"))
	assert.Equal(t, "Hi there", e.Value())

	require.NotNil(t, cmd)
	msg, ok := cmd().(TagEditorChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "Hi there", msg.Value)
}

func TestTagEditorTypedPlaceholderStaysText(t *testing.T) {
	e := newFocusedEditor("")
	e, _ = pressEditor(e, runes("[[Name]]"))

	assert.Equal(t, "[[Name]]", e.Value())
	assert.Empty(t, e.Document().Tokens())
}

func TestTagEditorPasteTokenizes(t *testing.T) {
	e := newFocusedEditor("")
	e, _ = pressEditor(e, paste("Dear [[Name]], see [[Unknown]]"))

	assert.Equal(t, "Dear [[Name]], see [[Unknown]]", e.Value())
	tokens := e.Document().Tokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, "Name", tokens[0].Tag.Value)
}

func TestTagEditorAltDigitInsertsTag(t *testing.T) {
	e := newFocusedEditor("Hi ")

	e, cmd := pressEditor(e, altKey('2'))
	assert.Equal(t, "Hi [[Name]]", e.Value())
	assert.False(t, e.TagBarFocused(), "alt+N must not move focus")
	require.NotNil(t, cmd)

	t.Run("OutOfRangeIgnored", func(t *testing.T) {
		e, cmd := pressEditor(e, altKey('9'))
		assert.Equal(t, "Hi [[Name]]", e.Value())
		assert.Nil(t, cmd)
	})
}

func TestTagEditorTagBarInsertsAtRememberedCaret(t *testing.T) {
	e := newFocusedEditor("Hello world")

	// Six steps left from the end puts the caret after "Hello".
	for range 6 {
		e, _ = pressEditor(e, keyOf(tea.KeyLeft))
	}
	e, _ = pressEditor(e, keyOf(tea.KeyTab))
	require.True(t, e.TagBarFocused())

	// Navigating the bar leaves the document caret where it was.
	e, _ = pressEditor(e, keyOf(tea.KeyRight))
	assert.Equal(t, 5, e.Document().CaretOffset())

	e, cmd := pressEditor(e, keyOf(tea.KeyEnter))
	assert.Equal(t, "Hello[[Name]] world", e.Value())
	assert.False(t, e.TagBarFocused())
	assert.True(t, e.Focused())
	assert.Equal(t, 6, e.Document().CaretOffset())

	require.NotNil(t, cmd)
	msg := cmd().(TagEditorChangedMsg)
	assert.Equal(t, "Hello[[Name]] world", msg.Value)
}

func TestTagEditorTagBarInsertsAtEndWithoutCaret(t *testing.T) {
	e := newFocusedEditor("Thanks, ")
	e, _ = pressEditor(e, keyOf(tea.KeyTab), keyOf(tea.KeyEnter))
	assert.Equal(t, "Thanks, [[Company name]]", e.Value())
}

func TestTagEditorTagBarEscapeReturnsFocus(t *testing.T) {
	e := newFocusedEditor("x")
	e, _ = pressEditor(e, keyOf(tea.KeyTab))
	require.True(t, e.TagBarFocused())

	e, cmd := pressEditor(e, keyOf(tea.KeyEsc))
	assert.False(t, e.TagBarFocused())
	assert.Nil(t, cmd)
	assert.Equal(t, "x", e.Value())
}

func TestTagEditorBackspaceRemovesWholeToken(t *testing.T) {
	e := newFocusedEditor("Hi [[Name]]")
	e, _ = pressEditor(e, keyOf(tea.KeyBackspace))
	assert.Equal(t, "Hi ", e.Value())

	e, _ = pressEditor(e, keyOf(tea.KeyBackspace))
	assert.Equal(t, "Hi", e.Value())
}

func TestTagEditorDeleteForwardRemovesWholeToken(t *testing.T) {
	e := newFocusedEditor("[[Name]]!")
	e, _ = pressEditor(e, keyOf(tea.KeyCtrlHome), keyOf(tea.KeyDelete))
	assert.Equal(t, "!", e.Value())
}

func TestTagEditorEnterInsertsNewline(t *testing.T) {
	e := newFocusedEditor("a")
	e, _ = pressEditor(e, keyOf(tea.KeyEnter), runes("b"))
	assert.Equal(t, "a\nb", e.Value())
}

func TestTagEditorSelectAllReplaces(t *testing.T) {
	e := newFocusedEditor("Hi [[Name]]")
	e, _ = pressEditor(e, keyOf(tea.KeyCtrlA), runes("Bye"))
	assert.Equal(t, "Bye", e.Value())
}

func TestTagEditorIgnoresKeysWhenBlurred(t *testing.T) {
	e := NewTagEditor(testTags)
	e, cmd := pressEditor(e, runes("x"))
	assert.Empty(t, e.Value())
	assert.Nil(t, cmd)
}

func TestTagEditorNavigationEmitsNothing(t *testing.T) {
	e := newFocusedEditor("abc")
	_, cmd := pressEditor(e, keyOf(tea.KeyLeft))
	assert.Nil(t, cmd)
}

func TestTagEditorSetValue(t *testing.T) {
	e := newFocusedEditor("Hi [[Name]]")
	e, _ = pressEditor(e, keyOf(tea.KeyLeft))

	t.Run("SameValueKeepsCaret", func(t *testing.T) {
		assert.False(t, e.SetValue("Hi [[Name]]"))
		_, ok := e.Document().Caret()
		assert.True(t, ok)
	})

	t.Run("NewValueRebuilds", func(t *testing.T) {
		assert.True(t, e.SetValue("Bye [[Name]]"))
		assert.Equal(t, "Bye [[Name]]", e.Value())
		_, ok := e.Document().Caret()
		assert.False(t, ok, "caret is dropped on rebuild")
	})
}

func TestTagEditorInsertTagCommand(t *testing.T) {
	e := NewTagEditor(testTags)
	e.ID = "sms"

	cmd := e.InsertTag(testTags[2])
	require.NotNil(t, cmd)
	msg := cmd().(TagEditorChangedMsg)
	assert.Equal(t, "sms", msg.ID)
	assert.Equal(t, "[[Your link]]", msg.Value)

	t.Run("UnknownTagRefused", func(t *testing.T) {
		assert.Nil(t, e.InsertTag(tagtext.Tag{Value: "Order number"}))
		assert.Equal(t, "[[Your link]]", e.Value())
	})
}

func TestTagEditorView(t *testing.T) {
	e := newFocusedEditor("Hi [[Name]]")
	e.Width = 40

	view := stripANSI(e.View())

	t.Run("ShowsTextAndTokenLabel", func(t *testing.T) {
		assert.Contains(t, view, "Hi")
		assert.Contains(t, view, "name")
		assert.NotContains(t, view, "[[Name]]")
	})

	t.Run("ShowsTagBar", func(t *testing.T) {
		assert.Contains(t, view, "Insert:")
		assert.Contains(t, view, "company name")
		assert.Contains(t, view, "landing link")
	})

	t.Run("ShowsCaret", func(t *testing.T) {
		assert.Contains(t, view, caretGlyph)
	})

	t.Run("PlaceholderWhenEmpty", func(t *testing.T) {
		empty := NewTagEditor(testTags)
		assert.Contains(t, stripANSI(empty.View()), empty.Placeholder)
	})
}

func TestTagEditorViewWrapsAndScrolls(t *testing.T) {
	e := newFocusedEditor(strings.Repeat("word ", 20))
	e.Width = 20
	e.Height = 2

	lines := e.surfaceLines(e.Width)
	require.Greater(t, len(lines), 2)
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(stripANSI(l))), e.Width+1)
	}

	visible := e.visibleLines(lines)
	require.Len(t, visible, 2)
	assert.Contains(t, visible[1], caretGlyph, "caret line stays visible")
}
