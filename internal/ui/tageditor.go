package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"reviewdesk/internal/debug"
	"reviewdesk/internal/tagtext"
)

// TagEditorChangedMsg is emitted after every user-driven edit with the new
// serialized template. SetValue never emits it.
type TagEditorChangedMsg struct {
	ID    string
	Value string
}

type editorFocus int

const (
	editorFocusSurface editorFocus = iota
	editorFocusTagBar
)

// TagEditor edits a template whose placeholders show as atomic pills.
type TagEditor struct {
	// ID is copied into TagEditorChangedMsg so an owner can tell editors apart.
	ID     string
	Width  int
	Height int // visible lines; 0 shows everything

	Placeholder string

	doc     *tagtext.Document
	tagBar  TagBar
	focus   editorFocus
	focused bool
	keys    EditorKeyMap
}

// NewTagEditor creates an empty editor over tags.
func NewTagEditor(tags []tagtext.Tag) TagEditor {
	doc := tagtext.Render("", tags)
	return TagEditor{
		Width:       60,
		Placeholder: "Write a message…",
		doc:         doc,
		tagBar:      NewTagBar(doc.Tags()),
		keys:        DefaultEditorKeyMap(),
	}
}

// SetValue re-syncs the editor from outside. The document is rebuilt only
// when s differs from the current serialization; a rebuild drops the caret
// and selection. Reports whether a rebuild happened.
func (e *TagEditor) SetValue(s string) bool {
	changed := e.doc.Sync(s)
	if changed {
		debug.Event(debug.CatEditor, "external value applied", nil, map[string]any{"editor": e.ID})
	}
	return changed
}

// Value returns the serialized template.
func (e TagEditor) Value() string {
	return e.doc.Serialize()
}

// Document exposes the underlying document.
func (e TagEditor) Document() *tagtext.Document {
	return e.doc
}

// Focus gives the editing surface keyboard focus.
func (e *TagEditor) Focus() {
	e.focused = true
	e.focus = editorFocusSurface
	e.tagBar.Blur()
}

// Blur removes focus from the editor and its tag bar.
func (e *TagEditor) Blur() {
	e.focused = false
	e.focus = editorFocusSurface
	e.tagBar.Blur()
}

// Focused returns whether the editor (surface or tag bar) has focus.
func (e TagEditor) Focused() bool {
	return e.focused
}

// TagBarFocused returns whether the tag bar holds focus.
func (e TagEditor) TagBarFocused() bool {
	return e.focused && e.focus == editorFocusTagBar
}

func (e TagEditor) Init() tea.Cmd {
	return nil
}

// Update handles key input while focused.
func (e TagEditor) Update(msg tea.Msg) (TagEditor, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !e.focused {
		return e, nil
	}

	before := e.doc.Serialize()
	if e.focus == editorFocusTagBar {
		e.handleTagBarKey(km)
	} else {
		e.handleSurfaceKey(km)
	}
	return e, e.changed(before)
}

func (e *TagEditor) changed(before string) tea.Cmd {
	after := e.doc.Serialize()
	if after == before {
		return nil
	}
	id := e.ID
	return func() tea.Msg {
		return TagEditorChangedMsg{ID: id, Value: after}
	}
}

func (e *TagEditor) handleTagBarKey(msg tea.KeyMsg) {
	var result TagBarResult
	e.tagBar, result = e.tagBar.HandleKey(msg)
	switch result {
	case TagBarPick:
		// Insert first so the remembered caret is used before focus moves.
		if tag, ok := e.tagBar.Selected(); ok {
			e.doc.InsertTag(tag)
		}
		e.focusSurface()
	case TagBarExit:
		e.focusSurface()
	}
}

func (e *TagEditor) focusSurface() {
	e.focus = editorFocusSurface
	e.tagBar.Blur()
}

func (e *TagEditor) handleSurfaceKey(msg tea.KeyMsg) {
	if n, ok := altDigit(msg); ok {
		tags := e.doc.Tags()
		if n <= len(tags) {
			e.doc.InsertTag(tags[n-1])
		}
		return
	}

	switch {
	case key.Matches(msg, e.keys.TagBar):
		if len(e.doc.Tags()) > 0 {
			e.focus = editorFocusTagBar
			e.tagBar.Focus()
		}
	case key.Matches(msg, e.keys.SelectLeft):
		e.doc.SelectLeft()
	case key.Matches(msg, e.keys.SelectRight):
		e.doc.SelectRight()
	case key.Matches(msg, e.keys.Left):
		e.doc.MoveLeft()
	case key.Matches(msg, e.keys.Right):
		e.doc.MoveRight()
	case key.Matches(msg, e.keys.Up):
		e.doc.MoveUp()
	case key.Matches(msg, e.keys.Down):
		e.doc.MoveDown()
	case key.Matches(msg, e.keys.DocStart):
		e.doc.MoveStart()
	case key.Matches(msg, e.keys.DocEnd):
		e.doc.MoveEnd()
	case key.Matches(msg, e.keys.LineStart):
		e.doc.MoveLineStart()
	case key.Matches(msg, e.keys.LineEnd):
		e.doc.MoveLineEnd()
	case key.Matches(msg, e.keys.SelectAll):
		e.doc.SelectAll()
	case key.Matches(msg, e.keys.Backspace):
		e.doc.DeleteBackward()
	case key.Matches(msg, e.keys.Delete):
		e.doc.DeleteForward()
	case key.Matches(msg, e.keys.Newline):
		e.doc.InsertText("\n")
	case msg.Type == tea.KeySpace:
		e.doc.InsertText(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		if msg.Paste {
			e.doc.Paste(string(msg.Runes))
		} else {
			e.doc.InsertText(string(msg.Runes))
		}
	}
}

// altDigit reports N for alt+1 … alt+9.
func altDigit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || !msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// InsertTag inserts tag at the remembered caret without touching focus.
func (e *TagEditor) InsertTag(tag tagtext.Tag) tea.Cmd {
	before := e.doc.Serialize()
	e.doc.InsertTag(tag)
	return e.changed(before)
}
