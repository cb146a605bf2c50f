package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level shortcuts. Editing keys are handled
// by the TagEditor itself since most printable keys insert text there.
type KeyMap struct {
	NextChannel key.Binding
	PrevChannel key.Binding
	Seed        key.Binding
	Mode        key.Binding
	Preset      key.Binding
	Copy        key.Binding
	Reset       key.Binding
	Escape      key.Binding
	Enter       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings for reviewdesk.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextChannel: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^N", "Next channel"),
		),
		PrevChannel: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("^P", "Prev channel"),
		),
		Seed: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^S", "Seed colour"),
		),
		Mode: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("^D", "Light/dark"),
		),
		Preset: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("^T", "Next preset"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^Y", "Copy"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^R", "Reset"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Back"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Apply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("^Q", "Quit"),
		),
	}
}

// EditorKeyMap defines the TagEditor's bindings.
type EditorKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	SelectLeft  key.Binding
	SelectRight key.Binding
	SelectAll   key.Binding
	LineStart   key.Binding
	LineEnd     key.Binding
	DocStart    key.Binding
	DocEnd      key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	Newline     key.Binding
	TagBar      key.Binding
}

// DefaultEditorKeyMap returns the default editor bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←→", "Move")),
		Right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("←→", "Move")),
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "Line")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↑↓", "Line")),
		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("⇧←→", "Select")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("⇧←→", "Select")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("^A", "Select all")),
		LineStart:   key.NewBinding(key.WithKeys("home"), key.WithHelp("Home", "Line start")),
		LineEnd:     key.NewBinding(key.WithKeys("end"), key.WithHelp("End", "Line end")),
		DocStart:    key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("^Home", "Start")),
		DocEnd:      key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("^End", "End")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "Delete")),
		Delete:      key.NewBinding(key.WithKeys("delete"), key.WithHelp("Del", "Delete")),
		Newline:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "Newline")),
		TagBar:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("⇥", "Tags")),
	}
}
