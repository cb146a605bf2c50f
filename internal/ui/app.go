// Package ui implements the reviewdesk terminal interface: the template
// editor with tag pills, the seed colour input and the theme preview.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reviewdesk/internal/debug"
	"reviewdesk/internal/store"
	"reviewdesk/internal/tagtext"
	"reviewdesk/internal/ui/theme"
)

// Focus identifies the area receiving keys.
type Focus int

const (
	FocusEditor Focus = iota
	FocusSeed
)

const (
	defaultWidth  = 100
	defaultHeight = 40
	toastDuration = 2 * time.Second
)

// Config wires the App to its state.
type Config struct {
	Design    *store.DesignStore
	Templates *store.TemplateStore
	Tags      []tagtext.Tag
	// Samples are substituted for placeholders in the preview.
	Samples map[string]string
	// Channel is the tab shown first; empty means the first channel.
	Channel store.Channel
	// PreviewStyle is a glamour standard style name, or "plain".
	PreviewStyle string
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

type toast struct {
	text  string
	err   bool
	start time.Time
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// App is the root Bubble Tea model.
type App struct {
	ctx       context.Context
	design    *store.DesignStore
	templates *store.TemplateStore
	tags      []tagtext.Tag
	samples   map[string]string

	channel int
	editors []TagEditor
	seed    textinput.Model
	focus   Focus
	keys    KeyMap

	width, height int

	previewStyle   string
	renderMarkdown func(string) string
	rendererWidth  int

	toast       *toast
	unsubscribe []func()
}

// NewApp builds the App and applies the stored design to the theme registry.
func NewApp(ctx context.Context, cfg Config) *App {
	tags := cfg.Tags
	if len(tags) == 0 {
		tags = store.DefaultTags
	}
	samples := cfg.Samples
	if samples == nil {
		samples = DefaultSamples
	}

	m := &App{
		ctx:          ctx,
		design:       cfg.Design,
		templates:    cfg.Templates,
		tags:         tags,
		samples:      samples,
		keys:         DefaultKeyMap(),
		width:        defaultWidth,
		height:       defaultHeight,
		previewStyle: cfg.PreviewStyle,
	}

	snap := m.templates.Snapshot()
	for i, ch := range store.Channels {
		ed := NewTagEditor(tags)
		ed.ID = string(ch)
		ed.SetValue(snap.Get(ch))
		m.editors = append(m.editors, ed)
		if ch == cfg.Channel {
			m.channel = i
		}
	}

	m.seed = textinput.New()
	m.seed.Prompt = ""
	m.seed.Placeholder = "#1877F2"
	m.seed.CharLimit = 7
	m.seed.Width = 8
	m.resetSeed()

	ApplyDesign(m.design.Snapshot())
	m.unsubscribe = append(m.unsubscribe,
		m.design.Subscribe(ApplyDesign),
		m.templates.Subscribe(m.syncEditors),
	)

	m.editors[m.channel].Focus()
	m.layout()
	return m
}

// ApplyDesign pushes design settings into the theme registry.
func ApplyDesign(d store.Design) {
	if _, err := theme.Apply(d.PrimaryColor); err != nil {
		debug.Event(debug.CatTheme, "seed rejected", err, map[string]any{"seed": d.PrimaryColor})
		return
	}
	theme.SetDark(d.Mode == store.ModeDark)
	debug.Event(debug.CatTheme, "theme applied", nil, map[string]any{"seed": d.PrimaryColor, "mode": string(d.Mode)})
}

func (m *App) syncEditors(t store.Templates) {
	for i, ch := range store.Channels {
		m.editors[i].SetValue(t.Get(ch))
	}
}

// Close drops store subscriptions.
func (m *App) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
}

func (m *App) Init() tea.Cmd {
	return nil
}

// Channel returns the channel of the active tab.
func (m *App) Channel() store.Channel {
	return store.Channels[m.channel]
}

// Editor returns the active editor.
func (m *App) Editor() *TagEditor {
	return &m.editors[m.channel]
}

func (m *App) layout() {
	editorWidth := max(m.width-4, 20)
	editorHeight := max(m.height/3, 4)
	for i := range m.editors {
		m.editors[i].Width = editorWidth
		m.editors[i].Height = editorHeight
	}
	if m.renderMarkdown == nil || m.rendererWidth != editorWidth {
		m.renderMarkdown = buildMarkdownRenderer(m.previewStyle, editorWidth)
		m.rendererWidth = editorWidth
	}
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case toastTickMsg:
		if m.toast == nil {
			return m, nil
		}
		if time.Since(m.toast.start) >= toastDuration {
			m.toast = nil
			return m, nil
		}
		return m, scheduleToastTick()

	case TagEditorChangedMsg:
		// Edits are saved as keys are handled. Write the editor's current
		// value, not msg.Value, so a late message cannot rewind the editor.
		for i, ch := range store.Channels {
			if string(ch) == msg.ID {
				return m, m.persistEditor(i)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return m, tea.Quit
	}
	if m.focus == FocusSeed {
		return m.handleSeedKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextChannel):
		m.switchChannel(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevChannel):
		m.switchChannel(-1)
		return m, nil
	case key.Matches(msg, m.keys.Seed):
		m.Editor().Blur()
		m.focus = FocusSeed
		return m, m.seed.Focus()
	case key.Matches(msg, m.keys.Mode):
		if err := m.design.SwitchMode(m.ctx); err != nil {
			return m, m.showToast("Could not save design: "+err.Error(), true)
		}
		return m, m.showToast("Mode: "+string(m.design.Snapshot().Mode), false)
	case key.Matches(msg, m.keys.Preset):
		return m, m.nextPreset()
	case key.Matches(msg, m.keys.Copy):
		if err := clipboardWrite(m.Editor().Value()); err != nil {
			return m, m.showToast("Clipboard unavailable", true)
		}
		return m, m.showToast("Copied "+m.Channel().Title()+" template to clipboard", false)
	case key.Matches(msg, m.keys.Reset):
		if err := m.templates.ResetChannel(m.ctx, m.Channel()); err != nil {
			return m, m.showToast("Could not save template: "+err.Error(), true)
		}
		return m, m.showToast(m.Channel().Title()+" template restored", false)
	}

	var cmd tea.Cmd
	m.editors[m.channel], cmd = m.editors[m.channel].Update(msg)
	if cmd == nil {
		return m, nil
	}
	if toastCmd := m.persistEditor(m.channel); toastCmd != nil {
		return m, tea.Batch(cmd, toastCmd)
	}
	return m, cmd
}

// persistEditor saves the editor of channel index i into the template store.
func (m *App) persistEditor(i int) tea.Cmd {
	if err := m.templates.SetTemplate(m.ctx, store.Channels[i], m.editors[i].Value()); err != nil {
		return m.showToast("Could not save template: "+err.Error(), true)
	}
	return nil
}

func (m *App) handleSeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		value := strings.TrimSpace(m.seed.Value())
		if err := m.design.SetPrimaryColor(m.ctx, value); err != nil {
			return m, m.showToast("Not a hex colour: "+value, true)
		}
		m.resetSeed()
		m.focusEditor()
		return m, m.showToast("Theme derived from "+m.design.Snapshot().PrimaryColor, false)
	case key.Matches(msg, m.keys.Escape):
		m.resetSeed()
		m.focusEditor()
		return m, nil
	}
	var cmd tea.Cmd
	m.seed, cmd = m.seed.Update(msg)
	return m, cmd
}

// resetSeed shows the stored seed with the cursor at the end.
func (m *App) resetSeed() {
	m.seed.SetValue(m.design.Snapshot().PrimaryColor)
	m.seed.CursorEnd()
}

func (m *App) focusEditor() {
	m.seed.Blur()
	m.focus = FocusEditor
	m.Editor().Focus()
}

func (m *App) switchChannel(delta int) {
	m.Editor().Blur()
	n := len(m.editors)
	m.channel = ((m.channel+delta)%n + n) % n
	m.Editor().Focus()
}

func (m *App) nextPreset() tea.Cmd {
	name, seed := theme.NextPreset()
	if err := m.design.SetPrimaryColor(m.ctx, seed); err != nil {
		return m.showToast("Could not save design: "+err.Error(), true)
	}
	m.resetSeed()
	return m.showToast("Preset: "+name, false)
}

func (m *App) showToast(text string, isErr bool) tea.Cmd {
	m.toast = &toast{text: text, err: isErr, start: time.Now()}
	return scheduleToastTick()
}

// View renders the frame.
func (m *App) View() string {
	d := m.design.Snapshot()
	ed := m.Editor()

	var tabs []string
	for i, ch := range store.Channels {
		tabs = append(tabs, styleTab(i == m.channel).Render(ch.Title()))
	}
	header := styleAppHeader().Render("reviewdesk") + " " + strings.Join(tabs, " ")

	seedLine := lipgloss.JoinHorizontal(lipgloss.Center,
		styleText().Render("Primary colour "),
		stylePane(m.focus == FocusSeed).Render(m.seed.View()),
		styleMuted().Render("  mode: "+string(d.Mode)),
	)

	preview := m.renderMarkdown(previewMarkdown(ed.Value(), m.tags, m.samples))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		styleSectionHeader().Render("Message Template"),
		ed.View(),
		"",
		seedLine,
		renderSwatches(d.Palette(), m.width),
		"",
		styleSectionHeader().Render("Preview"),
		preview,
	)

	canvas := NewCanvas(m.width, m.height)
	canvas.Fill(theme.Current().Background())
	canvas.DrawStringAt(0, 0, body)
	canvas.DrawStringAt(0, m.height-1, m.renderFooter())
	if m.toast != nil {
		canvas.bottomRightOverlay(m.renderToast(), 1)
	}
	return canvas.Render()
}

func (m *App) renderToast() string {
	if m.toast.err {
		return styleErrorToast().Render(m.toast.text)
	}
	return styleSuccessToast().Render(m.toast.text)
}
