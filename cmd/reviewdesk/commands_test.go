package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"reviewdesk/internal/config"
	apperrors "reviewdesk/internal/errors"
	"reviewdesk/internal/store"
	"reviewdesk/internal/ui"
	"reviewdesk/internal/ui/theme"
)

// newTestEnv points HOME at a temp dir so config and the state database stay
// inside the test.
func newTestEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(config.ResetForTesting(t))
	return home
}

func executeCommand(args ...string) (string, error) {
	return executeCommandWithInput("", args...)
}

func executeCommandWithInput(stdin string, args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	newTestEnv(t)
	originalVersion, originalBuild := Version, Build
	t.Cleanup(func() {
		Version, Build = originalVersion, originalBuild
	})
	Version = "1.2.3"
	Build = "abcdef1"

	out, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, out, "reviewdesk version 1.2.3")
	require.Contains(t, out, "(build: abcdef1)")
	require.Contains(t, out, "Go version:")
}

func TestPaletteCommand(t *testing.T) {
	newTestEnv(t)

	t.Run("Table", func(t *testing.T) {
		out, err := executeCommand("palette", "#1877F2")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 19)
		require.True(t, strings.HasPrefix(lines[0], "--primary "))
		require.Contains(t, lines[0], "0.450 0.200")
		require.Contains(t, out, "0.590 0.200 29.5")
	})

	t.Run("CSS", func(t *testing.T) {
		out, err := executeCommand("palette", "1877f2", "--css")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, ":root {\n"))
		require.Contains(t, out, "  --destructive: oklch(0.590 0.200 29.5);\n")
	})

	t.Run("InvalidSeed", func(t *testing.T) {
		_, err := executeCommand("palette", "#12345")
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidColor))
	})

	t.Run("NeedsOneArg", func(t *testing.T) {
		_, err := executeCommand("palette")
		require.Error(t, err)
	})
}

func TestContrastCommand(t *testing.T) {
	newTestEnv(t)

	out, err := executeCommand("contrast", "#000000", "fff")
	require.NoError(t, err)
	require.Contains(t, out, "#FFFFFF  on #000000  21.00:1  AAA")
	require.Contains(t, out, "#000000  on #FFFFFF  21.00:1  AAA")

	t.Run("Against", func(t *testing.T) {
		out, err := executeCommand("contrast", "#FFFFFF", "--against", "#FFFFFF")
		require.NoError(t, err)
		require.Contains(t, out, " 1.00:1  Fail")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := executeCommand("contrast", "blue")
		require.Error(t, err)
	})
}

func TestTemplateRenderCommand(t *testing.T) {
	newTestEnv(t)

	out, err := executeCommand("template", "render", "Hi [[Name]] [[Bogus]]")
	require.NoError(t, err)
	require.Contains(t, out, `text   "Hi "`)
	require.Contains(t, out, "token  Name (name)")
	require.Contains(t, out, `text   " [[Bogus]]"`)
	require.Contains(t, out, "tokens: 1  placeholders: Name")
}

func TestTemplateExpandCommand(t *testing.T) {
	newTestEnv(t)

	t.Run("DefaultSamples", func(t *testing.T) {
		out, err := executeCommand("template", "expand", "Hi [[Name]] from [[Company name]]")
		require.NoError(t, err)
		require.Equal(t, "Hi Jane from Acme Bakery\n", out)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		out, err := executeCommand("template", "expand", "Hi [[Name]] from [[Company name]]", "--value", "Name=Ana")
		require.NoError(t, err)
		require.Equal(t, "Hi Ana from <company name>\n", out)
	})

	t.Run("Stdin", func(t *testing.T) {
		out, err := executeCommandWithInput("Visit [[Your link]]", "template", "expand")
		require.NoError(t, err)
		require.Equal(t, "Visit https://acme.example/review\n", out)
	})

	t.Run("StoredChannel", func(t *testing.T) {
		out, err := executeCommand("template", "expand", "--ephemeral", "--channel", "sms")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "Hi Jane, thanks for choosing us."))
	})

	t.Run("UnknownChannel", func(t *testing.T) {
		_, err := executeCommand("template", "expand", "--channel", "fax")
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})
}

func TestTemplateExportImportRoundTrip(t *testing.T) {
	home := newTestEnv(t)
	file := filepath.Join(home, "templates.yaml")

	_, err := executeCommand("template", "export", file)
	require.NoError(t, err)
	exported, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(exported), "version: 1")
	require.Contains(t, string(exported), "whatsapp:")

	custom := "version: 1\ntemplates:\n  sms: \"Hello [[Name]]\"\n"
	require.NoError(t, os.WriteFile(file, []byte(custom), 0o600))

	out, err := executeCommand("template", "import", file)
	require.NoError(t, err)
	require.Contains(t, out, "Imported templates")

	// Stored in the state database, so a fresh command sees it.
	out, err = executeCommand("template", "show", "sms")
	require.NoError(t, err)
	require.Equal(t, "Hello [[Name]]", out)

	out, err = executeCommand("template", "show", "email")
	require.NoError(t, err)
	require.Equal(t, store.DefaultTemplates().Email, out)

	require.FileExists(t, filepath.Join(home, config.DirName, "state.db"))
}

func TestTemplateImportRejectsBadFile(t *testing.T) {
	home := newTestEnv(t)
	file := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("version: 2\ntemplates: {}\n"), 0o600))

	_, err := executeCommand("template", "import", file)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeDecodeFailed))
}

func TestThemeCommands(t *testing.T) {
	home := newTestEnv(t)

	t.Run("Presets", func(t *testing.T) {
		out, err := executeCommand("theme", "presets")
		require.NoError(t, err)
		require.Contains(t, out, "ocean")
		require.Contains(t, out, "#1877F2")
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(theme.Presets()))
	})

	t.Run("SetSeed", func(t *testing.T) {
		out, err := executeCommand("theme", "set-seed", "e11d48")
		require.NoError(t, err)
		require.Contains(t, out, "#E11D48")

		data, err := os.ReadFile(filepath.Join(home, config.DirName, "config.yaml"))
		require.NoError(t, err)
		require.Contains(t, string(data), "#E11D48")
	})

	t.Run("SetModeRejectsUnknown", func(t *testing.T) {
		_, err := executeCommand("theme", "set-mode", "sepia")
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidMode))
	})
}

type fakeProgram struct {
	app *ui.App
	err error
}

func (p *fakeProgram) Run() (tea.Model, error) {
	return p.app, p.err
}

func TestRootRunsTUIWithDesignFlags(t *testing.T) {
	newTestEnv(t)
	orig := newProgram
	t.Cleanup(func() {
		newProgram = orig
		theme.SetDark(false)
	})

	prog := &fakeProgram{}
	newProgram = func(app *ui.App) programRunner {
		prog.app = app
		return prog
	}

	_, err := executeCommand("--ephemeral", "--seed", "#E11D48", "--mode", "dark", "--channel", "email")
	require.NoError(t, err)
	require.NotNil(t, prog.app)
	require.Equal(t, store.ChannelEmail, prog.app.Channel())

	d, ok := theme.Current().(*theme.Derived)
	require.True(t, ok)
	require.Equal(t, "#E11D48", d.Seed())
	require.True(t, lipgloss.HasDarkBackground())
}

func TestRootReportsProgramErrors(t *testing.T) {
	newTestEnv(t)
	orig := newProgram
	t.Cleanup(func() { newProgram = orig })

	newProgram = func(app *ui.App) programRunner {
		return &fakeProgram{app: app, err: errors.New("no tty")}
	}

	_, err := executeCommand("--ephemeral")
	require.Error(t, err)
	require.Contains(t, err.Error(), "run UI: no tty")
}

func TestRootRejectsBadFlags(t *testing.T) {
	newTestEnv(t)

	t.Run("UnknownPreset", func(t *testing.T) {
		_, err := executeCommand("--ephemeral", "--preset", "neon")
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})

	t.Run("UnknownChannel", func(t *testing.T) {
		_, err := executeCommand("--ephemeral", "--channel", "fax")
		require.Error(t, err)
	})
}

func TestDesignDefaultsFromConfig(t *testing.T) {
	newTestEnv(t)
	require.NoError(t, config.ApplyOverrides(map[string]any{
		config.KeyThemeSeed: "#abc",
		config.KeyThemeMode: "dark",
	}))

	d, err := designDefaults()
	require.NoError(t, err)
	require.Equal(t, store.Design{Mode: store.ModeDark, PrimaryColor: "#AABBCC"}, d)

	t.Run("PresetWins", func(t *testing.T) {
		require.NoError(t, config.ApplyOverrides(map[string]any{config.KeyThemePreset: "forest"}))
		d, err := designDefaults()
		require.NoError(t, err)
		require.Equal(t, "#2F855A", d.PrimaryColor)
	})

	t.Run("BadMode", func(t *testing.T) {
		require.NoError(t, config.ApplyOverrides(map[string]any{config.KeyThemeMode: "sepia"}))
		_, err := designDefaults()
		require.True(t, apperrors.IsCode(err, apperrors.CodeConfigurationError))
	})
}
