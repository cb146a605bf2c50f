package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"reviewdesk/internal/config"
	"reviewdesk/internal/debug"
	"reviewdesk/internal/store"
	"reviewdesk/internal/ui"
)

type rootFlags struct {
	debug     bool
	ephemeral bool

	seed         string
	mode         string
	preset       string
	previewStyle string
	channel      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "reviewdesk",
		Short:         "Edit review-request templates and derive a theme from a brand colour",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags, newProgram)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Write a debug log to ~/.reviewdesk/debug.log")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "Keep state in memory instead of the state database")

	f := cmd.Flags()
	f.StringVar(&flags.seed, "seed", "", "Primary colour to derive the theme from, e.g. #1877F2")
	f.StringVar(&flags.mode, "mode", "", "Appearance: light or dark")
	f.StringVar(&flags.preset, "preset", "", "Named seed colour (see 'reviewdesk theme presets')")
	f.StringVar(&flags.previewStyle, "preview-style", "", "Message preview style (dark, light, notty, plain)")
	f.StringVar(&flags.channel, "channel", "", "Channel tab to open first (sms, email, whatsapp)")

	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newTemplateCmd(flags))
	cmd.AddCommand(newThemeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration and starts the debug log. Flags set on the
// command line win over every configuration layer.
func setup(cmd *cobra.Command, flags *rootFlags) error {
	if err := config.Initialize(); err != nil {
		return err
	}
	overrides := map[string]any{}
	if cmd.Flags().Changed("debug") {
		overrides[config.KeyDebug] = flags.debug
	}
	if cmd.Flags().Changed("preview-style") {
		overrides[config.KeyPreviewStyle] = flags.previewStyle
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}
	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		return fmt.Errorf("start debug log: %w", err)
	}
	debug.Logf("reviewdesk %s starting: %s", Version, cmd.CommandPath())
	return nil
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// newProgram is swapped out in tests.
var newProgram programFactory = func(app *ui.App) programRunner {
	return tea.NewProgram(app, tea.WithAltScreen())
}

func runTUI(cmd *cobra.Command, flags *rootFlags, factory programFactory) error {
	ctx := cmd.Context()

	channel := store.ChannelSMS
	if c := strings.TrimSpace(flags.channel); c != "" {
		parsed, err := store.ParseChannel(c)
		if err != nil {
			return err
		}
		channel = parsed
	}

	st, err := openState(ctx, flags.ephemeral)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := applyDesignFlags(cmd, flags, st.design); err != nil {
		return err
	}

	app := ui.NewApp(ctx, ui.Config{
		Design:       st.design,
		Templates:    st.templates,
		Tags:         st.tags,
		Channel:      channel,
		PreviewStyle: config.GetString(config.KeyPreviewStyle),
	})
	defer app.Close()

	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
