package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reviewdesk/internal/colors"
	"reviewdesk/internal/config"
	"reviewdesk/internal/ui/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List presets and save theme defaults to the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List the named seed colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.Presets() {
				seed, _ := theme.PresetSeed(name)
				primary := theme.Derive(seed).Palette().Get(colors.RolePrimary).Hex()
				if _, err := fmt.Fprintf(out, "%-10s %s  primary %s  text %s\n", name, seed, primary, colors.PickForeground(primary)); err != nil {
					return err
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-seed <hex>",
		Short: "Save the default seed colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveSeed(args[0]); err != nil {
				return err
			}
			normalized, _ := colors.NormalizeHex(args[0])
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved %s = %s\n", config.KeyThemeSeed, normalized)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-mode <light|dark>",
		Short: "Save the default appearance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveMode(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved %s = %s\n", config.KeyThemeMode, args[0])
			return err
		},
	})

	return cmd
}
