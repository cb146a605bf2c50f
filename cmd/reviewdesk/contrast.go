package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reviewdesk/internal/colors"
)

type contrastOptions struct {
	against string
}

func newContrastCmd() *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <hex>...",
		Short: "Pick black or white text for each background and report the WCAG ratio",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.against, "against", "", "Compare with this colour instead of the picked foreground")

	return cmd
}

func runContrast(cmd *cobra.Command, backgrounds []string, opts *contrastOptions) error {
	out := cmd.OutOrStdout()
	for _, bg := range backgrounds {
		normalized, err := colors.NormalizeHex(bg)
		if err != nil {
			return err
		}
		fg := colors.PickForeground(normalized)
		if against := strings.TrimSpace(opts.against); against != "" {
			fg, err = colors.NormalizeHex(against)
			if err != nil {
				return err
			}
		}
		ratio, err := colors.Contrast(normalized, fg)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s  on %s  %5.2f:1  %s\n", fg, normalized, ratio, colors.Level(ratio)); err != nil {
			return err
		}
	}
	return nil
}
