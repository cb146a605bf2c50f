package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reviewdesk/internal/colors"
)

type paletteOptions struct {
	css bool
}

func newPaletteCmd() *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette <hex>",
		Short: "Print the OKLCH palette derived from a seed colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.css, "css", false, "Print a :root CSS block instead of a table")

	return cmd
}

func runPalette(cmd *cobra.Command, seed string, opts *paletteOptions) error {
	if _, err := colors.ParseHex(seed); err != nil {
		return err
	}
	p := colors.GeneratePalette(seed)
	out := cmd.OutOrStdout()

	if opts.css {
		_, err := fmt.Fprint(out, p.CSS())
		return err
	}

	for _, role := range colors.Roles {
		c := p.Get(role)
		if _, err := fmt.Fprintf(out, "%-26s %-20s %s\n", role.Variable(), c.String(), c.Hex()); err != nil {
			return err
		}
	}
	return nil
}
