package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reviewdesk/internal/store"
	"reviewdesk/internal/tagtext"
	"reviewdesk/internal/ui"
)

type templateOptions struct {
	channel string
	values  map[string]string
}

func newTemplateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect, expand, export and import message templates",
	}

	cmd.AddCommand(newTemplateRenderCmd(root))
	cmd.AddCommand(newTemplateExpandCmd(root))
	cmd.AddCommand(newTemplateShowCmd(root))
	cmd.AddCommand(newTemplateExportCmd(root))
	cmd.AddCommand(newTemplateImportCmd(root))

	return cmd
}

func newTemplateRenderCmd(root *rootFlags) *cobra.Command {
	opts := &templateOptions{}

	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Show how a template splits into text runs and tag tokens",
		Long: "Reads the template from the argument, from --channel, or from stdin, " +
			"and lists the document nodes the editor works with.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, tags, err := templateSource(cmd, root, opts, args)
			if err != nil {
				return err
			}
			return printNodes(cmd.OutOrStdout(), tagtext.Render(src, tags))
		},
	}

	cmd.Flags().StringVar(&opts.channel, "channel", "", "Use the stored template of this channel")

	return cmd
}

func newTemplateExpandCmd(root *rootFlags) *cobra.Command {
	opts := &templateOptions{}

	cmd := &cobra.Command{
		Use:   "expand [template]",
		Short: "Fill a template's placeholders with sample values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, tags, err := templateSource(cmd, root, opts, args)
			if err != nil {
				return err
			}
			values := ui.DefaultSamples
			if cmd.Flags().Changed("value") {
				values = opts.values
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tagtext.Expand(src, tags, values))
			return err
		},
	}

	cmd.Flags().StringVar(&opts.channel, "channel", "", "Use the stored template of this channel")
	cmd.Flags().StringToStringVar(&opts.values, "value", nil, "Sample value for a tag, e.g. --value Name=Jane (repeatable)")

	return cmd
}

func newTemplateShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <channel>",
		Short: "Print the stored template of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := store.ParseChannel(args[0])
			if err != nil {
				return err
			}
			st, err := openState(cmd.Context(), root.ephemeral)
			if err != nil {
				return err
			}
			defer st.Close()
			_, err = fmt.Fprint(cmd.OutOrStdout(), st.templates.Snapshot().Get(ch))
			return err
		},
	}
}

func newTemplateExportCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write all templates and the tag set as YAML (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openState(cmd.Context(), root.ephemeral)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 0 {
				return st.templates.Export(cmd.OutOrStdout(), st.tags)
			}
			//nolint:gosec // G304: path comes from the user on purpose
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			if err := st.templates.Export(f, st.tags); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
}

func newTemplateImportCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace stored templates with the ones in a YAML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			//nolint:gosec // G304: path comes from the user on purpose
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			st, err := openState(cmd.Context(), root.ephemeral)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.templates.Import(cmd.Context(), f); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported templates from %s\n", args[0])
			return err
		},
	}
}

// templateSource resolves the template text from the argument, the stored
// channel template, or stdin, in that order. It also returns the tag set.
func templateSource(cmd *cobra.Command, root *rootFlags, opts *templateOptions, args []string) (string, []tagtext.Tag, error) {
	tags, err := configuredTags()
	if err != nil {
		return "", nil, err
	}

	switch {
	case len(args) == 1:
		return args[0], tags, nil
	case opts.channel != "":
		ch, err := store.ParseChannel(opts.channel)
		if err != nil {
			return "", nil, err
		}
		st, err := openState(cmd.Context(), root.ephemeral)
		if err != nil {
			return "", nil, err
		}
		defer st.Close()
		return st.templates.Snapshot().Get(ch), st.tags, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", nil, fmt.Errorf("read template: %w", err)
	}
	return string(data), tags, nil
}

func printNodes(w io.Writer, doc *tagtext.Document) error {
	for i, n := range doc.Nodes() {
		var line string
		switch n.Kind {
		case tagtext.TokenNode:
			line = fmt.Sprintf("%3d  token  %s (%s)", i, n.Tag.Value, n.Tag.DisplayLabel())
		default:
			line = fmt.Sprintf("%3d  text   %s", i, strconv.Quote(n.Text))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "tokens: %d  placeholders: %s\n",
		len(doc.Tokens()), strings.Join(tagtext.Placeholders(doc.Serialize(), doc.Tags()), ", "))
	return err
}
