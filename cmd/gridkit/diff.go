package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/render"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
	"github.com/alexisbeaulieu97/gridkit/pkg/diff"
)

type diffOptions struct {
	file string
	from int
	to   int
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how a layout reflows between two viewport widths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.commandLogger(cmd, "diff")
			if err != nil {
				return err
			}
			err = runDiff(cmd.OutOrStdout(), log, opts)
			if err != nil {
				log.Error(err, "diff command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to layout file")
	cmd.Flags().IntVar(&opts.from, "from", 0, "First viewport width in pixels")
	cmd.Flags().IntVar(&opts.to, "to", 0, "Second viewport width in pixels")
	cmd.MarkFlagRequired("file") //nolint:errcheck
	cmd.MarkFlagRequired("from") //nolint:errcheck
	cmd.MarkFlagRequired("to")   //nolint:errcheck

	return cmd
}

func runDiff(out io.Writer, log *logger.Logger, opts *diffOptions) error {
	doc, err := loadDocument("diff layouts", opts.file, log)
	if err != nil {
		return err
	}

	before, err := computeOnce(doc, viewport.Size{Width: opts.from}, log)
	if err != nil {
		return newCommandError("diff layouts", fmt.Sprintf("sizing %s at %dpx", doc.Name, opts.from), err, "Widths must be positive.")
	}
	after, err := computeOnce(doc, viewport.Size{Width: opts.to}, log)
	if err != nil {
		return newCommandError("diff layouts", fmt.Sprintf("sizing %s at %dpx", doc.Name, opts.to), err, "Widths must be positive.")
	}

	unified := diff.Unified(render.Summary(before), render.Summary(after),
		fmt.Sprintf("%dpx", opts.from), fmt.Sprintf("%dpx", opts.to))
	if unified == "" {
		fmt.Fprintf(out, "No layout changes between %dpx and %dpx\n", opts.from, opts.to)
		return nil
	}
	fmt.Fprint(out, unified)
	return nil
}
