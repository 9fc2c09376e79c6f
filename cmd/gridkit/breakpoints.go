package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/render"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
)

type breakpointsOptions struct {
	file  string
	width int
}

func newBreakpointsCmd(root *rootFlags) *cobra.Command {
	opts := &breakpointsOptions{}

	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "List the breakpoint table and the bucket a width falls into",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.commandLogger(cmd, "breakpoints")
			if err != nil {
				return err
			}
			err = runBreakpoints(cmd.OutOrStdout(), log, opts)
			if err != nil {
				log.Error(err, "breakpoints command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Layout file declaring a custom table (defaults to sm/md/lg/xl/xxl)")
	cmd.Flags().IntVar(&opts.width, "width", -1, "Viewport width in pixels to resolve")

	return cmd
}

func runBreakpoints(out io.Writer, log *logger.Logger, opts *breakpointsOptions) error {
	var doc *config.Document
	if opts.file != "" {
		loaded, err := loadDocument("list breakpoints", opts.file, log)
		if err != nil {
			return err
		}
		doc = loaded
	}

	table := doc.Table()
	provider := theme.NewProvider(theme.None[theme.Theme](), nil)
	if doc != nil {
		provider.SetTheme(theme.ByName(doc.Theme))
	}

	active := grid.BelowMinimum
	if opts.width >= 0 {
		active = grid.ResolveBucket(table, opts.width)
	}

	fmt.Fprintln(out, render.BreakpointTable(table, active, provider))
	if opts.width >= 0 {
		fmt.Fprintf(out, "Width %dpx resolves to %s\n", opts.width, bucketLabel(active))
	}
	return nil
}
