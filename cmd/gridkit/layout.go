package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/render"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
	gridkiterrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

type layoutOptions struct {
	file   string
	width  int
	height int
	json   bool
}

// measureTerminal is replaced in tests.
var measureTerminal = func() (viewport.Size, error) {
	return viewport.Measure(int(os.Stdout.Fd()))
}

func newLayoutCmd(root *rootFlags) *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute the rows, gaps and widths of a layout at one viewport size",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.commandLogger(cmd, "layout")
			if err != nil {
				return err
			}
			log.With("file", opts.file).Info("computing layout")
			err = runLayout(cmd.OutOrStdout(), log, opts)
			if err != nil {
				log.Error(err, "layout command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to layout file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Viewport width in pixels (defaults to the terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Viewport height in pixels")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the layout as JSON")
	cmd.MarkFlagRequired("file") //nolint:errcheck

	return cmd
}

func runLayout(out io.Writer, log *logger.Logger, opts *layoutOptions) error {
	doc, err := loadDocument("compute layout", opts.file, log)
	if err != nil {
		return err
	}

	size, err := resolveViewport(doc, opts.width, opts.height)
	if err != nil {
		return newCommandError("compute layout", "determining the viewport", err, "Pass --width when stdout is not a terminal.")
	}

	layout, err := computeOnce(doc, size, log)
	if err != nil {
		return newCommandError("compute layout", fmt.Sprintf("sizing %s", doc.Name), err, "")
	}

	if opts.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(newLayoutReport(doc, layout))
	}

	provider := theme.NewProvider(theme.Some(theme.ByName(doc.Theme)), nil)
	fmt.Fprintf(out, "Layout: %s\n", doc.Name)
	fmt.Fprintf(out, "Viewport: %dx%dpx  bucket: %s  rows: %d\n",
		layout.Viewport.Width, layout.Viewport.Height, bucketLabel(layout.Bucket), len(layout.Rows))
	fmt.Fprintln(out, render.CellTable(layout, provider))
	return nil
}

// resolveViewport prefers explicit pixel sizes and falls back to measuring
// the terminal through the document's scale.
func resolveViewport(doc *config.Document, width, height int) (viewport.Size, error) {
	if width < 0 || height < 0 {
		return viewport.Size{}, fmt.Errorf("viewport dimensions must not be negative")
	}
	if width > 0 {
		return viewport.Size{Width: width, Height: height}, nil
	}

	cells, err := measureTerminal()
	if err != nil {
		return viewport.Size{}, err
	}
	px := doc.Scaling().ToPixels(cells.Width, cells.Height)
	if height > 0 {
		px.Height = height
	}
	return px, nil
}

// computeOnce drives a single measurement through the observer so the CLI
// exercises the same path as the live preview.
func computeOnce(doc *config.Document, size viewport.Size, log *logger.Logger) (grid.Layout, error) {
	observer := viewport.NewObserver(log)
	engine := grid.NewEngine(doc.ChildSpecs(), doc.Options(), log)
	defer engine.Close()
	engine.Attach(observer)

	if !observer.Update(size.Width, size.Height) {
		return grid.Layout{}, gridkiterrors.NewLayoutError("measure", fmt.Errorf("viewport width %d is not measurable", size.Width))
	}
	layout, ok := engine.Layout()
	if !ok {
		return grid.Layout{}, gridkiterrors.NewLayoutError("compute", errors.New("layout is not available"))
	}
	return layout, nil
}

func bucketLabel(name grid.Name) string {
	if name == grid.BelowMinimum {
		return "below minimum"
	}
	return string(name)
}

type layoutReport struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Bucket string      `json:"bucket"`
	UseGap bool        `json:"use_gap"`
	Rows   []rowReport `json:"rows"`
}

type rowReport struct {
	Columns int          `json:"columns"`
	Cells   []cellReport `json:"cells"`
}

type cellReport struct {
	ID            string `json:"id"`
	Index         int    `json:"index"`
	Columns       int    `json:"columns"`
	Order         int    `json:"order"`
	HorizontalGap int    `json:"horizontal_gap"`
	VerticalGap   int    `json:"vertical_gap"`
	Width         string `json:"width"`
	ResolvedWidth int    `json:"resolved_width"`
}

func newLayoutReport(doc *config.Document, layout grid.Layout) layoutReport {
	report := layoutReport{
		Name:   doc.Name,
		Width:  layout.Viewport.Width,
		Height: layout.Viewport.Height,
		Bucket: string(layout.Bucket),
		UseGap: doc.UseGap(),
		Rows:   make([]rowReport, 0, len(layout.Rows)),
	}
	for r, row := range layout.Rows {
		cells := layout.Row(r)
		entry := rowReport{Columns: row.Columns, Cells: make([]cellReport, 0, len(cells))}
		for _, cell := range cells {
			resolved, _ := cell.Width.Resolve(layout.Viewport.Width)
			entry.Cells = append(entry.Cells, cellReport{
				ID:            cell.ID,
				Index:         cell.Index,
				Columns:       cell.Columns,
				Order:         cell.Order,
				HorizontalGap: cell.HorizontalGap,
				VerticalGap:   cell.VerticalGap,
				Width:         cell.Width.String(),
				ResolvedWidth: resolved,
			})
		}
		report.Rows = append(report.Rows, entry)
	}
	return report
}
