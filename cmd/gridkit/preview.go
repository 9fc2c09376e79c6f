package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
	"github.com/alexisbeaulieu97/gridkit/internal/tui"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
	"github.com/alexisbeaulieu97/gridkit/internal/watch"
	gridkiterrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

type previewOptions struct {
	file    string
	watch   bool
	logFile string
}

var previewRunner = runPreview

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a layout in the terminal and follow resizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := validateLayoutPath(opts.file); err != nil {
				return newCommandError("start preview", "checking the layout path", err, "Pass an existing layout file with --file.")
			}

			log, closeLog, err := previewLogger(root, opts.logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			return previewRunner(cmd.Context(), log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to layout file")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the layout when the file changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the preview owns the terminal")
	cmd.MarkFlagRequired("file") //nolint:errcheck

	return cmd
}

// previewLogger discards logs unless a log file is given, since the preview
// takes over the terminal.
func previewLogger(root *rootFlags, path string) (*logger.Logger, func(), error) {
	if path == "" {
		return logger.Nop(), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, newCommandError("start preview", "opening the log file", err, "Choose a writable --log-file path.")
	}

	level := "info"
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: root.logFormat != "json",
		Writer:        file,
		Component:     "preview",
	})
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return log, func() { _ = file.Close() }, nil
}

func runPreview(ctx context.Context, log *logger.Logger, opts *previewOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	doc, err := loadDocument("start preview", opts.file, log)
	if err != nil {
		return err
	}

	provider := theme.NewProvider(theme.Some(theme.ByName(doc.Theme)), viewport.NewObserver(log))
	model := tui.NewModel(doc, provider, log)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.watch {
		watcher, err := watch.New(opts.file, func(doc *config.Document, err error) {
			if err != nil {
				program.Send(tui.ReloadFailedMsg{Err: err})
				return
			}
			program.Send(tui.LayoutReloadedMsg{Document: doc})
		}, watch.Options{Logger: log})
		if err != nil {
			return gridkiterrors.NewLayoutError("watch", err)
		}
		defer watcher.Close()

		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error(err, "layout watcher stopped")
			}
		}()
	}

	log.With("layout", doc.Name).Info("preview started")
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return gridkiterrors.NewLayoutError("preview", err)
	}
	return nil
}
