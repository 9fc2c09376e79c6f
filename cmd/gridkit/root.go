package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gridkit",
		Short:         "gridkit computes responsive 12-column layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.validate()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "human", "Log output format (human or json)")

	cmd.AddCommand(newLayoutCmd(flags))
	cmd.AddCommand(newBreakpointsCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) validate() error {
	switch f.logFormat {
	case "human", "json":
		return nil
	default:
		return fmt.Errorf("unsupported log format %q (expected human or json)", f.logFormat)
	}
}

// commandLogger writes to the command's stderr so stdout stays parseable.
func (f *rootFlags) commandLogger(cmd *cobra.Command, component string) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.logFormat != "json",
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
}
