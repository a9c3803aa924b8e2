// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grinder/dataset"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by all subcommands of one invocation.
type app struct {
	verbose bool
	header  bool
	steps   int
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "grind",
		Short:         "Introduce controlled missingness into numeric datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.header, "header", false, "first CSV row holds column names")
	root.PersistentFlags().IntVar(&a.steps, "steps", 0, "reshape rows into samples of this many time steps")

	root.AddCommand(newCorruptCmd(a), newRunCmd(a), newRateCmd(a), newSynthCmd(a), newVersionCmd())
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readOptions maps the persistent flags onto dataset options.
func (a *app) readOptions() []dataset.Option {
	var opts []dataset.Option
	if a.header {
		opts = append(opts, dataset.WithHeader())
	}
	if a.steps > 0 {
		opts = append(opts, dataset.WithSteps(a.steps))
	}
	return opts
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the grind version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "grind", version)
		},
	}
}
