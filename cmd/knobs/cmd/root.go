// Package cmd implements the knobs CLI commands.
//
// The root command dispatches to subcommands (apply, watch) that load a
// YAML panel document, bind its inputs and report the constrained values.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-knobs/knobs/pkg/errors"
	"github.com/go-knobs/knobs/pkg/pane"
	"github.com/go-knobs/knobs/pkg/params"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type globalOptions struct {
	verbose bool
	logOut  io.Writer
}

func (o *globalOptions) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: o.logOut, NoColor: o.logOut != os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// newPane loads path and binds every input of the document.
func (o *globalOptions) newPane(path string) (*pane.Pane, *params.Document, error) {
	doc, err := params.LoadDocument(path)
	if err != nil {
		return nil, nil, err
	}
	logger := o.logger()
	p, err := pane.New(
		pane.WithLogger(logger),
		pane.WithErrorHandler(errors.NewLogHandler(logger, o.verbose)),
	)
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.BindDocument(doc); err != nil {
		_ = p.Dispose()
		return nil, nil, fmt.Errorf("failed to bind %s: %w", path, err)
	}
	return p, doc, nil
}

// NewRootCommand builds the knobs command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{logOut: os.Stderr}
	root := &cobra.Command{
		Use:   "knobs",
		Short: "knobs - constrained, live-editable values",
		Long: `knobs binds the values of a YAML panel document to typed inputs.

Each input picks a plugin (number, string, bool or color) from the value it
binds and constrains the value with its params (min, max, step, options).

Use "knobs <command> --help" for more information about a command.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log binding lifecycle and stack traces")
	root.AddCommand(
		newApplyCommand(opts),
		newWatchCommand(opts),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
