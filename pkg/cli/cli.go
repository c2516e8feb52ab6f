// Package cli implements the loglogplot command line.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"loglogplot/pkg/config"
	"loglogplot/pkg/display"
	"loglogplot/pkg/logging"
	"loglogplot/pkg/pipeline"
)

// CLI encapsulates the command-line interface
type CLI struct {
	rootCmd *cobra.Command
	stdout  io.Writer
	stderr  io.Writer
	getenv  func(string) string
	viewer  pipeline.Viewer
}

// Option configures a CLI.
type Option func(*CLI)

// WithViewer replaces the display chosen from configuration.
func WithViewer(v pipeline.Viewer) Option {
	return func(c *CLI) { c.viewer = v }
}

// New creates a CLI writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer, getenv func(string) string, opts ...Option) *CLI {
	c := &CLI{stdout: stdout, stderr: stderr, getenv: getenv}
	for _, opt := range opts {
		opt(c)
	}
	c.buildCommand()
	return c
}

// Execute runs the command with args (without the program name).
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.rootCmd.SetArgs(args)
	return c.rootCmd.ExecuteContext(ctx)
}

func (c *CLI) buildCommand() {
	c.rootCmd = &cobra.Command{
		Use:   "loglogplot <filename>",
		Short: "Fit and plot a power law from a two-column file",
		Long: `Reads a delimited text file with a header row, fits a straight line to
log10 of the first two columns (leaving out the first data row) and prints
the slope and intercept as "m: <slope>, b: <intercept>".

The data is plotted on log-log axes, labelled with the column headers, saved
as <filename>.svg and shown in a window.

Settings are read from loglogplot.yaml in the working directory, or the file
named by $LOGLOGPLOT_CONFIG. Set LOGLOGPLOT_NO_DISPLAY=1 to skip the window.`,
		Example:       "  loglogplot L2Error.csv",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// arguments are valid from here on, don't print usage for runtime errors
			cmd.SilenceUsage = true
			return c.run(cmd.Context(), args[0])
		},
	}
	c.rootCmd.SetOut(c.stdout)
	c.rootCmd.SetErr(c.stderr)
}

func (c *CLI) run(ctx context.Context, path string) error {
	cfg, err := config.Load(c.getenv)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(c.stderr, level)
	logger.Debug("configuration", "delimiter", cfg.Delimiter, "skip_rows", cfg.SkipRows,
		"display", cfg.Display, "overlay_fit", cfg.OverlayFit)

	viewer := c.viewer
	if viewer == nil {
		if cfg.Display {
			viewer = display.Window{}
		} else {
			viewer = display.Headless{Logger: logger}
		}
	}

	_, err = pipeline.New(cfg, logger, viewer, c.stdout).Run(ctx, path)
	return err
}
