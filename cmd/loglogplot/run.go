package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"loglogplot/pkg/cli"
)

// run is main without the exit: it parses args, does the work and returns an error.
// Ctrl+C or SIGTERM cancels the context, which closes the plot window if it is open.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return cli.New(stdout, stderr, getenv).Execute(ctx, args[1:])
}
