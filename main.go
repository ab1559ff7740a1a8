package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/opserr/cmd"
	"github.com/thenoetrevino/opserr/internal/cli"
	"github.com/thenoetrevino/opserr/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(cli.ExitCode(err))
	}
}
