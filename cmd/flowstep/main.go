package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/flowstep/internal/cli"
)

var version = "v0.0.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// run the command
	cli.Execute(ctx, version)
}
