// Package main starts the museum proxy HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/valenxo/Museo-MET/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
