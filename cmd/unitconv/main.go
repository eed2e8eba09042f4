package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"unitconverter/shell"
)

func main() {
	// Diagnostics only; results and help go to stdout.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := shell.Run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}
