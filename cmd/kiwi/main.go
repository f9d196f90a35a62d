// Package main is the entry point for the kiwi CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"kiwi/internal/backend/google"
	"kiwi/internal/cli"
	"kiwi/internal/commands"
	"kiwi/internal/config"
	"kiwi/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return google.New(ctx, cfg, cfg.Logger(os.Stderr))
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
