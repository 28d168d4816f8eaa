package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/moimlab/schedsync/adapter/cli"
	"github.com/moimlab/schedsync/adapter/cli/schedule"
	"github.com/moimlab/schedsync/internal/app"
	"github.com/moimlab/schedsync/pkg/config"
	"github.com/moimlab/schedsync/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cliApp := cli.NewApp(cfg, container.Sync, container.MockStore, container.Health, container.Metrics)
	cliApp.SetCurrentOwnerID(container.OwnerID)
	cli.SetApp(cliApp)

	cli.AddCommand(schedule.Cmd)

	cli.Execute()
}
