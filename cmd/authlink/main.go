package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/authlink-go/internal/app"
	"github.com/samvad-hq/authlink-go/internal/config"
	"github.com/samvad-hq/authlink-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "authlink failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("authlink starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli, err := app.New(cfg, log, os.Stdout)
	if err != nil {
		logger.ErrorObj("failed to initialize cli", "error", err)
		return err
	}

	return cli.Run(ctx, os.Args[1:])
}
