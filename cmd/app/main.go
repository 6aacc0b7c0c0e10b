// Command app serves the reward engine HTTP API.
//
//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -d ../.. -o ../../docs
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/RewardEngine_Go/internal/bootstrap"
	"github.com/osse101/RewardEngine_Go/internal/config"
)

// @title						Reward Engine API
// @version					1.0
// @description				Gacha packs, the lottery board and the raid reward pool.
// @BasePath					/api/v1
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
// @securityDefinitions.apikey	AdminKeyAuth
// @in							header
// @name						X-Admin-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Reward engine exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCloser, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
