package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/RewardEngine_Go/internal/config"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for i := 0; i < waitMaxAttempts; i++ {
		err = ping(cfg.GetDBConnString())
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxAttempts, err)
		time.Sleep(waitInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxAttempts)
}

func ping(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), httpTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
