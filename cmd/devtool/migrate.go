package main

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/osse101/RewardEngine_Go/internal/config"
	"github.com/osse101/RewardEngine_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or list the embedded database migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pool, err := database.NewPool(cfg.GetDBConnString(), 2, 0, 0)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Database is up to date")
		return nil
	case "status":
		PrintHeader("Migration status")
		statuses, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			if st.State == goose.StateApplied {
				PrintSuccess("%05d applied %s", st.Source.Version, st.AppliedAt.Format("2006-01-02 15:04:05"))
			} else {
				PrintWarning("%05d pending", st.Source.Version)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q: want up or status", args[0])
	}
}
