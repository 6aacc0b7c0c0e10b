package bootstrap

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardEngine_Go/internal/database/postgres"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Player      repository.Player
	Item        repository.Item
	Gacha       repository.Gacha
	Lottery     repository.Lottery
	Raid        *postgres.RaidRepository
	Maintenance repository.Maintenance
}

// InitializeRepositories creates the Postgres repositories. Repositories that
// open locking transactions share lockTimeout. Raid is kept concrete because it
// also serves as the leaderboard rebuild source.
func InitializeRepositories(dbPool *pgxpool.Pool, lockTimeout time.Duration) *Repositories {
	return &Repositories{
		Player:      postgres.NewPlayerRepository(dbPool, lockTimeout),
		Item:        postgres.NewItemRepository(dbPool),
		Gacha:       postgres.NewGachaRepository(dbPool, lockTimeout),
		Lottery:     postgres.NewLotteryRepository(dbPool, lockTimeout),
		Raid:        postgres.NewRaidRepository(dbPool, lockTimeout),
		Maintenance: postgres.NewMaintenanceRepository(dbPool),
	}
}
