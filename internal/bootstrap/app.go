package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/RewardEngine_Go/internal/concurrency"
	"github.com/osse101/RewardEngine_Go/internal/config"
	"github.com/osse101/RewardEngine_Go/internal/database"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/gacha"
	"github.com/osse101/RewardEngine_Go/internal/item"
	"github.com/osse101/RewardEngine_Go/internal/leaderboard"
	"github.com/osse101/RewardEngine_Go/internal/lottery"
	"github.com/osse101/RewardEngine_Go/internal/metrics"
	"github.com/osse101/RewardEngine_Go/internal/player"
	"github.com/osse101/RewardEngine_Go/internal/raid"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
	"github.com/osse101/RewardEngine_Go/internal/server"
	"github.com/osse101/RewardEngine_Go/internal/weight"
	"github.com/osse101/RewardEngine_Go/internal/worker"
)

// App is the fully wired reward engine.
type App struct {
	cfg       *config.Config
	pool      *pgxpool.Pool
	server    *server.Server
	worker    *worker.MaintenanceWorker
	publisher *event.ResilientPublisher
	redis     *redis.Client
	stopWatch context.CancelFunc
}

// Build connects to the database, applies migrations, loads the reward
// config and wires every service behind the HTTP server. Nothing is served
// until Run is called.
func Build(ctx context.Context, cfg *config.Config) (_ *App, err error) {
	app := &App{cfg: cfg}
	defer func() {
		if err != nil {
			app.close()
		}
	}()

	app.pool, err = database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if cfg.MigrateOnStart {
		if err = database.Migrate(ctx, app.pool); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
	} else {
		slog.Info(LogMsgMigrationsSkipped)
	}

	_, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		return nil, err
	}
	app.publisher = publisher
	if err = metrics.NewEventMetricsCollector().Register(publisher); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	repos := InitializeRepositories(app.pool, cfg.LockTimeout)

	// An unreadable or unparsable reward config is fatal; invalid sections only disable themselves.
	store, err := rewardconfig.NewStore(ctx, cfg.RewardConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRewardConfig, err)
	}
	syncer := item.NewSyncer(repos.Item)
	if err = SyncItems(ctx, syncer, store.Current()); err != nil {
		return nil, err
	}

	ids, err := snowflake.NewNode(cfg.SnowflakeNodeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSnowflakeNode, err)
	}
	retry := repository.RetryPolicy{
		MaxAttempts: cfg.TxMaxAttempts,
		BaseBackoff: cfg.TxBaseBackoff,
		OnRetry:     metrics.RecordRetry,
	}
	drawer := weight.NewDrawer(weight.DefaultSource())
	granter := gacha.NewGranter(repos.Item, drawer, ids, CandidateCacheSize, CandidateCacheTTL)
	RegisterReloadHook(store, syncer, granter, publisher)

	if cfg.WatchRewardConfig {
		watchCtx, cancel := context.WithCancel(context.Background())
		app.stopWatch = cancel
		if err = store.Watch(watchCtx); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedWatchConfig, err)
		}
	} else {
		slog.Info(LogMsgWatchDisabled)
	}

	var ranking raid.Ranking
	if cfg.RedisAddr != "" {
		app.redis, err = leaderboard.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		redisRanking := leaderboard.NewRedisRanking(app.redis, repos.Raid, 0)
		redisRanking.Register(publisher)
		ranking = redisRanking
		slog.Info(LogMsgRedisRankingEnabled, "addr", cfg.RedisAddr)
	} else {
		slog.Info(LogMsgRedisRankingDisabled)
	}

	locks := concurrency.NewLockManager()
	app.server = server.NewServer(cfg, server.Deps{
		DB:      app.pool,
		Players: player.NewService(repos.Player, retry),
		Gacha:   gacha.NewService(repos.Gacha, store, granter, publisher, retry),
		Lottery: lottery.NewService(repos.Lottery, store, granter, drawer, ids, locks, publisher, retry),
		Raid:    raid.NewService(repos.Raid, store, drawer.Source(), ranking, publisher, retry),
		Configs: NewCatalogReloader(store, publisher),
	})

	app.worker, err = worker.NewMaintenanceWorker(repos.Maintenance, publisher, cfg.MaintenanceSchedule, cfg.FreeDrawRetentionDays)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateWorker, err)
	}

	return app, nil
}

// Run serves HTTP and the maintenance schedule until ctx is cancelled, then
// shuts everything down within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	a.worker.Start()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	slog.Info(LogMsgServerListening, "port", a.cfg.Port)

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info(LogMsgShutdownSignal)
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("%s: %w", ErrMsgServerFailed, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Server:             a.server,
		MaintenanceWorker:  a.worker,
		ResilientPublisher: a.publisher,
		Redis:              a.redis,
		StopWatch:          a.stopWatch,
	})
	a.pool.Close()
	return runErr
}

// close releases what Build acquired when wiring fails part way.
func (a *App) close() {
	if a.stopWatch != nil {
		a.stopWatch()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
