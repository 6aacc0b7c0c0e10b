package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

// MaintenanceResult reports what one housekeeping run touched.
type MaintenanceResult struct {
	AttemptsReset int64
	ClaimsPruned  int64
}

// MaintenanceWorker runs daily housekeeping on a cron schedule evaluated in UTC:
// raid attempt counters from earlier days are zeroed and free-draw claims older
// than the retention window are deleted.
type MaintenanceWorker struct {
	repo      repository.Maintenance
	eventBus  event.Bus
	retention int
	cron      *cron.Cron
	now       func() time.Time
}

// NewMaintenanceWorker validates schedule and registers the job. Call Start to begin.
func NewMaintenanceWorker(repo repository.Maintenance, eventBus event.Bus, schedule string, retentionDays int) (*MaintenanceWorker, error) {
	if retentionDays < 1 {
		return nil, errors.New(ErrMsgInvalidRetention)
	}

	w := &MaintenanceWorker{
		repo:      repo,
		eventBus:  eventBus,
		retention: retentionDays,
		now:       time.Now,
	}

	cronLog := cronLogger{log: slog.Default().With("component", "maintenance")}
	w.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := w.cron.AddFunc(schedule, func() { _, _ = w.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidSchedule, schedule, err)
	}
	return w, nil
}

// Start begins the schedule in its own goroutine.
func (w *MaintenanceWorker) Start() {
	w.cron.Start()
	for _, e := range w.cron.Entries() {
		slog.Default().Info(LogMsgMaintenanceScheduled, "next_run_at", e.Next)
	}
}

// RunOnce performs one housekeeping pass. Both tasks run even if the first fails.
func (w *MaintenanceWorker) RunOnce(ctx context.Context) (MaintenanceResult, error) {
	log := logger.FromContext(ctx)
	today := domain.UTCDay(w.now())
	log.Info(LogMsgMaintenanceStarting, "day", today)

	var res MaintenanceResult
	var errs []error

	n, err := w.repo.ResetDailyRaidAttempts(ctx, today)
	if err != nil {
		log.Error(LogMsgMaintenanceFailed, "task", "reset_raid_attempts", "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", ErrContextResetAttempt, err))
	}
	res.AttemptsReset = n

	cutoff := today.AddDate(0, 0, -w.retention)
	n, err = w.repo.PruneFreeDrawClaims(ctx, cutoff)
	if err != nil {
		log.Error(LogMsgMaintenanceFailed, "task", "prune_free_draws", "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", ErrContextPruneClaims, err))
	}
	res.ClaimsPruned = n

	runErr := errors.Join(errs...)
	event.Publish(ctx, w.eventBus, event.NewMaintenanceEvent(res.AttemptsReset, res.ClaimsPruned, runErr))
	if runErr == nil {
		log.Info(LogMsgMaintenanceCompleted,
			"attempts_reset", res.AttemptsReset,
			"claims_pruned", res.ClaimsPruned,
			"prune_cutoff", cutoff)
	}
	return res, runErr
}

// Shutdown stops the schedule and waits for a running pass to finish.
func (w *MaintenanceWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMaintenanceStopping)

	stopped := w.cron.Stop()
	select {
	case <-stopped.Done():
		log.Info(LogMsgMaintenanceStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgMaintenanceTimeout)
		return ctx.Err()
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
