package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/server"
	"github.com/osse101/RewardEngine_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	MaintenanceWorker  *worker.MaintenanceWorker
	ResilientPublisher *event.ResilientPublisher
	Redis              *redis.Client
	StopWatch          context.CancelFunc
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Config watcher and maintenance schedule
// 3. Event publisher (flush pending events)
// 4. Redis client
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.StopWatch != nil {
		components.StopWatch()
	}

	if components.MaintenanceWorker != nil {
		if err := components.MaintenanceWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Redis != nil {
		if err := components.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
