package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/RewardEngine_Go/internal/config"
	"github.com/osse101/RewardEngine_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus and the resilient
// publisher services publish through. Failed subscriber deliveries are retried
// with exponential backoff and end up in the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
