package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/RewardEngine_Go/internal/config"
	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// SetupLogger installs the process logger. Output always goes to stdout; when
// cfg.LogDir is set it is also written to a timestamped session file there.
// The returned closer must be closed on exit.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	loggerConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	if cfg.LogDir == "" {
		logger.InitLogger(loggerConfig)
		logStartup(cfg, loggerConfig)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}
	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg, loggerConfig)
	return logFile, nil
}

func logStartup(cfg *config.Config, lc logger.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", lc.LogLevel(), "format", lc.Format, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingRewardEngine,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"redis", cfg.RedisAddr != "",
		"reward_config", cfg.RewardConfigPath,
		"port", cfg.Port)
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
