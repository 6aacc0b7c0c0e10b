package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingRewardEngine = "Starting reward engine"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgFailedCreateLogsDir  = "failed to create logs directory"
	LogMsgFailedOpenLogFile    = "failed to open log file"
	LogMsgFailedDeleteOldLog   = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Application Wiring
// =============================================================================

const (
	// CandidateCacheSize bounds the number of (tier, season, region) pools kept per granter
	CandidateCacheSize = 256

	// CandidateCacheTTL expires cached candidate pools even without a reload
	CandidateCacheTTL = 5 * time.Minute

	// DBMaxConnIdleTime and DBMaxConnLifetime tune the pgx pool
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

const (
	LogMsgMigrationsApplied      = "Database migrations applied"
	LogMsgMigrationsSkipped      = "MIGRATE_ON_START disabled, skipping migrations"
	LogMsgRedisRankingEnabled    = "Raid leaderboard served from Redis"
	LogMsgRedisRankingDisabled   = "REDIS_ADDR not set, raid leaderboard served from Postgres"
	LogMsgWatchDisabled          = "Reward config watch disabled"
	LogMsgServerListening        = "Server listening"
	LogMsgShutdownSignal         = "Shutdown signal received"
	ErrMsgFailedConnectDB        = "failed to connect to database"
	ErrMsgFailedMigrate          = "failed to apply migrations"
	ErrMsgFailedLoadRewardConfig = "failed to load reward config"
	ErrMsgFailedWatchConfig      = "failed to watch reward config"
	ErrMsgFailedConnectRedis     = "failed to connect to redis"
	ErrMsgFailedSnowflakeNode    = "failed to create snowflake node"
	ErrMsgFailedCreateWorker     = "failed to create maintenance worker"
	ErrMsgServerFailed           = "server failed"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingItems   = "Syncing items from reward config..."
	LogMsgItemsSynced    = "Items synced successfully"
	LogMsgItemsUnchanged = "Item catalog unchanged, sync skipped"
	LogMsgItemSyncFailed = "Item sync after reload failed"

	ErrMsgFailedSyncItems = "failed to sync items to database"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgRankingSubscribed          = "Leaderboard ranking subscribed to raid events"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgWorkerShutdownFailed       = "Maintenance worker shutdown failed"
	LogMsgRedisCloseFailed           = "Redis client close failed"
)
