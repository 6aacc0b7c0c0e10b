package config

import "time"

const (
	// Configuration file paths
	ConfigPathRewards = "configs/rewards.yaml"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "reward-engine"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDBName      = "rewardengine"
	DefaultDBMaxConns  = 20

	DefaultTxMaxAttempts = 3
	DefaultTxBaseBackoff = 20 * time.Millisecond
	DefaultLockTimeout   = 2 * time.Second

	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10

	// Midnight UTC; the scheduler runs in UTC.
	DefaultMaintenanceSchedule   = "0 0 * * *"
	DefaultFreeDrawRetentionDays = 30
	DefaultShutdownTimeout       = 10 * time.Second
)
