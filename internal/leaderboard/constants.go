package leaderboard

import "time"

const (
	// KeyRaidDamageFormat is the sorted set holding cumulative damage per player.
	KeyRaidDamageFormat = "raid:%d:damage"
	// DefaultTTL bounds how long a rebuilt ranking is trusted without events.
	DefaultTTL = 30 * time.Minute
	// RebuildLimit caps the rows loaded from the database on a cache miss.
	RebuildLimit = 10000
)

// Redis client tuning
const (
	DefaultMaxRetries      = 3
	DefaultMinRetryBackoff = 8 * time.Millisecond
	DefaultMaxRetryBackoff = 512 * time.Millisecond
	DefaultDialTimeout     = 5 * time.Second
	DefaultIOTimeout       = 3 * time.Second
)

const (
	ErrMsgRedisAddrRequired   = "redis address is required"
	ErrMsgPingFailed          = "failed to ping redis"
	ErrMsgRebuildFailed       = "failed to rebuild ranking"
	ErrMsgReadFailed          = "failed to read ranking"
	ErrMsgInvalidMember       = "invalid ranking member %v"
	LogMsgRankingRebuilt      = "Raid ranking rebuilt from database"
	LogMsgRankingUpdateFailed = "Failed to update raid ranking"
	LogMsgRankingCleared      = "Raid ranking cleared"
)
