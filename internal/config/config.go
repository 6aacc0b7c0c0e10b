package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string
	Environment string `validate:"required"`
	LogDir      string

	DBUser     string `validate:"required"`
	DBPassword string
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBName     string `validate:"required"`
	DBMaxConns int    `validate:"min=1"`

	// RedisAddr is optional; the raid leaderboard falls back to Postgres when empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int `validate:"min=0"`

	APIKey      string `validate:"required"`
	AdminAPIKey string

	// TrustedProxies may set X-Forwarded-For.
	TrustedProxies []string `validate:"dive,ip"`

	RewardConfigPath  string `validate:"required"`
	WatchRewardConfig bool

	// Transactions
	TxMaxAttempts int           `validate:"min=1,max=10"`
	TxBaseBackoff time.Duration `validate:"min=0"`
	LockTimeout   time.Duration `validate:"min=0"`

	// Rate limiting per player
	RateLimitRPS   float64 `validate:"min=0"`
	RateLimitBurst int     `validate:"min=1"`

	// Maintenance
	MaintenanceSchedule   string `validate:"required"`
	FreeDrawRetentionDays int    `validate:"min=1"`
	SnowflakeNodeID       int64  `validate:"min=0,max=1023"`
	ShutdownTimeout       time.Duration
	MigrateOnStart        bool

	// Event publishing
	EventMaxRetries     int           `validate:"min=0"`
	EventRetryDelay     time.Duration `validate:"min=0"`
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogDir:      getEnv("LOG_DIR", ""),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", DefaultDBName),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		APIKey:      getEnv("API_KEY", ""),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		RewardConfigPath:  getEnv("REWARD_CONFIG_PATH", ConfigPathRewards),
		WatchRewardConfig: getEnvAsBool("WATCH_REWARD_CONFIG", true),

		TxMaxAttempts: getEnvAsInt("TX_MAX_ATTEMPTS", DefaultTxMaxAttempts),
		TxBaseBackoff: getEnvAsDuration("TX_BASE_BACKOFF", DefaultTxBaseBackoff),
		LockTimeout:   getEnvAsDuration("LOCK_TIMEOUT", DefaultLockTimeout),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),

		MaintenanceSchedule:   getEnv("MAINTENANCE_SCHEDULE", DefaultMaintenanceSchedule),
		FreeDrawRetentionDays: getEnvAsInt("FREE_DRAW_RETENTION_DAYS", DefaultFreeDrawRetentionDays),
		SnowflakeNodeID:       int64(getEnvAsInt("SNOWFLAKE_NODE_ID", 1)),
		ShutdownTimeout:       getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		MigrateOnStart:        getEnvAsBool("MIGRATE_ON_START", true),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 0),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", 0),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.AdminAPIKey == "" {
		cfg.AdminAPIKey = cfg.APIKey
	}

	return cfg, nil
}

// Validate checks struct constraints on the loaded configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid configuration: PORT %d out of range", c.Port)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return defaultValue
}
