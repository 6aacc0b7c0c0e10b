package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPSecurityEvents   = "http_security_events_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameDrawsTotal          = "gacha_draws_total"
	MetricNameDuplicatesTotal     = "gacha_duplicates_total"
	MetricNameRefundsTotal        = "gacha_refunds_total"
	MetricNameCurrencySpent       = "currency_spent_total"
	MetricNameMileageClaims       = "gacha_mileage_claims_total"
	MetricNameLotteryPicks        = "lottery_picks_total"
	MetricNameLotteryResets       = "lottery_board_resets_total"
	MetricNameRaidAttacks         = "raid_attacks_total"
	MetricNameRaidDamage          = "raid_damage_total"
	MetricNameRaidRewards         = "raid_rewards_distributed_total"
	MetricNameTxRetries           = "transaction_retries_total"
	MetricNameConfigReloads       = "reward_config_reloads_total"
	MetricNameConfigDisabledItems = "reward_config_issues"
	MetricNameMaintenanceRuns     = "maintenance_runs_total"
	MetricNameMaintenanceRows     = "maintenance_rows_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPSecurityEvents   = "Total number of requests rejected by the security middleware, by reason"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextDrawsTotal          = "Total number of resolved gacha pulls"
	HelpTextDuplicatesTotal     = "Total number of pulls that resolved to an already owned item"
	HelpTextRefundsTotal        = "Total currency refunded for duplicate pulls"
	HelpTextCurrencySpent       = "Total currency debited by feature"
	HelpTextMileageClaims       = "Total number of mileage milestone claims"
	HelpTextLotteryPicks        = "Total number of lottery picks by revealed grade"
	HelpTextLotteryResets       = "Total number of lottery board resets"
	HelpTextRaidAttacks         = "Total number of raid attacks by outcome"
	HelpTextRaidDamage          = "Total damage applied to raid bosses"
	HelpTextRaidRewards         = "Total currency distributed at raid end"
	HelpTextTxRetries           = "Total number of transaction retries after contention"
	HelpTextConfigReloads       = "Total number of reward config reloads by result"
	HelpTextConfigDisabledItems = "Number of reward config issues in the active catalog"
	HelpTextMaintenanceRuns     = "Total number of scheduled maintenance runs by result"
	HelpTextMaintenanceRows     = "Rows touched by scheduled maintenance by task"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelPack      = "pack"
	LabelTier      = "tier"
	LabelSource    = "source"
	LabelFeature   = "feature"
	LabelGrade     = "grade"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelReward    = "reward_type"
	LabelTask      = "task"
	LabelReason    = "reason"
)

// Label values
const (
	OutcomeWin     = "win"
	OutcomeLoss    = "loss"
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	FeatureGacha   = "gacha"
	FeatureLottery = "lottery"

	TaskResetRaidAttempts = "reset_raid_attempts"
	TaskPruneFreeDraws    = "prune_free_draws"

	ReasonFailedAuth = "failed_auth"
	ReasonThrottled  = "throttled"
	ReasonBlocked    = "blocked"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
