package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPSecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPSecurityEvents,
			Help: HelpTextHTTPSecurityEvents,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Gacha Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelPack, LabelTier, LabelSource},
	)

	DuplicatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuplicatesTotal,
			Help: HelpTextDuplicatesTotal,
		},
		[]string{LabelPack},
	)

	RefundsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRefundsTotal,
			Help: HelpTextRefundsTotal,
		},
	)

	CurrencySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
		[]string{LabelFeature},
	)

	MileageClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMileageClaims,
			Help: HelpTextMileageClaims,
		},
		[]string{LabelReward},
	)
)

// Lottery Metrics
var (
	LotteryPicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLotteryPicks,
			Help: HelpTextLotteryPicks,
		},
		[]string{LabelGrade},
	)

	LotteryResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLotteryResets,
			Help: HelpTextLotteryResets,
		},
	)
)

// Raid Metrics
var (
	RaidAttacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRaidAttacks,
			Help: HelpTextRaidAttacks,
		},
		[]string{LabelOutcome},
	)

	RaidDamage = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRaidDamage,
			Help: HelpTextRaidDamage,
		},
	)

	RaidRewards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRaidRewards,
			Help: HelpTextRaidRewards,
		},
	)
)

// Infrastructure Metrics
var (
	TxRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTxRetries,
			Help: HelpTextTxRetries,
		},
		[]string{LabelOperation},
	)

	ConfigReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConfigReloads,
			Help: HelpTextConfigReloads,
		},
		[]string{LabelResult},
	)

	ConfigIssues = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameConfigDisabledItems,
			Help: HelpTextConfigDisabledItems,
		},
	)

	MaintenanceRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMaintenanceRuns,
			Help: HelpTextMaintenanceRuns,
		},
		[]string{LabelResult},
	)

	MaintenanceRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMaintenanceRows,
			Help: HelpTextMaintenanceRows,
		},
		[]string{LabelTask},
	)
)

// RecordRetry is a repository.RetryPolicy OnRetry hook.
func RecordRetry(operation string, _ int, _ error) {
	TxRetries.WithLabelValues(operation).Inc()
}
