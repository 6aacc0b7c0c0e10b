package worker

// ============================================================================
// Log Messages - Maintenance Worker
// ============================================================================

// Log messages for maintenance worker operations
const (
	LogMsgMaintenanceScheduled = "Maintenance scheduled"
	LogMsgMaintenanceStarting  = "Maintenance starting"
	LogMsgMaintenanceCompleted = "Maintenance completed"
	LogMsgMaintenanceFailed    = "Maintenance task failed"
	LogMsgMaintenanceStopping  = "Shutting down maintenance worker"
	LogMsgMaintenanceStopped   = "Maintenance worker shutdown complete"
	LogMsgMaintenanceTimeout   = "Maintenance worker shutdown timeout, a run may still be in progress"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgInvalidSchedule  = "invalid maintenance schedule %q: %w"
	ErrMsgInvalidRetention = "free draw retention must be at least one day"
	ErrContextResetAttempt = "failed to reset raid attempts"
	ErrContextPruneClaims  = "failed to prune free draw claims"
)
