package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the initial retry delay
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Error messages
const (
	ErrMsgDecodePayload = "decode payload as %T: %w"
)

// Log message constants
const (
	LogMsgEventPublishFailed   = "Event publish failed, scheduling retry"
	LogMsgEventRetryExhausted  = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed     = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded  = "Event retry succeeded"
	LogMsgEventDroppedShutdown = "Event dropped during shutdown"
	LogMsgShutdownTimeout      = "Resilient publisher shutdown timed out"
	LogMsgDeadLetterFailed     = "Failed to write to dead letter"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Formula: baseDelay * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
