package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgForbidden       = "Forbidden"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Repeated failed authentication"
	SecurityAlertThrottled  = "⚠️ SECURITY ALERT: Client keeps hitting the rate limit"
	SecurityAlertBlocked    = "⚠️ SECURITY ALERT: Blocking client for the rest of the window"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAdminAuthFailed  = "Admin authentication failed"
	LogMsgRateLimited      = "Player rate limited"
	LogMsgLimiterEvicted   = "Rate limiter evicted"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAdminKey       = "X-Admin-Key"
	HeaderPlayerID       = "X-Player-ID"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRetryAfter     = "Retry-After"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

// Limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second

	// Abuse monitor window, per client key
	DetectorWindow          = 5 * time.Minute
	DetectorMaxRequests     = 1000
	DetectorFailedAuthAlert = 5
	DetectorFailedAuthBlock = 20
	DetectorThrottledAlert  = 50
	DetectorAlertEvery      = 100

	// Per-player limiter set
	LimiterCacheSize = 10000
	LimiterIdleTTL   = 10 * time.Minute
)

// APIPrefix is the versioned API mount point.
const APIPrefix = "/api/v1"

// ClientKeyIPPrefix marks client keys derived from an address rather than a player id.
const ClientKeyIPPrefix = "ip:"

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
