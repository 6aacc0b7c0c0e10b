package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/metrics"
)

// clientKey identifies the caller for throttling and abuse tracking: the
// X-Player-ID header when present, otherwise the client address.
func clientKey(r *http.Request, trustedProxies []string) string {
	if id := r.Header.Get(HeaderPlayerID); id != "" {
		return id
	}
	return ClientKeyIPPrefix + extractIP(r, trustedProxies)
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AbuseMonitor counts rejected and total requests per client key inside a
// fixed window that starts with the key's first recorded request.
type AbuseMonitor struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientActivity]
}

type clientActivity struct {
	requests   int
	failedAuth int
	throttled  int
}

// NewAbuseMonitor creates a monitor with the DetectorWindow window.
func NewAbuseMonitor() *AbuseMonitor {
	return &AbuseMonitor{
		clients: expirable.NewLRU[string, *clientActivity](LimiterCacheSize, nil, DetectorWindow),
	}
}

// activity returns the key's counters. Caller must hold the mutex.
func (m *AbuseMonitor) activity(key string) *clientActivity {
	if a, ok := m.clients.Get(key); ok {
		return a
	}
	a := &clientActivity{}
	m.clients.Add(key, a)
	return a
}

// RecordFailedAuth counts a rejected API or admin key.
func (m *AbuseMonitor) RecordFailedAuth(key string) {
	metrics.HTTPSecurityEvents.WithLabelValues(metrics.ReasonFailedAuth).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.activity(key)
	a.failedAuth++
	if a.failedAuth == DetectorFailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "client", key, "count", a.failedAuth)
	}
}

// RecordThrottled counts a request turned away by the per-player limiter.
func (m *AbuseMonitor) RecordThrottled(key string) {
	metrics.HTTPSecurityEvents.WithLabelValues(metrics.ReasonThrottled).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.activity(key)
	a.throttled++
	if a.throttled == DetectorThrottledAlert {
		slog.Warn(SecurityAlertThrottled, "client", key, "count", a.throttled)
	}
}

// Admit records a request and reports whether key may proceed. Keys that
// exceed DetectorMaxRequests or DetectorFailedAuthBlock stay blocked for the
// rest of their window.
func (m *AbuseMonitor) Admit(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.activity(key)
	a.requests++

	blocked := a.requests > DetectorMaxRequests || a.failedAuth >= DetectorFailedAuthBlock
	if blocked && a.requests%DetectorAlertEvery == 0 {
		slog.Warn(SecurityAlertBlocked, "client", key, "requests", a.requests, "failed_auth", a.failedAuth)
	}
	return !blocked
}

// Snapshot returns the key's counters in the current window.
func (m *AbuseMonitor) Snapshot(key string) (requests, failedAuth, throttled int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.clients.Peek(key)
	if !ok {
		return 0, 0, 0
	}
	return a.requests, a.failedAuth, a.throttled
}

// AbuseGuardMiddleware rejects clients the monitor has blocked. Public
// paths are not counted.
func AbuseGuardMiddleware(monitor *AbuseMonitor, trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			if !monitor.Admit(clientKey(r, trustedProxies)) {
				metrics.HTTPSecurityEvents.WithLabelValues(metrics.ReasonBlocked).Inc()
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireKey compares header against want in constant time.
func requireKey(header, want string, status int, msg, logMsg string, monitor *AbuseMonitor, trustedProxies []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get(header)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(want)) != 1 {
			key := clientKey(r, trustedProxies)
			monitor.RecordFailedAuth(key)
			logger.FromContext(r.Context()).Warn(logMsg,
				"path", r.URL.Path,
				"has_key", provided != "",
				"client", key)
			http.Error(w, msg, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware requires X-API-Key on everything except PublicPaths.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := requireKey(HeaderAPIKey, apiKey, http.StatusUnauthorized, ErrMsgUnauthorized, LogMsgAuthFailed, monitor, trustedProxies, next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}

// AdminAuthMiddleware guards operator routes with a second key sent in X-Admin-Key.
func AdminAuthMiddleware(adminKey string, trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return requireKey(HeaderAdminKey, adminKey, http.StatusForbidden, ErrMsgForbidden, LogMsgAdminAuthFailed, monitor, trustedProxies, next)
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the connecting address, or the last X-Forwarded-For hop
// when the connection comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	trusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			trusted = true
			break
		}
	}
	if !trusted {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets browser hardening headers and marks API
// responses no-store.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}
			next.ServeHTTP(w, r)
		})
	}
}
