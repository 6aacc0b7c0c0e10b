package server

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// PlayerRateLimiter holds one token bucket per player. Buckets idle for
// LimiterIdleTTL are evicted, which resets them to a full burst.
type PlayerRateLimiter struct {
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
}

// NewPlayerRateLimiter creates a limiter. A non-positive rps disables limiting.
func NewPlayerRateLimiter(rps float64, burst int) *PlayerRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &PlayerRateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](LimiterCacheSize, nil, LimiterIdleTTL),
	}
}

// Allow reports whether key may make a request now.
func (l *PlayerRateLimiter) Allow(key string) bool {
	if l.rps <= 0 {
		return true
	}
	return l.limiter(key).Allow()
}

func (l *PlayerRateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	l.limiters.Add(key, lim)
	return lim
}

// Len returns the number of tracked keys.
func (l *PlayerRateLimiter) Len() int {
	return l.limiters.Len()
}

// RateLimitMiddleware limits requests per X-Player-ID, falling back to the client IP
// for requests that do not name a player. Rejections are reported to monitor.
func RateLimitMiddleware(limiter *PlayerRateLimiter, monitor *AbuseMonitor, trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r, trustedProxies)
			if !limiter.Allow(key) {
				monitor.RecordThrottled(key)
				logger.FromContext(r.Context()).Warn(LogMsgRateLimited, "key", key, "path", r.URL.Path)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(1))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
