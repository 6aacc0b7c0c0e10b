// Package leaktest checks that background goroutines started by a test
// (cron schedulers, pool health checks, watchers) are gone once it stops them.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
	stackBufSize  = 1 << 16
)

// GoroutineChecker compares the goroutine count against a baseline.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check waits up to settleTimeout for the count to fall within tolerance of
// the baseline and fails the test with a goroutine dump otherwise.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.Gosched()
		after = runtime.NumGoroutine()
	}
	if leaked := after - g.before; leaked > tolerance {
		buf := make([]byte, stackBufSize)
		n := runtime.Stack(buf, true)
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d\n%s",
			g.before, after, leaked, tolerance, buf[:n])
	}
}

// VerifyNone checks for leaked goroutines when t finishes.
func VerifyNone(t testing.TB) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(0) })
}
