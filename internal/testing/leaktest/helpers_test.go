package leaktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures without failing the enclosing test.
type recorder struct {
	testing.TB
	mu     sync.Mutex
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true
}

func TestGoroutineChecker_StoppedGoroutinePasses(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-stop
	}()
	close(stop)
	<-done

	checker.Check(0)
	assert.False(t, rec.failed)
}

func TestGoroutineChecker_ReportsBlockedGoroutine(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	checker.Check(0)
	assert.True(t, rec.failed)
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	checker.Check(1)
	assert.False(t, rec.failed)
}
