package concurrency

import (
	"sync"

	"github.com/puzpuzpuz/xsync"
)

// LockManager hands out one mutex per key (board id, raid key).
// It only serialises callers inside this process; the database row lock
// remains the source of truth across instances. A key is dropped once its
// last holder or waiter releases it, so per-player boards do not accumulate.
type LockManager struct {
	locks *xsync.MapOf[string, *keyLock]
}

type keyLock struct {
	mu sync.Mutex

	// guards refs and retired
	state   sync.Mutex
	refs    int
	retired bool
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: xsync.NewMapOf[*keyLock]()}
}

// acquire registers the caller on the key's live entry.
func (lm *LockManager) acquire(key string) *keyLock {
	for {
		kl, _ := lm.locks.LoadOrCompute(key, func() *keyLock { return &keyLock{} })
		kl.state.Lock()
		if kl.retired {
			// Being removed; the next load sees it gone.
			kl.state.Unlock()
			continue
		}
		kl.refs++
		kl.state.Unlock()
		return kl
	}
}

func (lm *LockManager) release(key string, kl *keyLock) {
	kl.state.Lock()
	defer kl.state.Unlock()
	kl.refs--
	if kl.refs == 0 {
		kl.retired = true
		lm.locks.Delete(key)
	}
}

// Lock acquires the key's mutex and returns its unlock func.
// The returned func must be called exactly once.
func (lm *LockManager) Lock(key string) func() {
	kl := lm.acquire(key)
	kl.mu.Lock()
	var once sync.Once
	return func() {
		once.Do(func() {
			kl.mu.Unlock()
			lm.release(key, kl)
		})
	}
}

// Len returns the number of keys currently held or awaited.
func (lm *LockManager) Len() int {
	return lm.locks.Size()
}
