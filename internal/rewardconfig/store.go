package rewardconfig

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 250 * time.Millisecond

// Store holds the current Catalog and swaps it atomically on reload.
// Readers take a snapshot with Current and use it for a whole operation.
type Store struct {
	path    string
	current atomic.Pointer[Catalog]

	mu        sync.Mutex
	listeners []func(*Catalog)
}

// NewStore loads path and returns a store serving it. A read or parse failure is returned.
func NewStore(ctx context.Context, path string) (*Store, error) {
	cat, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.current.Store(cat)
	logLoaded(ctx, cat, LogMsgLoaded)
	return s, nil
}

// NewStaticStore serves a fixed catalog. Used by tests and tools.
func NewStaticStore(cat *Catalog) *Store {
	s := &Store{}
	s.current.Store(cat)
	return s
}

// Current returns the active catalog snapshot.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// OnReload registers a callback invoked after each successful swap.
func (s *Store) OnReload(fn func(*Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads the file. On failure the previous catalog stays active.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	cat, err := Load(s.path)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgReloadFailed, "path", s.path, "error", err)
		return nil, err
	}
	s.current.Store(cat)
	logLoaded(ctx, cat, LogMsgReloaded)

	s.mu.Lock()
	listeners := append([]func(*Catalog){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(cat)
	}
	return cat, nil
}

// Watch reloads the catalog when the file changes until ctx is cancelled.
// The parent directory is watched so atomic rename-on-save is picked up.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgWatchStarted, "path", s.path)

	go func() {
		defer w.Close()
		target := filepath.Clean(s.path)
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					_, _ = s.Reload(ctx)
				})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn(LogMsgWatchError, "error", err)
			}
		}
	}()
	return nil
}

func logLoaded(ctx context.Context, cat *Catalog, msg string) {
	log := logger.FromContext(ctx)
	for _, issue := range cat.issues {
		log.Warn(LogMsgFeatureDisabled, "feature", issue.Feature, "subject", issue.Subject, "error", issue.Err)
	}
	log.Info(msg,
		"packs", len(cat.packOrder),
		"items", len(cat.items),
		"milestones", len(cat.milestones),
		"lottery", cat.lottery != nil,
		"raid", cat.raid != nil,
		"issues", len(cat.issues))
}
