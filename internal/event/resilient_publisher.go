package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// ResilientPublisher wraps an Event Bus so that failing subscribers (for example
// the Redis leaderboard while Redis is unreachable) are retried in the background
// and finally written to a dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	stop   chan struct{}
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		stop:       make(chan struct{}),
	}, nil
}

// Publish delivers event once synchronously. On failure it schedules background
// retries and returns nil; the caller's operation has already committed.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.maxRetries)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.writeDeadLetter(event, 1, err)
		return nil
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go p.retryLoop(event, err)
	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.baseDelay, attempt)):
		case <-p.stop:
			log.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
			p.writeDeadLetter(event, attempt, lastErr)
			return
		}

		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type)
	p.writeDeadLetter(event, p.maxRetries+1, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, err error) {
	if werr := p.deadLetter.Write(event, attempts, err); werr != nil {
		logger.Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", werr)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and closes the file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.stop)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
	return p.deadLetter.Close()
}
