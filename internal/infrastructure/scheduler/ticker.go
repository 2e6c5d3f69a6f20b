package scheduler

import (
	"context"
	"sync"
	"time"

	"NewsRanker/internal/ports"
)

// TickerDriver triggers refresh jobs on a fixed interval, firing once
// immediately on start so the cache is warm before the first tick.
type TickerDriver struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

var _ ports.RefreshDriver = (*TickerDriver)(nil)

// NewTickerDriver builds a driver with the given interval.
func NewTickerDriver(interval time.Duration) *TickerDriver {
	return &TickerDriver{interval: interval}
}

// Start launches the refresh goroutine. Calling Start twice is a no-op.
func (t *TickerDriver) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil || t.interval <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return nil
	}

	// The goroutine selects on a local copy: Stop nils the field under the
	// mutex, and a field re-read here would race it.
	stop := make(chan struct{})
	t.stop = stop
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		job(time.Now())
		for {
			select {
			case tick := <-ticker.C:
				job(tick)
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the refresh goroutine.
func (t *TickerDriver) Stop(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return nil
	}
	close(t.stop)
	t.stop = nil
	return nil
}
