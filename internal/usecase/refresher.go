package usecase

import (
	"context"
	"log/slog"
	"time"

	"NewsRanker/internal/ports"
)

// Refresher wires the refresh driver with the assembler so the homepage is
// rebuilt in the background on a fixed cadence.
type Refresher struct {
	driver    ports.RefreshDriver
	assembler *Assembler
	logger    *slog.Logger
}

// NewRefresher returns a helper to start/stop recurring rebuilds.
func NewRefresher(driver ports.RefreshDriver, assembler *Assembler, logger *slog.Logger) *Refresher {
	return &Refresher{driver: driver, assembler: assembler, logger: logger}
}

// Start registers the rebuild job with the driver.
func (r *Refresher) Start(ctx context.Context) error {
	if r.driver == nil || r.assembler == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if _, err := r.assembler.Rebuild(ctx); err != nil && r.logger != nil {
			r.logger.Error("homepage refresh failed", "trigger", trigger, "error", err)
		}
	}

	return r.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying driver.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.driver == nil {
		return nil
	}

	return r.driver.Stop(ctx)
}
