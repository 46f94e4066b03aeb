package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
)

// Ticker calls fn every interval until its context is cancelled. A panic in
// fn is logged and the loop continues.
type Ticker struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
	log      *logger.Logger
}

func NewTicker(name string, interval time.Duration, fn func(ctx context.Context), log *logger.Logger) *Ticker {
	return &Ticker{
		name:     name,
		interval: interval,
		fn:       fn,
		log:      log.Component("worker"),
	}
}

// Run implements [Worker].
func (t *Ticker) Run(ctx context.Context) error {
	t.log.Debug().Str("worker", t.name).Dur("interval", t.interval).Msg("worker started")
	defer t.log.Debug().Str("worker", t.name).Msg("worker stopped")

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

func (t *Ticker) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Error().Str("worker", t.name).Interface("panic", r).Msg("worker tick panicked")
		}
	}()
	t.fn(ctx)
}
