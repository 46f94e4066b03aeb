// Package retry runs fallible operations with exponential backoff and guards
// them with per-operation circuit breakers.
//
// An [Executor] owns all breaker state; there is no package-level state.
// Every network call of the sync client goes through one executor so that a
// dead endpoint trips a single breaker instead of being hammered by each
// caller.
package retry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/cenkalti/backoff/v5"
)

// Operation is a unit of work retried by an [Executor].
type Operation func(ctx context.Context) error

// Attempt describes a failed attempt that is about to be retried.
type Attempt struct {
	// Number is the zero-based index of the failed attempt.
	Number int
	// Delay is how long the executor waits before the next attempt.
	Delay     time.Duration
	Err       error
	Operation string
	StartTime time.Time
}

// Stats is a snapshot of breaker state.
type Stats struct {
	// ActiveCircuitBreakers is the number of open breakers.
	ActiveCircuitBreakers int `json:"activeCircuitBreakers"`
	// TotalFailures sums the consecutive-failure counters of all operations.
	TotalFailures int `json:"totalFailures"`
	// CircuitBreakerKeys lists the operations with an open breaker, sorted.
	CircuitBreakerKeys []string `json:"circuitBreakerKeys"`
}

type breakerState struct {
	openedAt time.Time
}

// Executor retries operations and tracks circuit breakers keyed by
// operation name. It is safe for concurrent use.
type Executor struct {
	log *logger.Logger

	mu       sync.Mutex
	defaults Config
	breakers map[string]breakerState
	failures map[string]int

	cooldown time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	onRetry  func(Attempt)
}

// ExecutorOption configures an [Executor].
type ExecutorOption func(*Executor)

// WithDefaults replaces the default per-call policy.
func WithDefaults(cfg Config) ExecutorOption {
	return func(e *Executor) {
		e.defaults = cfg
	}
}

// WithCooldown sets how long a breaker stays open.
func WithCooldown(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.cooldown = d
	}
}

// WithClock replaces time.Now for breaker bookkeeping.
func WithClock(now func() time.Time) ExecutorOption {
	return func(e *Executor) {
		e.now = now
	}
}

// WithSleep replaces the context-aware sleep between attempts.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) ExecutorOption {
	return func(e *Executor) {
		e.sleep = sleep
	}
}

// WithOnRetry registers a hook called before every backoff wait.
func WithOnRetry(fn func(Attempt)) ExecutorOption {
	return func(e *Executor) {
		e.onRetry = fn
	}
}

// NewExecutor returns an executor with [DefaultConfig] and a 60s breaker
// cooldown unless overridden.
func NewExecutor(log *logger.Logger, opts ...ExecutorOption) *Executor {
	e := &Executor{
		log:      log.Component("retry"),
		defaults: DefaultConfig(),
		breakers: make(map[string]breakerState),
		failures: make(map[string]int),
		cooldown: DefaultCircuitBreakerCooldown,
		now:      time.Now,
		sleep:    sleepContext,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExecuteWithRetry runs op until it succeeds, fails with a non-retryable
// error, or MaxRetries retries are spent. The last error is returned
// unchanged. If ctx is cancelled while waiting, the returned error wraps both
// ctx.Err() and the last operation error.
func (e *Executor) ExecuteWithRetry(ctx context.Context, name string, op Operation, opts ...Option) error {
	cfg := e.Config().apply(opts)
	start := e.now()

	initial := cfg.InitialDelay
	if initial > cfg.MaxDelay {
		initial = cfg.MaxDelay
	}

	b := &backoff.ExponentialBackOff{
		InitialInterval: initial,
		Multiplier:      cfg.BackoffMultiplier,
		MaxInterval:     cfg.MaxDelay,
	}
	if cfg.Jitter {
		b.RandomizationFactor = jitterFactor
	}
	b.Reset()

	for attempt := 0; ; attempt++ {
		e.log.Debug().
			Str("operation", name).
			Int("attempt", attempt+1).
			Int("max_attempts", cfg.MaxRetries+1).
			Msg("executing operation")

		err := op(ctx)
		if err == nil {
			if attempt > 0 {
				e.log.Info().
					Str("operation", name).
					Int("attempt", attempt+1).
					Dur("total_time", e.now().Sub(start)).
					Msg("operation succeeded after retry")
			}
			return nil
		}

		if !IsRetryable(err) {
			e.log.Err(err).
				Str("operation", name).
				Int("attempt", attempt+1).
				Msg("non-retryable error")
			return err
		}

		if attempt >= cfg.MaxRetries {
			e.log.Err(err).
				Str("operation", name).
				Int("attempts", attempt+1).
				Dur("total_time", e.now().Sub(start)).
				Msg("max retries exhausted")
			return err
		}

		delay := b.NextBackOff()
		if delay < 0 {
			delay = 0
		}

		e.log.Warn().
			Err(err).
			Str("operation", name).
			Int("attempt", attempt+1).
			Dur("next_retry_in", delay).
			Msg("operation failed, retrying")

		if e.onRetry != nil {
			e.onRetry(Attempt{Number: attempt, Delay: delay, Err: err, Operation: name, StartTime: start})
		}

		if sleepErr := e.sleep(ctx, delay); sleepErr != nil {
			return fmt.Errorf("%w: %w", sleepErr, err)
		}
	}
}

// Do is the value-returning form of [Executor.ExecuteWithRetry].
func Do[T any](ctx context.Context, e *Executor, name string, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	var result T
	err := e.ExecuteWithRetry(ctx, name, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	}, opts...)

	return result, err
}

// Config returns the current default policy.
func (e *Executor) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.defaults
}

// UpdateDefaults applies opts to the default policy of all later calls.
func (e *Executor) UpdateDefaults(opts ...Option) {
	e.mu.Lock()
	e.defaults = e.defaults.apply(opts)
	cfg := e.defaults
	e.mu.Unlock()

	e.log.Info().
		Int("max_retries", cfg.MaxRetries).
		Dur("initial_delay", cfg.InitialDelay).
		Dur("max_delay", cfg.MaxDelay).
		Float64("backoff_multiplier", cfg.BackoffMultiplier).
		Bool("jitter", cfg.Jitter).
		Msg("updated default retry configuration")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isCancellation reports whether err came from the caller giving up rather
// than from the operation failing.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled)
}
