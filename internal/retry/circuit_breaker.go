package retry

import (
	"context"
	"errors"
	"sort"
)

// ExecuteWithCircuitBreaker runs op through [Executor.ExecuteWithRetry]
// unless the breaker of name is open, in which case it returns a
// [*CircuitOpenError] without calling op.
//
// A successful call resets the failure counter of name; a failed call
// increments it and opens the breaker once it reaches
// CircuitBreakerThreshold. An open breaker is closed lazily by the first
// call made at least the cooldown after it opened. The failure counter
// survives that, so a single failure of the trial call reopens the breaker.
func (e *Executor) ExecuteWithCircuitBreaker(ctx context.Context, name string, op Operation, opts ...Option) error {
	if e.isOpen(name) {
		return &CircuitOpenError{Operation: name}
	}

	err := e.ExecuteWithRetry(ctx, name, op, opts...)
	if err == nil {
		e.recordSuccess(name)
		return nil
	}

	if isCancellation(err) {
		return err
	}

	threshold := e.Config().apply(opts).CircuitBreakerThreshold
	if count, opened := e.recordFailure(name, threshold); opened {
		e.log.Error().
			Str("operation", name).
			Int("failure_count", count).
			Int("threshold", threshold).
			Msg("circuit breaker opened")
	}

	return err
}

// DoWithCircuitBreaker is the value-returning form of
// [Executor.ExecuteWithCircuitBreaker].
func DoWithCircuitBreaker[T any](ctx context.Context, e *Executor, name string, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	var result T
	err := e.ExecuteWithCircuitBreaker(ctx, name, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	}, opts...)

	return result, err
}

// IsCircuitOpen reports whether err was caused by an open breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

func (e *Executor) isOpen(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.breakers[name]
	if !ok {
		return false
	}

	if e.now().Sub(state.openedAt) >= e.cooldown {
		delete(e.breakers, name)
		e.log.Info().Str("operation", name).Msg("circuit breaker half-open, allowing trial call")
		return false
	}

	return true
}

func (e *Executor) recordSuccess(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.failures, name)
}

func (e *Executor) recordFailure(name string, threshold int) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.failures[name]++
	count := e.failures[name]
	if count < threshold {
		return count, false
	}

	e.breakers[name] = breakerState{openedAt: e.now()}
	return count, true
}

// Stats returns a snapshot of breaker state.
func (e *Executor) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]string, 0, len(e.breakers))
	for k := range e.breakers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := 0
	for _, n := range e.failures {
		total += n
	}

	return Stats{
		ActiveCircuitBreakers: len(keys),
		TotalFailures:         total,
		CircuitBreakerKeys:    keys,
	}
}

// Reset closes all breakers and clears all failure counters.
func (e *Executor) Reset() {
	e.mu.Lock()
	clear(e.breakers)
	clear(e.failures)
	e.mu.Unlock()

	e.log.Info().Msg("retry executor state reset")
}
