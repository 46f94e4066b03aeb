package retry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCircuitBreaker_OpensAtThreshold(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	e, _ := newTestExecutor(t, WithClock(clock.Now))

	calls := 0
	failing := func(ctx context.Context) error {
		calls++
		return statusErr(500)
	}
	opts := []Option{WithMaxRetries(0), WithCircuitBreakerThreshold(2)}

	require.Error(t, e.ExecuteWithCircuitBreaker(context.Background(), "X", failing, opts...))
	require.Error(t, e.ExecuteWithCircuitBreaker(context.Background(), "X", failing, opts...))
	assert.Equal(t, 2, calls)

	err := e.ExecuteWithCircuitBreaker(context.Background(), "X", failing, opts...)
	require.Error(t, err)
	assert.Equal(t, 2, calls, "operation must not run while the breaker is open")
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.True(t, IsCircuitOpen(err))
	assert.Equal(t, "circuit breaker is open for operation: X", err.Error())

	var coe *CircuitOpenError
	require.ErrorAs(t, err, &coe)
	assert.Equal(t, "X", coe.Operation)
}

func TestCircuitBreaker_HalfOpenAfterCooldown(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	e, _ := newTestExecutor(t, WithClock(clock.Now))
	opts := []Option{WithMaxRetries(0), WithCircuitBreakerThreshold(1)}

	calls := 0
	fail := func(ctx context.Context) error { calls++; return statusErr(503) }
	ok := func(ctx context.Context) error { calls++; return nil }

	require.Error(t, e.ExecuteWithCircuitBreaker(context.Background(), "K", fail, opts...))

	clock.Advance(59 * time.Second)
	assert.ErrorIs(t, e.ExecuteWithCircuitBreaker(context.Background(), "K", ok, opts...), ErrCircuitOpen)
	assert.Equal(t, 1, calls)

	clock.Advance(time.Second)
	require.NoError(t, e.ExecuteWithCircuitBreaker(context.Background(), "K", ok, opts...))
	assert.Equal(t, 2, calls)

	stats := e.Stats()
	assert.Zero(t, stats.ActiveCircuitBreakers)
	assert.Zero(t, stats.TotalFailures)
}

func TestCircuitBreaker_TrialFailureReopens(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	e, _ := newTestExecutor(t, WithClock(clock.Now), WithCooldown(10*time.Second))
	opts := []Option{WithMaxRetries(0), WithCircuitBreakerThreshold(3)}
	fail := func(ctx context.Context) error { return statusErr(500) }

	for range 3 {
		_ = e.ExecuteWithCircuitBreaker(context.Background(), "K", fail, opts...)
	}
	require.Equal(t, 1, e.Stats().ActiveCircuitBreakers)

	clock.Advance(10 * time.Second)
	err := e.ExecuteWithCircuitBreaker(context.Background(), "K", fail, opts...)
	assert.NotErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 1, e.Stats().ActiveCircuitBreakers)
	assert.Equal(t, 4, e.Stats().TotalFailures)
}

func TestCircuitBreaker_SuccessResetsCounter(t *testing.T) {
	e, _ := newTestExecutor(t)
	opts := []Option{WithMaxRetries(0), WithCircuitBreakerThreshold(2)}

	_ = e.ExecuteWithCircuitBreaker(context.Background(), "K", func(ctx context.Context) error { return statusErr(500) }, opts...)
	require.NoError(t, e.ExecuteWithCircuitBreaker(context.Background(), "K", func(ctx context.Context) error { return nil }, opts...))
	_ = e.ExecuteWithCircuitBreaker(context.Background(), "K", func(ctx context.Context) error { return statusErr(500) }, opts...)

	assert.Zero(t, e.Stats().ActiveCircuitBreakers)
	assert.Equal(t, 1, e.Stats().TotalFailures)
}

func TestCircuitBreaker_KeysAreIndependent(t *testing.T) {
	e, _ := newTestExecutor(t)
	opts := []Option{WithMaxRetries(0), WithCircuitBreakerThreshold(1)}

	_ = e.ExecuteWithCircuitBreaker(context.Background(), "b", func(ctx context.Context) error { return statusErr(500) }, opts...)
	_ = e.ExecuteWithCircuitBreaker(context.Background(), "a", func(ctx context.Context) error { return statusErr(404) }, opts...)

	assert.NoError(t, e.ExecuteWithCircuitBreaker(context.Background(), "c", func(ctx context.Context) error { return nil }, opts...))

	stats := e.Stats()
	assert.Equal(t, 2, stats.ActiveCircuitBreakers)
	assert.Equal(t, []string{"a", "b"}, stats.CircuitBreakerKeys)
	assert.Equal(t, 2, stats.TotalFailures)
}

func TestCircuitBreaker_CancellationNotCounted(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.ExecuteWithCircuitBreaker(ctx, "K", func(ctx context.Context) error { return ctx.Err() },
		WithCircuitBreakerThreshold(1))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, e.Stats().TotalFailures)
}

func TestReset(t *testing.T) {
	e, _ := newTestExecutor(t)
	_ = e.ExecuteWithCircuitBreaker(context.Background(), "K", func(ctx context.Context) error { return statusErr(500) },
		WithMaxRetries(0), WithCircuitBreakerThreshold(1))
	require.Equal(t, 1, e.Stats().ActiveCircuitBreakers)

	e.Reset()

	assert.Equal(t, Stats{CircuitBreakerKeys: []string{}}, e.Stats())
	called := false
	require.NoError(t, e.ExecuteWithCircuitBreaker(context.Background(), "K", func(ctx context.Context) error { called = true; return nil }))
	assert.True(t, called)
}

func TestDoWithCircuitBreaker(t *testing.T) {
	e, _ := newTestExecutor(t)

	n, err := DoWithCircuitBreaker(context.Background(), e, "count", func(ctx context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, n)
}
