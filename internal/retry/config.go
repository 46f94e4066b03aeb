package retry

import "time"

// Defaults applied by [NewExecutor].
const (
	DefaultMaxRetries              = 3
	DefaultInitialDelay            = time.Second
	DefaultMaxDelay                = 30 * time.Second
	DefaultBackoffMultiplier       = 2.0
	DefaultCircuitBreakerThreshold = 5
	DefaultCircuitBreakerCooldown  = 60 * time.Second

	// jitterFactor is the ± fraction applied to each delay when jitter is on.
	jitterFactor = 0.1
)

// Config is the retry policy of a single call. A zero field in an override
// passed through an [Option] means "keep the default".
type Config struct {
	// MaxRetries is the number of retries after the first attempt, so an
	// operation runs at most MaxRetries+1 times.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps every delay before jitter is applied.
	MaxDelay time.Duration
	// BackoffMultiplier grows the delay after each retry.
	BackoffMultiplier float64
	// Jitter spreads each delay uniformly by ±10%.
	Jitter bool
	// CircuitBreakerThreshold is the number of consecutive failed calls
	// that opens the breaker of an operation.
	CircuitBreakerThreshold int
}

// DefaultConfig returns the documented defaults: 3 retries, 1s initial
// delay, 30s cap, ×2 multiplier, jitter on, breaker threshold 5.
func DefaultConfig() Config {
	return Config{
		MaxRetries:              DefaultMaxRetries,
		InitialDelay:            DefaultInitialDelay,
		MaxDelay:                DefaultMaxDelay,
		BackoffMultiplier:       DefaultBackoffMultiplier,
		Jitter:                  true,
		CircuitBreakerThreshold: DefaultCircuitBreakerThreshold,
	}
}

// Option overrides one field of a [Config].
type Option func(*Config)

// WithMaxRetries sets the retry budget. Negative values are treated as 0.
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.MaxRetries = n
	}
}

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.InitialDelay = d
		}
	}
}

// WithMaxDelay sets the delay cap.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.MaxDelay = d
		}
	}
}

// WithBackoffMultiplier sets the growth factor of the delay.
func WithBackoffMultiplier(m float64) Option {
	return func(c *Config) {
		if m >= 1 {
			c.BackoffMultiplier = m
		}
	}
}

// WithJitter toggles ±10% jitter.
func WithJitter(on bool) Option {
	return func(c *Config) {
		c.Jitter = on
	}
}

// WithCircuitBreakerThreshold sets how many consecutive failures open the
// breaker.
func WithCircuitBreakerThreshold(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.CircuitBreakerThreshold = n
		}
	}
}

func (c Config) apply(opts []Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
