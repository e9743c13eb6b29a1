package ratelimiter

import (
	"errors"
	"fmt"
	"time"
)

// Config defines a token bucket.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"30"`        // burst size
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"30"`     // tokens added per interval
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1m"` // how often tokens are added
}

// Enabled reports whether cfg describes a limit. A zero capacity disables
// rate limiting.
func (c Config) Enabled() bool {
	return c.Capacity > 0
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("capacity must be positive, got %d", c.Capacity))
	case c.RefillRate <= 0:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("refill rate must be positive, got %d", c.RefillRate))
	case c.RefillInterval <= 0:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("refill interval must be positive, got %v", c.RefillInterval))
	}
	return nil
}

// Result is the outcome of one rate limit check.
type Result struct {
	Limit     int
	Remaining int // negative when the request was denied
	ResetAt   time.Time
}

func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying, or 0 if allowed.
func (r *Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return r.ResetAt.Sub(now)
}
