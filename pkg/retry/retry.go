// Package retry runs an operation a bounded number of times with a
// pluggable backoff between attempts.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const defaultDelay = 100 * time.Millisecond

type Backoff func(attempt int) time.Duration

type Config struct {
	MaxAttempts int
	Backoff     Backoff
}

func (c *Config) normalize() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 1
	}
	if c.Backoff == nil {
		c.Backoff = ExponentialBackoff(defaultDelay)
	}
}

// ExponentialBackoff doubles the delay each attempt and adds jitter.
func ExponentialBackoff(delay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		base := (1 << attempt) * delay
		jitter := time.Duration(rand.Int64N(int64(base/2) + 1))
		return base + jitter
	}
}

// Do runs fn until it succeeds, attempts run out, or ctx is done.
func Do(ctx context.Context, c Config, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.normalize()
	timer := time.NewTimer(0)
	defer timer.Stop()

	var err error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if attempt == c.MaxAttempts {
			break
		}

		timer.Reset(c.Backoff(attempt))
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}

	return err
}
