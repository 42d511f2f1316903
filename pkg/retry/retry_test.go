package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func immediate(int) time.Duration { return 0 }

func TestDo(t *testing.T) {
	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), Config{MaxAttempts: 3, Backoff: immediate},
			func() error {
				calls++
				return nil
			})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), Config{MaxAttempts: 3, Backoff: immediate},
			func() error {
				calls++
				if calls < 3 {
					return errors.New("transient")
				}
				return nil
			})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("AttemptsExhausted", func(t *testing.T) {
		wantErr := errors.New("permanent")
		calls := 0
		err := Do(context.Background(), Config{MaxAttempts: 3, Backoff: immediate},
			func() error {
				calls++
				return wantErr
			})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("ZeroConfigRunsOnce", func(t *testing.T) {
		calls := 0
		_ = Do(context.Background(), Config{}, func() error {
			calls++
			return errors.New("nope")
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledBeforeStart", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := Do(ctx, Config{MaxAttempts: 3}, func() error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("CancelledDuringBackoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		attemptErr := errors.New("transient")
		err := Do(ctx,
			Config{MaxAttempts: 3, Backoff: func(int) time.Duration {
				cancel()
				return time.Minute
			}},
			func() error { return attemptErr })

		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, attemptErr)
	})
}

func TestExponentialBackoff(t *testing.T) {
	b := ExponentialBackoff(100 * time.Millisecond)

	for attempt, base := range map[int]time.Duration{
		1: 200 * time.Millisecond,
		2: 400 * time.Millisecond,
		3: 800 * time.Millisecond,
	} {
		d := b(attempt)
		assert.GreaterOrEqual(t, d, base, "attempt %d", attempt)
		assert.Less(t, d, base+base/2+time.Millisecond, "attempt %d", attempt)
	}
}
