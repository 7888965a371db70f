package searcher

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	clock := NewClock(time.Second)

	got := clock.RemainingMillis()

	require.LessOrEqual(t, got, 1000.0)
	require.Greater(t, got, 500.0, "A fresh clock should have most of its budget left")
	require.Less(t, clock.RemainingMillis(), 1000.0, "Remaining time should decrease")
	require.Positive(t, clock.Elapsed())
}

func TestUnlimited(t *testing.T) {
	require.True(t, math.IsInf(Unlimited().RemainingMillis(), 1))
}

func TestTimerCheck(t *testing.T) {
	t.Run("time left above the threshold", func(t *testing.T) {
		timer := newTimer(context.Background(), DeadlineFunc(func() float64 { return 11 }), 10)

		require.NoError(t, timer.check())
	})

	t.Run("time left below the threshold", func(t *testing.T) {
		timer := newTimer(context.Background(), DeadlineFunc(func() float64 { return 9.5 }), 10)

		require.ErrorIs(t, timer.check(), ErrTimeout)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		timer := newTimer(ctx, Unlimited(), 10)

		require.ErrorIs(t, timer.check(), ErrTimeout, "A cancelled sibling should stop the search")
	})
}
