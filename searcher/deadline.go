package searcher

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrTimeout is returned when the time left in the turn drops below the
// search threshold. It unwinds every recursive frame untouched; only the
// iterative deepening driver and the agents handle it.
var ErrTimeout = errors.New("search timeout")

// Deadline reports the milliseconds left in the current turn. Values must
// never increase during one search call.
type Deadline interface {
	RemainingMillis() float64
}

// DeadlineFunc adapts a time-left callback to the Deadline interface.
type DeadlineFunc func() float64

func (f DeadlineFunc) RemainingMillis() float64 {
	return f()
}

// Clock is a wall-clock Deadline counting down from a fixed budget.
type Clock struct {
	start  time.Time
	budget time.Duration
}

func NewClock(budget time.Duration) *Clock {
	return &Clock{start: time.Now(), budget: budget}
}

func (c *Clock) RemainingMillis() float64 {
	left := c.budget - time.Since(c.start)
	return float64(left) / float64(time.Millisecond)
}

// Elapsed returns the time spent since the clock started.
func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Unlimited returns a Deadline that never expires.
func Unlimited() Deadline {
	return DeadlineFunc(func() float64 { return math.Inf(1) })
}

// timer is polled at the entry of every recursive call.
type timer struct {
	deadline  Deadline
	threshold float64
	ctx       context.Context
}

func newTimer(ctx context.Context, deadline Deadline, threshold float64) timer {
	return timer{deadline: deadline, threshold: threshold, ctx: ctx}
}

func (t timer) check() error {
	if t.deadline.RemainingMillis() < t.threshold {
		return ErrTimeout
	}
	// Cancelled by a sibling worker that already timed out
	if t.ctx.Err() != nil {
		return ErrTimeout
	}
	return nil
}
