package searcher

import (
	"context"

	"isolation/meta"
)

type Option func(s *Search)

// Search holds the configuration shared by the depth-limited searches and
// the iterative deepening driver. Apart from its metrics collector it keeps
// no state between calls, so one Search may serve consecutive turns.
type Search struct {
	evaluate   Evaluator
	threshold  float64 // Milliseconds
	goroutines int
	maxDepth   int
	metrics    Collector
}

func WithEvaluator(evaluate Evaluator) Option {
	return func(s *Search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithThreshold(millis float64) Option {
	return func(s *Search) {
		if millis >= 0 {
			s.threshold = millis
		}
	}
}

// WithGoroutines evaluates root moves on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(s *Search) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithMaxDepth caps the depth the iterative deepening driver reaches.
func WithMaxDepth(depth int) Option {
	return func(s *Search) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithMetrics() Option {
	return func(s *Search) {
		s.metrics = NewMetricsCollector()
	}
}

func WithCollector(collector Collector) Option {
	return func(s *Search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func New(options ...Option) *Search {
	s := &Search{ // Default values
		threshold:  meta.TimerThreshold,
		goroutines: 1,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.evaluate == nil {
		panic("Must specify an evaluator")
	}
	return s
}

func (s *Search) Collector() Collector {
	return s.metrics
}

// walk carries what every frame of one search call reads: the searching
// player, the evaluator and the deadline.
type walk struct {
	player   Player
	evaluate Evaluator
	timer    timer
	metrics  Collector
}

func (s *Search) newWalk(ctx context.Context, state State, deadline Deadline) *walk {
	return &walk{
		player:   state.Player(),
		evaluate: s.evaluate,
		timer:    newTimer(ctx, deadline, s.threshold),
		metrics:  s.metrics,
	}
}

func (w *walk) score(state State) float64 {
	return w.evaluate.Score(state, w.player)
}
