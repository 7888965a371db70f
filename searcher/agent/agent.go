package agent

import (
	"isolation/searcher"
)

type Agent interface {
	// GetMove returns a legal move for the side to move in state, or
	// searcher.NoMove when it has none or ran out of time.
	GetMove(state searcher.State, deadline searcher.Deadline) searcher.Move
	// Metrics reports on the most recent GetMove call
	Metrics() searcher.SearchMetric
}

// newSearch collects metrics unless the caller plugs in its own collector.
func newSearch(options []searcher.Option) *searcher.Search {
	all := append([]searcher.Option{searcher.WithMetrics()}, options...)
	return searcher.New(all...)
}
