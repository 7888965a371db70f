package agent

import (
	"isolation/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	search *searcher.Search
	depth  int
	last   searcher.SearchMetric
}

// NewMinimaxAgent returns an agent running a single fixed-depth minimax
// search per turn.
func NewMinimaxAgent(depth int, options ...searcher.Option) Agent {
	if depth <= 0 {
		panic("search depth must be positive")
	}
	return &minimaxAgent{search: newSearch(options), depth: depth}
}

func (a *minimaxAgent) GetMove(state searcher.State, deadline searcher.Deadline) searcher.Move {
	collector := a.search.Collector()
	collector.Start()
	defer func() { a.last = collector.Complete() }()

	result, err := a.search.Minimax(state, a.depth, deadline)
	if err != nil {
		log.Debug().Int("depth", a.depth).Err(err).Msg("fixed-depth search did not complete")
		return searcher.NoMove
	}
	collector.CompleteDepth(a.depth, result)
	return result.Move
}

func (a *minimaxAgent) Metrics() searcher.SearchMetric {
	return a.last
}
