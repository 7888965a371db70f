package agent

import (
	"isolation/searcher"
)

type deepeningAgent struct {
	search   *searcher.Search
	strategy searcher.Strategy
	last     searcher.SearchMetric
}

// NewAlphaBetaAgent returns an agent running iterative deepening alpha-beta.
func NewAlphaBetaAgent(options ...searcher.Option) Agent {
	return NewDeepeningAgent(searcher.StrategyAlphaBeta, options...)
}

// NewDeepeningAgent returns an agent deepening the given strategy until the
// turn's deadline.
func NewDeepeningAgent(strategy searcher.Strategy, options ...searcher.Option) Agent {
	return &deepeningAgent{search: newSearch(options), strategy: strategy}
}

func (a *deepeningAgent) GetMove(state searcher.State, deadline searcher.Deadline) searcher.Move {
	// Empty board: always open in the centre
	if state.BlankCells() == state.Width()*state.Height() {
		a.last = searcher.SearchMetric{}
		return searcher.Move{X: state.Width() / 2, Y: state.Height() / 2}
	}

	collector := a.search.Collector()
	collector.Start()
	result := a.search.Deepen(state, deadline, a.strategy)
	a.last = collector.Complete()
	return result.Move
}

func (a *deepeningAgent) Metrics() searcher.SearchMetric {
	return a.last
}
