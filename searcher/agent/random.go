package agent

import (
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal
// moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) GetMove(state searcher.State, _ searcher.Deadline) searcher.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return searcher.NoMove
	}
	return moves[a.rng.Intn(len(moves))]
}

func (a *randomAgent) Metrics() searcher.SearchMetric {
	return searcher.SearchMetric{}
}
