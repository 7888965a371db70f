package searcher

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// Strategy selects the depth-limited search run by the deepening driver.
type Strategy int

const (
	StrategyAlphaBeta Strategy = iota
	StrategyMinimax
)

func (st Strategy) String() string {
	switch st {
	case StrategyAlphaBeta:
		return "alphabeta"
	case StrategyMinimax:
		return "minimax"
	default:
		return fmt.Sprintf("Strategy(%d)", int(st))
	}
}

// Deepen runs the chosen search at depth 1, 2, 3, ... until the deadline
// interrupts one, and returns the result of the last depth that completed.
// Work from the interrupted depth is discarded. If not even depth 1
// completes the result holds NoMove.
func (s *Search) Deepen(state State, deadline Deadline, strategy Strategy) Result {
	best := noResult()
	if isTerminal(state.LegalMoves()) {
		return best
	}

	for depth := 1; s.maxDepth == 0 || depth <= s.maxDepth; depth++ {
		result, err := s.searchDepth(state, depth, deadline, strategy)
		if err != nil {
			log.Debug().Int("depth", depth).Err(err).Msg("search interrupted, keeping last completed depth")
			break
		}

		best = result
		s.metrics.CompleteDepth(depth, result)
		log.Debug().Int("depth", depth).Stringer("move", result.Move).Float64("value", result.Value).Msg("completed depth")

		// Every line ends within the remaining blank cells, so deeper
		// searches cannot change the answer
		if depth >= state.BlankCells() {
			break
		}
	}
	return best
}

func (s *Search) searchDepth(state State, depth int, deadline Deadline, strategy Strategy) (Result, error) {
	switch strategy {
	case StrategyMinimax:
		return s.Minimax(state, depth, deadline)
	case StrategyAlphaBeta:
		return s.AlphaBeta(state, depth, math.Inf(-1), math.Inf(1), deadline)
	default:
		panic(fmt.Sprintf("unknown search strategy %v", strategy))
	}
}
