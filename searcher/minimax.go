package searcher

import (
	"context"
	"math"
)

// Minimax returns the best move for the side to move found by a full
// depth-limited minimax search. Ties keep the move enumerated first.
// ErrTimeout is returned, not handled, when the deadline runs out.
func (s *Search) Minimax(state State, depth int, deadline Deadline) (Result, error) {
	w := s.newWalk(context.Background(), state, deadline)
	if err := w.timer.check(); err != nil {
		return noResult(), err
	}
	w.metrics.AddNode()

	moves := state.LegalMoves()
	if isTerminal(moves) {
		return noResult(), nil
	}

	if s.goroutines > 1 {
		return s.parallelRoot(w, state, moves, func(w *walk, child State) (float64, error) {
			return w.minValue(child, depth-1)
		})
	}

	best := Result{Value: loss, Move: moves[0]}
	for _, move := range moves {
		v, err := w.minValue(state.Play(move), depth-1)
		if err != nil {
			return noResult(), err
		}
		// Strictly > keeps the first of equally valued moves
		if v > best.Value {
			best = Result{Value: v, Move: move}
		}
	}
	return best, nil
}

// minValue scores a state where the searching player's opponent moves.
func (w *walk) minValue(state State, depth int) (float64, error) {
	if err := w.timer.check(); err != nil {
		return 0, err
	}
	w.metrics.AddNode()

	moves := state.LegalMoves()
	if isTerminal(moves) { // Opponent is stuck
		return win, nil
	}
	if depth <= 0 {
		return w.score(state), nil
	}

	best := win
	for _, move := range moves {
		v, err := w.maxValue(state.Play(move), depth-1)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, v)
	}
	return best, nil
}

// maxValue scores a state where the searching player moves.
func (w *walk) maxValue(state State, depth int) (float64, error) {
	if err := w.timer.check(); err != nil {
		return 0, err
	}
	w.metrics.AddNode()

	moves := state.LegalMoves()
	if isTerminal(moves) {
		return loss, nil
	}
	if depth <= 0 {
		return w.score(state), nil
	}

	best := loss
	for _, move := range moves {
		v, err := w.minValue(state.Play(move), depth-1)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, v)
	}
	return best, nil
}
