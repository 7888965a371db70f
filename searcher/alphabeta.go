package searcher

import (
	"context"
	"math"
)

// AlphaBeta returns the same move as Minimax at the same depth while
// skipping subtrees that cannot change the outcome. On the second move of
// the game the root only considers cells of the opposite colour to the
// opponent's cell.
func (s *Search) AlphaBeta(state State, depth int, alpha, beta float64, deadline Deadline) (Result, error) {
	w := s.newWalk(context.Background(), state, deadline)
	if err := w.timer.check(); err != nil {
		return noResult(), err
	}
	w.metrics.AddNode()

	moves := state.LegalMoves()
	if isTerminal(moves) {
		return noResult(), nil
	}
	moves = openingReplies(state, moves)
	if len(moves) == 0 {
		return noResult(), nil
	}

	if s.goroutines > 1 {
		return s.parallelRoot(w, state, moves, func(w *walk, child State) (float64, error) {
			return w.minValueAB(child, depth-1, alpha, beta)
		})
	}

	best := Result{Value: loss, Move: moves[0]}
	for _, move := range moves {
		v, err := w.minValueAB(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return noResult(), err
		}
		if v > best.Value {
			best = Result{Value: v, Move: move}
			alpha = math.Max(alpha, v)
		}
	}
	return best, nil
}

// openingReplies restricts the second move of the game to cells whose
// colour (x+y parity) differs from the one occupied cell.
func openingReplies(state State, moves []Move) []Move {
	if state.BlankCells() != state.Width()*state.Height()-1 {
		return moves
	}
	opp := state.OpponentLocation()
	parity := (opp.X + opp.Y) % 2

	replies := make([]Move, 0, len(moves))
	for _, move := range moves {
		if (move.X+move.Y)%2 != parity {
			replies = append(replies, move)
		}
	}
	return replies
}

func (w *walk) minValueAB(state State, depth int, alpha, beta float64) (float64, error) {
	if err := w.timer.check(); err != nil {
		return 0, err
	}
	w.metrics.AddNode()

	moves := state.LegalMoves()
	if isTerminal(moves) {
		return win, nil
	}
	if depth <= 0 {
		return w.score(state), nil
	}

	best := win
	for _, move := range moves {
		v, err := w.maxValueAB(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, v)
		if best <= alpha { // alpha cut-off
			w.metrics.AddCutoff()
			return best, nil
		}
		beta = math.Min(beta, best)
	}
	return best, nil
}

func (w *walk) maxValueAB(state State, depth int, alpha, beta float64) (float64, error) {
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
		v, err := w.minValueAB(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, v)
		if best >= beta { // beta cut-off
			w.metrics.AddCutoff()
			return best, nil
		}
		alpha = math.Max(alpha, best)
	}
	return best, nil
}
