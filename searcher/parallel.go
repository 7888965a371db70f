package searcher

import (
	"golang.org/x/sync/errgroup"
)

// parallelRoot values every root move on its own goroutine and then picks
// the winner in enumeration order, so the first of equally valued moves
// wins exactly as in the serial scan.
func (s *Search) parallelRoot(w *walk, state State, moves []Move, value func(w *walk, child State) (float64, error)) (Result, error) {
	g, ctx := errgroup.WithContext(w.timer.ctx)
	g.SetLimit(s.goroutines)

	// A timeout in one worker cancels the others through ctx
	worker := *w
	worker.timer.ctx = ctx

	values := make([]float64, len(moves))
	for i, move := range moves {
		g.Go(func() error {
			v, err := value(&worker, state.Play(move))
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return noResult(), err
	}

	return firstMax(moves, values), nil
}

func firstMax(moves []Move, values []float64) Result {
	best := Result{Value: loss, Move: moves[0]}
	for i, v := range values {
		if v > best.Value {
			best = Result{Value: v, Move: moves[i]}
		}
	}
	return best
}
