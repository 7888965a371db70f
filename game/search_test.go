package game_test

import (
	"math"
	"testing"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/stretchr/testify/require"
)

func midgame(t *testing.T) *game.Board {
	t.Helper()
	b := game.NewBoard(5, 5)
	for _, move := range []searcher.Move{{X: 2, Y: 2}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}} {
		var err error
		b, err = b.Apply(move)
		require.NoError(t, err)
	}
	return b
}

func TestSearchOnBoard(t *testing.T) {
	t.Run("alpha-beta agrees with minimax", func(t *testing.T) {
		for _, name := range game.HeuristicNames() {
			h, err := game.LookupHeuristic(name)
			require.NoError(t, err)
			for depth := 1; depth <= 3; depth++ {
				s := searcher.New(searcher.WithEvaluator(h))

				want, err := s.Minimax(midgame(t), depth, searcher.Unlimited())
				require.NoError(t, err)
				got, err := s.AlphaBeta(midgame(t), depth, math.Inf(-1), math.Inf(1), searcher.Unlimited())
				require.NoError(t, err)

				require.Equal(t, want, got, "%s at depth %d", name, depth)
			}
		}
	})

	t.Run("search returns a legal move", func(t *testing.T) {
		b := midgame(t)
		s := searcher.New(searcher.WithEvaluator(game.Improved), searcher.WithMaxDepth(4))

		got := s.Deepen(b, searcher.Unlimited(), searcher.StrategyAlphaBeta)

		require.Contains(t, b.LegalMoves(), got.Move)
	})

	t.Run("search leaves the board untouched", func(t *testing.T) {
		b := midgame(t)
		before := b.String()
		s := searcher.New(searcher.WithEvaluator(game.Improved), searcher.WithGoroutines(4))

		_, err := s.AlphaBeta(b, 3, math.Inf(-1), math.Inf(1), searcher.Unlimited())

		require.NoError(t, err)
		require.Equal(t, before, b.String())
	})

	t.Run("second move avoids the opponent's colour", func(t *testing.T) {
		b, err := game.NewBoard(7, 7).Apply(searcher.Move{X: 3, Y: 3})
		require.NoError(t, err)
		s := searcher.New(searcher.WithEvaluator(game.Improved))

		for depth := 1; depth <= 2; depth++ {
			got, err := s.AlphaBeta(b, depth, math.Inf(-1), math.Inf(1), searcher.Unlimited())

			require.NoError(t, err)
			require.NotEqual(t, 0, (got.Move.X+got.Move.Y)%2, "Reply at depth %d should be on the other colour", depth)
		}
	})

	t.Run("deepening with a short deadline still moves", func(t *testing.T) {
		b := midgame(t)
		s := searcher.New(searcher.WithEvaluator(game.Combined))
		clock := searcher.NewClock(30 * time.Millisecond)

		got := s.Deepen(b, clock, searcher.StrategyAlphaBeta)

		require.Contains(t, b.LegalMoves(), got.Move)
	})
}
