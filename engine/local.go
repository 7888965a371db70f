package engine

import (
	"errors"
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Engine struct {
	Board     *game.Board
	Agents    [2]agent.Agent // Indexed by player
	TimeLimit time.Duration  // Per turn
}

// LocalEngine sets up a game on an empty board where agents[0] moves first.
func LocalEngine(agents []agent.Agent, width, height int, timeLimit time.Duration) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}

	return &Engine{
		Board:     game.NewBoard(width, height),
		Agents:    [2]agent.Agent{agents[0], agents[1]},
		TimeLimit: timeLimit,
	}
}

// RandomOpening plays plies random moves for both sides before the agents
// take over, so repeated games between the same agents differ.
func (e *Engine) RandomOpening(plies int, seed uint64) error {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < plies; i++ {
		moves := e.Board.LegalMoves()
		if len(moves) == 0 {
			return errors.New("game over during random opening")
		}
		next, err := e.Board.Apply(moves[rng.Intn(len(moves))])
		if err != nil {
			return err
		}
		e.Board = next
	}
	return nil
}

// Run plays the game until one side loses and returns the winner.
func (e *Engine) Run() (searcher.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric
	var outcome Outcome

	for {
		player := e.Board.Player()
		if len(e.Board.LegalMoves()) == 0 {
			outcome = Eliminated
			break
		}

		clock := searcher.NewClock(e.TimeLimit)
		move := e.Agents[player].GetMove(e.Board, clock)
		elapsed := clock.Elapsed()
		remaining := clock.RemainingMillis()

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.Board.MoveCount() + 1,
			Player:       int(player) + 1,
			Move:         move,
			Elapsed:      elapsed,
			SearchMetric: e.Agents[player].Metrics(),
		})

		if remaining <= 0 {
			log.Debug().Int("player", int(player)+1).Dur("elapsed", elapsed).Msg("player ran out of time")
			outcome = Timeout
			break
		}

		next, err := e.Board.Apply(move)
		if err != nil {
			log.Debug().Int("player", int(player)+1).Err(err).Msg("player forfeits")
			outcome = IllegalMove
			break
		}
		e.Board = next
	}

	winner := game.Opponent(e.Board.Player())

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = int(winner) + 1
	gameMetric.Reason = string(outcome)
	gameMetric.TotalMoves = e.Board.MoveCount()

	log.Debug().Int("winner", gameMetric.Winner).Str("reason", gameMetric.Reason).Msgf("game over after %d moves\n%s", gameMetric.TotalMoves, e.Board)
	return winner, gameMetric, moveMetrics
}
