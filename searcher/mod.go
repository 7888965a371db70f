package searcher

import (
	"fmt"
	"math"
)

// Move identifies a target cell. NoMove means no legal move is available.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var NoMove = Move{X: -1, Y: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.X, m.Y)
}

// Player identifies one of the two sides of a game.
type Player int

// State should be immutable - Play always returns a new copy and never
// mutates the receiver. LegalMoves must enumerate moves in a stable order,
// since ties between equally valued moves are broken by that order.
type State interface {
	Player() Player // Side to move
	LegalMoves() []Move
	Play(Move) State
	BlankCells() int
	Width() int
	Height() int
	ActiveLocation() Move   // NoMove until the side to move is placed
	OpponentLocation() Move // NoMove until the other side is placed
}

// Evaluator scores a state from the point of view of the given player.
// Implementations must return -Inf when player is to move and has no legal
// moves, +Inf when its opponent is in that position, and a finite value
// otherwise. Score is called at every frontier node and must not panic for
// well-formed states.
type Evaluator interface {
	Score(state State, player Player) float64
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(state State, player Player) float64

func (f EvaluatorFunc) Score(state State, player Player) float64 {
	return f(state, player)
}

// Result pairs a move with the value the search proved for it.
type Result struct {
	Value float64
	Move  Move
}

var (
	win  = math.Inf(1)
	loss = math.Inf(-1)
)

func noResult() Result {
	return Result{Value: loss, Move: NoMove}
}

// isTerminal reports whether the side to move has no legal moves.
func isTerminal(moves []Move) bool {
	return len(moves) == 0
}
