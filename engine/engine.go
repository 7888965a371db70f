package engine

// Outcome explains how the losing side lost a game.
type Outcome string

const (
	Eliminated  Outcome = "eliminated"   // No legal moves on its turn
	Timeout     Outcome = "timeout"      // Returned after the turn's time ran out
	IllegalMove Outcome = "illegal_move" // Returned a move that is not legal, incl. forfeiting with NoMove
)
