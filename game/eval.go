package game

import (
	"fmt"
	"math"

	"isolation/searcher"

	"golang.org/x/exp/slices"
)

// Heuristic scores a non-terminal board from player's point of view.
// Converted to a searcher.Evaluator it also scores terminal boards: -Inf
// when player is stuck on its turn, +Inf when its opponent is.
type Heuristic func(b *Board, player searcher.Player) float64

func (h Heuristic) Score(s searcher.State, player searcher.Player) float64 {
	b, ok := s.(*Board)
	if !ok {
		panic("unexpected state type")
	}
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	if b.IsWinner(player) {
		return math.Inf(1)
	}
	return h(b, player)
}

var (
	// OpenMove counts the player's moves.
	OpenMove Heuristic = func(b *Board, player searcher.Player) float64 {
		return float64(b.mobility(player))
	}

	// Improved is the difference between own and opponent moves.
	Improved Heuristic = func(b *Board, player searcher.Player) float64 {
		return float64(b.mobility(player) - b.mobility(Opponent(player)))
	}

	// Center is the squared distance of the player from the centre.
	Center Heuristic = func(b *Board, player searcher.Player) float64 {
		loc := b.Location(player)
		if loc == searcher.NoMove {
			return 0
		}
		dx := float64(b.width)/2 - float64(loc.X)
		dy := float64(b.height)/2 - float64(loc.Y)
		return dx*dx + dy*dy
	}

	// CenterMobility rewards own moves, penalises opponent moves twice as
	// much and penalises distance from the centre.
	CenterMobility Heuristic = func(b *Board, player searcher.Player) float64 {
		own := float64(b.mobility(player))
		opp := float64(b.mobility(Opponent(player)))
		return own - handicap(b, player) - 2*opp
	}

	// LookaheadMobility rewards positions whose moves keep options open one
	// ply later.
	LookaheadMobility Heuristic = func(b *Board, player searcher.Player) float64 {
		opp := float64(b.mobility(Opponent(player)))
		return lookahead(b, player) - 2*opp
	}

	// Combined is LookaheadMobility with the centre handicap.
	Combined Heuristic = func(b *Board, player searcher.Player) float64 {
		opp := float64(b.mobility(Opponent(player)))
		return lookahead(b, player) - 2*opp - handicap(b, player)
	}
)

// handicap is the Manhattan distance of the player from the centre.
func handicap(b *Board, player searcher.Player) float64 {
	loc := b.Location(player)
	if loc == searcher.NoMove {
		return 0
	}
	return math.Abs(float64(b.width)/2-float64(loc.X)) + math.Abs(float64(b.height)/2-float64(loc.Y))
}

// lookahead is (own + moves available after each own move) / own.
func lookahead(b *Board, player searcher.Player) float64 {
	moves := b.LegalMovesFor(player)
	if len(moves) == 0 {
		return 0
	}
	next := 0
	for _, move := range moves {
		next += b.movesFrom(move)
	}
	return float64(len(moves)+next) / float64(len(moves))
}

var heuristics = map[string]Heuristic{
	"open":            OpenMove,
	"improved":        Improved,
	"center":          Center,
	"center_mobility": CenterMobility,
	"lookahead":       LookaheadMobility,
	"combined":        Combined,
}

// LookupHeuristic returns the heuristic registered under name.
func LookupHeuristic(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q (known: %v)", name, HeuristicNames())
	}
	return h, nil
}

func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for name := range heuristics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
