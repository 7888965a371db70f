package game

import (
	"errors"
	"fmt"
	"strings"

	"isolation/searcher"

	"golang.org/x/exp/slices"
)

const (
	Player1 searcher.Player = 0 // Moves first
	Player2 searcher.Player = 1
)

var ErrIllegalMove = errors.New("illegal move")

// Knight offsets in the order moves are enumerated
var directions = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// Board is an Isolation position. Each player first places its piece on any
// blank cell, then moves like a chess knight onto blank cells; every cell a
// piece lands on stays blocked for the rest of the game. A player without a
// legal move on its turn loses.
//
// Board is immutable: Play and Apply return a new Board and leave the
// receiver untouched.
type Board struct {
	width     int
	height    int
	blocked   []uint64 // Bitset indexed by x + y*width
	blanks    int
	locations [2]searcher.Move
	active    searcher.Player
	moveCount int
}

// NewBoard returns an empty width x height board with Player1 to move.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	cells := width * height
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]uint64, (cells+63)/64),
		blanks:    cells,
		locations: [2]searcher.Move{searcher.NoMove, searcher.NoMove},
		active:    Player1,
	}
}

// Opponent returns the other side.
func Opponent(player searcher.Player) searcher.Player {
	return 1 - player
}

func (b *Board) Width() int      { return b.width }
func (b *Board) Height() int     { return b.height }
func (b *Board) BlankCells() int { return b.blanks }
func (b *Board) MoveCount() int  { return b.moveCount }

func (b *Board) Player() searcher.Player {
	return b.active
}

func (b *Board) Location(player searcher.Player) searcher.Move {
	return b.locations[player]
}

func (b *Board) ActiveLocation() searcher.Move {
	return b.locations[b.active]
}

func (b *Board) OpponentLocation() searcher.Move {
	return b.locations[Opponent(b.active)]
}

// IsBlank reports whether cell lies on the board and is free.
func (b *Board) IsBlank(cell searcher.Move) bool {
	if !b.inside(cell) {
		return false
	}
	i := cell.X + cell.Y*b.width
	return b.blocked[i/64]&(1<<(i%64)) == 0
}

func (b *Board) LegalMoves() []searcher.Move {
	return b.LegalMovesFor(b.active)
}

// LegalMovesFor lists the moves player could make if it were its turn. An
// unplaced player may take any blank cell, listed column by column.
func (b *Board) LegalMovesFor(player searcher.Player) []searcher.Move {
	loc := b.locations[player]
	if loc == searcher.NoMove {
		moves := make([]searcher.Move, 0, b.blanks)
		for x := 0; x < b.width; x++ {
			for y := 0; y < b.height; y++ {
				if cell := (searcher.Move{X: x, Y: y}); b.IsBlank(cell) {
					moves = append(moves, cell)
				}
			}
		}
		return moves
	}

	moves := make([]searcher.Move, 0, len(directions))
	for _, d := range directions {
		if cell := (searcher.Move{X: loc.X + d[0], Y: loc.Y + d[1]}); b.IsBlank(cell) {
			moves = append(moves, cell)
		}
	}
	return moves
}

// mobility counts the moves of player without allocating.
func (b *Board) mobility(player searcher.Player) int {
	loc := b.locations[player]
	if loc == searcher.NoMove {
		return b.blanks
	}
	return b.movesFrom(loc)
}

// movesFrom counts the knight moves from cell onto blank cells.
func (b *Board) movesFrom(cell searcher.Move) int {
	n := 0
	for _, d := range directions {
		if b.IsBlank(searcher.Move{X: cell.X + d[0], Y: cell.Y + d[1]}) {
			n++
		}
	}
	return n
}

// Play moves the active player to move without validating it.
func (b *Board) Play(move searcher.Move) searcher.State {
	return b.Forecast(move)
}

// Forecast returns the board after the active player moves to move.
func (b *Board) Forecast(move searcher.Move) *Board {
	next := &Board{
		width:     b.width,
		height:    b.height,
		blocked:   slices.Clone(b.blocked),
		blanks:    b.blanks - 1,
		locations: b.locations,
		active:    Opponent(b.active),
		moveCount: b.moveCount + 1,
	}
	i := move.X + move.Y*b.width
	next.blocked[i/64] |= 1 << (i % 64)
	next.locations[b.active] = move
	return next
}

// Apply validates move against the legal moves of the active player.
func (b *Board) Apply(move searcher.Move) (*Board, error) {
	if !slices.Contains(b.LegalMoves(), move) {
		return nil, fmt.Errorf("%w: %v for player %d", ErrIllegalMove, move, b.active+1)
	}
	return b.Forecast(move), nil
}

func (b *Board) IsLoser(player searcher.Player) bool {
	return player == b.active && b.mobility(player) == 0
}

func (b *Board) IsWinner(player searcher.Player) bool {
	return player != b.active && b.mobility(b.active) == 0
}

// Winner returns the winning player once the side to move is stuck.
func (b *Board) Winner() (searcher.Player, bool) {
	if b.mobility(b.active) > 0 {
		return 0, false
	}
	return Opponent(b.active), true
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := searcher.Move{X: x, Y: y}
			switch {
			case cell == b.locations[Player1]:
				sb.WriteString(" 1")
			case cell == b.locations[Player2]:
				sb.WriteString(" 2")
			case b.IsBlank(cell):
				sb.WriteString(" .")
			default:
				sb.WriteString(" -")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
