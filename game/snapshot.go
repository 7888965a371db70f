package game

import (
	"errors"
	"fmt"

	"isolation/searcher"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// Snapshot is the wire form of a Board.
type Snapshot struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Blocked   []searcher.Move  `json:"blocked"` // Row by row, including both pieces' cells
	Locations [2]searcher.Move `json:"locations"`
	Active    searcher.Player  `json:"active"`
	MoveCount int              `json:"move_count"`
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Width:     b.width,
		Height:    b.height,
		Blocked:   make([]searcher.Move, 0, b.width*b.height-b.blanks),
		Locations: b.locations,
		Active:    b.active,
		MoveCount: b.moveCount,
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if cell := (searcher.Move{X: x, Y: y}); !b.IsBlank(cell) {
				s.Blocked = append(s.Blocked, cell)
			}
		}
	}
	return s
}

// FromSnapshot rebuilds the board described by s.
func FromSnapshot(s Snapshot) (*Board, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidSnapshot, s.Width, s.Height)
	}
	if s.Active != Player1 && s.Active != Player2 {
		return nil, fmt.Errorf("%w: active player %d", ErrInvalidSnapshot, s.Active)
	}

	b := NewBoard(s.Width, s.Height)
	b.active = s.Active
	b.moveCount = s.MoveCount
	for _, cell := range s.Blocked {
		if !b.IsBlank(cell) {
			return nil, fmt.Errorf("%w: cell %v is off the board or listed twice", ErrInvalidSnapshot, cell)
		}
		i := cell.X + cell.Y*b.width
		b.blocked[i/64] |= 1 << (i % 64)
		b.blanks--
	}
	for player, loc := range s.Locations {
		if loc == searcher.NoMove {
			continue
		}
		if !b.inside(loc) || b.IsBlank(loc) {
			return nil, fmt.Errorf("%w: player %d stands on unblocked cell %v", ErrInvalidSnapshot, player+1, loc)
		}
		b.locations[player] = loc
	}
	return b, nil
}

func (b *Board) inside(cell searcher.Move) bool {
	return cell.X >= 0 && cell.X < b.width && cell.Y >= 0 && cell.Y < b.height
}
