package searcher

import (
	"sync"
	"sync/atomic"
)

// mockState is a hand-built game tree. Children are enumerated as
// (0,0), (1,0), (2,0), ... in the order they are given.
type mockState struct {
	player   Player
	value    float64 // Returned by mockEvaluator
	moves    []Move
	children map[Move]*mockState
	blanks   int
	opp      Move
}

func (m *mockState) Player() Player         { return m.player }
func (m *mockState) LegalMoves() []Move     { return m.moves }
func (m *mockState) Play(move Move) State   { return m.children[move] }
func (m *mockState) BlankCells() int        { return m.blanks }
func (m *mockState) Width() int             { return 10 }
func (m *mockState) Height() int            { return 10 }
func (m *mockState) ActiveLocation() Move   { return NoMove }
func (m *mockState) OpponentLocation() Move { return m.opp }

// node builds an inner node whose children alternate the side to move.
func node(children ...*mockState) *mockState {
	n := &mockState{blanks: 50, children: make(map[Move]*mockState, len(children))}
	for i, child := range children {
		move := Move{X: i, Y: 0}
		n.moves = append(n.moves, move)
		n.children[move] = child
	}
	n.setPlayer(0)
	return n
}

func (m *mockState) setPlayer(player Player) {
	m.player = player
	for _, child := range m.children {
		child.setPlayer(1 - player)
	}
}

// leaf builds a non-terminal node scored value by mockEvaluator.
func leaf(value float64) *mockState {
	n := node(terminal())
	n.value = value
	return n
}

// terminal builds a node whose side to move has no legal moves.
func terminal() *mockState {
	return &mockState{blanks: 50}
}

var mockEvaluator = EvaluatorFunc(func(state State, player Player) float64 {
	return state.(*mockState).value
})

// classicTree is the textbook three by three minimax example: the
// min values of the root moves are 3, 2 and 2.
func classicTree() *mockState {
	return node(
		node(leaf(3), leaf(12), leaf(8)),
		node(leaf(2), leaf(4), leaf(6)),
		node(leaf(14), leaf(5), leaf(2)),
	)
}

// countingDeadline has plenty of time left until it has been read
// expireAfter times. It never expires when expireAfter is 0.
type countingDeadline struct {
	calls       atomic.Int64
	expireAfter int64
}

func (d *countingDeadline) RemainingMillis() float64 {
	n := d.calls.Add(1)
	if d.expireAfter > 0 && n > d.expireAfter {
		return 0
	}
	return 1000
}

// expiringCollector runs out the clock as soon as depth completes.
type expiringCollector struct {
	Collector
	mu      sync.Mutex
	depth   int
	expired atomic.Bool
	depths  []int
	results []Result
}

func newExpiringCollector(depth int) *expiringCollector {
	return &expiringCollector{Collector: NewMetricsCollector(), depth: depth}
}

func (c *expiringCollector) CompleteDepth(depth int, best Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.depths = append(c.depths, depth)
	c.results = append(c.results, best)
	if depth == c.depth {
		c.expired.Store(true)
	}
	c.Collector.CompleteDepth(depth, best)
}

func (c *expiringCollector) deadline() Deadline {
	return DeadlineFunc(func() float64 {
		if c.expired.Load() {
			return 0
		}
		return 1000
	})
}
