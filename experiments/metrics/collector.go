package metrics

import (
	"sync"
	"time"

	"isolation/searcher"

	"golang.org/x/exp/slices"
)

// AgentConfig describes one tournament entrant.
type AgentConfig struct {
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	Strategy   string  `yaml:"strategy"` // random, minimax, alphabeta, deepening_minimax or remote
	Depth      int     `yaml:"depth"`    // minimax only
	Heuristic  string  `yaml:"heuristic"`
	Goroutines int     `yaml:"goroutines"`
	Threshold  float64 `yaml:"threshold"` // Milliseconds
	URL        string  `yaml:"url"`       // remote only
}

type MoveMetric struct {
	Step    int
	Player  int // 1 or 2
	Move    searcher.Move
	Elapsed time.Duration
	searcher.SearchMetric
}

type GameMetric struct {
	Winner     int    // 1 or 2
	Reason     string // How the loser lost
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, moves first
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Collector gathers records from games running concurrently.
type Collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) AddGame(record GameRecord, moves []MoveMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.games = append(c.games, record)
	for _, mm := range moves {
		c.moves = append(c.moves, MoveRecord{Game: record.ID, MoveMetric: mm})
	}
}

// Games returns the game records ordered by ID.
func (c *Collector) Games() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	games := make([]GameRecord, len(c.games))
	copy(games, c.games)
	slices.SortFunc(games, func(a, b GameRecord) int { return a.ID - b.ID })
	return games
}

func (c *Collector) Moves() []MoveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	moves := make([]MoveRecord, len(c.moves))
	copy(moves, c.moves)
	slices.SortStableFunc(moves, func(a, b MoveRecord) int { return a.Game - b.Game })
	return moves
}
