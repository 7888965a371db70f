package experiments

import (
	"errors"
	"fmt"
	"os"
	"time"

	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/searcher/agent"

	"gopkg.in/yaml.v3"
)

const (
	StrategyRandom           = "random"
	StrategyMinimax          = "minimax"
	StrategyAlphaBeta        = "alphabeta"
	StrategyDeepeningMinimax = "deepening_minimax"
	StrategyRemote           = "remote"
)

type Config struct {
	Width        int                   `yaml:"width"`
	Height       int                   `yaml:"height"`
	TimeLimit    time.Duration         `yaml:"time_limit"`
	NumGames     int                   `yaml:"num_games"` // Per match-up, alternating the first player
	Workers      int                   `yaml:"workers"`
	Seed         uint64                `yaml:"seed"`
	OpeningPlies int                   `yaml:"opening_plies"`
	Agents       []metrics.AgentConfig `yaml:"agents"`
	MatchUps     [][]int               `yaml:"match_ups"` // Pairs of agent IDs
}

// DefaultConfig pits four alpha-beta agents against a roster of baseline
// agents, each test agent playing every baseline.
func DefaultConfig() Config {
	cfg := baseConfig()
	cfg.Agents = []metrics.AgentConfig{
		{ID: 1, Name: "AB_Improved", Strategy: StrategyAlphaBeta, Heuristic: "improved"},
		{ID: 2, Name: "AB_Custom", Strategy: StrategyAlphaBeta, Heuristic: "center_mobility"},
		{ID: 3, Name: "AB_Custom_2", Strategy: StrategyAlphaBeta, Heuristic: "lookahead"},
		{ID: 4, Name: "AB_Custom_3", Strategy: StrategyAlphaBeta, Heuristic: "combined"},
		{ID: 5, Name: "Random", Strategy: StrategyRandom},
		{ID: 6, Name: "MM_Open", Strategy: StrategyMinimax, Depth: meta.SearchDepth, Heuristic: "open"},
		{ID: 7, Name: "MM_Center", Strategy: StrategyMinimax, Depth: meta.SearchDepth, Heuristic: "center"},
		{ID: 8, Name: "MM_Improved", Strategy: StrategyMinimax, Depth: meta.SearchDepth, Heuristic: "improved"},
		{ID: 9, Name: "AB_Open", Strategy: StrategyAlphaBeta, Heuristic: "open"},
		{ID: 10, Name: "AB_Center", Strategy: StrategyAlphaBeta, Heuristic: "center"},
		{ID: 11, Name: "AB_Improved", Strategy: StrategyAlphaBeta, Heuristic: "improved"},
	}
	for test := 1; test <= 4; test++ {
		for opponent := 5; opponent <= 11; opponent++ {
			cfg.MatchUps = append(cfg.MatchUps, []int{test, opponent})
		}
	}
	return cfg
}

func baseConfig() Config {
	return Config{
		Width:        meta.BoardSize,
		Height:       meta.BoardSize,
		TimeLimit:    meta.TimeLimit,
		NumGames:     meta.GamesPerMatchUp,
		Workers:      meta.Workers,
		Seed:         1,
		OpeningPlies: 2,
	}
}

// LoadConfig reads a YAML tournament file. Omitted settings keep their
// defaults; a file without agents runs the default roster.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := baseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Agents) == 0 {
		roster := DefaultConfig()
		cfg.Agents, cfg.MatchUps = roster.Agents, roster.MatchUps
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", c.Width, c.Height)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("invalid time limit %v", c.TimeLimit)
	}
	if c.NumGames <= 0 {
		return fmt.Errorf("invalid number of games %d", c.NumGames)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("invalid number of workers %d", c.Workers)
	}
	if c.OpeningPlies < 0 || c.OpeningPlies >= c.Width*c.Height {
		return fmt.Errorf("invalid number of opening plies %d", c.OpeningPlies)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
		if _, err := NewAgent(a, 0); err != nil {
			return fmt.Errorf("agent %d (%s): %w", a.ID, a.Name, err)
		}
	}
	for _, pair := range c.MatchUps {
		if len(pair) != 2 {
			return fmt.Errorf("match-up %v must name two agents", pair)
		}
		for _, id := range pair {
			if !ids[id] {
				return fmt.Errorf("match-up %v names unknown agent %d", pair, id)
			}
		}
	}
	return nil
}

// Agent returns the config of the agent with the given ID.
func (c Config) Agent(id int) (metrics.AgentConfig, bool) {
	for _, a := range c.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return metrics.AgentConfig{}, false
}

// NewAgent builds a fresh agent from its config. Agents keep per-search
// state, so every game gets its own.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	switch config.Strategy {
	case StrategyRandom:
		return agent.NewRandomAgent(seed), nil
	case StrategyRemote:
		if config.URL == "" {
			return nil, errors.New("remote agent needs a url")
		}
		return engine.NewRemoteAgent(config.URL), nil
	}

	heuristic, err := game.LookupHeuristic(config.Heuristic)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{searcher.WithEvaluator(heuristic)}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Threshold > 0 {
		options = append(options, searcher.WithThreshold(config.Threshold))
	}

	switch config.Strategy {
	case StrategyMinimax:
		if config.Depth <= 0 {
			return nil, fmt.Errorf("minimax needs a positive depth, got %d", config.Depth)
		}
		return agent.NewMinimaxAgent(config.Depth, options...), nil
	case StrategyAlphaBeta:
		return agent.NewAlphaBetaAgent(options...), nil
	case StrategyDeepeningMinimax:
		return agent.NewDeepeningAgent(searcher.StrategyMinimax, options...), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", config.Strategy)
	}
}
