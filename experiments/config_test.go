package experiments

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"isolation/experiments/metrics"
	"isolation/meta"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Agents, 11)
	require.Len(t, cfg.MatchUps, 28, "Each of 4 test agents should meet 7 baselines")
	require.Equal(t, meta.BoardSize, cfg.Width)
	require.Equal(t, meta.TimeLimit, cfg.TimeLimit)
}

func TestParseConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		data := []byte(`
width: 5
height: 6
time_limit: 80ms
num_games: 4
workers: 2
seed: 9
opening_plies: 0
agents:
  - {id: 1, name: AB, strategy: alphabeta, heuristic: improved, goroutines: 2}
  - {id: 2, name: MM, strategy: minimax, depth: 2, heuristic: open, threshold: 5}
  - {id: 3, name: Rand, strategy: random}
match_ups:
  - [1, 2]
  - [1, 3]
`)

		cfg, err := ParseConfig(data)

		require.NoError(t, err)
		require.Equal(t, 5, cfg.Width)
		require.Equal(t, 6, cfg.Height)
		require.Equal(t, 80*time.Millisecond, cfg.TimeLimit)
		require.Equal(t, 4, cfg.NumGames)
		require.Equal(t, uint64(9), cfg.Seed)
		require.Zero(t, cfg.OpeningPlies)
		require.Equal(t, metrics.AgentConfig{ID: 2, Name: "MM", Strategy: StrategyMinimax, Depth: 2, Heuristic: "open", Threshold: 5}, cfg.Agents[1])
		require.Equal(t, [][]int{{1, 2}, {1, 3}}, cfg.MatchUps)
	})

	t.Run("omitted settings keep their defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("num_games: 2\n"))

		require.NoError(t, err)
		require.Equal(t, 2, cfg.NumGames)
		require.Equal(t, meta.Workers, cfg.Workers)
		require.Equal(t, DefaultConfig().Agents, cfg.Agents, "A file without agents should run the default roster")
	})

	t.Run("invalid files", func(t *testing.T) {
		tests := map[string]string{
			"malformed yaml":        "width: [",
			"bad board size":        "width: 0",
			"bad time limit":        "time_limit: -1s",
			"too many opening":      "width: 2\nheight: 2\nopening_plies: 4",
			"unknown heuristic":     "agents: [{id: 1, strategy: alphabeta, heuristic: nope}]",
			"unknown strategy":      "agents: [{id: 1, strategy: mcts, heuristic: open}]",
			"minimax without depth": "agents: [{id: 1, strategy: minimax, heuristic: open}]",
			"remote without url":    "agents: [{id: 1, strategy: remote}]",
			"duplicate agent":       "agents: [{id: 1, strategy: random}, {id: 1, strategy: random}]",
			"unknown match-up":      "agents: [{id: 1, strategy: random}]\nmatch_ups: [[1, 2]]",
			"match-up of three":     "agents: [{id: 1, strategy: random}, {id: 2, strategy: random}]\nmatch_ups: [[1, 2, 1]]",
		}
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseConfig([]byte(data))

				require.Error(t, err)
			})
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tournament.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Workers)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorContains(t, err, "failed to read config")
	})
}

func TestNewAgent(t *testing.T) {
	for _, config := range DefaultConfig().Agents {
		t.Run(config.Name, func(t *testing.T) {
			a, err := NewAgent(config, 1)

			require.NoError(t, err)
			require.NotNil(t, a)
		})
	}

	t.Run("deepening minimax", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{Strategy: StrategyDeepeningMinimax, Heuristic: "improved"}, 1)

		require.NoError(t, err)
		require.NotNil(t, a)
	})
}
