package experiments

import (
	"context"
	"fmt"
	"time"

	"isolation/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// ThroughputResult aggregates the searches of one agent in a speedup
// experiment.
type ThroughputResult struct {
	Agent   metrics.AgentConfig
	Moves   int
	Nodes   int64
	Depths  int
	Elapsed time.Duration
}

func (r ThroughputResult) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

func (r ThroughputResult) MeanDepth() float64 {
	if r.Moves == 0 {
		return 0
	}
	return float64(r.Depths) / float64(r.Moves)
}

// ThroughputConfig turns cfg into a speedup experiment: the same alpha-beta
// agent on 1, 2, 4, ... up to maxGoroutines goroutines plays itself, for
// the same playing strength and similar game length on both sides.
func ThroughputConfig(cfg Config, heuristic string, maxGoroutines int) Config {
	cfg.Agents = nil
	cfg.MatchUps = nil
	for n := 1; n <= maxGoroutines; n *= 2 {
		id := len(cfg.Agents) + 1
		cfg.Agents = append(cfg.Agents, metrics.AgentConfig{
			ID:         id,
			Name:       fmt.Sprintf("AB_%d", n),
			Strategy:   StrategyAlphaBeta,
			Heuristic:  heuristic,
			Goroutines: n,
		})
		cfg.MatchUps = append(cfg.MatchUps, []int{id, id})
	}
	return cfg
}

// Throughput sums the search metrics of every move per agent, in the order
// of cfg.Agents.
func Throughput(cfg Config, collector *metrics.Collector) []ThroughputResult {
	results := make([]ThroughputResult, len(cfg.Agents))
	index := make(map[int]int, len(cfg.Agents))
	for i, a := range cfg.Agents {
		results[i].Agent = a
		index[a.ID] = i
	}

	seats := make(map[int][2]int)
	for _, g := range collector.Games() {
		seats[g.ID] = [2]int{g.Agent1, g.Agent2}
	}

	for _, m := range collector.Moves() {
		agents, ok := seats[m.Game]
		if !ok || m.Player < 1 || m.Player > 2 {
			continue
		}
		i, ok := index[agents[m.Player-1]]
		if !ok {
			continue
		}
		results[i].Moves++
		results[i].Nodes += m.Nodes
		results[i].Depths += m.Depth
		results[i].Elapsed += m.Elapsed
	}
	return results
}

// RunThroughput runs a speedup experiment of the parallel root search and
// stores its records like a tournament.
func RunThroughput(ctx context.Context, cfg Config, heuristic string, maxGoroutines int, root, name string) error {
	cfg = ThroughputConfig(cfg, heuristic, maxGoroutines)

	log.Info().Int("max_goroutines", maxGoroutines).Str("heuristic", heuristic).Msg("starting speedup experiment")
	collector, err := RunAndWrite(ctx, cfg, root, name)
	if err != nil {
		return err
	}

	for _, r := range Throughput(cfg, collector) {
		log.Info().Msgf("%-8s %10.0f nodes/s  mean depth %4.1f over %d moves",
			r.Agent.Name, r.NodesPerSecond(), r.MeanDepth(), r.Moves)
	}
	log.Info().Msg("completed speedup experiment")
	return nil
}
