package experiments

import (
	"context"
	"fmt"

	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// MatchUpResult tallies the games between two agents over both seatings.
type MatchUpResult struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
	Wins1  int
	Wins2  int
}

func (r MatchUpResult) WinRate1() float64 {
	total := r.Wins1 + r.Wins2
	if total == 0 {
		return 0
	}
	return float64(r.Wins1) / float64(total)
}

type gameJob struct {
	id     int
	first  metrics.AgentConfig
	second metrics.AgentConfig
}

// Run plays every match-up of cfg, NumGames games each, alternating which
// agent moves first, with up to cfg.Workers games in flight.
func Run(ctx context.Context, cfg Config) (*metrics.Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var jobs []gameJob
	for _, pair := range cfg.MatchUps {
		a1, _ := cfg.Agent(pair[0])
		a2, _ := cfg.Agent(pair[1])
		for i := 0; i < cfg.NumGames; i++ {
			job := gameJob{id: len(jobs) + 1, first: a1, second: a2}
			if i%2 == 1 {
				job.first, job.second = a2, a1
			}
			jobs = append(jobs, job)
		}
	}

	log.Info().Int("match_ups", len(cfg.MatchUps)).Int("games", len(jobs)).Dur("time_limit", cfg.TimeLimit).Msg("starting tournament")

	collector := metrics.NewCollector()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, moves, err := playGame(cfg, job)
			if err != nil {
				return fmt.Errorf("game %d: %w", job.id, err)
			}
			collector.AddGame(record, moves)
			log.Debug().Msgf("completed game %d of %d: %s vs %s, winner player %d (%s)",
				job.id, len(jobs), job.first.Name, job.second.Name, record.Winner, record.Reason)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return collector, err
	}

	for _, result := range Summarize(cfg, collector.Games()) {
		log.Info().Msgf("%-12s vs %-12s  %3d - %-3d  (%.0f%%)",
			result.Agent1.Name, result.Agent2.Name, result.Wins1, result.Wins2, 100*result.WinRate1())
	}
	log.Info().Msg("completed tournament")
	return collector, nil
}

func playGame(cfg Config, job gameJob) (metrics.GameRecord, []metrics.MoveMetric, error) {
	seed := cfg.Seed + uint64(job.id)
	first, err := NewAgent(job.first, seed)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	second, err := NewAgent(job.second, seed+1)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.LocalEngine([]agent.Agent{first, second}, cfg.Width, cfg.Height, cfg.TimeLimit)
	if err := e.RandomOpening(cfg.OpeningPlies, seed); err != nil {
		return metrics.GameRecord{}, nil, err
	}

	_, gameMetric, moveMetrics := e.Run()
	record := metrics.GameRecord{
		ID:         job.id,
		Agent1:     job.first.ID,
		Agent2:     job.second.ID,
		GameMetric: gameMetric,
	}
	return record, moveMetrics, nil
}

// Summarize folds game records into per match-up win counts, in the order
// of cfg.MatchUps.
func Summarize(cfg Config, games []metrics.GameRecord) []MatchUpResult {
	results := make([]MatchUpResult, len(cfg.MatchUps))
	index := make(map[[2]int]int, len(cfg.MatchUps))
	for mi, pair := range cfg.MatchUps {
		a1, _ := cfg.Agent(pair[0])
		a2, _ := cfg.Agent(pair[1])
		results[mi] = MatchUpResult{Agent1: a1, Agent2: a2}
		index[[2]int{pair[0], pair[1]}] = mi
	}

	for _, g := range games {
		winner := g.Agent1
		if g.Winner == 2 {
			winner = g.Agent2
		}
		mi, ok := index[[2]int{g.Agent1, g.Agent2}]
		if !ok {
			mi, ok = index[[2]int{g.Agent2, g.Agent1}]
		}
		if !ok {
			continue
		}
		if winner == results[mi].Agent1.ID {
			results[mi].Wins1++
		} else {
			results[mi].Wins2++
		}
	}
	return results
}

// RunAndWrite runs the tournament and stores its records as CSV files
// under root/name.
func RunAndWrite(ctx context.Context, cfg Config, root, name string) (*metrics.Collector, error) {
	collector, err := Run(ctx, cfg)
	if err != nil {
		return collector, err
	}

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return collector, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return collector, err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(collector.Games()); err != nil {
		return collector, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(collector.Moves()); err != nil {
		return collector, err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return collector, nil
}
