package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"isolation/experiments"
	"isolation/searcher/agent"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML tournament config (default roster if empty)")
	numGames := flag.Int("games", 0, "Games per match-up (overrides config)")
	timeLimit := flag.Duration("time", 0, "Time limit per turn (overrides config)")
	workers := flag.Int("workers", 0, "Games played concurrently (overrides config)")
	outDir := flag.String("out", "experiments", "Directory for CSV results")
	name := flag.String("name", "tournament", "Experiment name")
	cpuProfile := flag.Bool("profile", false, "Write a CPU profile to the working directory")
	debug := flag.Bool("debug", false, "Log every game and search depth")
	throughput := flag.Int("throughput", 0, "Run a speedup experiment on up to this many goroutines instead of the tournament")
	heuristic := flag.String("heuristic", "improved", "Heuristic of the speedup experiment agents")
	serve := flag.String("serve", "", "Serve the agent picked by -agent over HTTP on this address instead of playing")
	agentID := flag.Int("agent", 1, "ID of the config agent to serve")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *numGames > 0 {
		cfg.NumGames = *numGames
	}
	if *timeLimit > 0 {
		cfg.TimeLimit = *timeLimit
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *serve != "" {
		config, ok := cfg.Agent(*agentID)
		if !ok || config.Strategy == experiments.StrategyRemote {
			log.Fatal().Int("agent", *agentID).Msg("no local agent with this id in the config")
		}
		a, err := experiments.NewAgent(config, cfg.Seed)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create agent")
		}
		if err := agent.StartAgentServer(ctx, *serve, a); err != nil {
			log.Error().Err(err).Msg("agent server failed")
		}
		return
	}
	if *throughput > 0 {
		if err := experiments.RunThroughput(ctx, cfg, *heuristic, *throughput, *outDir, *name); err != nil {
			log.Error().Err(err).Msg("speedup experiment failed")
		}
		return
	}
	if _, err := experiments.RunAndWrite(ctx, cfg, *outDir, *name); err != nil {
		log.Error().Err(err).Msg("tournament failed")
	}
}
