package main

import (
	"fmt"
	"os"
	"time"

	"minimax/experiments"
	"minimax/experiments/metrics"
	"minimax/meta"
	"minimax/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "minimax",
		Short:        "Play and benchmark minimax agents on small two-player games",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newPlayCommand(), newExperimentCommand(), newThroughputCommand())
	return root
}

func newPlayCommand() *cobra.Command {
	config := experiments.DefaultConfig()
	config.Name = "play"
	config.NumGames = 1
	first := metrics.AgentConfig{ID: 1, Name: "first", Strategy: searcher.Parallel, MoveLimit: meta.MOVE_LIMIT}
	second := metrics.AgentConfig{ID: 2, Name: "second", Strategy: searcher.DepthLimited, MoveLimit: meta.MOVE_LIMIT}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play games between two agents and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			second.Workers = first.Workers
			second.Seed = first.Seed + 1
			second.Decay = first.Decay
			config.Agents = []metrics.AgentConfig{first, second}
			config.Matchups = [][]int{{first.ID, second.ID}}

			summary, err := experiments.Run(config)
			if err != nil {
				return err
			}
			printSummary(cmd, config, summary)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Game, "game", config.Game, fmt.Sprintf("game to play %v", experiments.Games))
	flags.IntVar(&config.Size, "size", 0, "starting pile for nim")
	flags.IntVar(&config.NumGames, "games", config.NumGames, "number of games, sides swap every game")
	flags.StringVar(&config.OutputDir, "output", "", "directory for result files, none when empty")
	flags.StringVar(&first.Strategy, "first", first.Strategy, "strategy of the agent moving first in odd games")
	flags.StringVar(&second.Strategy, "second", second.Strategy, "strategy of the other agent")
	flags.IntVar(&first.MoveLimit, "first-moves", first.MoveLimit, "look-ahead of the first agent, in its own moves")
	flags.IntVar(&second.MoveLimit, "second-moves", second.MoveLimit, "look-ahead of the second agent, in its own moves")
	flags.IntVar(&first.Workers, "workers", 0, "goroutines per parallel search, one per root move when 0")
	flags.Uint64Var(&first.Seed, "seed", 1, "seed of random agents")
	flags.Float64Var(&first.Decay, "decay", searcher.DefaultDecay, "per-ply score decay of depth-limited agents")
	return cmd
}

func newExperimentCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run the matchups of a YAML experiment config",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := experiments.LoadConfig(path)
			if err != nil {
				return err
			}
			summary, err := experiments.Run(config)
			if err != nil {
				return err
			}
			printSummary(cmd, config, summary)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "experiment.yaml", "experiment config file")
	return cmd
}

func newThroughputCommand() *cobra.Command {
	var path string
	var repeats int

	cmd := &cobra.Command{
		Use:   "throughput",
		Short: "Measure positions searched per second by each configured agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := experiments.LoadConfig(path)
			if err != nil {
				return err
			}
			results, err := experiments.RunThroughput(config, repeats)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "agent %d: %d searches, %d nodes in %s (%.0f nodes/s)\n", r.Agent, r.Searches, r.Nodes, r.Duration, r.NodesPerSec)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "experiment.yaml", "experiment config file")
	cmd.Flags().IntVar(&repeats, "repeats", meta.REPEATS, "searches of the starting position per agent")
	return cmd
}

func printSummary(cmd *cobra.Command, config experiments.Config, summary experiments.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d games of %s\n", config.Name, summary.Games, config.Game)
	for _, a := range config.Agents {
		fmt.Fprintf(cmd.OutOrStdout(), "  agent %d (%s, %s): %d wins\n", a.ID, a.Name, a.Strategy, summary.Wins[a.ID])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  draws: %d, unfinished: %d\n", summary.Draws, summary.Unfinished)
	if summary.Dir != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  results: %s\n", summary.Dir)
	}
}
