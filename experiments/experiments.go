package experiments

import (
	"fmt"
	"time"

	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/game/nim"
	"minimax/game/tictactoe"
	"minimax/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Summary struct {
	Games      int
	Wins       map[int]int // By agent ID
	Draws      int
	Unfinished int
	Dir        string // Where results were written, if anywhere
}

// Run plays every matchup of config NumGames times, alternating which agent
// moves first, and writes the results when an output directory is set.
func Run(config Config) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, err
	}
	switch config.Game {
	case Nim:
		return runExperiment[nim.Pile, nim.Take](config, nim.Game{Size: config.Size}, nim.Estimate)
	case TicTacToe:
		return runExperiment[tictactoe.Board, tictactoe.Move](config, tictactoe.Game{}, tictactoe.Estimate)
	default:
		return Summary{}, fmt.Errorf("unknown game %q", config.Game)
	}
}

func runExperiment[S any, M comparable](config Config, g game.Game[S, M], estimator game.Estimator[S]) (Summary, error) {
	count := 0
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	matchups := [][]metrics.AgentConfig{}
	start := time.Now()

	log.Info().Msgf("starting %s experiment on %s...", config.Name, config.Game)

	for mi, matchup := range config.Matchups {
		config1 := config.agent(matchup[0])
		config2 := config.agent(matchup[1])
		matchups = append(matchups, []metrics.AgentConfig{config1, config2})

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(config.Matchups), config1, config2)

		for i := 0; i < config.NumGames; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}
			// Vary random agents between games
			first.Seed += uint64(count)
			second.Seed += uint64(count)

			gameMetric, moveMetrics, err := runGame(g, estimator, config.MaxMoves, first, second)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameMetric.StartingAgent = first.ID
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			summary.Games++
			switch {
			case !gameMetric.Finished:
				summary.Unfinished++
			case gameMetric.Winner == 1:
				summary.Wins[first.ID]++
			case gameMetric.Winner == 2:
				summary.Wins[second.ID]++
			default:
				summary.Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d in %d moves with winner: %d", mi+1, len(config.Matchups), i+1, gameMetric.TotalMoves, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(config.Matchups))
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	if config.OutputDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	end := time.Now()
	err = writer.WriteSetup(metrics.Setup{
		Name:      config.Name,
		Game:      config.Game,
		Matchups:  matchups,
		NumGames:  config.NumGames,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return summary, err
	}

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return summary, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, err
	}
	log.Info().Str("dir", writer.Dir()).Str("run", writer.RunID()).Msg("stored move records")

	return summary, nil
}

// runGame plays a single game between two agents, config1 moving first
func runGame[S any, M comparable](g game.Game[S, M], estimator game.Estimator[S], maxMoves int, config1, config2 metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := agent.New(g, estimator, config1)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent2, err := agent.New(g, estimator, config2)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(g, agent1, agent2)
	e.MaxMoves = maxMoves
	e.OnMove = func(u engine.Update[S, M]) {
		log.Debug().Int("step", u.Step).Int("player", u.Player).Str("state", fmt.Sprint(u.State)).Msg("position")
	}
	return e.Run()
}
