package experiments

import (
	"fmt"
	"time"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/game/nim"
	"minimax/game/tictactoe"
	"minimax/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Agent       int // AgentConfig.ID
	Searches    int
	Nodes       int64
	Duration    time.Duration
	NodesPerSec float64
}

// RunThroughput searches the starting position repeats times with every
// configured agent and reports how many positions each visits per second.
func RunThroughput(config Config, repeats int) ([]Throughput, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if repeats < 1 {
		return nil, fmt.Errorf("repeats must be at least 1, got %d", repeats)
	}
	switch config.Game {
	case Nim:
		return runThroughput[nim.Pile, nim.Take](config, nim.Game{Size: config.Size}, nim.Estimate, repeats)
	case TicTacToe:
		return runThroughput[tictactoe.Board, tictactoe.Move](config, tictactoe.Game{}, tictactoe.Estimate, repeats)
	default:
		return nil, fmt.Errorf("unknown game %q", config.Game)
	}
}

func runThroughput[S any, M any](config Config, g game.Game[S, M], estimator game.Estimator[S], repeats int) ([]Throughput, error) {
	results := []Throughput{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting throughput experiment on %s...", config.Game)

	for _, agentConfig := range config.Agents {
		a, err := agent.New(g, estimator, agentConfig)
		if err != nil {
			return nil, err
		}

		result := Throughput{Agent: agentConfig.ID}
		for i := 0; i < repeats; i++ {
			_, metric, err := a.FindMove(g.Start())
			if err != nil {
				return nil, fmt.Errorf("agent %d search %d: %w", agentConfig.ID, i+1, err)
			}
			result.Searches++
			result.Nodes += metric.Nodes
			result.Duration += metric.Duration
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       agentConfig.ID,
				MoveMetric: metrics.MoveMetric{Step: i + 1, Player: 1, SearchMetric: metric},
			})
		}
		if result.Duration > 0 {
			result.NodesPerSec = float64(result.Nodes) / result.Duration.Seconds()
		}
		results = append(results, result)

		log.Info().
			Int("agent", agentConfig.ID).
			Str("strategy", agentConfig.Strategy).
			Int("workers", agentConfig.Workers).
			Int64("nodes", result.Nodes).
			Dur("duration", result.Duration).
			Float64("nodesPerSec", result.NodesPerSec).
			Msg("completed throughput run")
	}

	if config.OutputDir == "" {
		return results, nil
	}

	writer, err := metrics.NewWriter(config.OutputDir, config.Name+"-throughput")
	if err != nil {
		return results, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return results, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return results, err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored throughput records")

	return results, nil
}
