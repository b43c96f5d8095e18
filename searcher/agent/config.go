package agent

import (
	"fmt"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"
)

// Strategies lists the strategy names accepted by New.
var Strategies = []string{searcher.Exhaustive, searcher.DepthLimited, searcher.Parallel, Random}

// New builds the agent described by config. Every search agent gets its own
// Searcher, so metrics of different agents never mix.
func New[S any, M any](g game.Game[S, M], estimator game.Estimator[S], config metrics.AgentConfig, options ...searcher.Option) (Agent[S, M], error) {
	options = append([]searcher.Option{
		searcher.WithMetrics(),
		searcher.WithDecay(config.Decay),
		searcher.WithWorkers(config.Workers),
	}, options...)

	switch config.Strategy {
	case searcher.Exhaustive:
		return NewExhaustiveAgent(searcher.New(g, options...)), nil
	case searcher.DepthLimited, searcher.Parallel:
		if config.MoveLimit < 1 {
			return nil, fmt.Errorf("agent %d: %w: got %d", config.ID, searcher.ErrInvalidMoveLimit, config.MoveLimit)
		}
		if estimator == nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, searcher.ErrNilEstimator)
		}
		if config.Strategy == searcher.Parallel {
			return NewParallelAgent(searcher.New(g, options...), estimator, config.MoveLimit), nil
		}
		return NewDepthLimitedAgent(searcher.New(g, options...), estimator, config.MoveLimit), nil
	case Random:
		return NewRandomAgent(g, config.Seed), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown strategy %q, want one of %v", config.ID, config.Strategy, Strategies)
	}
}
