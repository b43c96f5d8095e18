package agent

import (
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"
)

type exhaustiveAgent[S any, M any] struct {
	searcher *searcher.Searcher[S, M]
}

// NewExhaustiveAgent returns an agent that searches to the end of the game
// before every move.
func NewExhaustiveAgent[S any, M any](s *searcher.Searcher[S, M]) Agent[S, M] {
	return exhaustiveAgent[S, M]{searcher: s}
}

func (a exhaustiveAgent[S, M]) FindMove(state S) (M, metrics.SearchMetric, error) {
	move, err := a.searcher.BestMove(state)
	return move, a.searcher.LastMetric(), err
}

type depthLimitedAgent[S any, M any] struct {
	searcher  *searcher.Searcher[S, M]
	estimator game.Estimator[S]
	moveLimit int
	parallel  bool
}

// NewDepthLimitedAgent returns an agent that looks moveLimit of its own moves
// ahead and estimates the positions beyond.
func NewDepthLimitedAgent[S any, M any](s *searcher.Searcher[S, M], estimator game.Estimator[S], moveLimit int) Agent[S, M] {
	return depthLimitedAgent[S, M]{searcher: s, estimator: estimator, moveLimit: moveLimit}
}

// NewParallelAgent is NewDepthLimitedAgent with root moves searched
// concurrently.
func NewParallelAgent[S any, M any](s *searcher.Searcher[S, M], estimator game.Estimator[S], moveLimit int) Agent[S, M] {
	return depthLimitedAgent[S, M]{searcher: s, estimator: estimator, moveLimit: moveLimit, parallel: true}
}

func (a depthLimitedAgent[S, M]) FindMove(state S) (M, metrics.SearchMetric, error) {
	var move M
	var err error
	if a.parallel {
		move, err = a.searcher.BestMoveWithDepthLimitParallel(a.estimator, a.moveLimit, state)
	} else {
		move, err = a.searcher.BestMoveWithDepthLimit(a.estimator, a.moveLimit, state)
	}
	return move, a.searcher.LastMetric(), err
}
