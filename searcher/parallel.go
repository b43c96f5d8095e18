package searcher

import (
	"fmt"

	"minimax/game"

	"golang.org/x/sync/errgroup"
)

// BestMoveWithDepthLimitParallel scores each root move on its own goroutine
// with the same rules as BestMoveWithDepthLimit and returns the same move.
// Results are reduced in root-move order once every goroutine has finished,
// so scheduling never changes the answer. If evaluating any root move panics
// the search fails with a *TaskError and no move.
func (s *Searcher[S, M]) BestMoveWithDepthLimitParallel(estimator game.Estimator[S], moveLimit int, state S) (M, error) {
	var none M
	moves, err := s.prepare(estimator, moveLimit, state)
	if err != nil {
		return none, err
	}

	workers := s.workers
	if workers <= 0 || workers > len(moves) {
		workers = len(moves)
	}
	halfmoveLimit := HalfmoveLimit(moveLimit)
	s.metrics.Start(Parallel, workers, moveLimit, len(moves))

	scores := make([]float64, len(moves))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &TaskError{Index: i, Move: move, Cause: r}
				}
			}()
			// state is captured by value: every goroutine plays from its own copy
			scores[i] = s.scoreMoveWithDepthLimit(estimator, halfmoveLimit, state, move)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.last = s.metrics.Complete()
		s.logger.Error().Err(err).Int("rootMoves", len(moves)).Msg("parallel search failed")
		return none, fmt.Errorf("parallel search: %w", err)
	}

	for i, move := range moves {
		s.logger.Debug().Interface("move", move).Float64("score", scores[i]).Msg("scored root move")
	}
	best := moves[argmax(scores)]
	s.complete(best)
	return best, nil
}
