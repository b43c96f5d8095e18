package searcher

import "minimax/game"

// BestMoveWithDepthLimit looks moveLimit moves ahead for the player to move
// (2*moveLimit-1 plies) and falls back to estimator for positions still
// unfinished at that depth. Ties go to the move listed first.
func (s *Searcher[S, M]) BestMoveWithDepthLimit(estimator game.Estimator[S], moveLimit int, state S) (M, error) {
	moves, err := s.prepare(estimator, moveLimit, state)
	if err != nil {
		var none M
		return none, err
	}

	halfmoveLimit := HalfmoveLimit(moveLimit)
	s.metrics.Start(DepthLimited, 1, moveLimit, len(moves))
	best := MaxBy(moves, func(move M) float64 {
		score := s.scoreMoveWithDepthLimit(estimator, halfmoveLimit, state, move)
		s.logger.Debug().Interface("move", move).Float64("score", score).Msg("scored root move")
		return score
	})
	s.complete(best)
	return best, nil
}

func (s *Searcher[S, M]) scoreMoveWithDepthLimit(estimator game.Estimator[S], halfmoveLimit int, state S, move M) float64 {
	return s.scoreGameWithDepthLimit(estimator, halfmoveLimit, s.game.Play(state, move))
}

// scoreGameWithDepthLimit scores state for the player who moved into it.
// Finished games are scored exactly whatever the remaining budget; once the
// budget is spent the estimator scores state itself.
func (s *Searcher[S, M]) scoreGameWithDepthLimit(estimator game.Estimator[S], halfmoveLimit int, state S) float64 {
	s.metrics.AddNode()
	moves := s.game.LegalMoves(state)
	if len(moves) == 0 {
		s.metrics.AddTerminal()
		return s.game.ScoreFinished(state)
	}
	if halfmoveLimit == 0 {
		s.metrics.AddEstimate()
		return estimator(state)
	}

	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = s.scoreMoveWithDepthLimit(estimator, halfmoveLimit-1, state, move)
	}
	return -s.decay * Max(scores)
}
