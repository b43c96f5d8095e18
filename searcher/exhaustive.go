package searcher

import "minimax/game"

// BestMove searches every line of play to the end of the game and returns
// the move with the highest score for the player to move. Ties go to the
// move listed first. The cost is exponential in the length of the game.
func (s *Searcher[S, M]) BestMove(state S) (M, error) {
	moves := s.game.LegalMoves(state)
	if len(moves) == 0 {
		var none M
		return none, ErrTerminalPosition
	}

	s.metrics.Start(Exhaustive, 1, 0, len(moves))
	best := MaxBy(moves, func(move M) float64 {
		score := s.scoreMove(state, move)
		s.logger.Debug().Interface("move", move).Float64("score", score).Msg("scored root move")
		return score
	})
	s.complete(best)
	return best, nil
}

// BestMove is a shorthand for New(g).BestMove(state).
func BestMove[S any, M any](g game.Game[S, M], state S) (M, error) {
	return New(g).BestMove(state)
}

// scoreMove scores making move in state, for the player making it.
func (s *Searcher[S, M]) scoreMove(state S, move M) float64 {
	return s.scoreGame(s.game.Play(state, move))
}

// scoreGame scores state for the player who moved into it: a finished game
// is scored by the game, otherwise by the opponent's best reply, negated.
func (s *Searcher[S, M]) scoreGame(state S) float64 {
	s.metrics.AddNode()
	moves := s.game.LegalMoves(state)
	if len(moves) == 0 {
		s.metrics.AddTerminal()
		return s.game.ScoreFinished(state)
	}

	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = s.scoreMove(state, move)
	}
	return -Max(scores)
}
