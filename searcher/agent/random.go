package agent

import (
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"

	"golang.org/x/exp/rand"
)

const Random = "random"

type randomAgent[S any, M any] struct {
	game game.Game[S, M]
	rng  *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// moves. Agents with the same seed play the same moves.
func NewRandomAgent[S any, M any](g game.Game[S, M], seed uint64) Agent[S, M] {
	return &randomAgent[S, M]{game: g, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[S, M]) FindMove(state S) (M, metrics.SearchMetric, error) {
	moves := a.game.LegalMoves(state)
	if len(moves) == 0 {
		var none M
		return none, metrics.SearchMetric{}, searcher.ErrTerminalPosition
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Strategy: Random, RootMoves: len(moves)}, nil
}
