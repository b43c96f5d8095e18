package agent

import (
	"testing"

	"minimax/experiments/metrics"
	"minimax/game/nim"
	"minimax/game/tictactoe"
	"minimax/searcher"

	"github.com/stretchr/testify/require"
)

func TestSearchAgents(t *testing.T) {
	g := nim.Game{}

	t.Run("exhaustive agent plays the winning move and reports metrics", func(t *testing.T) {
		a := NewExhaustiveAgent(searcher.New[nim.Pile, nim.Take](g, searcher.WithMetrics()))

		move, metric, err := a.FindMove(5)

		require.NoError(t, err)
		require.Equal(t, nim.Take(2), move)
		require.Equal(t, searcher.Exhaustive, metric.Strategy)
		require.Positive(t, metric.Nodes)
	})

	t.Run("depth-limited and parallel agents agree", func(t *testing.T) {
		sequential := NewDepthLimitedAgent(searcher.New[nim.Pile, nim.Take](g, searcher.WithMetrics()), nim.Estimate, 2)
		parallel := NewParallelAgent(searcher.New[nim.Pile, nim.Take](g, searcher.WithMetrics()), nim.Estimate, 2)

		for pile := nim.Pile(1); pile <= 12; pile++ {
			want, wantMetric, err := sequential.FindMove(pile)
			require.NoError(t, err)
			got, gotMetric, err := parallel.FindMove(pile)
			require.NoError(t, err)

			require.Equal(t, want, got, "pile %d", pile)
			require.Equal(t, searcher.DepthLimited, wantMetric.Strategy)
			require.Equal(t, searcher.Parallel, gotMetric.Strategy)
			require.Equal(t, wantMetric.Nodes, gotMetric.Nodes, "Both should visit the same positions")
		}
	})

	t.Run("search errors are passed through", func(t *testing.T) {
		a := NewDepthLimitedAgent(searcher.New[nim.Pile, nim.Take](g), nim.Estimate, 2)

		_, _, err := a.FindMove(0)

		require.ErrorIs(t, err, searcher.ErrTerminalPosition)
	})
}

func TestRandomAgent(t *testing.T) {
	g := tictactoe.Game{}

	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandomAgent[tictactoe.Board, tictactoe.Move](g, 7)
		board := g.Start()
		for len(g.LegalMoves(board)) > 0 {
			move, metric, err := a.FindMove(board)
			require.NoError(t, err)
			require.Contains(t, g.LegalMoves(board), move)
			require.Equal(t, Random, metric.Strategy)
			board = g.Play(board, move)
		}
	})

	t.Run("same seed plays the same moves", func(t *testing.T) {
		a := NewRandomAgent[tictactoe.Board, tictactoe.Move](g, 42)
		b := NewRandomAgent[tictactoe.Board, tictactoe.Move](g, 42)
		for i := 0; i < 20; i++ {
			moveA, _, errA := a.FindMove(g.Start())
			moveB, _, errB := b.FindMove(g.Start())
			require.NoError(t, errA)
			require.NoError(t, errB)
			require.Equal(t, moveA, moveB)
		}
	})

	t.Run("finished game", func(t *testing.T) {
		a := NewRandomAgent[nim.Pile, nim.Take](nim.Game{}, 1)

		_, _, err := a.FindMove(0)

		require.ErrorIs(t, err, searcher.ErrTerminalPosition)
	})
}

func TestNew(t *testing.T) {
	g := nim.Game{}

	t.Run("builds every strategy", func(t *testing.T) {
		for _, strategy := range Strategies {
			a, err := New[nim.Pile, nim.Take](g, nim.Estimate, metrics.AgentConfig{Strategy: strategy, MoveLimit: 2, Workers: 2})
			require.NoError(t, err, strategy)

			move, _, err := a.FindMove(4)
			require.NoError(t, err, strategy)
			require.Contains(t, g.LegalMoves(4), move, strategy)
		}
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		_, err := New[nim.Pile, nim.Take](g, nim.Estimate, metrics.AgentConfig{Strategy: "alphabeta"})
		require.ErrorContains(t, err, "unknown strategy")
	})

	t.Run("depth-limited strategies need a move limit and an estimator", func(t *testing.T) {
		_, err := New[nim.Pile, nim.Take](g, nim.Estimate, metrics.AgentConfig{Strategy: searcher.DepthLimited})
		require.ErrorIs(t, err, searcher.ErrInvalidMoveLimit)

		_, err = New[nim.Pile, nim.Take](g, nil, metrics.AgentConfig{Strategy: searcher.Parallel, MoveLimit: 1})
		require.ErrorIs(t, err, searcher.ErrNilEstimator)
	})
}
