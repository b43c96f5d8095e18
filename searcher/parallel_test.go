package searcher

import (
	"errors"
	"testing"

	"minimax/game"
	"minimax/game/nim"
	"minimax/game/tictactoe"

	"github.com/stretchr/testify/require"
)

func TestBestMoveWithDepthLimitParallelMatchesSequential(t *testing.T) {
	t.Run("subtraction game", func(t *testing.T) {
		for _, workers := range []int{0, 1, 2} {
			s := New[nim.Pile, nim.Take](nim.Game{}, WithWorkers(workers))
			for pile := nim.Pile(1); pile <= 15; pile++ {
				for moveLimit := 1; moveLimit <= 4; moveLimit++ {
					want, err := s.BestMoveWithDepthLimit(nim.Estimate, moveLimit, pile)
					require.NoError(t, err)

					got, err := s.BestMoveWithDepthLimitParallel(nim.Estimate, moveLimit, pile)

					require.NoError(t, err)
					require.Equal(t, want, got, "workers %d pile %d limit %d", workers, pile, moveLimit)
				}
			}
		}
	})

	t.Run("tic-tac-toe", func(t *testing.T) {
		boards := []string{"..././...", "X../.../...", "X../.O./...", "XO./.X./..O", "XOX/OX./...", "OO./XX./X.."}
		for _, workers := range []int{0, 3} {
			s := New[tictactoe.Board, tictactoe.Move](tictactoe.Game{}, WithWorkers(workers))
			for _, board := range boards {
				b, err := tictactoe.Parse(board)
				require.NoError(t, err)
				for moveLimit := 1; moveLimit <= 2; moveLimit++ {
					want, err := s.BestMoveWithDepthLimit(tictactoe.Estimate, moveLimit, b)
					require.NoError(t, err)

					got, err := s.BestMoveWithDepthLimitParallel(tictactoe.Estimate, moveLimit, b)

					require.NoError(t, err)
					require.Equal(t, want, got, "workers %d board %s limit %d", workers, board, moveLimit)
					require.Contains(t, tictactoe.Game{}.LegalMoves(b), got)
				}
			}
		}
	})
}

func TestBestMoveWithDepthLimitParallelTieBreak(t *testing.T) {
	g := mockGame{
		children: map[string][]string{"root": {"a", "b", "c", "d"}},
		scores:   map[string]float64{"a": game.Draw, "b": game.Win, "c": game.Win, "d": game.Win},
	}
	estimator := &estimateRecorder{}

	for _, workers := range []int{0, 1, 2, 4} {
		move, err := New[string, string](g, WithWorkers(workers)).
			BestMoveWithDepthLimitParallel(estimator.estimate, 1, "root")

		require.NoError(t, err)
		require.Equal(t, "b", move, "workers %d: the first of the equally scored moves should win", workers)
	}
}

func TestBestMoveWithDepthLimitParallelFailure(t *testing.T) {
	g := mockGame{
		children: map[string][]string{
			"root": {"a", "b", "c"},
			"b":    {"b-1"},
			"c":    {"c-1"},
		},
		scores:  map[string]float64{"a": game.Win},
		panicAt: "b-1",
	}

	t.Run("a panicking root move fails the whole search", func(t *testing.T) {
		s := New[string, string](g)

		move, err := s.BestMoveWithDepthLimitParallel((&estimateRecorder{}).estimate, 1, "root")

		require.ErrorIs(t, err, ErrTaskFailed)
		require.Empty(t, move, "No move should be returned alongside an error")
		var taskErr *TaskError
		require.ErrorAs(t, err, &taskErr)
		require.Equal(t, 1, taskErr.Index)
		require.Equal(t, "b", taskErr.Move)
	})

	t.Run("a panicking estimator fails the whole search", func(t *testing.T) {
		cause := errors.New("estimator broke")
		s := New[string, string](mockGame{
			children: map[string][]string{
				"root": {"a", "b", "c"},
				"c":    {"c-1"},
				"c-1":  {"c-2"},
			},
			scores: g.scores,
		}, WithWorkers(1))

		_, err := s.BestMoveWithDepthLimitParallel(func(state string) float64 {
			if state == "c-1" {
				panic(cause)
			}
			return 0
		}, 1, "root")

		require.ErrorIs(t, err, ErrTaskFailed)
		require.ErrorIs(t, err, cause, "An error panic value should stay reachable")
	})

	t.Run("precondition violations are reported before any goroutine starts", func(t *testing.T) {
		s := New[nim.Pile, nim.Take](nim.Game{})

		_, err := s.BestMoveWithDepthLimitParallel(nim.Estimate, 2, 0)
		require.ErrorIs(t, err, ErrTerminalPosition)

		_, err = s.BestMoveWithDepthLimitParallel(nim.Estimate, 0, 5)
		require.ErrorIs(t, err, ErrInvalidMoveLimit)

		_, err = s.BestMoveWithDepthLimitParallel(nil, 2, 5)
		require.ErrorIs(t, err, ErrNilEstimator)
	})
}

func TestBestMoveWithDepthLimitParallelMetrics(t *testing.T) {
	t.Run("one goroutine per root move by default", func(t *testing.T) {
		s := New[nim.Pile, nim.Take](nim.Game{}, WithMetrics())

		_, err := s.BestMoveWithDepthLimitParallel(nim.Estimate, 1, 10)
		require.NoError(t, err)

		metric := s.LastMetric()
		require.Equal(t, Parallel, metric.Strategy)
		require.Equal(t, 2, metric.Workers)
		require.Equal(t, int64(6), metric.Nodes)
		require.Equal(t, int64(4), metric.Estimates)
	})

	t.Run("bounded workers", func(t *testing.T) {
		s := New[tictactoe.Board, tictactoe.Move](tictactoe.Game{}, WithMetrics(), WithWorkers(3))

		_, err := s.BestMoveWithDepthLimitParallel(tictactoe.Estimate, 1, tictactoe.Game{}.Start())
		require.NoError(t, err)

		metric := s.LastMetric()
		require.Equal(t, 3, metric.Workers)
		require.Equal(t, 9, metric.RootMoves)
		require.Equal(t, int64(9+9*8), metric.Nodes)
	})
}
