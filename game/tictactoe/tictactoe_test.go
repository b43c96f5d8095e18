package tictactoe

import (
	"testing"

	"minimax/game"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := Parse(s)
	require.NoError(t, err)
	return b
}

func TestParse(t *testing.T) {
	t.Run("reading a board", func(t *testing.T) {
		b := mustParse(t, "XO./.X./...")

		require.Equal(t, X, b.Cells[0])
		require.Equal(t, O, b.Cells[1])
		require.Equal(t, X, b.Cells[4])
		require.Equal(t, O, b.ToMove, "O moves after X has one extra mark")
		require.Equal(t, "XO./.X./...", b.String())
	})

	t.Run("rejecting malformed boards", func(t *testing.T) {
		for _, s := range []string{"XO", "XO./.X./....", "XQ./.../...", "XX./.../...", "OO./X../..."} {
			_, err := Parse(s)
			require.Error(t, err, s)
		}
	})
}

func TestGame(t *testing.T) {
	g := Game{}

	t.Run("the empty board lets X play anywhere", func(t *testing.T) {
		start := g.Start()

		require.Equal(t, X, start.ToMove)
		require.Equal(t, []Move{0, 1, 2, 3, 4, 5, 6, 7, 8}, g.LegalMoves(start))
	})

	t.Run("playing does not alias the original board", func(t *testing.T) {
		start := g.Start()

		next := g.Play(start, 4)

		require.Equal(t, Empty, start.Cells[4])
		require.Equal(t, X, next.Cells[4])
		require.Equal(t, O, next.ToMove)
	})

	t.Run("playing an occupied cell panics", func(t *testing.T) {
		b := mustParse(t, "X../.../...")
		require.Panics(t, func() {
			g.Play(b, 0)
		})
	})

	t.Run("a completed line ends the game with a win for the last mover", func(t *testing.T) {
		b := mustParse(t, "OOO/XX./X..")

		require.Empty(t, g.LegalMoves(b))
		require.Equal(t, O, b.Winner())
		require.Equal(t, game.Win, g.ScoreFinished(b))
	})

	t.Run("a full board without a line is a draw", func(t *testing.T) {
		b := mustParse(t, "XOX/XOO/OXX")

		require.Empty(t, g.LegalMoves(b))
		require.Equal(t, game.Draw, g.ScoreFinished(b))
	})
}

func TestEstimate(t *testing.T) {
	t.Run("the empty board is even", func(t *testing.T) {
		require.Zero(t, Estimate(Game{}.Start()))
	})

	t.Run("the centre is better than an edge", func(t *testing.T) {
		centre := Game{}.Play(Game{}.Start(), 4)
		edge := Game{}.Play(Game{}.Start(), 1)

		require.Greater(t, Estimate(centre), Estimate(edge))
		require.Greater(t, Estimate(centre), 0.0)
	})

	t.Run("stays within (-1, 1)", func(t *testing.T) {
		for _, s := range []string{"XX./O../...", "XX./OO./X..", "X.O/.X./O.."} {
			score := Estimate(mustParse(t, s))
			require.Greater(t, score, -1.0, s)
			require.Less(t, score, 1.0, s)
		}
	})
}
