package game

// Terminal scores, from the perspective of the player who made the last move.
// Wins and losses are antisymmetric so that negating a score hands it to the
// other player.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

// Game is the capability contract a two-player, zero-sum, turn-alternating
// game satisfies to be searchable. S is a position and M is a move.
//
// Positions are values: Play must return a new position without mutating or
// aliasing the one it was given, so that every search branch and goroutine can
// own its own copy.
type Game[S any, M any] interface {
	// Start returns the initial position.
	Start() S
	// LegalMoves returns the moves available in state, in priority order.
	// An empty result means the game is over.
	LegalMoves(state S) []M
	// Play returns the position reached by making move in state.
	Play(state S, move M) S
	// ScoreFinished scores a finished position for the player who made the
	// last move: Win, Draw or Loss (or a value of the same sign).
	ScoreFinished(state S) float64
}

// Estimator scores an unfinished position on the same scale as
// ScoreFinished, for the player who made the last move. It must be
// deterministic and free of side effects.
type Estimator[S any] func(state S) float64

// Outcome of a finished game relative to its last mover.
type Outcome int

const (
	LastMoverLost Outcome = iota - 1
	Drawn
	LastMoverWon
)

// OutcomeOf classifies a terminal score by its sign.
func OutcomeOf(score float64) Outcome {
	switch {
	case score > 0:
		return LastMoverWon
	case score < 0:
		return LastMoverLost
	default:
		return Drawn
	}
}
