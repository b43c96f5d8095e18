package searcher

import (
	"errors"
	"fmt"
)

// Hyperparameters for depth-limited search

// DefaultDecay shrinks a score each ply it is backed up, so that equal
// outcomes reached in fewer moves score higher.
const DefaultDecay = 0.999

// Strategy names reported in search metrics
const (
	Exhaustive   = "exhaustive"
	DepthLimited = "depth-limited"
	Parallel     = "parallel"
)

// Calling a search on a finished game, or with a move limit below one, is a
// caller bug rather than a runtime condition: these errors are not meant to
// be retried.
var (
	ErrTerminalPosition = errors.New("search requires a position with at least one legal move")
	ErrInvalidMoveLimit = errors.New("move limit must be at least 1")
	ErrNilEstimator     = errors.New("depth-limited search requires an estimator")
	ErrTaskFailed       = errors.New("root move evaluation failed")
)

// TaskError reports a root move whose evaluation panicked during a parallel
// search.
type TaskError struct {
	Index int // Position of the move in the root's legal moves
	Move  any
	Cause any // Recovered panic value
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%v: move %d (%v): %v", ErrTaskFailed, e.Index, e.Move, e.Cause)
}

func (e *TaskError) Unwrap() []error {
	if err, ok := e.Cause.(error); ok {
		return []error{ErrTaskFailed, err}
	}
	return []error{ErrTaskFailed}
}

// HalfmoveLimit converts a limit in moves of the searching player to an odd
// number of plies, so the last ply searched is always an opponent's reply.
func HalfmoveLimit(moveLimit int) int {
	return 2*moveLimit - 1
}
