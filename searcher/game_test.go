package searcher

import (
	"fmt"
	"sync"
)

// mockGame is a game tree spelled out node by node. Positions and moves are
// both node names: playing a move moves to the node of the same name.
type mockGame struct {
	children map[string][]string
	scores   map[string]float64 // Terminal scores
	panicAt  string             // Playing this move panics
}

func (m mockGame) Start() string {
	return "root"
}

func (m mockGame) LegalMoves(state string) []string {
	return m.children[state]
}

func (m mockGame) Play(state string, move string) string {
	if move == m.panicAt {
		panic(fmt.Sprintf("cannot play %s from %s", move, state))
	}
	return move
}

func (m mockGame) ScoreFinished(state string) float64 {
	return m.scores[state]
}

// estimateRecorder estimates every position as value and remembers which
// positions it was asked about.
type estimateRecorder struct {
	sync.Mutex
	value float64
	calls []string
}

func (e *estimateRecorder) estimate(state string) float64 {
	e.Lock()
	defer e.Unlock()
	e.calls = append(e.calls, state)
	return e.value
}
