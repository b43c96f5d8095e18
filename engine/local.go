package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher/agent"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is already over")
	ErrIllegalMove = errors.New("agent returned an illegal move")
)

type Update[S any, M any] struct {
	Step   int
	Player int
	Move   M
	State  S
}

// Local plays two agents against each other in process. Player 1 moves
// first from State.
type Local[S any, M comparable] struct {
	Game     game.Game[S, M]
	State    S
	Agents   []agent.Agent[S, M]
	MaxMoves int
	// OnMove, if set, is called after every move
	OnMove func(Update[S, M])
}

var _ Engine = (*Local[int, int])(nil)

func LocalEngine[S any, M comparable](g game.Game[S, M], agents ...agent.Agent[S, M]) *Local[S, M] {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Local[S, M]{
		Game:     g,
		State:    g.Start(),
		Agents:   agents,
		MaxMoves: MaxMoves,
	}
}

// Run executes the game loop until the game is finished or MaxMoves moves
// have been played. State holds the last position afterwards.
func (e *Local[S, M]) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	if len(e.Game.LegalMoves(e.State)) == 0 {
		return gameMetric, moveMetrics, ErrGameOver
	}

	player := 1
	for step := 1; step <= e.MaxMoves; step++ {
		legal := e.Game.LegalMoves(e.State)
		if len(legal) == 0 {
			gameMetric.Finished = true
			break
		}

		move, metric, err := e.Agents[player-1].FindMove(e.State)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("player %d at step %d: %w", player, step, err)
		}
		if !slices.Contains(legal, move) {
			return gameMetric, moveMetrics, fmt.Errorf("player %d at step %d: %w: %v", player, step, ErrIllegalMove, move)
		}

		e.State = e.Game.Play(e.State, move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: metric,
		})
		log.Debug().Int("step", step).Int("player", player).Interface("move", move).Msg("move played")
		if e.OnMove != nil {
			e.OnMove(Update[S, M]{Step: step, Player: player, Move: move, State: e.State})
		}

		gameMetric.TotalMoves = step
		player = 3 - player
	}
	if !gameMetric.Finished {
		gameMetric.Finished = len(e.Game.LegalMoves(e.State)) == 0
	}

	if gameMetric.Finished {
		lastMover := 3 - player
		switch game.OutcomeOf(e.Game.ScoreFinished(e.State)) {
		case game.LastMoverWon:
			gameMetric.Winner = lastMover
		case game.LastMoverLost:
			gameMetric.Winner = player
		}
	} else {
		log.Warn().Int("moves", gameMetric.TotalMoves).Msg("stopped before the game was finished")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	return gameMetric, moveMetrics, nil
}
