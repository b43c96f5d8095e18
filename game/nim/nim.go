// Package nim implements a subtraction game: players alternately take one or
// two stones from a pile and whoever takes the last stone wins.
package nim

import (
	"minimax/game"
)

const DefaultSize = 10

// Pile is the number of stones remaining.
type Pile int

// Take is the number of stones removed by a move.
type Take int

type Game struct {
	Size int
}

var _ game.Game[Pile, Take] = Game{}

func (g Game) Start() Pile {
	if g.Size <= 0 {
		return DefaultSize
	}
	return Pile(g.Size)
}

func (Game) LegalMoves(pile Pile) []Take {
	moves := make([]Take, 0, 2)
	for _, take := range []Take{1, 2} {
		if Pile(take) <= pile {
			moves = append(moves, take)
		}
	}
	return moves
}

func (Game) Play(pile Pile, take Take) Pile {
	if Pile(take) > pile || take < 1 {
		panic("illegal take")
	}
	return pile - Pile(take)
}

// ScoreFinished always reports a win: the last mover emptied the pile.
func (Game) ScoreFinished(Pile) float64 {
	return game.Win
}

// Estimate favours leaving the opponent a multiple of three, which is lost
// for the player to move.
func Estimate(pile Pile) float64 {
	if pile%3 == 0 {
		return 0.5
	}
	return -0.5
}
