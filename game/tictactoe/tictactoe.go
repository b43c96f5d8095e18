package tictactoe

import (
	"fmt"
	"strings"

	"minimax/game"
)

type Mark int8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Move is a cell index, row-major from the top left corner.
type Move int

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Board is a position. It is an array value, so copies never alias.
type Board struct {
	Cells  [9]Mark
	ToMove Mark
}

type Game struct{}

var _ game.Game[Board, Move] = Game{}

func (Game) Start() Board {
	return Board{ToMove: X}
}

func (Game) LegalMoves(b Board) []Move {
	if b.Winner() != Empty {
		return nil
	}
	moves := make([]Move, 0, len(b.Cells))
	for i, cell := range b.Cells {
		if cell == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

func (Game) Play(b Board, m Move) Board {
	if m < 0 || int(m) >= len(b.Cells) || b.Cells[m] != Empty {
		panic(fmt.Sprintf("illegal move %d", m))
	}
	b.Cells[m] = b.ToMove
	b.ToMove = b.ToMove.Opponent()
	return b
}

// ScoreFinished scores a finished board for the player who just moved.
func (Game) ScoreFinished(b Board) float64 {
	if b.Winner() == b.ToMove.Opponent() {
		return game.Win
	}
	return game.Draw
}

// Winner returns the mark owning a complete line, or Empty.
func (b Board) Winner() Mark {
	for _, line := range lines {
		first := b.Cells[line[0]]
		if first != Empty && first == b.Cells[line[1]] && first == b.Cells[line[2]] {
			return first
		}
	}
	return Empty
}

func (b Board) String() string {
	var sb strings.Builder
	for i, cell := range b.Cells {
		sb.WriteString(cell.String())
		if i%3 == 2 && i < len(b.Cells)-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Parse reads a board from nine cells written as X, O or '.', ignoring
// whitespace and '/' separators. The side to move is inferred from the counts.
func Parse(s string) (Board, error) {
	var b Board
	n, xs, os := 0, 0, 0
	for _, r := range s {
		switch r {
		case ' ', '\n', '\t', '/':
			continue
		}
		if n >= len(b.Cells) {
			return Board{}, fmt.Errorf("parse board %q: too many cells", s)
		}
		switch r {
		case 'X', 'x':
			b.Cells[n] = X
			xs++
		case 'O', 'o':
			b.Cells[n] = O
			os++
		case '.', '-', '_':
			b.Cells[n] = Empty
		default:
			return Board{}, fmt.Errorf("parse board %q: unexpected %q", s, r)
		}
		n++
	}
	if n != len(b.Cells) {
		return Board{}, fmt.Errorf("parse board %q: want 9 cells, got %d", s, n)
	}
	switch xs - os {
	case 0:
		b.ToMove = X
	case 1:
		b.ToMove = O
	default:
		return Board{}, fmt.Errorf("parse board %q: %d X against %d O", s, xs, os)
	}
	return b, nil
}
