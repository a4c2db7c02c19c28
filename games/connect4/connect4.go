// Package connect4 implements 7x6 Connect Four on two bitboards with a
// 7-bit column stride, the layout commonly used for fast four-in-a-row
// detection via shifts.
package connect4

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"gamearena/game"
)

const (
	Columns = 7
	Rows    = 6
)

// Move is the column to drop a disc into, 0 through 6.
type Move uint8

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// ParseMove reads a move in the form written by Move.String.
func ParseMove(_ game.State, text string) (game.Move, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || n >= Columns {
		return nil, fmt.Errorf("invalid connect4 move %q", text)
	}
	return Move(n), nil
}

type Game struct{}

func (Game) Name() string {
	return "connect4"
}

func (Game) InitialState() game.State {
	return State{player: game.White}
}

// State packs each side's discs into a uint64, bit column*7+row with row 0
// at the bottom. The spare seventh bit per column keeps shift-based win
// detection from wrapping across columns.
type State struct {
	white  uint64
	black  uint64
	player game.Player
}

func (s State) Player() game.Player {
	return s.player
}

func (s State) LegalMoves() []game.Move {
	if s.Terminal() {
		return nil
	}
	filled := s.white | s.black
	moves := make([]game.Move, 0, Columns)
	for col := Move(0); col < Columns; col++ {
		if height(filled, col) < Rows {
			moves = append(moves, col)
		}
	}
	return moves
}

func (s State) Play(move game.Move) game.State {
	col := move.(Move)
	bit := uint64(1) << (uint(col)*7 + height(s.white|s.black, col))

	next := s
	if s.player == game.White {
		next.white |= bit
	} else {
		next.black |= bit
	}
	next.player = s.player.Opponent()
	return next
}

func (s State) Terminal() bool {
	return wins(s.white) || wins(s.black) || s.boardFull()
}

func (s State) Winner() game.Player {
	if wins(s.white) {
		return game.White
	}
	if wins(s.black) {
		return game.Black
	}
	return game.Nobody
}

func (s State) Hash() game.StateHash {
	// The union plus one side's discs identifies the position; mix with a
	// 64-bit odd constant to spread the bits.
	return game.StateHash((s.white | s.black) ^ s.white*0x9E3779B97F4A7C15)
}

func (s State) String() string {
	var b strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			bit := uint64(1) << (col*7 + row)
			switch {
			case s.white&bit != 0:
				b.WriteByte('X')
			case s.black&bit != 0:
				b.WriteByte('O')
			default:
				b.WriteByte('.')
			}
			if col < Columns-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s State) boardFull() bool {
	filled := s.white | s.black
	for col := Move(0); col < Columns; col++ {
		if height(filled, col) < Rows {
			return false
		}
	}
	return true
}

func height(filled uint64, col Move) uint {
	column := (filled >> (uint(col) * 7)) & 0b111111
	return uint(bits.Len64(column))
}

// wins checks all four directions: vertical (1), horizontal (7), and the
// two diagonals (6 and 8) in the column-stride layout.
func wins(board uint64) bool {
	for _, dir := range [4]uint{1, 7, 6, 8} {
		m := board & (board >> dir)
		if m&(m>>(2*dir)) != 0 {
			return true
		}
	}
	return false
}

// Center-weighted disc count: discs in and around the middle column take
// part in more potential lines.
var columnWeight = [Columns]float64{1, 2, 3, 4, 3, 2, 1}

// Evaluate scores disc placement for p, scaled to (-1, 1).
func Evaluate(s game.State, p game.Player) float64 {
	st := s.(State)
	mine, theirs := st.white, st.black
	if p == game.Black {
		mine, theirs = theirs, mine
	}

	var score float64
	for col := 0; col < Columns; col++ {
		colBits := uint64(0b111111) << (col * 7)
		score += columnWeight[col] * float64(bits.OnesCount64(mine&colBits)-bits.OnesCount64(theirs&colBits))
	}
	// 4 * 6 discs in the center column is the theoretical extreme.
	return score / (4 * Rows)
}
