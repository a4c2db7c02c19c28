// Package tictactoe implements 3x3 tic-tac-toe on a pair of bitboards.
// White plays crosses and moves first.
package tictactoe

import (
	"fmt"
	"math/bits"
	"strings"

	"gamearena/game"
)

// Move is a cell index, 0 through 8 in row-major order.
type Move uint8

// String renders the cell in board coordinates: columns a-c, rows 1-3.
func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+int(m)%3, int(m)/3+1)
}

// ParseMove reads a move in the form written by Move.String, eg. "b2".
func ParseMove(_ game.State, text string) (game.Move, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'c' || text[1] < '1' || text[1] > '3' {
		return nil, fmt.Errorf("invalid tic-tac-toe move %q", text)
	}
	return Move(text[0]-'a') + 3*Move(text[1]-'1'), nil
}

const full = 0b111111111

// The eight winning line masks: rows, columns, diagonals.
var lines = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

type Game struct{}

func (Game) Name() string {
	return "tictactoe"
}

func (Game) InitialState() game.State {
	return State{player: game.White}
}

// State holds one bit per cell for each side.
type State struct {
	crosses uint16
	noughts uint16
	player  game.Player
}

func (s State) Player() game.Player {
	return s.player
}

func (s State) LegalMoves() []game.Move {
	if s.Terminal() {
		return nil
	}
	free := ^(s.crosses | s.noughts) & full
	moves := make([]game.Move, 0, bits.OnesCount16(free))
	for cell := Move(0); cell < 9; cell++ {
		if free&(1<<cell) != 0 {
			moves = append(moves, cell)
		}
	}
	return moves
}

func (s State) Play(move game.Move) game.State {
	cell := move.(Move)
	next := s
	if s.player == game.White {
		next.crosses |= 1 << cell
	} else {
		next.noughts |= 1 << cell
	}
	next.player = s.player.Opponent()
	return next
}

func (s State) Terminal() bool {
	return wins(s.crosses) || wins(s.noughts) || s.crosses|s.noughts == full
}

func (s State) Winner() game.Player {
	if wins(s.crosses) {
		return game.White
	}
	if wins(s.noughts) {
		return game.Black
	}
	return game.Nobody
}

func (s State) Hash() game.StateHash {
	// 18 bits encode the full position; the mover is implied by popcount.
	return game.StateHash(s.crosses) | game.StateHash(s.noughts)<<9
}

func (s State) String() string {
	var b strings.Builder
	for cell := 0; cell < 9; cell++ {
		mask := uint16(1) << cell
		switch {
		case s.crosses&mask != 0:
			b.WriteByte('X')
		case s.noughts&mask != 0:
			b.WriteByte('O')
		default:
			b.WriteByte('.')
		}
		if cell%3 == 2 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func wins(mask uint16) bool {
	for _, line := range lines {
		if mask&line == line {
			return true
		}
	}
	return false
}

// Evaluate counts lines still open for each side: a line not blocked by
// the opponent is a potential win. Scaled to (-1, 1).
func Evaluate(s game.State, p game.Player) float64 {
	st := s.(State)
	mine, theirs := st.crosses, st.noughts
	if p == game.Black {
		mine, theirs = theirs, mine
	}

	score := 0
	for _, line := range lines {
		if theirs&line == 0 {
			score++
		}
		if mine&line == 0 {
			score--
		}
	}
	return float64(score) / 8
}
