// Package counting implements the counting game: players take turns
// adding 1, 2 or 3 to a shared total, and whoever says Target wins. Its
// tiny branching factor makes it the go-to model for exercising full-depth
// search and contest plumbing.
package counting

import (
	"fmt"
	"strconv"

	"gamearena/game"
)

const Target = 21

// Move is the increment to add, 1 through 3.
type Move uint8

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// ParseMove reads a move in the form written by Move.String.
func ParseMove(_ game.State, text string) (game.Move, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > 3 {
		return nil, fmt.Errorf("invalid counting move %q", text)
	}
	return Move(n), nil
}

type Game struct{}

func (Game) Name() string {
	return "counting"
}

func (Game) InitialState() game.State {
	return State{player: game.White}
}

type State struct {
	total  uint8
	player game.Player
}

func (s State) Player() game.Player {
	return s.player
}

func (s State) LegalMoves() []game.Move {
	if s.Terminal() {
		return nil
	}
	var moves []game.Move
	for inc := Move(1); inc <= 3; inc++ {
		if int(s.total)+int(inc) <= Target {
			moves = append(moves, inc)
		}
	}
	return moves
}

func (s State) Play(move game.Move) game.State {
	return State{
		total:  s.total + uint8(move.(Move)),
		player: s.player.Opponent(),
	}
}

func (s State) Terminal() bool {
	return s.total >= Target
}

// Winner is the side that said Target, ie. the opponent of the side to
// move in the terminal state. The game has no draws.
func (s State) Winner() game.Player {
	return s.player.Opponent()
}

func (s State) Hash() game.StateHash {
	return game.StateHash(s.total)<<1 | game.StateHash(s.player&1)
}

func (s State) String() string {
	return strconv.Itoa(int(s.total))
}

// Evaluate knows the game theory: the side to move loses when the distance
// to Target is a multiple of 4. Reported at reduced magnitude so proven
// terminal outcomes still dominate the search.
func Evaluate(s game.State, p game.Player) float64 {
	st := s.(State)
	moverWins := (Target-st.total)%4 != 0

	value := 0.5
	if moverWins != (st.player == p) {
		value = -value
	}
	return value
}
