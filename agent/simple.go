package agent

import (
	"context"
	"fmt"

	"gamearena/game"
)

// First always plays the first enumerated legal move. The simplest
// possible strategy, useful as a deterministic baseline opponent.
type First struct{}

func (First) FindMove(_ context.Context, state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	return moves[0], nil
}

// Func adapts a plain function into an Agent.
type Func func(state game.State) (game.Move, error)

func (f Func) FindMove(_ context.Context, state game.State) (game.Move, error) {
	return f(state)
}

// Scripted replays a fixed move list in order and fails once the script
// runs out. The moves are not validated against the state, which makes
// Scripted a handy instrument for exercising legality enforcement.
type Scripted struct {
	moves []game.Move
	next  int
}

func NewScripted(moves ...game.Move) *Scripted {
	return &Scripted{moves: moves}
}

func (a *Scripted) FindMove(_ context.Context, _ game.State) (game.Move, error) {
	if a.next >= len(a.moves) {
		return nil, fmt.Errorf("script exhausted after %d moves", a.next)
	}
	move := a.moves[a.next]
	a.next++
	return move, nil
}
