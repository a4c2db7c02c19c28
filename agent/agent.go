package agent

import (
	"context"
	"errors"

	"gamearena/game"
)

// ErrNoMoves reports a decision request against a state with no legal
// moves, ie. a terminal state.
var ErrNoMoves = errors.New("no legal moves available")

// Agent is a player strategy: given a state it picks one of the state's
// legal moves. The per-move time budget arrives as the context deadline;
// an agent must self-limit against it (cooperative cancellation) and never
// block indefinitely past it. FindMove must have no observable effect
// other than its return value, so an abandoned call cannot corrupt a
// contest.
type Agent interface {
	FindMove(ctx context.Context, state game.State) (game.Move, error)
}
