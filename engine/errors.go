package engine

import (
	"errors"
	"fmt"
	"time"

	"gamearena/game"
)

// ErrGameOver reports a run request against a contest that is already
// finished or spent. Programming error, always fatal.
var ErrGameOver = errors.New("contest already over")

// ConfigError reports an invalid contest configuration. Always fatal.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid contest config: " + e.Reason
}

// IllegalMoveError reports an agent returning a move outside the legal set
// of the state it was asked about.
type IllegalMoveError struct {
	Player game.Player
	Move   game.Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s played illegal move %s", e.Player, e.Move)
}

// TimeoutError reports an agent exceeding its move budget past the
// configured tolerance.
type TimeoutError struct {
	Player game.Player
	Budget time.Duration
	Took   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s exceeded move budget: allowed %s, took %s", e.Player, e.Budget, e.Took)
}

// AgentError wraps a failure inside an agent's FindMove call.
type AgentError struct {
	Player game.Player
	Err    error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("%s failed to decide: %v", e.Player, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}
