package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gamearena/agent"
	"gamearena/game"
	"gamearena/games/counting"
)

func TestPlayRunsContestToCompletion(t *testing.T) {
	history, result, err := Play(context.Background(), counting.Game{}, agent.First{}, agent.First{},
		Config{OnViolation: Abort})

	require.NoError(t, err, "a contest between well-behaved agents should finish cleanly")
	require.False(t, result.Draw(), "counting has no draws")
	require.Equal(t, game.White, result.Winner, "white reaches the target with two first-movers")
	require.Equal(t, counting.Target, history.Len(), "first-movers add 1 every turn")

	final, err := history.Replay()
	require.NoError(t, err, "the recorded history should replay")
	require.True(t, final.Terminal(), "replay should end in the terminal state")
}

func TestIllegalMoveForfeits(t *testing.T) {
	cheat := agent.NewScripted(counting.Move(7))

	history, result, err := Play(context.Background(), counting.Game{}, cheat, agent.First{},
		Config{OnViolation: Forfeit})

	require.NoError(t, err, "forfeit resolves the violation without an error")
	require.Equal(t, game.Black, result.Winner, "the offender's opponent takes the win")
	require.True(t, result.Forfeited, "the result should be marked as forfeited")
	require.Zero(t, history.Len(), "the illegal move must not enter the history")
}

func TestIllegalMoveAborts(t *testing.T) {
	cheat := agent.NewScripted(counting.Move(7))

	_, _, err := Play(context.Background(), counting.Game{}, cheat, agent.First{},
		Config{OnViolation: Abort})

	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal, "abort surfaces the violation")
	require.Equal(t, game.White, illegal.Player, "white played the illegal move")
}

func TestAgentErrorIsAttributed(t *testing.T) {
	boom := errors.New("decision backend unavailable")
	failing := agent.Func(func(game.State) (game.Move, error) { return nil, boom })

	_, _, err := Play(context.Background(), counting.Game{}, agent.First{}, failing,
		Config{OnViolation: Abort})

	var agentErr *AgentError
	require.ErrorAs(t, err, &agentErr, "a failing decision surfaces as an agent error")
	require.Equal(t, game.Black, agentErr.Player, "the failing side is named")
	require.ErrorIs(t, err, boom, "the underlying cause stays reachable")
}

func TestSlowAgentForfeitsWithinWindow(t *testing.T) {
	sleeper := agent.Func(func(s game.State) (game.Move, error) {
		time.Sleep(200 * time.Millisecond)
		return s.LegalMoves()[0], nil
	})

	start := time.Now()
	history, result, err := Play(context.Background(), counting.Game{}, sleeper, agent.First{},
		Config{MoveBudget: 30 * time.Millisecond, Tolerance: 20 * time.Millisecond, OnViolation: Forfeit})
	elapsed := time.Since(start)

	require.NoError(t, err, "forfeit resolves the timeout without an error")
	require.Equal(t, game.Black, result.Winner, "the slow side forfeits")
	require.True(t, result.Forfeited, "the result should be marked as forfeited")
	require.Zero(t, history.Len(), "no move was applied")
	require.Less(t, elapsed, 150*time.Millisecond,
		"the engine abandons the decision at budget plus tolerance instead of waiting it out")
}

func TestTimeoutAborts(t *testing.T) {
	sleeper := agent.Func(func(s game.State) (game.Move, error) {
		time.Sleep(200 * time.Millisecond)
		return s.LegalMoves()[0], nil
	})

	_, _, err := Play(context.Background(), counting.Game{}, sleeper, agent.First{},
		Config{MoveBudget: 30 * time.Millisecond, OnViolation: Abort})

	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout, "abort surfaces the timeout")
	require.Equal(t, game.White, timeout.Player, "the slow side is named")
	require.Equal(t, 30*time.Millisecond, timeout.Budget, "the blown budget is reported")
}

func TestCanceledContextIsNotAViolation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Play(ctx, counting.Game{}, agent.First{}, agent.First{},
		Config{OnViolation: Forfeit})

	require.ErrorIs(t, err, context.Canceled,
		"a canceled caller context propagates instead of forfeiting anyone")
}

func TestRunIsSingleUse(t *testing.T) {
	e, err := New(counting.Game{}, agent.First{}, agent.First{}, Config{OnViolation: Abort})
	require.NoError(t, err, "engine construction should succeed")

	_, _, err = e.Run(context.Background())
	require.NoError(t, err, "first run should finish cleanly")

	_, _, err = e.Run(context.Background())
	require.ErrorIs(t, err, ErrGameOver, "a spent engine refuses to run again")
}

func TestConfigValidation(t *testing.T) {
	valid := func() Config { return Config{OnViolation: Forfeit} }

	t.Run("default is accepted", func(t *testing.T) {
		_, err := New(counting.Game{}, agent.First{}, agent.First{}, valid())
		require.NoError(t, err, "a minimal config with a policy should validate")
	})

	t.Run("violation policy is required", func(t *testing.T) {
		_, err := New(counting.Game{}, agent.First{}, agent.First{}, Config{})
		var confErr *ConfigError
		require.ErrorAs(t, err, &confErr, "an unset policy must be rejected")
	})

	t.Run("negative budget is rejected", func(t *testing.T) {
		c := valid()
		c.MoveBudget = -time.Second
		_, err := New(counting.Game{}, agent.First{}, agent.First{}, c)
		var confErr *ConfigError
		require.ErrorAs(t, err, &confErr, "a negative budget must be rejected")
	})

	t.Run("negative tolerance is rejected", func(t *testing.T) {
		c := valid()
		c.Tolerance = -time.Millisecond
		_, err := New(counting.Game{}, agent.First{}, agent.First{}, c)
		var confErr *ConfigError
		require.ErrorAs(t, err, &confErr, "a negative tolerance must be rejected")
	})
}

// endlessGame never reaches a terminal state, for exercising the move cap.
type endlessGame struct{}

func (endlessGame) Name() string             { return "endless" }
func (endlessGame) InitialState() game.State { return endlessState{player: game.White} }

type endlessState struct {
	step   int
	player game.Player
}

func (s endlessState) Player() game.Player { return s.player }
func (s endlessState) LegalMoves() []game.Move {
	return []game.Move{counting.Move(1)}
}
func (s endlessState) Play(game.Move) game.State {
	return endlessState{step: s.step + 1, player: s.player.Opponent()}
}
func (s endlessState) Terminal() bool       { return false }
func (s endlessState) Winner() game.Player  { return game.Nobody }
func (s endlessState) Hash() game.StateHash { return game.StateHash(s.step) }
func (s endlessState) String() string       { return fmt.Sprintf("step %d", s.step) }

func TestMaxMovesCapsRunawayContest(t *testing.T) {
	history, _, err := Play(context.Background(), endlessGame{}, agent.First{}, agent.First{},
		Config{OnViolation: Abort, MaxMoves: 25})

	require.Error(t, err, "a contest that never terminates must be cut off")
	require.Equal(t, 25, history.Len(), "the history stops at the cap")
}
