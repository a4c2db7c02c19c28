package connect4

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gamearena/game"
)

// playout applies moves from the initial position, asserting each is legal.
func playout(t *testing.T, moves ...Move) game.State {
	t.Helper()
	state := Game{}.InitialState()
	for _, m := range moves {
		require.True(t, game.Legal(state, m), "move %s should be legal", m)
		state = state.Play(m)
	}
	return state
}

func TestInitialState(t *testing.T) {
	state := Game{}.InitialState()

	require.Equal(t, game.White, state.Player(), "white drops first")
	require.False(t, state.Terminal(), "empty board is not terminal")
	require.Len(t, state.LegalMoves(), Columns, "every column starts open")
}

func TestVerticalWin(t *testing.T) {
	state := playout(t, 3, 0, 3, 0, 3, 0, 3)

	require.True(t, state.Terminal(), "four in a column ends the game")
	require.Equal(t, game.White, state.Winner(), "white stacked four in column 3")
	require.Equal(t, game.Win, game.Utility(state, game.White), "winner utility")
	require.Equal(t, game.Loss, game.Utility(state, game.Black), "loser utility")
}

func TestHorizontalWin(t *testing.T) {
	state := playout(t, 0, 0, 1, 1, 2, 2, 3)

	require.True(t, state.Terminal(), "four along the bottom row ends the game")
	require.Equal(t, game.White, state.Winner(), "white owns the bottom row run")
}

func TestDiagonalWin(t *testing.T) {
	// White builds the rising diagonal from column 0 to column 3.
	state := playout(t, 0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3)

	require.True(t, state.Terminal(), "four on a diagonal ends the game")
	require.Equal(t, game.White, state.Winner(), "white owns the rising diagonal")
}

func TestFullColumnLeavesBoard(t *testing.T) {
	state := playout(t, 0, 0, 0, 0, 0, 0)

	require.NotContains(t, state.LegalMoves(), game.Move(Move(0)),
		"a full column must drop out of the legal moves")
	require.Len(t, state.LegalMoves(), Columns-1, "the other columns stay open")
}

func TestPlayIsImmutable(t *testing.T) {
	before := Game{}.InitialState()
	before.Play(Move(3))

	require.Equal(t, Game{}.InitialState(), before, "Play must not mutate the receiver")
}

func TestHashDistinguishesOwnership(t *testing.T) {
	a := playout(t, 0, 1)
	b := playout(t, 1, 0)

	require.NotEqual(t, a.Hash(), b.Hash(),
		"same occupied cells with swapped owners must hash differently")
}

func TestParseMoveRoundTrip(t *testing.T) {
	for col := Move(0); col < Columns; col++ {
		parsed, err := ParseMove(nil, col.String())
		require.NoError(t, err, "rendered move %s should parse", col)
		require.Equal(t, col, parsed, "parse should invert String")
	}

	_, err := ParseMove(nil, "7")
	require.Error(t, err, "column out of range should not parse")
}

func TestEvaluate(t *testing.T) {
	empty := Game{}.InitialState()
	require.Zero(t, Evaluate(empty, game.White), "empty board is balanced")

	center := empty.Play(Move(3))
	require.Positive(t, Evaluate(center, game.White), "a center disc favors its owner")
	require.InDelta(t, -Evaluate(center, game.White), Evaluate(center, game.Black), 1e-9,
		"evaluation is antisymmetric between the players")
}
