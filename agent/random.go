package agent

import (
	"context"

	"golang.org/x/exp/rand"

	"gamearena/game"
)

// Random picks uniformly among the legal moves. Seeded construction keeps
// contests reproducible.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(_ context.Context, state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}
