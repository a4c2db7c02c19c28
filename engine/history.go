package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gamearena/game"
)

// Turn is one applied move: the state it was played in, the move, the
// resulting state, plus the mover and its decision time.
type Turn struct {
	Player game.Player
	Move   game.Move
	Before game.State
	After  game.State
	Took   time.Duration
}

// History is the append-only record of one contest, owned by the engine
// while the contest runs and handed to the caller on completion. Turns are
// indexed from contest start and never rewritten.
type History struct {
	Initial game.State
	Turns   []Turn
}

func (h *History) Len() int {
	return len(h.Turns)
}

// Moves returns the recorded moves in play order.
func (h *History) Moves() []game.Move {
	moves := make([]game.Move, len(h.Turns))
	for i, turn := range h.Turns {
		moves[i] = turn.Move
	}
	return moves
}

func (h *History) append(turn Turn) {
	h.Turns = append(h.Turns, turn)
}

// Replay re-applies every recorded move from the initial state and checks
// that each recorded state is reproduced, returning the final state. A
// history that fails to replay was either tampered with or produced by a
// non-deterministic game model. States are compared as values, not by
// hash, so a hash collision cannot mask a divergence.
func (h *History) Replay() (game.State, error) {
	state := h.Initial
	for i, turn := range h.Turns {
		if state != turn.Before {
			return nil, fmt.Errorf("turn %d: recorded state diverges from replay", i)
		}
		if !game.Legal(state, turn.Move) {
			return nil, fmt.Errorf("turn %d: recorded move %s is not legal on replay", i, turn.Move)
		}
		state = state.Play(turn.Move)
		if state != turn.After {
			return nil, fmt.Errorf("turn %d: replayed state diverges from record", i)
		}
	}
	return state, nil
}

// historyRecord is the serialized form: the move sequence only. States are
// re-derived on load, which doubles as a determinism check.
type historyRecord struct {
	Game  string   `json:"game"`
	Moves []string `json:"moves"`
}

// Save writes the history as JSON.
func (h *History) Save(w io.Writer, g game.Game) error {
	record := historyRecord{Game: g.Name(), Moves: make([]string, 0, len(h.Turns))}
	for _, turn := range h.Turns {
		record.Moves = append(record.Moves, turn.Move.String())
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return nil
}

// MoveParser converts a serialized move back into a move of the game,
// interpreted in the state it is to be played in.
type MoveParser func(state game.State, text string) (game.Move, error)

// LoadHistory reads a history written by Save and rebuilds every state by
// replaying the moves through the game model.
func LoadHistory(r io.Reader, g game.Game, parse MoveParser) (*History, error) {
	var record historyRecord
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	if record.Game != g.Name() {
		return nil, fmt.Errorf("history belongs to game %q, not %q", record.Game, g.Name())
	}

	history := &History{Initial: g.InitialState()}
	state := history.Initial
	for i, text := range record.Moves {
		move, err := parse(state, text)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		if !game.Legal(state, move) {
			return nil, fmt.Errorf("move %d: %s is not legal", i, move)
		}
		next := state.Play(move)
		history.append(Turn{Player: state.Player(), Move: move, Before: state, After: next})
		state = next
	}
	return history, nil
}
