package metrics

import (
	"time"

	"github.com/google/uuid"

	"gamearena/game"
)

// AgentConfig describes one agent build used in an experiment.
type AgentConfig struct {
	ID        int
	Kind      string // "minimax", "random" or "first"
	Depth     int    // Minimax only
	TableSize int    // Minimax only
	Seed      uint64 // Random only
}

// ContestRecord summarizes one finished contest.
type ContestRecord struct {
	ID        uuid.UUID
	Game      string
	White     int // AgentConfig.ID
	Black     int // AgentConfig.ID
	Winner    game.Player
	Forfeited bool
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// MoveRecord captures one applied move of a contest.
type MoveRecord struct {
	Contest uuid.UUID
	Step    int
	Player  game.Player
	Move    string
	Took    time.Duration
}
