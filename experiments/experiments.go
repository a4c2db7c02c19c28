// Package experiments runs series of contests between agent
// configurations and writes the collected records to CSV for offline
// analysis. It is a flat matchup runner, not a tournament scheduler.
package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gamearena/agent"
	"gamearena/engine"
	"gamearena/experiments/metrics"
	"gamearena/game"
	"gamearena/searcher"
)

// Experiment pits pairs of agent configurations against each other on one
// game, a fixed number of contests per matchup.
type Experiment struct {
	Name     string
	Game     game.Game
	Evaluate game.Evaluate // Heuristic handed to minimax agents
	Configs  []metrics.AgentConfig
	Matchups [][2]metrics.AgentConfig
	Contests int // Per matchup
	Engine   engine.Config
}

// Run plays every matchup and persists agent configs, contest records and
// move records under results/<name>/<timestamp>.
func (x *Experiment) Run(ctx context.Context) error {
	var contestRecords []metrics.ContestRecord
	var moveRecords []metrics.MoveRecord

	log.Info().Str("experiment", x.Name).Msg("starting experiment")

	for mi, matchup := range x.Matchups {
		log.Info().
			Int("matchup", mi+1).
			Int("total", len(x.Matchups)).
			Interface("white", matchup[0]).
			Interface("black", matchup[1]).
			Msg("starting matchup")

		for i := 0; i < x.Contests; i++ {
			record, moves, err := x.runContest(ctx, matchup[0], matchup[1])
			if err != nil {
				return fmt.Errorf("matchup %d contest %d: %w", mi+1, i+1, err)
			}
			contestRecords = append(contestRecords, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().
				Int("matchup", mi+1).
				Int("contest", i+1).
				Stringer("winner", record.Winner).
				Int("moves", record.Moves).
				Msg("contest completed")
		}
	}

	log.Info().Str("experiment", x.Name).Msg("completed experiment")

	writer, err := metrics.NewWriter(x.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return err
	}
	if err := writer.WriteContestRecords(contestRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func (x *Experiment) runContest(ctx context.Context, white, black metrics.AgentConfig) (metrics.ContestRecord, []metrics.MoveRecord, error) {
	whiteAgent, err := x.buildAgent(white)
	if err != nil {
		return metrics.ContestRecord{}, nil, err
	}
	blackAgent, err := x.buildAgent(black)
	if err != nil {
		return metrics.ContestRecord{}, nil, err
	}

	id := uuid.New()
	start := time.Now()
	history, result, err := engine.Play(ctx, x.Game, whiteAgent, blackAgent, x.Engine)
	if err != nil {
		return metrics.ContestRecord{}, nil, err
	}

	record := metrics.ContestRecord{
		ID:        id,
		Game:      x.Game.Name(),
		White:     white.ID,
		Black:     black.ID,
		Winner:    result.Winner,
		Forfeited: result.Forfeited,
		Moves:     history.Len(),
		StartTime: start,
		Duration:  time.Since(start),
	}

	moves := make([]metrics.MoveRecord, history.Len())
	for i, turn := range history.Turns {
		moves[i] = metrics.MoveRecord{
			Contest: id,
			Step:    i + 1,
			Player:  turn.Player,
			Move:    turn.Move.String(),
			Took:    turn.Took,
		}
	}
	return record, moves, nil
}

func (x *Experiment) buildAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case "minimax":
		options := []searcher.Option{searcher.WithDepth(config.Depth)}
		if x.Evaluate != nil {
			options = append(options, searcher.WithEvaluationFn(x.Evaluate))
		}
		if config.TableSize > 0 {
			options = append(options, searcher.WithTableSize(config.TableSize))
		}
		return searcher.NewMinimax(options...), nil
	case "random":
		return agent.NewRandom(config.Seed), nil
	case "first":
		return agent.First{}, nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
