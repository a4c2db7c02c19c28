package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gamearena/agent"
	"gamearena/game"
)

type phase uint8

const (
	notStarted phase = iota
	inProgress
	finished
)

// Engine orchestrates one contest between two agents over a game model.
// It is strictly sequential: at most one agent is deciding at any moment
// and the engine alone owns the state and history between decisions. An
// Engine is single-use; independent contests run on independent engines
// and are safe to run in parallel.
type Engine struct {
	game    game.Game
	agents  map[game.Player]agent.Agent
	config  Config
	state   game.State
	history *History
	phase   phase
}

// New builds an engine for one contest. The white agent plays game.White
// and the black agent game.Black; the initial state decides who moves
// first.
func New(g game.Game, white, black agent.Agent, config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	state := g.InitialState()
	return &Engine{
		game: g,
		agents: map[game.Player]agent.Agent{
			game.White: white,
			game.Black: black,
		},
		config:  config,
		state:   state,
		history: &History{Initial: state},
	}, nil
}

// Play is the one-call entry point: build an engine and run the contest to
// completion.
func Play(ctx context.Context, g game.Game, white, black agent.Agent, config Config) (*History, game.Result, error) {
	e, err := New(g, white, black, config)
	if err != nil {
		return nil, game.Result{}, err
	}
	return e.Run(ctx)
}

// Run plays the contest until a terminal state or a violation. The
// returned history is valid even when err is non-nil: it holds every turn
// applied before the abort. Run consumes the engine; a second call fails
// with ErrGameOver.
func (e *Engine) Run(ctx context.Context) (*History, game.Result, error) {
	if e.phase != notStarted {
		return e.history, game.Result{}, ErrGameOver
	}
	e.phase = inProgress
	defer func() { e.phase = finished }()

	for {
		if e.state.Terminal() {
			result := game.TerminalResult(e.state)
			log.Info().
				Str("game", e.game.Name()).
				Stringer("winner", result.Winner).
				Int("moves", e.history.Len()).
				Msg("contest over")
			return e.history, result, nil
		}
		if e.history.Len() >= e.config.MaxMoves {
			return e.history, game.Result{}, fmt.Errorf("no terminal state after %d moves", e.config.MaxMoves)
		}

		mover := e.state.Player()
		move, took, err := e.decide(ctx, mover)
		if err != nil {
			if ctx.Err() != nil { // Caller gave up, not an agent violation
				return e.history, game.Result{}, ctx.Err()
			}
			return e.resolve(mover, err)
		}
		if !game.Legal(e.state, move) {
			return e.resolve(mover, &IllegalMoveError{Player: mover, Move: move})
		}

		next := e.state.Play(move)
		e.history.append(Turn{Player: mover, Move: move, Before: e.state, After: next, Took: took})
		e.state = next

		log.Debug().
			Stringer("player", mover).
			Stringer("move", move).
			Dur("took", took).
			Msg("move applied")
	}
}

// decide runs the mover's FindMove on its own goroutine and waits at most
// budget+tolerance for the answer. A decision that misses the window is
// abandoned, not interrupted: the goroutine keeps running until its
// context fires, but its result no longer matters and the engine moves on.
func (e *Engine) decide(ctx context.Context, mover game.Player) (game.Move, time.Duration, error) {
	ag := e.agents[mover]
	state := e.state

	moveCtx := ctx
	if e.config.MoveBudget > 0 {
		var cancel context.CancelFunc
		moveCtx, cancel = context.WithTimeout(ctx, e.config.MoveBudget)
		defer cancel()
	}

	type decision struct {
		move game.Move
		err  error
	}
	done := make(chan decision, 1) // Buffered so an abandoned decision does not leak
	start := time.Now()
	go func() {
		move, err := ag.FindMove(moveCtx, state)
		done <- decision{move: move, err: err}
	}()

	var window <-chan time.Time
	if e.config.MoveBudget > 0 {
		timer := time.NewTimer(e.config.MoveBudget + e.config.Tolerance)
		defer timer.Stop()
		window = timer.C
	}

	select {
	case d := <-done:
		took := time.Since(start)
		if d.err != nil {
			return nil, took, &AgentError{Player: mover, Err: d.err}
		}
		if e.config.MoveBudget > 0 && took > e.config.MoveBudget+e.config.Tolerance {
			return nil, took, &TimeoutError{Player: mover, Budget: e.config.MoveBudget, Took: took}
		}
		return d.move, took, nil
	case <-window:
		took := time.Since(start)
		return nil, took, &TimeoutError{Player: mover, Budget: e.config.MoveBudget, Took: took}
	case <-ctx.Done():
		return nil, time.Since(start), ctx.Err()
	}
}

// resolve settles a violation by the offending player according to the
// configured policy.
func (e *Engine) resolve(offender game.Player, cause error) (*History, game.Result, error) {
	log.Warn().
		Str("game", e.game.Name()).
		Stringer("player", offender).
		Err(cause).
		Msg("agent violation")

	if e.config.OnViolation == Forfeit {
		return e.history, game.Result{Winner: offender.Opponent(), Forfeited: true}, nil
	}
	return e.history, game.Result{}, cause
}
