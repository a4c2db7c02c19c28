package searcher

import (
	"context"
	"errors"
	"math"

	"gamearena/agent"
	"gamearena/game"
)

const DefaultDepth = 8

// The context is polled once per pollInterval node expansions, keeping the
// overshoot small relative to any realistic move budget without putting a
// check on every expansion.
const pollInterval = 64

var errInterrupted = errors.New("search interrupted")

type Option func(m *Minimax)

// Minimax is a depth and deadline bounded alpha-beta minimax agent. All
// search state is scoped to a single FindMove call, so one Minimax value
// can play any number of sequential contests.
type Minimax struct {
	depth     int
	evaluate  game.Evaluate
	tableSize int
	metrics   Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithTableSize bounds the per-search transposition table to the given
// number of entries. Zero disables the table.
func WithTableSize(entries int) Option {
	return func(m *Minimax) {
		if entries > 0 {
			m.tableSize = entries
		}
	}
}

func WithMetrics(collector Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    DefaultDepth,
		evaluate: game.Neutral,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove searches the move tree by iterative deepening: depth 1 first,
// then one ply deeper per pass until the depth limit or the ctx expires
// (deadline or cancellation). An interrupted pass is discarded, so the
// returned move always comes from the deepest fully-completed horizon
// (anytime behavior). Equal values break toward the first move in
// enumeration order, which keeps results reproducible.
func (m *Minimax) FindMove(ctx context.Context, state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, agent.ErrNoMoves
	}

	s := &search{
		ctx:      ctx,
		root:     state.Player(),
		evaluate: m.evaluate,
		table:    newTable(m.tableSize),
		metrics:  m.metrics,
	}

	m.metrics.Start()

	best := moves[0]
	for depth := 1; depth <= m.depth; depth++ {
		move, err := s.searchRoot(state, moves, depth)
		if err != nil {
			break // Interrupted mid-pass: keep the last completed depth
		}
		best = move
		m.metrics.CompleteDepth(depth)
	}
	return best, nil
}

// search carries the transient per-call state of one FindMove: nothing in
// it survives the call or is shared across calls.
type search struct {
	ctx      context.Context
	root     game.Player
	evaluate game.Evaluate
	table    *table
	nodes    int
	metrics  Collector
}

func (s *search) searchRoot(state game.State, moves []game.Move, depth int) (game.Move, error) {
	best := moves[0]
	alpha := math.Inf(-1)
	beta := math.Inf(1)

	for _, move := range moves {
		value, err := s.minimax(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return nil, err
		}
		if value > alpha {
			alpha = value
			best = move
		}
	}
	return best, nil
}

// minimax returns the value of state for the root player, exploring at
// most depth further plies within the [alpha, beta] window.
func (s *search) minimax(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := s.poll(); err != nil {
		return 0, err
	}
	s.metrics.AddNode()

	if state.Terminal() {
		// Scale by remaining depth so nearer wins (and more distant
		// losses) rank higher than ones deeper in the tree.
		return game.Utility(state, s.root) * float64(1+depth), nil
	}

	hash := state.Hash()
	if e, ok := s.table.get(hash, depth); ok {
		s.metrics.AddTableHit()
		switch e.bound {
		case boundExact:
			return e.value, nil
		case boundLower:
			alpha = math.Max(alpha, e.value)
		case boundUpper:
			beta = math.Min(beta, e.value)
		}
		if alpha >= beta {
			return e.value, nil
		}
	}

	if depth == 0 {
		return s.evaluate(state, s.root), nil
	}

	alpha0, beta0 := alpha, beta
	var value float64
	if state.Player() == s.root { // Maximizing node
		value = math.Inf(-1)
		for _, move := range state.LegalMoves() {
			v, err := s.minimax(state.Play(move), depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			value = math.Max(value, v)
			alpha = math.Max(alpha, value)
			if alpha >= beta { // Beta cut-off
				s.metrics.AddPrune()
				break
			}
		}
	} else { // Minimizing node
		value = math.Inf(1)
		for _, move := range state.LegalMoves() {
			v, err := s.minimax(state.Play(move), depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			value = math.Min(value, v)
			beta = math.Min(beta, value)
			if beta <= alpha { // Alpha cut-off
				s.metrics.AddPrune()
				break
			}
		}
	}

	s.table.put(hash, entry{depth: depth, value: value, bound: boundFor(value, alpha0, beta0)})
	return value, nil
}

// poll stops the search when the context expires, covering both a blown
// deadline and a caller that gave up on a contest with no move budget.
func (s *search) poll() error {
	s.nodes++
	if s.nodes%pollInterval != 0 {
		return nil
	}
	if s.ctx.Err() != nil {
		return errInterrupted
	}
	return nil
}
