package game

import "fmt"

// Player identifies one of the two sides in a contest. The zero value
// Nobody stands for "no winner", ie. a draw.
type Player uint8

const (
	Nobody Player = iota
	White
	Black
)

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "nobody"
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return Nobody
	}
}

// StateHash is a cheap fingerprint of a position, used by transposition
// tables and history replay checks. Games with few reachable positions may
// encode the full position; larger games can use Zobrist-style hashing and
// tolerate rare collisions.
type StateHash uint64

// Move is a game-specific move descriptor. Implementations must be
// comparable with == (usable as map keys) so callers can test membership
// in the legal move set.
type Move interface {
	fmt.Stringer
}

// State is an immutable snapshot of a position - operations on State always
// return a new copy. Like Move, implementations must be comparable with ==
// so histories can verify replayed states against recorded ones.
type State interface {
	// Player returns the side to move.
	Player() Player
	// LegalMoves enumerates every move legal in this state. The result is
	// non-empty unless Terminal reports true. Enumeration order must be
	// stable within one call; searchers break ties by enumeration order.
	LegalMoves() []Move
	// Play applies a legal move and returns the successor state. Behavior
	// is undefined for moves outside LegalMoves.
	Play(Move) State
	// Terminal reports whether the game is over.
	Terminal() bool
	// Winner returns the winning side of a terminal state, or Nobody for a
	// draw. Only defined when Terminal reports true.
	Winner() Player
	Hash() StateHash
}

// Game ties a rule set to its starting position.
type Game interface {
	Name() string
	InitialState() State
}

// Legal reports whether move belongs to state's legal move set.
func Legal(state State, move Move) bool {
	for _, m := range state.LegalMoves() {
		if m == move {
			return true
		}
	}
	return false
}
