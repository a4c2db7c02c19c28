package engine

import (
	"fmt"
	"time"
)

// Violation selects how the engine resolves an agent violation: an illegal
// move, a blown move budget or a failed decision call.
type Violation uint8

const (
	// The zero value is deliberately invalid: forfeit-vs-abort is a choice
	// the caller has to make, not one the engine guesses.
	violationUnset Violation = iota
	// Forfeit ends the contest with an immediate loss for the offender.
	Forfeit
	// Abort stops the contest and surfaces the violation as an error,
	// with the history accumulated so far intact.
	Abort
)

func (v Violation) String() string {
	switch v {
	case Forfeit:
		return "forfeit"
	case Abort:
		return "abort"
	default:
		return "unset"
	}
}

// ParseViolation converts a policy name into a Violation.
func ParseViolation(s string) (Violation, error) {
	switch s {
	case "forfeit":
		return Forfeit, nil
	case "abort":
		return Abort, nil
	default:
		return violationUnset, fmt.Errorf("unknown violation policy %q", s)
	}
}

const (
	// DefaultTolerance is the grace period past the move budget before a
	// decision counts as timed out. Cancellation is cooperative, so agents
	// need headroom to notice the deadline and unwind.
	DefaultTolerance = 50 * time.Millisecond

	// DefaultMaxMoves caps contest length against games that never reach a
	// terminal state.
	DefaultMaxMoves = 10000
)

// Config fixes the rules of engagement for one contest. Immutable once the
// engine is built.
type Config struct {
	// MoveBudget is the wall-clock budget per decision. Zero means
	// unlimited.
	MoveBudget time.Duration
	// Tolerance is how far past MoveBudget a decision may run before it is
	// abandoned. Defaults to DefaultTolerance.
	Tolerance time.Duration
	// OnViolation must be set to Forfeit or Abort.
	OnViolation Violation
	// MaxMoves caps the number of applied moves. Defaults to
	// DefaultMaxMoves.
	MaxMoves int
}

func (c *Config) validate() error {
	if c.MoveBudget < 0 {
		return &ConfigError{Reason: "move budget cannot be negative"}
	}
	if c.OnViolation != Forfeit && c.OnViolation != Abort {
		return &ConfigError{Reason: "violation policy must be forfeit or abort"}
	}
	if c.Tolerance < 0 {
		return &ConfigError{Reason: "tolerance cannot be negative"}
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxMoves < 0 {
		return &ConfigError{Reason: "max moves cannot be negative"}
	}
	if c.MaxMoves == 0 {
		c.MaxMoves = DefaultMaxMoves
	}
	return nil
}
