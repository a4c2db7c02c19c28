package game

// Terminal utilities of a decided contest.
const (
	Win  = 1.0
	Loss = -Win
)

// Result is the outcome of a finished contest.
type Result struct {
	Winner    Player // Nobody means a draw
	Forfeited bool   // the loser forfeited (illegal move, timeout or failure)
}

func (r Result) Draw() bool {
	return r.Winner == Nobody
}

// Utility returns the terminal utility of the contest for p: Win, Loss or
// zero for a draw. The utilities of the two players always sum to zero.
func (r Result) Utility(p Player) float64 {
	switch r.Winner {
	case Nobody:
		return 0
	case p:
		return Win
	default:
		return Loss
	}
}

// TerminalResult reads the outcome recorded in a terminal state.
func TerminalResult(s State) Result {
	return Result{Winner: s.Winner()}
}

// Utility returns the terminal utility of state s for player p. Only
// defined when s is terminal.
func Utility(s State, p Player) float64 {
	return TerminalResult(s).Utility(p)
}
