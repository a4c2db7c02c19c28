package game

// Evaluate scores a non-terminal state to a value between Loss and Win
// indicating how favorable the position is for player p. Heuristics are
// pluggable so later evaluation backends replace only this collaborator.
type Evaluate func(s State, p Player) float64

// Neutral is the fallback heuristic for games that supply none: it values
// every position as balanced, so depth-limited search degrades to
// preferring proven outcomes within the horizon.
func Neutral(State, Player) float64 {
	return 0
}
