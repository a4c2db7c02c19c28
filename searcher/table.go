package searcher

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"gamearena/game"
)

type bound uint8

const (
	boundExact bound = iota
	boundLower
	boundUpper
)

type entry struct {
	depth int
	value float64
	bound bound
}

// boundFor classifies a search value against the window it was computed
// in: a value at or below the original alpha is only an upper bound and a
// value at or above the original beta only a lower bound.
func boundFor(value, alpha, beta float64) bound {
	switch {
	case value <= alpha:
		return boundUpper
	case value >= beta:
		return boundLower
	default:
		return boundExact
	}
}

// table is an LRU-bounded transposition table scoped to one FindMove call.
// Entries are keyed by state hash alone, so two positions hashing alike
// alias each other; per-call scoping and the depth check keep that
// acceptable for the position counts a single search visits.
type table struct {
	cache *lru.Cache[game.StateHash, entry]
}

func newTable(size int) *table {
	if size <= 0 {
		return &table{}
	}
	cache, err := lru.New[game.StateHash, entry](size)
	if err != nil { // lru.New only fails on size <= 0, guarded above
		panic(err)
	}
	return &table{cache: cache}
}

// get returns the stored entry for hash if it was searched at least as
// deep as depth.
func (t *table) get(hash game.StateHash, depth int) (entry, bool) {
	if t.cache == nil {
		return entry{}, false
	}
	e, ok := t.cache.Get(hash)
	if !ok || e.depth < depth {
		return entry{}, false
	}
	return e, true
}

func (t *table) put(hash game.StateHash, e entry) {
	if t.cache == nil {
		return
	}
	t.cache.Add(hash, e)
}
