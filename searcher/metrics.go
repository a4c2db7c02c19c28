package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one FindMove call.
type SearchMetrics struct {
	Duration  time.Duration
	Nodes     int64
	Prunes    int64
	TableHits int64
	Depth     int64 // Deepest fully-completed search depth
}

type Collector interface {
	Start()
	AddNode()
	AddPrune()
	AddTableHit()
	CompleteDepth(depth int)
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	prunes    atomic.Int64
	tableHits atomic.Int64
	depth     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.prunes.Store(0)
	m.tableHits.Store(0)
	m.depth.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.depth.Store(int64(depth))
}

func (m *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Prunes:    m.prunes.Load(),
		TableHits: m.tableHits.Load(),
		Depth:     m.depth.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddPrune()               {}
func (m *dummyCollector) AddTableHit()            {}
func (m *dummyCollector) CompleteDepth(depth int) {}
func (m *dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
