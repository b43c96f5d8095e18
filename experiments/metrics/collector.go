package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy  string
	Workers   int
	MoveLimit int
	RootMoves int
	Duration  time.Duration
	Nodes     int64 // Positions visited, root excluded
	Terminals int64 // Finished positions scored exactly
	Estimates int64 // Estimator calls
}

type MoveMetric struct {
	Step   int
	Player int // Player ID, 1 moves first
	SearchMetric
}

type GameMetric struct {
	StartingAgent int // AgentConfig.ID
	Winner        int // Player ID, 0 for a draw or an unfinished game
	Finished      bool
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

// Collector is shared by every goroutine of a search, so implementations must
// be safe for concurrent use.
type Collector interface {
	Start(strategy string, workers, moveLimit, rootMoves int)
	AddNode()
	AddTerminal()
	AddEstimate()
	Complete() SearchMetric
}

type collector struct {
	strategy  string
	workers   int
	moveLimit int
	rootMoves int
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
	estimates atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, workers, moveLimit, rootMoves int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.workers = workers
	m.moveLimit = moveLimit
	m.rootMoves = rootMoves
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.estimates.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddEstimate() {
	m.estimates.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:  m.strategy,
		Workers:   m.workers,
		MoveLimit: m.moveLimit,
		RootMoves: m.rootMoves,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Terminals: m.terminals.Load(),
		Estimates: m.estimates.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, workers, moveLimit, rootMoves int) {}
func (m *dummyCollector) AddNode()                                                 {}
func (m *dummyCollector) AddTerminal()                                             {}
func (m *dummyCollector) AddEstimate()                                             {}
func (m *dummyCollector) Complete() SearchMetric                                   { return SearchMetric{} }
