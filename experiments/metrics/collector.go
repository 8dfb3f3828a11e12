package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int // Positions reached by applying a move
	Terminals  int // Nodes where the game finished
	Horizons   int // Nodes scored heuristically at the depth limit
}

type MoveMetric struct {
	Step    int
	Player  string
	Move    string
	Outcome string
	Ties    int // Number of moves tied with the chosen one
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Result         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddTerminal()
	AddHorizon()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	terminals  atomic.Int64
	horizons   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.horizons.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddHorizon() {
	m.horizons.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Terminals:  int(m.terminals.Load()),
		Horizons:   int(m.horizons.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddTerminal()                {}
func (m *dummyCollector) AddHorizon()                 {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
