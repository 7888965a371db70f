package searcher

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Cutoffs   int64
	Depth     int     // Deepest completed depth
	Value     float64 // Value proved at Depth
}

type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	CompleteDepth(depth int, best Result)
	Complete() SearchMetric
}

type metricsCollector struct {
	mu        sync.Mutex
	startTime time.Time
	depth     int
	value     float64
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() Collector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.startTime = time.Now()
	m.depth = 0
	m.value = math.Inf(-1)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) CompleteDepth(depth int, best Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.depth = depth
	m.value = best.Value
}

func (m *metricsCollector) Complete() SearchMetric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return SearchMetric{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
		Depth:     m.depth,
		Value:     m.value,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() Collector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                    {}
func (m *noMetricsCollector) AddNode()                  {}
func (m *noMetricsCollector) AddCutoff()                {}
func (m *noMetricsCollector) CompleteDepth(int, Result) {}
func (m *noMetricsCollector) Complete() SearchMetric    { return SearchMetric{} }
