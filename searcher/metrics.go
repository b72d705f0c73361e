package searcher

import (
	"time"
)

type SearchMetric struct {
	StartTime   time.Time
	Duration    time.Duration
	Depth       int
	Nodes       int64
	Evaluations int64
	Cutoffs     int64
}

type MetricsCollector interface {
	Start(depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

// collector is not safe for concurrent use; one search runs at a time.
type collector struct {
	startTime   time.Time
	depth       int
	nodes       int64
	evaluations int64
	cutoffs     int64
}

func NewMetricsCollector() MetricsCollector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes = 0
	m.evaluations = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddEvaluation() {
	m.evaluations++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Depth:       m.depth,
		Nodes:       m.nodes,
		Evaluations: m.evaluations,
		Cutoffs:     m.cutoffs,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int)              {}
func (m *noMetricsCollector) AddNode()               {}
func (m *noMetricsCollector) AddEvaluation()         {}
func (m *noMetricsCollector) AddCutoff()             {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
