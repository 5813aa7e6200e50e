package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one Search call.
type SearchMetrics struct {
	StartTime          time.Time
	Duration           time.Duration
	Iterations         int64
	Expansions         int64
	OracleCalls        int64
	Evaluations        int64
	EvaluationFailures int64
	TreeSize           int
}

type MetricsCollector interface {
	Start()
	AddIteration()
	AddExpansion()
	AddOracleCall()
	AddEvaluation()
	AddEvaluationFailure()
	Complete(treeSize int) SearchMetrics
}

type metricsCollector struct {
	startTime          time.Time
	iterations         atomic.Int64
	expansions         atomic.Int64
	oracleCalls        atomic.Int64
	evaluations        atomic.Int64
	evaluationFailures atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddIteration() {
	m.iterations.Add(1)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) AddOracleCall() {
	m.oracleCalls.Add(1)
}

func (m *metricsCollector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *metricsCollector) AddEvaluationFailure() {
	m.evaluationFailures.Add(1)
}

func (m *metricsCollector) Complete(treeSize int) SearchMetrics {
	return SearchMetrics{
		StartTime:          m.startTime,
		Duration:           time.Since(m.startTime),
		Iterations:         m.iterations.Load(),
		Expansions:         m.expansions.Load(),
		OracleCalls:        m.oracleCalls.Load(),
		Evaluations:        m.evaluations.Load(),
		EvaluationFailures: m.evaluationFailures.Load(),
		TreeSize:           treeSize,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                              {}
func (m *noMetricsCollector) AddIteration()                       {}
func (m *noMetricsCollector) AddExpansion()                       {}
func (m *noMetricsCollector) AddOracleCall()                      {}
func (m *noMetricsCollector) AddEvaluation()                      {}
func (m *noMetricsCollector) AddEvaluationFailure()               {}
func (m *noMetricsCollector) Complete(treeSize int) SearchMetrics { return SearchMetrics{} }
