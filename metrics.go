package qlocate

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                sync.RWMutex
	TotalRuns         int64
	LowConfidenceRuns int64
	OracleCalls       int64
	DiffusionCalls    int64
	TotalRunTime      time.Duration
	AverageRunTime    time.Duration
	LastRun           time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// recordRun accumulates per-run counters. Oracle and diffusion are
// applied once each per scheduled round.
func (m *Metrics) recordRun(iterations int, elapsed time.Duration, lowConfidence bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalRuns++
	if lowConfidence {
		m.LowConfidenceRuns++
	}
	m.OracleCalls += int64(iterations)
	m.DiffusionCalls += int64(iterations)
	m.TotalRunTime += elapsed
	m.AverageRunTime = m.TotalRunTime / time.Duration(m.TotalRuns)
	m.LastRun = time.Now()
}

// ExportMetrics returns a snapshot for the reporting layer.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"total_runs":          m.TotalRuns,
		"low_confidence_runs": m.LowConfidenceRuns,
		"oracle_calls":        m.OracleCalls,
		"diffusion_calls":     m.DiffusionCalls,
		"avg_run_ms":          m.AverageRunTime.Milliseconds(),
	}
}
