package systems

import "time"

// System is a unit of collider processing that reports its own metrics.
type System interface {
	Name() string
	GetMetrics() Metrics
}

// Metrics provides runtime metrics for a system
type Metrics struct {
	ExecutionCount       uint64
	TotalExecutionTime   time.Duration
	AverageExecutionTime time.Duration
	MaxExecutionTime     time.Duration
	LastExecutionTime    time.Duration
	EntitiesProcessed    uint64
	ErrorCount           uint64
	LastError            error
}

// Record folds one execution into m.
func (m *Metrics) Record(elapsed time.Duration, entities int, errs int, lastErr error) {
	m.ExecutionCount++
	m.TotalExecutionTime += elapsed
	m.AverageExecutionTime = m.TotalExecutionTime / time.Duration(m.ExecutionCount)
	m.MaxExecutionTime = max(m.MaxExecutionTime, elapsed)
	m.LastExecutionTime = elapsed
	m.EntitiesProcessed += uint64(entities)
	m.ErrorCount += uint64(errs)
	if lastErr != nil {
		m.LastError = lastErr
	}
}
