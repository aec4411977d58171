package grann

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each search operation.
	// k is the number of neighbors requested, duration is the time taken,
	// err is nil if successful.
	RecordSearch(k int, duration time.Duration, err error)

	// RecordBatchSearch is called after each batch search operation.
	RecordBatchSearch(queries int, duration time.Duration, err error)

	// RecordBuild is called after each graph build. n is the dataset size.
	RecordBuild(n int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordBatchSearch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	BatchSearchCount atomic.Int64
	BatchSearchErrs  atomic.Int64
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildTotalNanos  atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (c *BasicMetricsCollector) RecordSearch(_ int, duration time.Duration, err error) {
	c.SearchCount.Add(1)
	c.SearchTotalNanos.Add(duration.Nanoseconds())

	if err != nil {
		c.SearchErrors.Add(1)
	}
}

// RecordBatchSearch implements MetricsCollector.
func (c *BasicMetricsCollector) RecordBatchSearch(_ int, _ time.Duration, err error) {
	c.BatchSearchCount.Add(1)

	if err != nil {
		c.BatchSearchErrs.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (c *BasicMetricsCollector) RecordBuild(_ int, duration time.Duration, err error) {
	c.BuildCount.Add(1)
	c.BuildTotalNanos.Add(duration.Nanoseconds())

	if err != nil {
		c.BuildErrors.Add(1)
	}
}

// AverageSearchLatency returns the mean search duration observed so far.
func (c *BasicMetricsCollector) AverageSearchLatency() time.Duration {
	count := c.SearchCount.Load()
	if count == 0 {
		return 0
	}

	return time.Duration(c.SearchTotalNanos.Load() / count)
}
