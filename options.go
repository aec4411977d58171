package grann

import (
	"runtime"

	"github.com/hupe1980/grann/distance"
)

type options struct {
	metric      distance.Metric
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
}

// Option configures an Index.
type Option func(*options)

func defaultOptions() options {
	return options{
		metric:      distance.MetricSquaredL2,
		logger:      NewLogger(nil),
		metrics:     NoopMetricsCollector{},
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithMetric configures the distance metric used to score candidates.
// Defaults to squared L2.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithLogger configures the logger. Defaults to a text logger on stderr.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection. Defaults to no-op.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metrics = c
	}
}

// WithParallelism bounds the number of concurrent search instances and batch
// workers. Defaults to GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}
