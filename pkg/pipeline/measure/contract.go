package measure

import "time"

// Measure holds one metric per filter.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the runs of one filter.
type Metric interface {
	AddDuration(elapsed time.Duration, pixels int)
	AVGDuration() time.Duration
	Runs() int64
	// Throughput is the number of pixels processed per second, 0 before the first run.
	Throughput() float64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
