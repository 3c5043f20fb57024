package goArgon2

import "sync/atomic"

// MetricID defines a public type used by goArgon2 APIs.
type MetricID uint16

const (
	// MetricRunInvocations is an exported constant or variable used by the harness.
	MetricRunInvocations MetricID = iota
	// MetricRunFailures is an exported constant or variable used by the harness.
	MetricRunFailures
	// MetricBenchmarkSamples is an exported constant or variable used by the harness.
	MetricBenchmarkSamples
	// MetricBenchmarkFailures is an exported constant or variable used by the harness.
	MetricBenchmarkFailures
	// MetricTestVectorRuns is an exported constant or variable used by the harness.
	MetricTestVectorRuns

	metricCount
)

var metricNames = [metricCount]string{
	MetricRunInvocations:    "run_invocations",
	MetricRunFailures:       "run_failures",
	MetricBenchmarkSamples:  "benchmark_samples",
	MetricBenchmarkFailures: "benchmark_failures",
	MetricTestVectorRuns:    "test_vector_runs",
}

var metrics metricSet

type metricSet struct {
	counters [metricCount]atomic.Uint64
}

func (m *metricSet) inc(id MetricID) {
	m.counters[id].Add(1)
}

// MetricsSnapshot returns the current counter values keyed by metric name.
// Counters are process-local and never persisted.
func MetricsSnapshot() map[string]uint64 {
	out := make(map[string]uint64, metricCount)
	for id := MetricID(0); id < metricCount; id++ {
		out[metricNames[id]] = metrics.counters[id].Load()
	}
	return out
}
