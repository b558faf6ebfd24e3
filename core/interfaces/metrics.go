package interfaces

import "time"

// Metrics records pipeline counters. The Prometheus adapter lives in
// infrastructure/metrics; NopMetrics is used when none is injected.
type Metrics interface {
	// ObserveUpstream records one call to an external provider
	ObserveUpstream(api string, ok bool, duration time.Duration)

	// ObserveScore records which scorer produced a listing's score
	ObserveScore(source string)

	// ObserveAdoptionSearch records one completed adoption search
	ObserveAdoptionSearch(listings int, onlyFallbacks bool)
}

// NopMetrics discards all observations
type NopMetrics struct{}

func (NopMetrics) ObserveUpstream(string, bool, time.Duration) {}
func (NopMetrics) ObserveScore(string)                         {}
func (NopMetrics) ObserveAdoptionSearch(int, bool)             {}

// MetricsOrNop returns m, or NopMetrics when m is nil
func MetricsOrNop(m Metrics) Metrics {
	if m == nil {
		return NopMetrics{}
	}
	return m
}
