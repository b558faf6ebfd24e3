// ABOUTME: Prometheus implementation of the pipeline metrics interface
// ABOUTME: Owns its registry so the API can expose it on /metrics and tests stay isolated

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catbytes"

// Prometheus implements interfaces.Metrics
type Prometheus struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	scores           *prometheus.CounterVec
	searches         *prometheus.CounterVec
	listings         prometheus.Histogram
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewPrometheus registers all collectors on a fresh registry
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Calls to external search, AI and DNS providers",
			},
			[]string{"api", "outcome"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_duration_seconds",
				Help:      "Duration of external provider calls in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"api"},
		),
		scores: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "listing_scores_total",
				Help:      "Listings scored, by the scorer that produced the final score",
			},
			[]string{"source"},
		),
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "adoption_searches_total",
				Help:      "Completed adoption searches",
			},
			[]string{"fallback"},
		),
		listings: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "adoption_listings_returned",
				Help:      "Listings returned per adoption search",
				Buckets:   []float64{0, 1, 2, 5, 10, 15, 20},
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// ObserveUpstream records one call to an external provider
func (p *Prometheus) ObserveUpstream(api string, ok bool, duration time.Duration) {
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	p.upstreamRequests.WithLabelValues(api, outcome).Inc()
	p.upstreamDuration.WithLabelValues(api).Observe(duration.Seconds())
}

// ObserveScore records which scorer produced a listing's score
func (p *Prometheus) ObserveScore(source string) {
	p.scores.WithLabelValues(source).Inc()
}

// ObserveAdoptionSearch records one completed adoption search
func (p *Prometheus) ObserveAdoptionSearch(listings int, onlyFallbacks bool) {
	p.searches.WithLabelValues(strconv.FormatBool(onlyFallbacks)).Inc()
	p.listings.Observe(float64(listings))
}

// ObserveHTTP records one served request
func (p *Prometheus) ObserveHTTP(method, route string, status int, duration time.Duration) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
