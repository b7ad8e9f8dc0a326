// Package metrics exposes Prometheus counters and gauges describing the
// synchronization layer: pulls, outbox flushes, pending entries, resolver
// target and local server traffic.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
// Components therefore take an optional *Metrics and tests may pass nil.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inventory"

// Operation names used with [Metrics.ObserveSync].
const (
	OpPull  = "pull"
	OpFlush = "flush"
)

// Fallback kinds used with [Metrics.IncFallback].
const (
	FallbackLocalServer = "local_server"
	FallbackLocalQuery  = "local_query"
	FallbackQueued      = "queued"
)

// Metrics owns a private registry so several instances can coexist in one
// process (tests, the in-process local server of the client).
type Metrics struct {
	registry *prometheus.Registry

	syncRuns       *prometheus.CounterVec
	syncDuration   *prometheus.HistogramVec
	categoryRecs   *prometheus.GaugeVec
	pullFailures   *prometheus.CounterVec
	outboxPending  *prometheus.GaugeVec
	flushApplied   prometheus.Counter
	resolverTarget *prometheus.GaugeVec
	fallbacks      *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Pull and flush runs by result.",
		}, []string{"operation", "result"}),
		syncDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of pull and flush runs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		categoryRecs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_records",
			Help:      "Records stored in the last snapshot of each category.",
		}, []string{"category"}),
		pullFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pull_failures_total",
			Help:      "Categories that failed to refresh during a pull.",
		}, []string{"category"}),
		outboxPending: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outbox_pending",
			Help:      "Pending outbox entries per category.",
		}, []string{"category"}),
		flushApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_applied_total",
			Help:      "Outbox entries successfully replayed against the live server.",
		}),
		resolverTarget: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resolver_target",
			Help:      "1 for the server currently targeted by requests.",
		}, []string{"target"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_fallbacks_total",
			Help:      "Requests answered by a fallback path.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests served by the local server.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Local server request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.syncRuns,
		m.syncDuration,
		m.categoryRecs,
		m.pullFailures,
		m.outboxPending,
		m.flushApplied,
		m.resolverTarget,
		m.fallbacks,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveSync records one pull or flush run.
func (m *Metrics) ObserveSync(operation string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	result := "error"
	if success {
		result = "success"
	}
	m.syncRuns.WithLabelValues(operation, result).Inc()
	m.syncDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetSnapshotSize records the number of records stored for category.
func (m *Metrics) SetSnapshotSize(category models.Category, n int) {
	if m == nil {
		return
	}
	m.categoryRecs.WithLabelValues(string(category)).Set(float64(n))
}

// IncPullFailure counts a category that failed to refresh.
func (m *Metrics) IncPullFailure(category models.Category) {
	if m == nil {
		return
	}
	m.pullFailures.WithLabelValues(string(category)).Inc()
}

// SetPending publishes the pending outbox entry counts. Categories missing
// from counts are reported as zero.
func (m *Metrics) SetPending(counts map[models.Category]int) {
	if m == nil {
		return
	}
	for _, c := range models.Categories() {
		m.outboxPending.WithLabelValues(string(c)).Set(float64(counts[c]))
	}
}

// AddApplied counts outbox entries replayed successfully.
func (m *Metrics) AddApplied(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.flushApplied.Add(float64(n))
}

// SetTarget marks target as the server requests go to.
func (m *Metrics) SetTarget(target string, all ...string) {
	if m == nil {
		return
	}
	for _, t := range all {
		m.resolverTarget.WithLabelValues(t).Set(0)
	}
	m.resolverTarget.WithLabelValues(target).Set(1)
}

// IncFallback counts a request served by a fallback path.
func (m *Metrics) IncFallback(kind string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(kind).Inc()
}

// ObserveHTTP records one request served by the local server.
func (m *Metrics) ObserveHTTP(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(duration.Seconds())
}
