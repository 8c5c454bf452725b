package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "keyval"

// Snapshot results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Snapshot metrics
	SnapshotsTotal      *prometheus.CounterVec
	SnapshotDuration    prometheus.Histogram
	SnapshotSize        prometheus.Gauge
	SnapshotLastSuccess prometheus.Gauge
}

// NewRegistry creates a registry with the application metrics and the
// standard Go runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "RPC requests handled, by procedure and result code",
		}, []string{"procedure", "code"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "RPC handling latency in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"procedure"}),

		SnapshotsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "total",
			Help:      "Snapshots attempted, by result",
		}, []string{"result"}),

		SnapshotDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "duration_seconds",
			Help:      "Time spent encoding and writing a snapshot",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),

		SnapshotSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "size_bytes",
			Help:      "Size of the last snapshot written",
		}),

		SnapshotLastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix timestamp of the last successful snapshot",
		}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.RequestDuration,
		r.SnapshotsTotal,
		r.SnapshotDuration,
		r.SnapshotSize,
		r.SnapshotLastSuccess,
	)
	return r
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// MustRegister registers additional collectors.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	if r == nil {
		return
	}
	r.reg.MustRegister(cs...)
}

// ObserveRequest records one handled RPC.
func (r *Registry) ObserveRequest(procedure, code string, d time.Duration) {
	if r == nil {
		return
	}
	r.RequestsTotal.WithLabelValues(procedure, code).Inc()
	r.RequestDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// ObserveSnapshot records one snapshot attempt. size is ignored on failure.
func (r *Registry) ObserveSnapshot(d time.Duration, size int64, err error) {
	if r == nil {
		return
	}
	r.SnapshotDuration.Observe(d.Seconds())
	if err != nil {
		r.SnapshotsTotal.WithLabelValues(ResultFailure).Inc()
		return
	}
	r.SnapshotsTotal.WithLabelValues(ResultSuccess).Inc()
	r.SnapshotSize.Set(float64(size))
	r.SnapshotLastSuccess.SetToCurrentTime()
}
