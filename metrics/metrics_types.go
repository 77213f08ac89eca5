package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "campuswalk"

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Query Metrics
	QueriesTotal        *prometheus.CounterVec
	QueryDuration       *prometheus.HistogramVec
	QueryNodesSettled   *prometheus.HistogramVec
	QueryFrontierPushes *prometheus.HistogramVec

	// Graph Metrics
	GraphNodes        prometheus.Gauge
	GraphEdges        prometheus.Gauge
	GraphLoadsTotal   *prometheus.CounterVec
	GraphLoadDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
// Each Registry owns its own prometheus.Registry, so tests and multiple
// services in one process never collide on registration.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initHTTPMetrics()
	r.initQueryMetrics()
	r.initGraphMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
