package metrics

import (
	"time"
)

// Query status labels.
const (
	StatusOK      = "ok"
	StatusNoPath  = "no_path"
	StatusUnknown = "unknown_location"
	StatusError   = "error"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordQuery records a path query execution
func (r *Registry) RecordQuery(queryType, status string, duration time.Duration, nodesSettled, frontierPushes int) {
	r.QueriesTotal.WithLabelValues(queryType, status).Inc()
	r.QueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
	r.QueryNodesSettled.WithLabelValues(queryType).Observe(float64(nodesSettled))
	r.QueryFrontierPushes.WithLabelValues(queryType).Observe(float64(frontierPushes))
}

// RecordLoad records a campus map load attempt
func (r *Registry) RecordLoad(status string, duration time.Duration) {
	r.GraphLoadsTotal.WithLabelValues(status).Inc()
	r.GraphLoadDuration.Observe(duration.Seconds())
}

// SetGraphSize updates the node and edge gauges
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}
