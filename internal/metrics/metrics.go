// Package metrics defines Prometheus metrics for lvroute.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes used as the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvroute_query_duration_seconds",
			Help:    "Shortest-path query duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_queries_total",
			Help: "Total shortest-path queries by outcome",
		},
		[]string{"outcome"},
	)

	GraphNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lvroute_graph_nodes",
			Help: "Places in the loaded road network",
		},
	)

	GraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lvroute_graph_edges",
			Help: "Roads in the loaded road network",
		},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_http_errors_total",
			Help: "Total HTTP error responses by code",
		},
		[]string{"code"},
	)
)

func init() {
	prometheus.MustRegister(
		QueryDuration, QueriesTotal,
		GraphNodes, GraphEdges,
		RequestsTotal, ErrorsTotal,
	)
}

// Recorder feeds network events into the package collectors.
type Recorder struct{}

// ObserveQuery records one query's duration under its outcome.
func (Recorder) ObserveQuery(outcome string, elapsed time.Duration) {
	QueryDuration.Observe(elapsed.Seconds())
	QueriesTotal.WithLabelValues(outcome).Inc()
}

// SetGraphSize publishes the loaded network's size.
func (Recorder) SetGraphSize(nodes, edges int) {
	GraphNodes.Set(float64(nodes))
	GraphEdges.Set(float64(edges))
}
