// Package metrics provides Prometheus metrics for the CLABE MCP server.
// It tracks tool calls, validation outcomes, catalog lookups and HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "clabe_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// ValidationsTotal counts CLABE validations by outcome ("valid" or the error kind)
	ValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "validations_total",
		Help:      "CLABE validations by result",
	}, []string{"result"})

	// ArgumentTypeErrors counts validate calls rejected for a non-string argument
	ArgumentTypeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "argument_type_errors_total",
		Help:      "Validate calls rejected because the argument was not a string",
	})

	// CalculationsTotal counts CLABE constructions by status
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "calculations_total",
		Help:      "CLABE constructions by status",
	}, []string{"status"})

	// LookupsTotal counts catalog lookups by table and whether the code was found
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "lookups_total",
		Help:      "Catalog lookups by table and result",
	}, []string{"table", "found"})

	// RateLimitRejections counts requests rejected due to rate limiting
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected due to rate limiting",
	})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})

	// HTTPRequestDuration measures HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	RequestsTotal.WithLabelValues(tool, status(success)).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordValidation records a validation outcome. An empty kind means valid.
func RecordValidation(kind string) {
	if kind == "" {
		kind = "valid"
	}
	ValidationsTotal.WithLabelValues(kind).Inc()
}

// RecordCalculation records a CLABE construction
func RecordCalculation(success bool) {
	CalculationsTotal.WithLabelValues(status(success)).Inc()
}

// RecordLookup records a catalog lookup
func RecordLookup(table string, found bool) {
	f := "false"
	if found {
		f = "true"
	}
	LookupsTotal.WithLabelValues(table, f).Inc()
}

// RecordHTTPRequest records an HTTP transport request
func RecordHTTPRequest(method, path, statusCode string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
