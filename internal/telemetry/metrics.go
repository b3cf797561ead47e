package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler returns the /metrics handler for gatherer.
func MetricsHandler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// StartMetricsServer serves Prometheus metrics on addr. It blocks until the
// server fails.
func StartMetricsServer(addr string, gatherer prometheus.Gatherer) error {
	LogInfo("Starting metrics server", "addr", addr)
	return http.ListenAndServe(addr, MetricsHandler(gatherer))
}
