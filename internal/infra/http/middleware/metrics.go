package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	campaignsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaigns_generated_total",
			Help: "Total number of campaign generations",
		},
		[]string{"status"},
	)

	campaignsExported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaigns_exported_total",
			Help: "Total number of CSV exports",
		},
	)

	emailsNarrated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emails_narrated_total",
			Help: "Total number of email narrations",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of generator integration errors",
		},
		[]string{"endpoint"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordGeneration(status string) {
	campaignsGenerated.WithLabelValues(status).Inc()
}

func RecordExport() {
	campaignsExported.Inc()
}

func RecordNarration() {
	emailsNarrated.Inc()
}

func RecordIntegrationError(endpoint string) {
	integrationErrors.WithLabelValues(endpoint).Inc()
}
