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

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of borrower leads captured",
		},
		[]string{"segment", "score"},
	)

	locksAcquired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_locks_acquired_total",
			Help: "Total number of lead locks granted",
		},
	)

	lockContention = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_lock_contention_total",
			Help: "Total number of lock attempts denied because another broker held the lead",
		},
	)

	unlocksCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_unlocks_completed_total",
			Help: "Total number of leads permanently unlocked",
		},
	)

	webhookRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_rejections_total",
			Help: "Total number of rejected payment webhook deliveries",
		},
		[]string{"reason"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
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

func RecordLeadCaptured(segment, score string) {
	leadsCaptured.WithLabelValues(segment, score).Inc()
}

func RecordLockAcquired() {
	locksAcquired.Inc()
}

func RecordLockContention() {
	lockContention.Inc()
}

func RecordUnlockCompleted() {
	unlocksCompleted.Inc()
}

func RecordWebhookRejection(reason string) {
	webhookRejections.WithLabelValues(reason).Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
