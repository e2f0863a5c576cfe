package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lenso",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lenso",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lenso",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Credit ledger metrics
	deductionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lenso",
			Subsystem: "credits",
			Name:      "deductions_total",
			Help:      "Total number of credit deduction attempts",
		},
		[]string{"outcome"},
	)

	creditsDeducted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lenso",
			Subsystem: "credits",
			Name:      "deducted_total",
			Help:      "Total number of credits deducted",
		},
	)

	// Provisioning metrics
	usersProvisioned = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lenso",
			Subsystem: "user",
			Name:      "provisioned_total",
			Help:      "Total number of users provisioned with the free plan",
		},
	)

	// Database metrics
	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lenso",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "table"},
	)
)

// Deduction outcomes
const (
	OutcomeSuccess      = "success"
	OutcomeInsufficient = "insufficient"
	OutcomeError        = "error"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		// Get route pattern from chi
		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordDeduction records a credit deduction attempt and its outcome
func RecordDeduction(outcome string, amount int64) {
	deductionsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		creditsDeducted.Add(float64(amount))
	}
}

// RecordUserProvisioned records a completed free-plan provisioning
func RecordUserProvisioned() {
	usersProvisioned.Inc()
}

// RecordDBQuery records the duration of a database query
func RecordDBQuery(operation, table string, duration time.Duration) {
	dbQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}
