package middleware

import (
	"net/http"
	"strconv"
	"time"

	"eventlineup/internal/pkg/metrics"
)

// unmatchedRoute labels requests no route pattern matched, keeping path cardinality bounded.
const unmatchedRoute = "unmatched"

// PrometheusMiddleware records request count and latency per method, route pattern and status.
// It must wrap the ServeMux directly so the matched pattern is visible after next returns.
func PrometheusMiddleware(m *metrics.Metrics, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := r.Pattern
		if path == "" {
			path = unmatchedRoute
		}
		m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
