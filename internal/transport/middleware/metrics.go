package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/today-record-backend/internal/metrics"
)

// Instrument records request count and latency for one route. route is the
// mux pattern, so path parameters do not blow up label cardinality.
func Instrument(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
