package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"blogspace/internal/metrics"
)

// MetricsMiddleware records request counts and latency. It is attached
// with mux's Use so the matched route template is available as a
// bounded-cardinality label.
func MetricsMiddleware(collector *metrics.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tmpl, err := cur.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			collector.RecordRequest(r.Method, route, rec.statusCode, time.Since(start))
		})
	}
}
