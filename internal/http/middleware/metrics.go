package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/observability/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route pattern.
func Metrics(collector *metrics.Collector) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// Label by route pattern, never the raw path.
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			elapsed := time.Since(start)
			collector.Request(r.Method, route, strconv.Itoa(status), elapsed.Seconds())

			observability.FromContext(r.Context()).Info("request completed",
				observability.String("method", r.Method),
				observability.String("route", route),
				observability.Int("status", status),
				observability.Duration("duration", elapsed),
			)
		})
	}
}
