package middleware

import (
	"net/http"

	"github.com/davidbz/energysim/internal/config"
	"github.com/davidbz/energysim/internal/observability/metrics"
)

// Middleware wraps an http.Handler with additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares, the first one being the outermost wrapper.
//
// Example:
//
//	chain := Chain(CORS(corsConfig), Trace())
//	handler := chain(router)
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// BuildMiddlewareChain composes the production chain.
// Order matters: CORS -> Trace -> Metrics.
func BuildMiddlewareChain(corsConfig *config.CORSConfig, collector *metrics.Collector) Middleware {
	return Chain(
		CORS(corsConfig),
		Trace(),
		Metrics(collector),
	)
}
