package clientip

import "net/http"

// Metrics observes resolution outcomes. Implementations must be safe for
// concurrent use.
type Metrics interface {
	RecordResolution(trusted, forwarded bool)
}

type noopMetrics struct{}

func (noopMetrics) RecordResolution(bool, bool) {}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	metrics Metrics
}

// WithMetrics records every resolution on m. Nil is ignored.
func WithMetrics(m Metrics) MiddlewareOption {
	return func(c *middlewareConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// Middleware resolves the client for each request and stores it in the
// request context for downstream handlers and loggers.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{metrics: noopMetrics{}}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := Resolve(r.RemoteAddr, r.Header)
			cfg.metrics.RecordResolution(c.Trusted, c.Forwarded)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), c)))
		})
	}
}
