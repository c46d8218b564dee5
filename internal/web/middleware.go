package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/homesite/pkg/clientip"
	"github.com/dmitrymomot/homesite/pkg/logger"
)

// RequestObserver records per-route request metrics.
type RequestObserver interface {
	ObserveRequest(method, route string, code int, d time.Duration)
}

// requestLogger logs one line per request and feeds obs. 5xx answers are
// logged at error level, 4xx at warn.
func requestLogger(log *slog.Logger, obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			d := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			var route string
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			if obs != nil {
				obs.ObserveRequest(r.Method, route, status, d)
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "http request",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				slog.String("route", route),
				logger.Status(status),
				logger.Bytes(ww.BytesWritten()),
				logger.Duration(d),
				logger.RemoteAddr(r.RemoteAddr),
			)
		})
	}
}

// trustedPeer lets the co-located proxy propagate its request ID.
func trustedPeer(r *http.Request) bool {
	return clientip.IsTrustedProxy(clientip.ParsePeer(r.RemoteAddr))
}
