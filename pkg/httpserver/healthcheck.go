package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/homesite/pkg/logger"
)

// Check reports whether a dependency is ready.
type Check func(context.Context) error

// Liveness responds 200 "ALIVE" as long as the process serves requests.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writePlain(w, http.StatusOK, "ALIVE")
	}
}

// Readiness runs every check with the request context. It responds 200
// "READY" when all pass, otherwise 503 "NOT_READY" and logs the first failure.
func Readiness(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				writePlain(w, http.StatusServiceUnavailable, "NOT_READY")
				return
			}
		}
		writePlain(w, http.StatusOK, "READY")
	}
}

func writePlain(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
