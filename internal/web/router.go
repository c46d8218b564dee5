package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/homesite/handler"
	"github.com/dmitrymomot/homesite/internal/app"
	"github.com/dmitrymomot/homesite/pkg/clientip"
	"github.com/dmitrymomot/homesite/pkg/httpserver"
	"github.com/dmitrymomot/homesite/pkg/metrics"
	"github.com/dmitrymomot/homesite/pkg/requestid"
	"github.com/dmitrymomot/homesite/pkg/secureheaders"
)

// NewRouter builds the site's HTTP handler.
func NewRouter(a *app.App) http.Handler {
	wrap := func(h handler.HandlerFunc[Context]) http.HandlerFunc {
		return handler.Wrap(h,
			handler.WithContextFactory(newContextFactory(a)),
			handler.WithErrorHandler(handler.NewErrorHandler[Context](a.Logger, errorPage)),
		)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware(requestid.WithTrustedSource(trustedPeer)),
		clientip.Middleware(clientip.WithMetrics(a.Metrics)),
		requestLogger(a.Logger, a.Metrics),
		secureheaders.Middleware(),
	)

	r.Get("/", wrap(index))
	r.HandleFunc("/echo", wrap(echo))
	r.Get("/icloud-private-relay", wrap(privateRelay))
	r.Get("/uuid", wrap(newUUID))
	r.Get("/sha", wrap(sha))
	r.Get("/slot", wrap(slot))

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(a.Logger, a.ReadyChecks()...))
	r.Handle("/metrics", metrics.Handler(a.Registry))

	r.NotFound(staticFiles(a.Config.StaticDir, wrap(notFound)).ServeHTTP)

	return r
}
