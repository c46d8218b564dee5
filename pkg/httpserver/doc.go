// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown, and provides liveness and readiness handlers.
//
// Run listens on the configured address (or a listener passed with
// WithListener), logs lifecycle events through slog and blocks until the
// context is cancelled or SIGINT/SIGTERM arrives. In-flight requests get
// ShutdownTimeout to complete. Errors are wrapped with ErrStart or ErrShutdown
// and can be matched with errors.Is.
//
//	srv := httpserver.NewFromConfig(":8080", cfg.Server, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Readiness accepts Check functions that are run with the probe request's
// context:
//
//	r.Get("/readyz", httpserver.Readiness(log, rangeSource.Ready))
package httpserver
