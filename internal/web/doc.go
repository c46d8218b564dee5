// Package web wires the HTTP surface of the site: the chi router, its
// middleware chain, the route handlers and the HTML pages.
//
// Every route is built from an *app.App, so handlers never reach for
// package-level state:
//
//	a, err := app.New(cfg)
//	if err != nil {
//		return err
//	}
//	srv.Run(ctx, web.NewRouter(a))
//
// Middleware runs in this order, outermost first: panic recovery, request ID,
// client address resolution, request logging with metrics, security headers.
package web
