package web

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/homesite/handler"
	"github.com/dmitrymomot/homesite/internal/app"
	"github.com/dmitrymomot/homesite/pkg/clientip"
)

// Context is the handler context for site routes. It carries the App next to
// the request.
type Context struct {
	handler.Context
	app *app.App
}

func newContextFactory(a *app.App) func(http.ResponseWriter, *http.Request) Context {
	return func(w http.ResponseWriter, r *http.Request) Context {
		return Context{Context: handler.NewContext(w, r), app: a}
	}
}

// App returns the shared application state.
func (c Context) App() *app.App { return c.app }

// Logger returns the application logger.
func (c Context) Logger() *slog.Logger { return c.app.Logger }

// Client returns the client resolved by clientip.Middleware. Outside that
// middleware it resolves the request directly.
func (c Context) Client() clientip.Client {
	if client, ok := clientip.FromContext(c); ok {
		return client
	}
	r := c.Request()
	return clientip.Resolve(r.RemoteAddr, r.Header)
}
