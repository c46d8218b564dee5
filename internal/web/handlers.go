package web

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/homesite/handler"
	"github.com/dmitrymomot/homesite/pkg/logger"
	"github.com/dmitrymomot/homesite/pkg/snapshot"
)

func index(ctx Context) handler.Response {
	return handler.Templ(indexPage(ctx.App().Config.Hostname))
}

// echo answers any method with a snapshot of the request.
func echo(ctx Context) handler.Response {
	r := ctx.Request()

	body, err := snapshot.ReadBody(r.Body)
	if err != nil {
		ctx.Logger().WarnContext(ctx, "echo: body unreadable", logger.Error(err))
		return handler.Text(err.Error(), handler.WithStatus(http.StatusInternalServerError))
	}

	client := ctx.Client()
	headers := make([]snapshot.HeaderEntry, 0, len(r.Header)+1)
	if r.Host != "" {
		// net/http moves Host out of r.Header.
		headers = append(headers, snapshot.HeaderEntry{Name: "host", Value: r.Host})
	}
	headers = append(headers, snapshot.EntriesFromHeader(r.Header)...)

	snap := ctx.App().Snapshots.Build(snapshot.Input{
		Method:     r.Method,
		Proto:      r.Proto,
		RequestURI: r.RequestURI,
		Host:       r.Host,
		PeerAddr:   r.RemoteAddr,
		PeerIP:     client.Peer,
		RealIP:     client.IP,
		Scheme:     client.Scheme,
		Headers:    headers,
		Body:       body,
		UserAgent:  r.UserAgent(),
	})

	if !handler.RequestedHTML(r) {
		return handler.JSON(snap)
	}

	pretty, err := handler.MarshalPretty(snap)
	if err != nil {
		return handler.ResponseFunc(func(http.ResponseWriter, *http.Request) error { return err })
	}
	return handler.Templ(echoPage(string(pretty), snap.Body))
}

// privateRelay reports whether the client address belongs to an iCloud
// Private Relay egress range.
func privateRelay(ctx Context) handler.Response {
	ip := ctx.Client().IP

	rng, ok, err := ctx.App().Relay.Find(ctx, ip)
	if err != nil {
		ctx.Logger().ErrorContext(ctx, "relay lookup failed", logger.Error(err), logger.Component("relay"))
		return handler.Text(err.Error(), handler.WithStatus(http.StatusInternalServerError))
	}
	if !ok {
		return handler.Text(fmt.Sprintf("%s is not iCloud Private Relay", ip))
	}
	return handler.Text(fmt.Sprintf("%s: %s", ip, rng.Line()))
}

func newUUID(ctx Context) handler.Response {
	id := uuid.NewString()
	if handler.RequestedHTML(ctx.Request()) {
		return handler.Templ(uuidPage(id))
	}
	return handler.Text(id + "\n")
}

func sha(ctx Context) handler.Response {
	return handler.Text(ctx.App().GitSHA())
}

func slot(ctx Context) handler.Response {
	return handler.Text(ctx.App().Slot() + "\n")
}

func notFound(Context) handler.Response {
	return handler.Templ(notFoundPage(), handler.WithStatus(http.StatusNotFound))
}
