// Package handler adapts typed handlers to net/http.
//
// A HandlerFunc receives a Context (the request, the response writer and the
// request's context.Context in one value) and returns a Response. Wrap turns it
// into an http.HandlerFunc, renders the Response and routes render failures to
// an ErrorHandler. Applications with their own context type pass
// WithContextFactory.
//
// Built-in responses:
//
//   - Text: text/plain body
//   - JSON: indented JSON with a trailing newline
//   - Templ: a templ.Component rendered as text/html
//
// All of them accept WithStatus and WithHeader.
//
// NewErrorHandler logs failures with the request id and answers with an HTML
// error page for browsers (see RequestedHTML) or plain text for everything
// else. HTTPError values carry their own status code; any other error is a 500.
package handler
