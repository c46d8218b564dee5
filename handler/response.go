package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// ResponseOption adjusts status and headers of the built-in responses.
type ResponseOption func(*meta)

type meta struct {
	status  int
	headers http.Header
}

// WithStatus sets the response status code. The default is 200.
func WithStatus(code int) ResponseOption {
	return func(m *meta) { m.status = code }
}

// WithHeader sets a response header.
func WithHeader(key, value string) ResponseOption {
	return func(m *meta) {
		if m.headers == nil {
			m.headers = make(http.Header)
		}
		m.headers.Set(key, value)
	}
}

func newMeta(contentType string, opts []ResponseOption) meta {
	m := meta{status: http.StatusOK, headers: http.Header{"Content-Type": {contentType}}}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m meta) writeHeader(w http.ResponseWriter) {
	for k, v := range m.headers {
		w.Header()[k] = v
	}
	w.WriteHeader(m.status)
}

type textResponse struct {
	body string
	meta meta
}

// Text responds with a text/plain body.
func Text(body string, opts ...ResponseOption) Response {
	return textResponse{body: body, meta: newMeta("text/plain; charset=utf-8", opts)}
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	t.meta.writeHeader(w)
	_, err := w.Write([]byte(t.body))
	return err
}

type jsonResponse struct {
	value any
	meta  meta
}

// JSON responds with v encoded as indented JSON followed by a newline.
// HTML characters are not escaped.
func JSON(v any, opts ...ResponseOption) Response {
	return jsonResponse{value: v, meta: newMeta("application/json", opts)}
}

// Render encodes before writing anything, so an encoding failure still
// reaches the error handler with a clean response.
func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	b, err := MarshalPretty(j.value)
	if err != nil {
		return err
	}
	j.meta.writeHeader(w)
	_, err = w.Write(b)
	return err
}

// MarshalPretty encodes v with two-space indentation, no HTML escaping and a
// trailing newline.
func MarshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type templResponse struct {
	component templ.Component
	meta      meta
}

// Templ renders a templ component as text/html. The component is rendered
// into a buffer first so that a failing component never leaves a partial page.
func Templ(c templ.Component, opts ...ResponseOption) Response {
	return templResponse{component: c, meta: newMeta("text/html; charset=utf-8", opts)}
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}
	t.meta.writeHeader(w)
	_, err := buf.WriteTo(w)
	return err
}

// ResponseFunc adapts a function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}
