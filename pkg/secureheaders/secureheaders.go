package secureheaders

import (
	"net/http"
)

// Header is a response header name and value.
type Header struct {
	Name  string
	Value string
}

// Defaults are the headers added to every response.
var Defaults = []Header{
	{"Content-Security-Policy", "default-src 'self'"},
	{"Permissions-Policy", "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()"},
	{"Referrer-Policy", "same-origin"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
}

// Option configures Middleware.
type Option func(*[]Header)

// WithHeader overrides the value of name, or adds it when not in Defaults.
// An empty value removes the header from the set.
func WithHeader(name, value string) Option {
	return func(hs *[]Header) {
		name = http.CanonicalHeaderKey(name)
		out := (*hs)[:0]
		found := false
		for _, h := range *hs {
			if http.CanonicalHeaderKey(h.Name) == name {
				found = true
				if value == "" {
					continue
				}
				h.Value = value
			}
			out = append(out, h)
		}
		if !found && value != "" {
			out = append(out, Header{Name: name, Value: value})
		}
		*hs = out
	}
}

// Middleware adds the security headers to every response right before the
// status line is written. Headers the handler already set are left alone.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	headers := make([]Header, len(Defaults))
	copy(headers, Defaults)
	for _, opt := range opts {
		opt(&headers)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &writer{ResponseWriter: w, headers: headers}
			next.ServeHTTP(sw, r)
			sw.apply()
		})
	}
}

type writer struct {
	http.ResponseWriter
	headers []Header
	applied bool
}

func (w *writer) apply() {
	if w.applied {
		return
	}
	w.applied = true
	h := w.ResponseWriter.Header()
	for _, sh := range w.headers {
		if h.Get(sh.Name) == "" {
			h.Set(sh.Name, sh.Value)
		}
	}
}

func (w *writer) WriteHeader(code int) {
	w.apply()
	w.ResponseWriter.WriteHeader(code)
}

func (w *writer) Write(b []byte) (int, error) {
	w.apply()
	return w.ResponseWriter.Write(b)
}

func (w *writer) Flush() {
	w.apply()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *writer) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
