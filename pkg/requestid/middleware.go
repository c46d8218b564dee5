package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type options struct {
	generate func() string
	trusted  func(*http.Request) bool
}

// Option configures Middleware.
type Option func(*options)

// WithGenerator replaces the uuid v4 generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// WithTrustedSource limits reuse of an incoming X-Request-ID to requests
// for which fn returns true. Other requests always get a fresh id.
func WithTrustedSource(fn func(*http.Request) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.trusted = fn
		}
	}
}

// Middleware assigns every request an id, stores it in the request context and
// echoes it in the X-Request-ID response header. A well-formed incoming id is
// reused when its source is trusted.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := options{
		generate: uuid.NewString,
		trusted:  func(*http.Request) bool { return true },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if !isValidRequestID(id) || !o.trusted(r) {
				id = o.generate()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
