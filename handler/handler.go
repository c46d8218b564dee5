package handler

import "net/http"

// HandlerFunc handles a request through a typed context and returns the
// Response to render. C must implement the Context interface.
//
//	page := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
//		return handler.Text("ok\n")
//	})
//	r.Get("/ok", handler.Wrap(page))
type HandlerFunc[C Context] func(ctx C) Response

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler handles errors returned while rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator given to
// WithDecorators is the outermost.
type Decorator[C Context] func(HandlerFunc[C]) HandlerFunc[C]

// WrapOption configures Wrap.
type WrapOption[C Context] func(*wrapConfig[C])

type wrapConfig[C Context] struct {
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C]
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context](h ErrorHandler[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets the constructor for custom context types.
func WithContextFactory[C Context](f func(http.ResponseWriter, *http.Request) C) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[C Context](decorators ...Decorator[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes HTTPError codes as plain text and everything
// else as a 500 carrying the error text.
func defaultErrorHandler[C Context](ctx C, err error) {
	info := Classify(err)
	if info.StatusCode == http.StatusInternalServerError {
		info.Message = err.Error()
	}
	_ = Text(info.Message, WithStatus(info.StatusCode)).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
// Custom context types require WithContextFactory; Wrap panics on the first
// request otherwise.
func Wrap[C Context](h HandlerFunc[C], opts ...WrapOption[C]) http.HandlerFunc {
	cfg := &wrapConfig[C]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := NewContext(w, r).(C); ok {
				return c
			}
			panic("handler: cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		response := final(ctx)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
