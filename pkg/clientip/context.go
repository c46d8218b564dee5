package clientip

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/homesite/pkg/logger"
)

type clientContextKey struct{}

// WithContext stores the resolved client in ctx.
func WithContext(ctx context.Context, c Client) context.Context {
	return context.WithValue(ctx, clientContextKey{}, c)
}

// FromContext returns the client stored by Middleware.
func FromContext(ctx context.Context) (Client, bool) {
	if ctx == nil {
		return Client{}, false
	}
	c, ok := ctx.Value(clientContextKey{}).(Client)
	return c, ok
}

// IPFromContext returns the resolved client IP as a string, or "" if absent.
func IPFromContext(ctx context.Context) string {
	c, ok := FromContext(ctx)
	if !ok || !c.IP.IsValid() {
		return ""
	}
	return c.IP.String()
}

// LoggerExtractor returns a logger context extractor adding "client_ip".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := IPFromContext(ctx); ip != "" {
			return logger.ClientIP(ip), true
		}
		return slog.Attr{}, false
	}
}
