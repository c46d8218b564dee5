package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the resolved client address under the key "client_ip".
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// RemoteAddr records the socket peer under the key "remote_addr".
func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}

func Method(m string) slog.Attr { return slog.String("method", m) }
func Path(p string) slog.Attr   { return slog.String("path", p) }
func Status(code int) slog.Attr { return slog.Int("status", code) }
func Bytes(n int) slog.Attr     { return slog.Int("bytes", n) }

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Source records a data source name (for example "remote" or "local").
func Source(name string) slog.Attr {
	return slog.String("source", name)
}
