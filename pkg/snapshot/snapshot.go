package snapshot

import (
	"net/netip"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/homesite/pkg/useragent"
)

// ConnectionInfo describes the transport the request arrived on.
type ConnectionInfo struct {
	// RealIPRemoteAddr is the resolved client IP; nil when it equals the peer.
	RealIPRemoteAddr *string `json:"realip_remote_addr"`
	PeerAddr         string  `json:"peer_addr"`
	Host             *string `json:"host"`
	Scheme           string  `json:"scheme"`
}

// AppConfig echoes the parts of server configuration that shape URLs.
type AppConfig struct {
	Host string `json:"host"`
}

// URIParts are the components of the request target as sent by the client.
// Origin-form targets ("/path?q") carry no authority, host, port or scheme.
type URIParts struct {
	Authority *string `json:"authority"`
	Host      *string `json:"host"`
	Path      string  `json:"path"`
	Port      *int    `json:"port"`
	Query     *string `json:"query"`
	Scheme    *string `json:"scheme"`
}

// Snapshot is the diagnostic record of one request.
type Snapshot struct {
	ConnectionInfo ConnectionInfo      `json:"connection_info"`
	Version        string              `json:"version"`
	Method         string              `json:"method"`
	URI            string              `json:"uri"`
	AppConfig      AppConfig           `json:"app_config"`
	URIParts       URIParts            `json:"uri_parts"`
	PeerAddr       string              `json:"peer_addr"`
	Path           string              `json:"path"`
	QueryString    string              `json:"query_string"`
	IP             string              `json:"ip"`
	Headers        *HeaderSet          `json:"headers"`
	Body           string              `json:"body"`
	UserAgent      useragent.UserAgent `json:"user_agent"`
}

// Input is the raw request data a snapshot is built from.
type Input struct {
	Method     string
	Proto      string
	RequestURI string
	Host       string

	// PeerAddr is the socket address ("ip:port") of the direct peer.
	PeerAddr string
	PeerIP   netip.Addr

	// RealIP and Scheme are the values resolved for the client.
	RealIP netip.Addr
	Scheme string

	Headers   []HeaderEntry
	Body      []byte
	UserAgent string
}

// Builder turns Inputs into Snapshots. It holds no mutable state.
type Builder struct {
	appHost string
	parseUA func(string) useragent.UserAgent
}

// Option configures a Builder.
type Option func(*Builder)

// WithAppHost sets the host reported under app_config.
func WithAppHost(host string) Option {
	return func(b *Builder) {
		b.appHost = host
	}
}

// WithUserAgentParser replaces useragent.Classify.
func WithUserAgentParser(fn func(string) useragent.UserAgent) Option {
	return func(b *Builder) {
		if fn != nil {
			b.parseUA = fn
		}
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		parseUA: useragent.Classify,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build normalizes in into a Snapshot.
func (b *Builder) Build(in Input) Snapshot {
	parts := parseURIParts(in.RequestURI)

	query := ""
	if parts.Query != nil {
		query = *parts.Query
	}

	return Snapshot{
		ConnectionInfo: ConnectionInfo{
			RealIPRemoteAddr: realIPString(in.RealIP, in.PeerIP),
			PeerAddr:         in.PeerAddr,
			Host:             optional(in.Host),
			Scheme:           in.Scheme,
		},
		Version:     in.Proto,
		Method:      in.Method,
		URI:         in.RequestURI,
		AppConfig:   AppConfig{Host: b.appHost},
		URIParts:    parts,
		PeerAddr:    in.PeerAddr,
		Path:        parts.Path,
		QueryString: query,
		IP:          in.PeerIP.String(),
		Headers:     NewHeaderSet(in.Headers...),
		Body:        DecodeBody(in.Body),
		UserAgent:   b.parseUA(in.UserAgent),
	}
}

func realIPString(resolved, peer netip.Addr) *string {
	if resolved == peer {
		return nil
	}
	s := resolved.String()
	return &s
}

// parseURIParts splits a request target. Unparseable targets are reported
// whole as the path.
func parseURIParts(raw string) URIParts {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return URIParts{Path: raw}
	}

	parts := URIParts{
		Authority: optional(u.Host),
		Host:      optional(u.Hostname()),
		Path:      u.EscapedPath(),
		Scheme:    optional(u.Scheme),
	}
	if port, err := strconv.Atoi(u.Port()); err == nil {
		parts.Port = &port
	}
	if u.RawQuery != "" || u.ForceQuery {
		q := u.RawQuery
		parts.Query = &q
	}
	if parts.Path == "" && parts.Authority != nil {
		parts.Path = "/"
	}
	return parts
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
