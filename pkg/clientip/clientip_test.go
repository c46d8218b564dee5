package clientip_test

import (
	"net/http"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/homesite/pkg/clientip"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		wantIP     string
		wantScheme string
		forwarded  bool
	}{
		{
			name:       "untrusted peer ignores forwarded for",
			remoteAddr: "203.0.113.50:12345",
			headers:    map[string]string{"X-Forwarded-For": "8.8.8.8"},
			wantIP:     "203.0.113.50",
			wantScheme: "http",
		},
		{
			name:       "untrusted peer ignores forwarded proto",
			remoteAddr: "203.0.113.50:12345",
			headers:    map[string]string{"X-Forwarded-Proto": "https"},
			wantIP:     "203.0.113.50",
			wantScheme: "http",
		},
		{
			name:       "loopback peer uses first forwarded token",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.50, 192.168.1.1"},
			wantIP:     "203.0.113.50",
			wantScheme: "http",
			forwarded:  true,
		},
		{
			name:       "loopback peer falls back without header",
			remoteAddr: "127.0.0.1:12345",
			wantIP:     "127.0.0.1",
			wantScheme: "http",
		},
		{
			name:       "loopback peer falls back on invalid ip",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			wantIP:     "127.0.0.1",
			wantScheme: "http",
		},
		{
			name:       "loopback peer falls back on empty first token",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": " , 203.0.113.50"},
			wantIP:     "127.0.0.1",
			wantScheme: "http",
		},
		{
			name:       "ipv6 client from loopback peer",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			wantIP:     "2001:db8::1",
			wantScheme: "http",
			forwarded:  true,
		},
		{
			name:       "ipv6 loopback is trusted",
			remoteAddr: "[::1]:12345",
			headers: map[string]string{
				"X-Forwarded-For":   "203.0.113.50",
				"X-Forwarded-Proto": "https",
			},
			wantIP:     "203.0.113.50",
			wantScheme: "https",
			forwarded:  true,
		},
		{
			name:       "whole 127/8 is loopback",
			remoteAddr: "127.8.9.10:80",
			headers:    map[string]string{"X-Forwarded-Proto": "https"},
			wantIP:     "127.8.9.10",
			wantScheme: "https",
		},
		{
			name:       "trusted proto defaults to http",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7"},
			wantIP:     "198.51.100.7",
			wantScheme: "http",
			forwarded:  true,
		},
		{
			name:       "x-real-ip is never consulted",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			wantIP:     "127.0.0.1",
			wantScheme: "http",
		},
		{
			name:       "private network peer is not trusted",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7"},
			wantIP:     "10.0.0.1",
			wantScheme: "http",
		},
		{
			name:       "empty forwarded proto is passed through",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-Proto": ""},
			wantIP:     "127.0.0.1",
			wantScheme: "",
		},
		{
			name:       "non ascii forwarded proto falls back to http",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-Proto": "htt\u00e9ps"},
			wantIP:     "127.0.0.1",
			wantScheme: "http",
		},
		{
			name:       "zoned forwarded address falls back to peer",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "fe80::1%eth0"},
			wantIP:     "127.0.0.1",
			wantScheme: "http",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}

			c := clientip.Resolve(tt.remoteAddr, h)
			assert.Equal(t, tt.wantIP, c.IP.String())
			assert.Equal(t, tt.wantScheme, c.Scheme)
			assert.Equal(t, tt.forwarded, c.Forwarded)
		})
	}
}

func TestResolveHelpers(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("X-Forwarded-For", "203.0.113.50")
	h.Set("X-Forwarded-Proto", "https")

	assert.Equal(t, netip.MustParseAddr("203.0.113.50"), clientip.RealIP("127.0.0.1:1", h))
	assert.Equal(t, "https", clientip.RealScheme("127.0.0.1:1", h))
	assert.Equal(t, netip.MustParseAddr("198.51.100.1"), clientip.RealIP("198.51.100.1:1", h))
	assert.Equal(t, "http", clientip.RealScheme("198.51.100.1:1", h))
}

func TestIsTrustedProxy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr    string
		trusted bool
	}{
		{"127.0.0.1", true},
		{"127.255.255.254", true},
		{"::1", true},
		{"::ffff:127.0.0.1", true},
		{"203.0.113.50", false},
		{"192.168.1.1", false},
		{"::2", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.trusted, clientip.IsTrustedProxy(netip.MustParseAddr(tt.addr)))
		})
	}

	assert.False(t, clientip.IsTrustedProxy(netip.Addr{}))
}

func TestParsePeer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "127.0.0.1", clientip.ParsePeer("127.0.0.1:8080").String())
	assert.Equal(t, "::1", clientip.ParsePeer("[::1]:8080").String())
	assert.Equal(t, "192.0.2.1", clientip.ParsePeer("192.0.2.1").String())
	assert.Equal(t, "2001:db8::1", clientip.ParsePeer("2001:db8::1").String())
	assert.Equal(t, "192.0.2.1", clientip.ParsePeer("[::ffff:192.0.2.1]:443").String())
	assert.False(t, clientip.ParsePeer("").IsValid())
	assert.False(t, clientip.ParsePeer("garbage").IsValid())
}

func TestResolveUnparseablePeer(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("X-Forwarded-For", "8.8.8.8")

	c := clientip.Resolve("not-an-address", h)
	assert.False(t, c.IP.IsValid())
	assert.False(t, c.Trusted)
	assert.Equal(t, "http", c.Scheme)
}
