package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const (
	// HeaderForwardedFor carries the client address chain set by the proxy.
	HeaderForwardedFor = "X-Forwarded-For"
	// HeaderForwardedProto carries the protocol the client used to reach the proxy.
	HeaderForwardedProto = "X-Forwarded-Proto"

	// DefaultScheme is reported whenever the forwarded protocol is not trusted or absent.
	DefaultScheme = "http"
)

// Client describes the resolved origin of a request.
type Client struct {
	// IP is the address the request is attributed to.
	IP netip.Addr
	// Scheme is the protocol the client used ("http" unless a trusted proxy says otherwise).
	Scheme string
	// Peer is the address of the TCP peer (without port).
	Peer netip.Addr
	// Trusted reports whether the peer was allowed to set forwarding headers.
	Trusted bool
	// Forwarded reports whether IP was taken from X-Forwarded-For.
	Forwarded bool
}

// Resolve derives the client address and scheme from the peer address and
// request headers. Forwarding headers are honored only when the peer is the
// co-located reverse proxy (a loopback address); otherwise they are ignored.
//
// Resolve never fails: malformed header values fall back to the peer address.
func Resolve(peerAddr string, h http.Header) Client {
	peer := ParsePeer(peerAddr)
	client := Client{
		IP:     peer,
		Scheme: DefaultScheme,
		Peer:   peer,
	}

	if !IsTrustedProxy(peer) {
		return client
	}
	client.Trusted = true

	if ip, ok := firstForwardedIP(h.Get(HeaderForwardedFor)); ok {
		client.IP = ip
		client.Forwarded = true
	}
	if proto, ok := forwardedProto(h); ok {
		client.Scheme = proto
	}

	return client
}

// RealIP returns only the resolved client address.
func RealIP(peerAddr string, h http.Header) netip.Addr {
	return Resolve(peerAddr, h).IP
}

// RealScheme returns only the resolved scheme.
func RealScheme(peerAddr string, h http.Header) string {
	return Resolve(peerAddr, h).Scheme
}

// IsTrustedProxy reports whether addr may forward client attribution headers.
// Only loopback peers (127.0.0.0/8 and ::1) are trusted.
func IsTrustedProxy(addr netip.Addr) bool {
	return addr.IsValid() && addr.Unmap().IsLoopback()
}

// ParsePeer extracts the IP from a "host:port" remote address. Bare addresses
// without a port are accepted as well. The zero Addr is returned when nothing
// parses.
func ParsePeer(remoteAddr string) netip.Addr {
	remoteAddr = strings.TrimSpace(remoteAddr)
	if remoteAddr == "" {
		return netip.Addr{}
	}

	if ap, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return ap.Addr().Unmap()
	}

	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	return parseIP(host)
}

// firstForwardedIP parses the leftmost X-Forwarded-For token. Intermediate
// hops are never consulted. Zoned IPv6 addresses are not client addresses.
func firstForwardedIP(value string) (netip.Addr, bool) {
	if value == "" {
		return netip.Addr{}, false
	}
	first, _, _ := strings.Cut(value, ",")
	ip := parseIP(first)
	if ip.Zone() != "" {
		return netip.Addr{}, false
	}
	return ip, ip.IsValid()
}

// forwardedProto returns the first X-Forwarded-Proto value as sent, empty
// included. Values that are not visible ASCII are ignored.
func forwardedProto(h http.Header) (string, bool) {
	values := h.Values(HeaderForwardedProto)
	if len(values) == 0 || !isVisibleASCII(values[0]) {
		return "", false
	}
	return values[0], true
}

func isVisibleASCII(s string) bool {
	for i := range len(s) {
		if c := s[i]; c != '\t' && (c < 0x20 || c > 0x7e) {
			return false
		}
	}
	return true
}

// parseIP validates and normalizes an IP address string.
// Returns the zero Addr if the input is not an IP address.
func parseIP(s string) netip.Addr {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}
	}
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}
	}
	return ip.Unmap()
}
