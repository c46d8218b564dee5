// Package clientip attributes an *http.Request to its originating client when
// the application runs behind a reverse proxy on the same host.
//
// The trust model is deliberately narrow: the only peer allowed to forward
// client attribution is the locally co-located proxy, identified by a
// loopback peer address (127.0.0.0/8 or ::1). For such peers:
//
//  1. X-Forwarded-For  – the first comma-separated token is the client IP
//  2. X-Forwarded-Proto – the scheme the client used (default "http")
//
// Requests from any other peer are attributed to the peer address with scheme
// "http"; forwarding headers are ignored unconditionally, so a remote client
// cannot spoof its address or protocol. Other headers such as X-Real-IP or
// X-Forwarded-Host are never consulted.
//
// # Usage
//
//	c := clientip.Resolve(r.RemoteAddr, r.Header)
//	log.Printf("client %s via %s", c.IP, c.Scheme)
//
//	// As middleware
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware())
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    c, _ := clientip.FromContext(r.Context())
//	    fmt.Fprintln(w, c.IP)
//	})
//
// # Error Handling
//
// Resolve never returns an error. Unparseable forwarded values fall back to
// the peer address; an unparseable peer address yields the zero netip.Addr.
package clientip
