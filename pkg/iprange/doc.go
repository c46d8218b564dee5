// Package iprange answers whether an IP address belongs to a vendor-published
// network range list, such as the iCloud Private Relay egress ranges.
//
// A range list is headerless CSV: column 0 is a CIDR and the remaining
// columns are free-form metadata, rejoined with commas into the descriptor
// returned to callers. Lookups scan the list in order and the first
// containing range wins.
//
// Two sources are provided:
//
//   - RemoteSource downloads and parses the list on every call. It always
//     answers from the freshest data and surfaces every fetch or parse
//     failure to the caller. It never caches.
//   - LocalSource parses a bundled snapshot exactly once, on first use or on
//     an explicit Load at startup, and serves all later lookups from memory
//     without locking.
//
// # Usage
//
//	src := iprange.NewRemoteSource(iprange.WithHTTPClient(client))
//	r, ok, err := src.Find(ctx, ip)
//	switch {
//	case err != nil:
//	    // ErrFetch, ErrUnexpectedStatus or ErrMalformedRow
//	case ok:
//	    fmt.Println(r.Line())
//	}
//
// # Error Handling
//
// "Not in the list" is not an error. Corrupt data (ErrMalformedRow) is never
// skipped: it fails the call for RemoteSource and every call for LocalSource.
package iprange
