package iprange

import (
	"context"
	"net/netip"
	"time"
)

// Lookup answers whether an address belongs to a published range list.
// Implementations must be safe for concurrent use.
type Lookup interface {
	Find(ctx context.Context, ip netip.Addr) (Range, bool, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(ctx context.Context, ip netip.Addr) (Range, bool, error)

func (f LookupFunc) Find(ctx context.Context, ip netip.Addr) (Range, bool, error) {
	return f(ctx, ip)
}

// Lookup results reported to Metrics.
const (
	ResultMatch = "match"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Metrics observes lookups. Implementations must be safe for concurrent use.
type Metrics interface {
	ObserveLookup(source, result string, d time.Duration)
}

// Observed wraps next so that every call is reported to m under the given
// source label.
func Observed(next Lookup, m Metrics, source string) Lookup {
	if m == nil {
		return next
	}
	return LookupFunc(func(ctx context.Context, ip netip.Addr) (Range, bool, error) {
		start := time.Now()
		r, ok, err := next.Find(ctx, ip)

		result := ResultMiss
		switch {
		case err != nil:
			result = ResultError
		case ok:
			result = ResultMatch
		}
		m.ObserveLookup(source, result, time.Since(start))

		return r, ok, err
	})
}
