package iprange

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
)

// DefaultRemoteURL is the iCloud Private Relay egress range list.
const DefaultRemoteURL = "https://mask-api.icloud.com/egress-ip-ranges.csv"

// RemoteSource fetches and parses the range list on every lookup.
//
// The response is never cached: a cached list produced stale answers without
// improving latency. Reintroducing a cache needs its own invalidation story.
type RemoteSource struct {
	url    string
	client *http.Client
}

// RemoteOption configures a RemoteSource.
type RemoteOption func(*RemoteSource)

// WithURL overrides the range list URL. Empty values are ignored.
func WithURL(url string) RemoteOption {
	return func(s *RemoteSource) {
		if url != "" {
			s.url = url
		}
	}
}

// WithHTTPClient sets the client used for fetches. The client is shared
// across concurrent lookups; its timeout is the only one applied.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(s *RemoteSource) {
		if c != nil {
			s.client = c
		}
	}
}

// NewRemoteSource returns a Lookup backed by a live fetch per call.
func NewRemoteSource(opts ...RemoteOption) *RemoteSource {
	s := &RemoteSource{
		url:    DefaultRemoteURL,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the configured range list location.
func (s *RemoteSource) URL() string { return s.url }

// Find downloads the current list and scans it for ip. Transport failures,
// non-2xx answers and malformed rows are all returned to the caller; nothing
// is retried.
func (s *RemoteSource) Find(ctx context.Context, ip netip.Addr) (Range, bool, error) {
	table, err := s.Fetch(ctx)
	if err != nil {
		return Range{}, false, err
	}
	r, ok := table.Find(ip)
	return r, ok, nil
}

// Fetch downloads and parses the current list.
func (s *RemoteSource) Fetch(ctx context.Context) (Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: s.url}
	}

	table, err := ParseCSV(resp.Body)
	if err != nil {
		if errors.Is(err, ErrMalformedRow) {
			return nil, err
		}
		// A body cut short by the transport is a fetch failure, not corruption.
		return nil, errors.Join(ErrFetch, err)
	}
	return table, nil
}

// StatusError reports a non-2xx answer from the range list endpoint.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s returned %d", ErrUnexpectedStatus, e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
