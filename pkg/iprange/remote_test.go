package iprange_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homesite/pkg/iprange"
)

func TestRemoteSourceFind(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, sampleCSV)
	}))
	t.Cleanup(srv.Close)

	src := iprange.NewRemoteSource(iprange.WithURL(srv.URL), iprange.WithHTTPClient(srv.Client()))
	assert.Equal(t, srv.URL, src.URL())

	r, ok, err := src.Find(context.Background(), netip.MustParseAddr("104.28.7.7"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "104.28.0.0/16,DE,DE-BE,Berlin,", r.Line())

	_, ok, err = src.Find(context.Background(), netip.MustParseAddr("203.0.113.50"))
	require.NoError(t, err)
	assert.False(t, ok)

	// Every lookup fetches again.
	assert.Equal(t, int32(2), hits.Load())
}

func TestRemoteSourceNoCache(t *testing.T) {
	t.Parallel()

	var body atomic.Value
	body.Store("192.0.2.0/24,first\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body.Load().(string))
	}))
	t.Cleanup(srv.Close)

	src := iprange.NewRemoteSource(iprange.WithURL(srv.URL), iprange.WithHTTPClient(srv.Client()))
	ip := netip.MustParseAddr("192.0.2.10")

	r, ok, err := src.Find(context.Background(), ip)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", r.Descriptor)

	body.Store("198.51.100.0/24,second\n")
	_, ok, err = src.Find(context.Background(), ip)
	require.NoError(t, err)
	assert.False(t, ok, "list changes must be visible on the next lookup")
}

func TestRemoteSourceStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	src := iprange.NewRemoteSource(iprange.WithURL(srv.URL), iprange.WithHTTPClient(srv.Client()))
	_, ok, err := src.Find(context.Background(), netip.MustParseAddr("192.0.2.1"))
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, iprange.ErrUnexpectedStatus)
	assert.NotErrorIs(t, err, iprange.ErrFetch)
	assert.Equal(t, http.StatusServiceUnavailable, iprange.StatusCode(err))
	assert.Contains(t, err.Error(), "503")
}

func TestRemoteSourceTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := iprange.NewRemoteSource(iprange.WithURL(url))
	_, _, err := src.Find(context.Background(), netip.MustParseAddr("192.0.2.1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, iprange.ErrFetch)
	assert.Equal(t, 0, iprange.StatusCode(err))
}

func TestRemoteSourceTruncatedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !assert.True(t, ok) {
			return
		}
		conn, buf, err := hj.Hijack()
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()

		// Promise more than is sent, then hang up.
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Type: text/csv\r\nContent-Length: 1000\r\n\r\n")
		_, _ = buf.WriteString("172.224.224.0/27,GB,GB-EN,London,\n104.28.0.0/16,DE,DE-BE,Berlin,\n")
		_ = buf.Flush()
	}))
	t.Cleanup(srv.Close)

	src := iprange.NewRemoteSource(iprange.WithURL(srv.URL), iprange.WithHTTPClient(srv.Client()))
	_, _, err := src.Find(context.Background(), netip.MustParseAddr("104.28.0.1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, iprange.ErrFetch)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, err, iprange.ErrMalformedRow)
}

func TestRemoteSourceMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "192.0.2.0/24,ok\n<html>oops</html>\n")
	}))
	t.Cleanup(srv.Close)

	src := iprange.NewRemoteSource(iprange.WithURL(srv.URL), iprange.WithHTTPClient(srv.Client()))
	_, _, err := src.Find(context.Background(), netip.MustParseAddr("192.0.2.1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, iprange.ErrMalformedRow)
}

func TestRemoteSourceDefaults(t *testing.T) {
	t.Parallel()

	src := iprange.NewRemoteSource(iprange.WithURL(""), iprange.WithHTTPClient(nil))
	assert.Equal(t, iprange.DefaultRemoteURL, src.URL())
}
