package iprange

import (
	"context"
	"errors"
	"io/fs"
	"net/netip"
	"os"
	"sync"
)

// DefaultLocalPath is where the bundled range list snapshot lives.
const DefaultLocalPath = "static/egress-ip-ranges.csv"

// LocalSource reads a bundled range list once and serves every lookup from
// the parsed table. The outcome of the first read, table or error, is kept for
// the lifetime of the source: a missing or corrupt file is never retried.
type LocalSource struct {
	path string
	fsys fs.FS
	load func() (Table, error)
}

// LocalOption configures a LocalSource.
type LocalOption func(*LocalSource)

// WithFS reads path from fsys instead of the OS filesystem, for example an
// embed.FS. path must then be a valid fs.FS path.
func WithFS(fsys fs.FS) LocalOption {
	return func(s *LocalSource) {
		s.fsys = fsys
	}
}

// NewLocalSource returns a Lookup over the file at path. Nothing is read until
// the first Find or Load call.
func NewLocalSource(path string, opts ...LocalOption) *LocalSource {
	if path == "" {
		path = DefaultLocalPath
	}
	s := &LocalSource{path: path}
	for _, opt := range opts {
		opt(s)
	}
	s.load = sync.OnceValues(s.read)
	return s
}

// Path returns the file the source reads.
func (s *LocalSource) Path() string { return s.path }

// Load forces the one-time read and returns its outcome. Call it at startup
// to refuse to run with a known-bad dataset.
func (s *LocalSource) Load() (Table, error) {
	return s.load()
}

// Find scans the cached table for ip.
func (s *LocalSource) Find(_ context.Context, ip netip.Addr) (Range, bool, error) {
	table, err := s.load()
	if err != nil {
		return Range{}, false, err
	}
	r, ok := table.Find(ip)
	return r, ok, nil
}

// Ready reports the load outcome; suitable for readiness probes.
func (s *LocalSource) Ready(context.Context) error {
	_, err := s.load()
	return err
}

func (s *LocalSource) open() (fs.File, error) {
	if s.fsys != nil {
		return s.fsys.Open(s.path)
	}
	return os.Open(s.path)
}

func (s *LocalSource) read() (Table, error) {
	f, err := s.open()
	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}
	defer f.Close()

	table, err := ParseCSV(f)
	if err != nil {
		if errors.Is(err, ErrMalformedRow) {
			return nil, err
		}
		return nil, errors.Join(ErrLoad, err)
	}
	return table, nil
}
