package snapshot

import (
	"bytes"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
)

// HeaderEntry is a single header line as received.
type HeaderEntry struct {
	Name  string
	Value string
}

// HeaderSet maps lower-cased header names to their values.
// Keys and values keep the order they were added in; duplicates are kept.
type HeaderSet struct {
	keys   []string
	values map[string][]string
}

// NewHeaderSet builds a set from entries in order. Entries whose value is not
// visible ASCII text are dropped.
func NewHeaderSet(entries ...HeaderEntry) *HeaderSet {
	s := &HeaderSet{values: make(map[string][]string, len(entries))}
	for _, e := range entries {
		s.Add(e.Name, e.Value)
	}
	return s
}

// Add appends value under the lower-cased name.
// It reports false when the value was dropped.
func (s *HeaderSet) Add(name, value string) bool {
	if name == "" || !isTextValue(value) {
		return false
	}
	if s.values == nil {
		s.values = make(map[string][]string)
	}
	key := strings.ToLower(name)
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = append(s.values[key], value)
	return true
}

// Get returns the first value for name, or "".
func (s *HeaderSet) Get(name string) string {
	if s == nil {
		return ""
	}
	if v := s.values[strings.ToLower(name)]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Values returns all values for name in arrival order.
func (s *HeaderSet) Values(name string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.values[strings.ToLower(name)])
}

// Keys returns the header names in arrival order.
func (s *HeaderSet) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Len returns the number of distinct header names.
func (s *HeaderSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// MarshalJSON renders an object in arrival order: a string for a single
// value, an array of strings for repeated headers.
func (s *HeaderSet) MarshalJSON() ([]byte, error) {
	if s == nil || len(s.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		var value []byte
		if vals := s.values[key]; len(vals) == 1 {
			value, err = json.Marshal(vals[0])
		} else {
			value, err = json.Marshal(vals)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EntriesFromHeader flattens h into entries. http.Header does not retain the
// order between different names, so names are sorted; values of one name keep
// their order.
func EntriesFromHeader(h http.Header) []HeaderEntry {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]HeaderEntry, 0, len(h))
	for _, name := range names {
		for _, value := range h[name] {
			entries = append(entries, HeaderEntry{Name: strings.ToLower(name), Value: value})
		}
	}
	return entries
}

// isTextValue reports whether v consists of visible ASCII and tabs only.
func isTextValue(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
