package snapshot

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// DecodeBody returns b as text when it is valid UTF-8, otherwise a
// placeholder carrying the full byte count.
func DecodeBody(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return fmt.Sprintf("<binary %d bytes>", len(b))
}

// ReadBody drains r. A failing stream yields ErrReadBody wrapping the cause,
// rendered as "failed to read request body: <cause>".
func ReadBody(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadBody, err)
	}
	return b, nil
}
