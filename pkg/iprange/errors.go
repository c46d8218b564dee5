package iprange

import "errors"

var (
	// ErrFetch is returned when the remote range list cannot be retrieved.
	ErrFetch = errors.New("failed to fetch range list")

	// ErrUnexpectedStatus is returned when the remote endpoint answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected range list response status")

	// ErrMalformedRow is returned when a row does not start with a valid CIDR.
	ErrMalformedRow = errors.New("malformed range list row")

	// ErrLoad is returned when the local range list file cannot be read.
	ErrLoad = errors.New("failed to load range list")
)
