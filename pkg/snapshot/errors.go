package snapshot

import "errors"

var ErrReadBody = errors.New("failed to read request body")
