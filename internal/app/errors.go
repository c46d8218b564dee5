package app

import "errors"

var (
	ErrUnknownRelaySource = errors.New("unknown relay range source")
	ErrLoadRelayRanges    = errors.New("failed to load relay ranges")
	ErrMetrics            = errors.New("failed to set up metrics")
)
