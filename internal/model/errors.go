package model

import "errors"

var (
	// ErrInvalidInput marks caller mistakes: unknown category, malformed location or date.
	// It is the only error Resolve surfaces.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetchFailed marks a remote source that could not be fetched or parsed.
	// The resolver downgrades it to an absent tier.
	ErrFetchFailed = errors.New("fetch failed")
)
