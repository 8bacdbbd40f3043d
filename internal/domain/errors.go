package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNetworkFailure indicates the catalog could not be reached or answered badly
	ErrNetworkFailure = errors.New("catalog is unreachable")

	// ErrUnexpectedStatus indicates the catalog answered with a non-success status
	ErrUnexpectedStatus = errors.New("unexpected catalog status")

	// ErrMalformedFavorites indicates persisted favorites could not be decoded
	ErrMalformedFavorites = errors.New("persisted favorites are malformed")
)
