package common

import "errors"

// Sentinel errors shared between the transport, session, and service layers.
// Callers should use errors.Is to match these values.
var (
	// Auth lifecycle errors.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrRefreshUnavailable = errors.New("no refresh token available")

	// Transport errors.
	ErrUnavailable = errors.New("server unavailable")

	// Storage errors.
	ErrCorruptRecord = errors.New("corrupt session record")
)
