package model

import "errors"

var (
	// ErrInvalidToken covers malformed tokens, bad signatures, wrong typ
	// claims, unknown identifiers and claim/row mismatches. Terminal.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for a well-signed token, or a stored row,
	// whose TTL has elapsed. Terminal; logged distinctly from ErrInvalidToken.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenReuseDetected is returned when an already-revoked refresh token
	// is presented again. The whole family is revoked before this is
	// returned; callers should alert and force re-authentication.
	ErrTokenReuseDetected = errors.New("refresh token reuse detected")

	// ErrExpiryInPast is returned by the codec when asked to sign a token
	// whose expiry is not strictly in the future.
	ErrExpiryInPast = errors.New("token expiry not in the future")

	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("not found")
)
