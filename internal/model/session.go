package model

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a verified user identity, supplied by the external credential
// check. This core never verifies credentials itself.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// TokenPair is the result of issuing or rotating a session: both tokens plus
// the access token's expiry for the caller's transport of choice.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// RefreshResult is a rotated token pair with session-duration diagnostics
// derived from the rotated row's created_at.
type RefreshResult struct {
	TokenPair
	SessionCreatedAt time.Time
	SessionAge       time.Duration
}
