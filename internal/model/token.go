package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims is the decoded claim set of an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Role      string
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RefreshClaims is the decoded claim set of a refresh token. JTI and FamilyID
// mirror the persisted refresh-token row for the same token.
type RefreshClaims struct {
	UserID    uuid.UUID
	JTI       string
	FamilyID  uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec encodes and decodes signed access/refresh tokens. Implementations
// are stateless: pure functions of the claims, the signing secret and the clock.
//
// Encoding fails with ErrExpiryInPast when expiresAt is not strictly in the
// future. Decoding returns ErrTokenExpired for a well-signed but expired token
// and ErrInvalidToken for everything else (bad signature, wrong signing
// method, wrong typ claim, missing jti); callers react differently to the two.
type TokenCodec interface {
	EncodeAccessToken(userID uuid.UUID, role string, jti string, expiresAt time.Time) (string, error)
	EncodeRefreshToken(userID uuid.UUID, jti string, familyID uuid.UUID, expiresAt time.Time) (string, error)
	DecodeAccessToken(token string) (AccessClaims, error)
	DecodeRefreshToken(token string) (RefreshClaims, error)
}
