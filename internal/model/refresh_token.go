package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RevocationReason records why a refresh-token row was revoked. The reason is
// part of the family state machine: a family containing a reuse_detected
// revocation is compromised and must never rotate again.
type RevocationReason string

const (
	RevocationRotated RevocationReason = "rotated"
	RevocationLogout  RevocationReason = "logout"
	RevocationReuse   RevocationReason = "reuse_detected"
)

// RefreshTokenStore persists one row per issued refresh token, grouped into
// families descending from a single login. Rows are only ever mutated to set
// revoked_at; they are retained for audit until DeleteExpired prunes them.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (RefreshToken, error)

	// Revoke sets revoked_at on the row if it is not set yet. The returned
	// bool reports whether this call performed the revocation: under
	// concurrent calls for the same jti exactly one caller sees true.
	// Revoking an already-revoked row is a no-op, not an error.
	Revoke(ctx context.Context, jti string, reason RevocationReason) (bool, error)

	// RevokeFamily revokes every un-revoked row in the family.
	RevokeFamily(ctx context.Context, familyID uuid.UUID, reason RevocationReason) error

	// FamilyCompromised reports whether any row in the family was revoked
	// with RevocationReuse.
	FamilyCompromised(ctx context.Context, familyID uuid.UUID) (bool, error)

	// DeleteExpired removes rows that are both expired and revoked for
	// longer than the retention window. Returns the number of rows removed.
	DeleteExpired(ctx context.Context, retention time.Duration) (int64, error)
}

// RefreshToken is the persisted record of one issued refresh token. Role is
// the identity snapshot taken at login so rotation can mint access tokens
// without consulting the (external) user store.
type RefreshToken struct {
	ID                uuid.UUID
	JTI               string
	FamilyID          uuid.UUID
	UserID            uuid.UUID
	Role              string
	DeviceFingerprint string
	IssuedAt          time.Time
	ExpiresAt         time.Time
	RevokedAt         *time.Time
	RevocationReason  *RevocationReason
	RotatedFromJTI    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Expired reports whether the row's TTL has elapsed at the given instant.
// Expiry is always computed from ExpiresAt, never stored.
func (t RefreshToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// Revoked reports whether revoked_at has been set.
func (t RefreshToken) Revoked() bool {
	return t.RevokedAt != nil
}
