package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RevokedAccessTokenStore is the deny list of access-token identifiers that
// must be rejected even though signature and expiry would otherwise pass.
// Entries carry the token's own expiry; an entry is pointless beyond that
// instant because the expiry check already rejects the token.
type RevokedAccessTokenStore interface {
	// Revoke inserts the identifier if absent. Inserting an already-present
	// identifier, or one whose expiry has passed, is a no-op.
	Revoke(ctx context.Context, jti string, userID uuid.UUID, expiresAt time.Time) error

	// IsRevoked reports whether the identifier is deny-listed. Consulted by
	// request authentication in addition to signature verification.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
