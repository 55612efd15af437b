package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/krylovda/relayboard-server/internal/model"
)

const revokedKeyPrefix = "revoked:access:"

var _ model.RevokedAccessTokenStore = (*RevokedAccessTokenStore)(nil)

// RevokedAccessTokenStore keeps the access-token deny list in Redis. Each
// entry lives exactly as long as the token it blocks: the key TTL is the
// token's remaining lifetime, so pruning is native.
type RevokedAccessTokenStore struct {
	client *redis.Client
}

func NewRevokedAccessTokenStore(client *redis.Client) *RevokedAccessTokenStore {
	return &RevokedAccessTokenStore{client: client}
}

func (s *RevokedAccessTokenStore) Revoke(ctx context.Context, jti string, userID uuid.UUID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already rejected by the expiry check everywhere.
		return nil
	}

	// SETNX keeps the first entry's TTL: re-revoking is a no-op.
	if err := s.client.SetNX(ctx, revokedKeyPrefix+jti, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to deny-list access token: %w", err)
	}
	return nil
}

func (s *RevokedAccessTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check deny list: %w", err)
	}
	return n > 0, nil
}
