package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RevokedAccessTokenStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return NewRevokedAccessTokenStore(rdb), mr
}

func TestRevokedAccessTokenStore_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	jti := uuid.NewString()

	revoked, err := store.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, jti, uuid.New(), time.Now().Add(30*time.Minute)))

	revoked, err = store.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestRevokedAccessTokenStore_RevokeIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	jti := uuid.NewString()
	userID := uuid.New()

	require.NoError(t, store.Revoke(ctx, jti, userID, time.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, jti, userID, time.Now().Add(time.Hour)))

	revoked, err := store.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestRevokedAccessTokenStore_ExpiredTokenSkipped(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	jti := uuid.NewString()

	require.NoError(t, store.Revoke(ctx, jti, uuid.New(), time.Now().Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestRevokedAccessTokenStore_EntryExpiresWithToken(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	jti := uuid.NewString()

	require.NoError(t, store.Revoke(ctx, jti, uuid.New(), time.Now().Add(time.Minute)))

	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.False(t, revoked)
}
