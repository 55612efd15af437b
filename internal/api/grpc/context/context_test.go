package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/krylovda/relayboard-server/internal/model"
)

func TestManager_SetAndGetIdentity(t *testing.T) {
	m := NewManager()
	identity := model.Identity{UserID: uuid.New(), Role: "agent"}

	ctx := m.SetIdentityToContext(context.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_SetIdentity_PreservesExistingMetadata(t *testing.T) {
	m := NewManager()
	identity := model.Identity{UserID: uuid.New()}

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("trace_id", "abc"))
	ctx = m.SetIdentityToContext(ctx, identity)

	md, ok := metadata.FromIncomingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"abc"}, md.Get("trace_id"))

	got, ok := m.GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity.UserID, got.UserID)
}

func TestManager_GetIdentity_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetIdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.MD{})
	_, ok = m.GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_GetIdentity_MalformedUserID(t *testing.T) {
	m := NewManager()

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(userIDKey, "not-a-uuid"))

	_, ok := m.GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
