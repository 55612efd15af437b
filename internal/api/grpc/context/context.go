package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/krylovda/relayboard-server/internal/model"
)

// Metadata keys used to carry the authenticated identity between
// interceptors and handlers.
const (
	userIDKey string = "user_id"
	roleKey   string = "user_role"
)

// Manager propagates the authenticated identity through gRPC metadata.
// Implements model.ContextManager for the gRPC transport.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext stores the identity in incoming metadata and returns
// the derived context.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.MD{}
	}
	md.Set(userIDKey, identity.UserID.String())
	md.Set(roleKey, identity.Role)

	return metadata.NewIncomingContext(ctx, md)
}

// GetIdentityFromContext reads the identity back out of incoming metadata.
// The boolean is false when the request was not authenticated.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return model.Identity{}, false
	}

	userIDs := md.Get(userIDKey)
	if len(userIDs) == 0 {
		return model.Identity{}, false
	}

	userID, err := uuid.Parse(userIDs[0])
	if err != nil {
		return model.Identity{}, false
	}

	identity := model.Identity{UserID: userID}
	if roles := md.Get(roleKey); len(roles) > 0 {
		identity.Role = roles[0]
	}

	return identity, true
}
