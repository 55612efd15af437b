package context

import (
	"context"

	"github.com/krylovda/relayboard-server/internal/model"
)

type contextKey int

const identityKey contextKey = 0

// Manager propagates the authenticated identity through plain request
// contexts. Implements model.ContextManager for the HTTP transport.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity set by the authentication
// middleware. The boolean is false when the request was not authenticated.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
