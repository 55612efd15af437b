package model

import "context"

// ContextManager propagates the authenticated identity through request
// contexts. Transport packages provide the implementation.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
