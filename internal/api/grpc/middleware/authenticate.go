package middleware

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/krylovda/relayboard-server/internal/logger"
	"github.com/krylovda/relayboard-server/internal/model"
)

// IdentityService resolves a verified identity from bearer access tokens.
type IdentityService interface {
	GetIdentity(ctx context.Context, accessToken string) (model.Identity, error)
}

// Authenticate validates bearer tokens from gRPC metadata and injects the
// identity into context. Collaborator services install it via Interceptors.
type Authenticate struct {
	identityService IdentityService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identityService IdentityService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		identityService: identityService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// AuthFunc parses the authorization metadata, validates the token and returns
// a context carrying the identity. Satisfies auth.AuthFunc.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimPrefix(authHeaders[0], "Bearer ")
		}
	}

	if tokenString == "" {
		return nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}

	identity, err := m.identityService.GetIdentity(ctx, tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: rejected token",
			"error", err.Error())
		return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
	}

	return m.contextManager.SetIdentityToContext(ctx, identity), nil
}

// Interceptors returns server options enforcing authentication on every
// method the matcher selects. A nil matcher authenticates everything.
func (m *Authenticate) Interceptors(match selector.Matcher) []grpc.ServerOption {
	if match == nil {
		match = selector.MatchFunc(func(context.Context, interceptors.CallMeta) bool { return true })
	}

	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(m.AuthFunc),
				match,
			),
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(m.AuthFunc),
				match,
			),
		),
	}
}
