package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/krylovda/relayboard-server/internal/logger"
	"github.com/krylovda/relayboard-server/internal/model"
)

// IdentityService resolves a verified identity from bearer access tokens.
type IdentityService interface {
	GetIdentity(ctx context.Context, accessToken string) (model.Identity, error)
}

// Authenticate validates bearer access tokens and injects the identity into
// the request context. Both the signature/expiry check and the deny-list
// check happen inside the identity service.
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

// Handle wraps next so it only runs for authenticated requests.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			unauthorized(w, "missing bearer token")
			return
		}

		identity, err := m.identityService.GetIdentity(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: rejected token",
				"error", err.Error())
			unauthorized(w, "invalid token")
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"` + msg + `"}}`))
}
