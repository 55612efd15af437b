package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/krylovda/relayboard-server/internal/logger"
	"github.com/krylovda/relayboard-server/internal/model"
)

// SessionService rotates, revokes and introspects sessions.
type SessionService interface {
	Refresh(ctx context.Context, presented string) (model.RefreshResult, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// Session exposes the session core over HTTP JSON endpoints.
type Session struct {
	service        SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSession creates a new Session handler instance.
func NewSession(service SessionService, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken      string  `json:"access_token"`
	RefreshToken     string  `json:"refresh_token"`
	ExpiresAt        string  `json:"expires_at"`
	SessionCreatedAt string  `json:"session_created_at"`
	SessionAgeHours  float64 `json:"session_age_hours"`
}

type logoutRequest struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type sessionResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
}

// Refresh rotates a presented refresh token into a fresh pair.
func (h *Session) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "refresh_token is required")
		return
	}

	result, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTokenReuseDetected):
			writeError(w, http.StatusUnauthorized, "reuse_detected", "refresh token reuse detected")
		case errors.Is(err, model.ErrTokenExpired):
			writeError(w, http.StatusUnauthorized, "token_expired", "refresh token expired")
		case errors.Is(err, model.ErrInvalidToken):
			writeError(w, http.StatusUnauthorized, "invalid_token", "invalid refresh token")
		default:
			h.logger.Error("Session handler: refresh failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "server_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{
		AccessToken:      result.AccessToken,
		RefreshToken:     result.RefreshToken,
		ExpiresAt:        result.ExpiresAt.UTC().Format(time.RFC3339),
		SessionCreatedAt: result.SessionCreatedAt.UTC().Format(time.RFC3339),
		SessionAgeHours:  result.SessionAge.Hours(),
	})
}

// Logout revokes whatever tokens the caller presents. The access token may
// arrive in the body or as the bearer header; both are optional.
func (h *Session) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}
	}

	accessToken := strings.TrimSpace(req.AccessToken)
	if accessToken == "" {
		accessToken = bearerToken(r)
	}

	if err := h.service.Logout(r.Context(), accessToken, strings.TrimSpace(req.RefreshToken)); err != nil {
		h.logger.Error("Session handler: logout failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Introspect reports the identity the authentication middleware resolved.
func (h *Session) Introspect(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing authenticated identity")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		UserID: identity.UserID.String(),
		Role:   identity.Role,
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
