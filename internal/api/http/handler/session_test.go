package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/krylovda/relayboard-server/internal/api/http/context"
	"github.com/krylovda/relayboard-server/internal/mocks"
	"github.com/krylovda/relayboard-server/internal/model"
	"github.com/krylovda/relayboard-server/internal/testutil"
)

func TestSession_Refresh(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		result     model.RefreshResult
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"refresh_token":"rt-1"}`,
			result: model.RefreshResult{
				TokenPair: model.TokenPair{
					AccessToken:  "at-new",
					RefreshToken: "rt-new",
					ExpiresAt:    expiresAt,
				},
				SessionCreatedAt: createdAt,
				SessionAge:       682*time.Hour + 30*time.Minute,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid json",
			body:       `{"refresh_token":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_json",
		},
		{
			name:       "missing token",
			body:       `{"refresh_token":"  "}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
		{
			name:       "invalid token",
			body:       `{"refresh_token":"rt-1"}`,
			serviceErr: model.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "invalid_token",
		},
		{
			name:       "expired token",
			body:       `{"refresh_token":"rt-1"}`,
			serviceErr: model.ErrTokenExpired,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "token_expired",
		},
		{
			name:       "reuse detected",
			body:       `{"refresh_token":"rt-1"}`,
			serviceErr: model.ErrTokenReuseDetected,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "reuse_detected",
		},
		{
			name:       "infra error",
			body:       `{"refresh_token":"rt-1"}`,
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "server_error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.SessionService{}
			if tt.wantStatus == http.StatusOK || tt.serviceErr != nil {
				svc.On("Refresh", mock.Anything, "rt-1").Return(tt.result, tt.serviceErr).Once()
			}

			h := NewSession(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

			r := httptest.NewRequest(http.MethodPost, "/api/session/refresh", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Refresh(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp refreshResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "at-new", resp.AccessToken)
				assert.Equal(t, "rt-new", resp.RefreshToken)
				assert.Equal(t, "2026-08-29T12:30:00Z", resp.ExpiresAt)
				assert.Equal(t, "2026-08-01T10:00:00Z", resp.SessionCreatedAt)
				assert.InDelta(t, 682.5, resp.SessionAgeHours, 0.01)
				return
			}

			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()

	t.Run("body tokens", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.SessionService{}
		svc.On("Logout", mock.Anything, "at-1", "rt-1").Return(nil).Once()

		h := NewSession(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

		r := httptest.NewRequest(http.MethodPost, "/api/session/logout",
			strings.NewReader(`{"access_token":"at-1","refresh_token":"rt-1"}`))
		w := httptest.NewRecorder()
		h.Logout(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("access token from bearer header", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.SessionService{}
		svc.On("Logout", mock.Anything, "at-header", "rt-1").Return(nil).Once()

		h := NewSession(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

		r := httptest.NewRequest(http.MethodPost, "/api/session/logout",
			strings.NewReader(`{"refresh_token":"rt-1"}`))
		r.Header.Set("Authorization", "Bearer at-header")
		w := httptest.NewRecorder()
		h.Logout(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.SessionService{}
		svc.On("Logout", mock.Anything, "", "").Return(nil).Once()

		h := NewSession(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

		r := httptest.NewRequest(http.MethodPost, "/api/session/logout", nil)
		w := httptest.NewRecorder()
		h.Logout(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.SessionService{}
		svc.On("Logout", mock.Anything, "", "rt-1").Return(assert.AnError).Once()

		h := NewSession(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

		r := httptest.NewRequest(http.MethodPost, "/api/session/logout",
			strings.NewReader(`{"refresh_token":"rt-1"}`))
		w := httptest.NewRecorder()
		h.Logout(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSession_Introspect(t *testing.T) {
	t.Parallel()

	cm := httpcontext.NewManager()
	svc := &mocks.SessionService{}
	h := NewSession(svc, cm, testutil.MakeNoopLogger())

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()

		identity := model.Identity{UserID: uuid.New(), Role: "agent"}
		r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
		r = r.WithContext(cm.SetIdentityToContext(r.Context(), identity))
		w := httptest.NewRecorder()
		h.Introspect(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp sessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, identity.UserID.String(), resp.UserID)
		assert.Equal(t, "agent", resp.Role)
	})

	t.Run("no identity in context", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
		w := httptest.NewRecorder()
		h.Introspect(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
