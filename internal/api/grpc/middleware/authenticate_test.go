package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpccontext "github.com/krylovda/relayboard-server/internal/api/grpc/context"
	"github.com/krylovda/relayboard-server/internal/mocks"
	"github.com/krylovda/relayboard-server/internal/model"
	"github.com/krylovda/relayboard-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mdAuthHeader string
		identity     model.Identity
		identityErr  error
		wantErr      bool
	}{
		{
			name:         "missing authorization header",
			mdAuthHeader: "",
			wantErr:      true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			identityErr:  model.ErrInvalidToken,
			wantErr:      true,
		},
		{
			name:         "expired token",
			mdAuthHeader: "Bearer stale",
			identityErr:  model.ErrTokenExpired,
			wantErr:      true,
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			identity:     model.Identity{UserID: uuid.New(), Role: "agent"},
			wantErr:      false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := grpccontext.NewManager()
			svc := &mocks.IdentityService{}
			if tt.mdAuthHeader != "" {
				svc.On("GetIdentity", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.identity, tt.identityErr).Once()
			}

			m := NewAuthenticate(svc, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Nil(t, newCtx)
				return
			}

			require.NoError(t, err)
			got, ok := cm.GetIdentityFromContext(newCtx)
			require.True(t, ok)
			assert.Equal(t, tt.identity, got)
		})
	}
}

func TestAuthenticate_Interceptors(t *testing.T) {
	t.Parallel()

	m := NewAuthenticate(&mocks.IdentityService{}, grpccontext.NewManager(), testutil.MakeNoopLogger())

	opts := m.Interceptors(nil)
	assert.Len(t, opts, 2)
}
