package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/krylovda/relayboard-server/internal/testutil"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	l := NewLogging(testutil.MakeNoopLogger())
	info := &grpc.UnaryServerInfo{FullMethod: "/relayboard.Session/Refresh"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		resp, err := l.HandleGRPC(context.Background(), "req", info,
			func(ctx context.Context, req interface{}) (interface{}, error) {
				return "resp", nil
			})
		require.NoError(t, err)
		assert.Equal(t, "resp", resp)
	})

	t.Run("handler error passes through", func(t *testing.T) {
		t.Parallel()

		wantErr := status.Error(codes.Unauthenticated, "invalid token")
		_, err := l.HandleGRPC(context.Background(), "req", info,
			func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, wantErr
			})
		assert.ErrorIs(t, err, wantErr)
	})
}
