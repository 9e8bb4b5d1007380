package contextutil_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/contextutil"
)

func TestRequestScopedValues(t *testing.T) {
	ctx := context.Background()
	ctx = contextutil.WithRequestID(ctx, "req-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithRole(ctx, "hr")

	assert.Equal(t, "req-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "user-1", contextutil.GetUserID(ctx))
	assert.Equal(t, "hr", contextutil.GetRole(ctx))
}

func TestGetters_EmptyContext(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, contextutil.GetRequestID(ctx))
	assert.Empty(t, contextutil.GetUserID(ctx))
	assert.Empty(t, contextutil.GetRole(ctx))
}

func TestGetLogger(t *testing.T) {
	t.Run("returns the context logger when present", func(t *testing.T) {
		scoped := zap.NewNop().Named("scoped")
		ctx := contextutil.WithLogger(context.Background(), scoped)

		assert.Same(t, scoped, contextutil.GetLogger(ctx, zap.NewNop()))
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		fallback := zap.NewNop().Named("fallback")

		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("never returns nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}

func TestExtractMetadata(t *testing.T) {
	ctx := context.Background()
	ctx = contextutil.WithRequestID(ctx, "req-9")
	ctx = contextutil.WithUserID(ctx, "user-9")
	ctx = contextutil.WithRole(ctx, "manager")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "req-9", md.RequestID)
	assert.Equal(t, "user-9", md.UserID)
	assert.Equal(t, "manager", md.Role)
}
