package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestID(context.Background(), "request-123")
	ctx = ContextWithCorrelationID(ctx, "correlation-456")

	assert.Equal(t, "request-123", RequestIDFromContext(ctx))
	assert.Equal(t, "correlation-456", CorrelationIDFromContext(ctx))

	ctx = ContextWithRequestID(ctx, "request-789")
	assert.Equal(t, "request-789", RequestIDFromContext(ctx), "inner value shadows outer")
	assert.Equal(t, "correlation-456", CorrelationIDFromContext(ctx))
}

func TestContextIDs_NotSet(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(context.Background()))

	//nolint:staticcheck // nil context is tolerated by the accessors
	assert.Empty(t, RequestIDFromContext(nil))
}
