package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, defaultLogger, FromContext(nil)) //nolint:staticcheck // nil guard
	assert.Equal(t, defaultLogger, FromContext(context.Background()))

	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, scoped, FromContext(WithContext(context.Background(), scoped)))
}

func TestFromContextOr(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Equal(t, fallback, FromContextOr(nil, fallback)) //nolint:staticcheck // nil guard
	assert.Equal(t, defaultLogger, FromContextOr(context.Background(), nil))

	scoped := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), scoped)
	assert.Equal(t, scoped, FromContextOr(ctx, fallback))
}

// A board request carries its IDs through to the quote store client's logs.
func TestRequestScopedIDs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), base)
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContextOr(ctx, nil).InfoContext(ctx, "list quotes", slog.Int("max_age_days", 30))

	records := jsonLines(t, buf.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, "req-123", records[0]["request_id"])
	assert.Equal(t, "trace-456", records[0]["trace_id"])
	assert.Equal(t, "corr-789", records[0]["correlation_id"])
}

func TestWithAttrs_LeavesParentContextAlone(t *testing.T) {
	var buf bytes.Buffer
	parent := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	_ = WithRequestID(parent, "req-1")
	FromContext(parent).Info("unscoped")

	assert.NotContains(t, buf.String(), "req-1")
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	originalSlog := slog.Default()

	t.Cleanup(func() {
		defaultLogger = original
		slog.SetDefault(originalSlog)
	})

	var buf bytes.Buffer
	custom := slog.New(slog.NewJSONHandler(&buf, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))

	slog.Info("through the package default")
	assert.Contains(t, buf.String(), "through the package default")
}
