package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/platform/logging"
)

// traceIDKey is set on the gin context by the telemetry middleware.
const traceIDKey = "trace_id"

// Logging returns middleware that attaches a request-scoped logger to the
// request context and logs each request's start and completion.
//
// The logger carries request_id, correlation_id and trace_id when the
// middleware that sets them ran earlier in the chain. Paths under /-/ and
// the given skipPaths still get the logger but are not logged.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), logger)

		if id := GetRequestID(c); id != "" {
			ctx = logging.WithRequestID(ctx, id)
		}

		if id := GetCorrelationID(c); id != "" {
			ctx = logging.WithCorrelationID(ctx, id)
		}

		if id := c.GetString(traceIDKey); id != "" {
			ctx = logging.WithTraceID(ctx, id)
		}

		c.Request = c.Request.WithContext(ctx)

		path := c.Request.URL.Path
		if _, ok := skip[path]; ok || strings.HasPrefix(path, "/-/") {
			c.Next()
			return
		}

		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		reqLogger := logging.FromContext(ctx)
		start := time.Now()

		reqLogger.Info("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		reqLogger.Log(ctx, levelForStatus(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
