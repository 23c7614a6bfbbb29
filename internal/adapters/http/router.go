package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
	"github.com/jsamuelsen/quoteboard/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds page and API requests when server.request_timeout
// is not applied. It sits above the default quote store client timeout so the
// client reports the failure first.
const DefaultRequestTimeout = 20 * time.Second

// RouterConfig contains what SetupRouter wires together.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig

	// HealthHandler serves /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// BoardHandler serves the board page and its JSON API. Optional.
	BoardHandler *handlers.BoardHandler

	// Timeout applies to board routes. Zero disables it.
	Timeout time.Duration
}

// NewRouterConfig creates a RouterConfig with the default timeout.
func NewRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	boardHandler *handlers.BoardHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		BoardHandler:  boardHandler,
		Timeout:       DefaultRequestTimeout,
	}
}

// SetupRouter installs the middleware chain and routes on engine.
//
// Middleware order:
//  1. Recovery
//  2. Request ID and correlation ID
//  3. OpenTelemetry span, trace ID header and request metrics
//  4. Request logging (skips /-/ paths)
//
// Routes:
//   - /-/ health, build info and metrics, no timeout
//   - / the board page with its form posts
//   - /api/v1/board the JSON view of the same board
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger, "/favicon.ico"),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.BoardHandler == nil {
		return
	}

	pages := engine.Group("")
	apiV1 := engine.Group("/api/v1")

	if cfg.Timeout > 0 {
		pages.Use(middleware.Timeout(cfg.Timeout))
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	cfg.BoardHandler.RegisterPageRoutes(pages)
	cfg.BoardHandler.RegisterBoardRoutes(apiV1)
}
