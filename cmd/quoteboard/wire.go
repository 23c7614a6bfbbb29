package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
	"github.com/jsamuelsen/quoteboard/internal/platform/logging"
	"github.com/jsamuelsen/quoteboard/internal/platform/metrics"
	"github.com/jsamuelsen/quoteboard/internal/platform/telemetry"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// components are the pieces shared by the serve and tui commands.
type components struct {
	cfg       *config.Config
	logger    *slog.Logger
	telemetry *telemetry.Provider
	health    *ports.DefaultHealthRegistry
	store     *acl.QuoteStoreClient
	boardCfg  app.BoardConfig
	location  *time.Location
}

// bootstrap loads configuration and prepares the board configuration over
// the quote store client. Logs go to logOut and, when configured, to the
// rolling file. reg receives the board metrics; nil disables them.
func bootstrap(ctx context.Context, profile string, logOut io.Writer, reg prometheus.Registerer) (*components, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	loc, err := cfg.Board.Location()
	if err != nil {
		return nil, err
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			Level:      cfg.Log.File.Level,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, logOut)
	logging.SetDefault(logger)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:         cfg.Services.Quote.BaseURL,
		ServiceName:     cfg.Services.Quote.Name,
		Timeout:         cfg.Client.Timeout,
		MaxResponseSize: cfg.Client.MaxResponseSize,
		Circuit:         cfg.Client.CircuitBreaker,
		Transport:       cfg.Client.Transport,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating quote store client: %w", err)
	}

	store := acl.NewQuoteStoreClient(acl.QuoteStoreConfig{
		Client:   httpClient,
		Logger:   logger,
		Location: loc,
	})

	health := ports.NewHealthRegistry()
	if err := health.Register(store); err != nil {
		return nil, fmt.Errorf("registering quote store health check: %w", err)
	}

	var boardMetrics ports.BoardMetrics = ports.NopBoardMetrics{}
	if reg != nil {
		boardMetrics = metrics.NewBoard(reg)
	}

	return &components{
		cfg:       cfg,
		logger:    logger,
		telemetry: telProvider,
		health:    health,
		store:     store,
		boardCfg: app.BoardConfig{
			Store:          store,
			Metrics:        boardMetrics,
			Logger:         logger,
			RequestFencing: cfg.Board.RequestFencing,
		},
		location: loc,
	}, nil
}

// close flushes telemetry.
func (c *components) close(ctx context.Context) {
	if err := c.telemetry.Shutdown(ctx); err != nil {
		c.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}
