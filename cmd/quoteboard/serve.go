package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/views"
	"github.com/jsamuelsen/quoteboard/internal/app"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote board over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root.resolveProfile(), port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port, overriding server.port")

	return cmd
}

func runServe(ctx context.Context, profile string, port int) error {
	c, err := bootstrap(ctx, profile, os.Stdout, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer c.close(context.WithoutCancel(ctx))

	cfg := c.cfg
	if port > 0 {
		cfg.Server.Port = port
	}

	c.logger.Info("starting quoteboard",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("quote_store", cfg.Services.Quote.BaseURL),
	)

	buildInfo := handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(c.health, buildInfo, prometheus.DefaultGatherer)
	sessions := app.NewSessions(app.SessionsConfig{
		Board: c.boardCfg,
		TTL:   cfg.Board.Sessions.TTL,
		Max:   cfg.Board.Sessions.Max,
	})
	boardHandler := handlers.NewBoardHandler(sessions, cfg.Board.Title, views.DateFormat{
		Layout:   cfg.Board.DateLayout,
		Location: c.location,
	})

	gin.SetMode(gin.ReleaseMode)

	server := http.New(&cfg.Server, c.logger)
	routes := http.NewRouterConfig(c.logger, &cfg.App, healthHandler, boardHandler)
	routes.Timeout = server.RequestTimeout()
	http.SetupRouter(server.Engine(), routes)

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, c.logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a signal arrives or the server fails, then
// drains in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
