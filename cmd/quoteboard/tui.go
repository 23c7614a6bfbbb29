package main

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quoteboard/internal/adapters/tui"
	"github.com/jsamuelsen/quoteboard/internal/app"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and submit quotes in the terminal",
		Long: "Browse and submit quotes in the terminal.\n\n" +
			"The terminal belongs to the interface, so logs are written only to the\n" +
			"rolling log file when log.file.enabled is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), root.resolveProfile())
		},
	}
}

func runTUI(ctx context.Context, profile string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	c, err := bootstrap(ctx, profile, io.Discard, nil)
	if err != nil {
		return err
	}
	defer c.close(context.WithoutCancel(ctx))

	c.logger.Info("starting terminal ui", slog.String("quote_store", c.cfg.Services.Quote.BaseURL))

	return tui.Run(ctx, app.NewBoard(c.boardCfg), tui.Options{
		Title:      c.cfg.Board.Title,
		DateLayout: c.cfg.Board.DateLayout,
		Location:   c.location,
	})
}
