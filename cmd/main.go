package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"saftz/internal/application"
	"saftz/internal/config"
	"saftz/pkg/contextx"
	"saftz/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint:gocritic // cancel is only a signal stop
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "saftz",
		Short:         "САФТЗ demo search service",
		Long:          "Demo search workflow: randomized result cards trickle in, get sorted and selected, and a placeholder document is produced from the selection.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newSimulateCmd())

	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with probe and metrics servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			ctx, err := withLogger(cmd.Context(), cfg, cmd)
			if err != nil {
				return err
			}

			if err = application.Run(ctx, cfg); err != nil {
				contextx.LoggerFromContextOrDefault(ctx).Error("application failed", logx.Error(err))
				return fmt.Errorf("application.Run: %w", err)
			}

			return nil
		},
	}
}

// withLogger installs the configured logger as default and into ctx.
func withLogger(ctx context.Context, cfg config.Config, cmd *cobra.Command) (context.Context, error) {
	log, err := application.NewLogger(cfg.App, cmd.ErrOrStderr())
	if err != nil {
		return ctx, fmt.Errorf("application.NewLogger: %w", err)
	}

	slog.SetDefault(log)

	return contextx.WithLogger(ctx, log), nil
}
