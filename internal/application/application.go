// Package application собирает сервис из конфигурации: логгер, генератор
// карточек, заглушку документа, менеджер сессий и HTTP-серверы.
package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"saftz/internal/config"
	"saftz/internal/domain/service/document"
	"saftz/internal/domain/service/random"
	"saftz/internal/domain/service/search"
	"saftz/internal/domain/service/sequencer"
	"saftz/internal/server"
	"saftz/pkg/application/modules"
	"saftz/pkg/contextx"
	"saftz/pkg/logx"
	"saftz/pkg/middlewarex"
)

// NewLogger builds the logger described by the app config.
func NewLogger(cfg config.App, w io.Writer) (*slog.Logger, error) {
	level, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logx.ParseLevel: %w", err)
	}

	return logx.New(w, level, cfg.NoColor).With(
		slog.String(logx.FieldAppName, cfg.Name),
		slog.String(logx.FieldAppVersion, cfg.Version),
	), nil
}

func NewSequencer(cfg config.Sequencer) *sequencer.Sequencer {
	var r random.Randomizer = random.NewFromTime()
	if cfg.Seed != 0 {
		r = random.New(cfg.Seed)
	}

	return sequencer.New(
		sequencer.WithRandomizer(r),
		sequencer.WithDelayRange(cfg.MinDelay, cfg.MaxDelay),
		sequencer.WithTurbo(cfg.Turbo),
	)
}

func NewDocumentGenerator(cfg config.Document) *document.Generator {
	return document.NewGenerator(
		server.DocumentPath+document.FileName,
		document.WithDelay(cfg.Delay),
	)
}

// NewSearchOptions wires the per-session dependencies. observer may be nil.
func NewSearchOptions(cfg config.Config, observer search.Observer) search.Options {
	return search.Options{
		BatchSize: cfg.Sequencer.BatchSize,
		Arrivals:  NewSequencer(cfg.Sequencer),
		Documents: NewDocumentGenerator(cfg.Document),
		Observer:  observer,
	}
}

func NewHandler(cfg config.Config, manager *search.Manager) http.Handler {
	srv := server.NewServer(
		server.NewSessionServer(manager),
		server.NewDocumentServer(document.PlaceholderPDF),
	)

	return server.NewRouter(srv, server.RouterOptions{
		LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
		RateLimiter:    middlewarex.NewRateLimiter(cfg.RateLimit.RatePerSecond, cfg.RateLimit.Burst),
	})
}

// Run serves the API, probe and metrics endpoints until ctx is cancelled or
// one of the servers fails. Sessions are closed once the API server has
// drained, before Run returns.
func Run(ctx context.Context, cfg config.Config) error {
	log := contextx.LoggerFromContextOrDefault(ctx)

	manager := search.NewManager(ctx, search.ManagerConfig{
		TTL:             cfg.Session.TTL,
		CleanupInterval: cfg.Session.CleanupInterval,
	}, NewSearchOptions(cfg, nil))

	log.Info("application starting",
		slog.Int("batch-size", cfg.Sequencer.BatchSize),
		slog.Bool("turbo", cfg.Sequencer.Turbo),
	)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           NewHandler(cfg, manager),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{
		Name:            "api",
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		OnShutdown:      []func(context.Context){manager.Close},
	}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         manager.Ready,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsListenAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
