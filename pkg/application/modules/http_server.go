package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"saftz/pkg/logx"
)

// HTTPServer модуль, ответственный за запуск и остановку HTTP-сервера
// (graceful shutdown). OnShutdown вызываются после того, как сервер
// дождался завершения текущих запросов.
type HTTPServer struct {
	Name            string
	ShutdownTimeout time.Duration
	OnShutdown      []func(context.Context)
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) {
	log := logger(ctx).With(slog.String("server", h.name()), slog.String("address", httpServer.Addr))

	g.Go(func() error {
		drained := make(chan struct{})

		go func() {
			defer close(drained)

			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			started := time.Now()

			if err := httpServer.Shutdown(ctx); err != nil {
				log.Error("server.Shutdown", logx.Error(err))
			}

			for _, hook := range h.OnShutdown {
				hook(ctx)
			}

			log.Info("http server drained", slog.Int64(logx.FieldDurationMs, time.Since(started).Milliseconds()))
		}()

		log.Info("http server started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}

		<-drained

		log.Info("http server stopped")

		return nil
	})
}

func (h HTTPServer) name() string {
	if h.Name == "" {
		return "http"
	}

	return h.Name
}
