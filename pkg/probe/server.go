// Package probe serves the liveness and readiness endpoints on a separate
// port so that the orchestrator never competes with API clients.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"saftz/pkg/contextx"
	"saftz/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	readyCheckTimeout           = time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// ReadyFunc reports why the service cannot take traffic; nil means ready.
type ReadyFunc func(ctx context.Context) error

type Options struct {
	Name    string
	Version string
	// Ready is optional. Without it /ready mirrors /healthz.
	Ready ReadyFunc
}

type state struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

type Server struct {
	listenAddress string
	options       Options
}

func NewServer(
	listenAddress string,
	options Options,
) Server {
	return Server{
		listenAddress: listenAddress,
		options:       options,
	}
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handlerHealthz)
	mux.HandleFunc("GET /ready", s.handlerReady)

	return mux
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	s.write(w, http.StatusOK, nil)
}

func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	if s.options.Ready == nil {
		s.write(w, http.StatusOK, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
	defer cancel()

	if err := s.options.Ready(ctx); err != nil {
		logger(ctx).Warn("not ready", logx.Error(err))
		s.write(w, http.StatusServiceUnavailable, err)

		return
	}

	s.write(w, http.StatusOK, nil)
}

func (s Server) write(w http.ResponseWriter, statusCode int, err error) {
	body := state{
		Name:    s.options.Name,
		Version: s.options.Version,
		Status:  StatusOK,
	}

	if err != nil {
		body.Status = StatusUnavailable
		body.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body) //nolint:errcheck,errchkjson
}
