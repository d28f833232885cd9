package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"saftz/pkg/logx"
	"saftz/pkg/middlewarex"
)

type RouterOptions struct {
	LogFieldMaxLen int
	RateLimiter    *middlewarex.RateLimiter
	Masker         logx.SensitiveDataMaskerInterface
}

// NewRouter wires the middleware chain in front of the API routes.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	if opts.Masker == nil {
		opts.Masker = logx.NewSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(opts.Masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(opts.Masker, opts.LogFieldMaxLen),
	)

	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}

	s.RegisterRoutes(r)

	return r
}
