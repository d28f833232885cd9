package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"saftz/pkg/httpx/reply"
)

const DocumentPath = "/v1/documents/"

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", handler(s.postV1Session))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler(s.getV1Session))
				r.Delete("/", handler(s.deleteV1Session))
				r.Post("/search", handler(s.postV1Search))
				r.Post("/continue", handler(s.postV1Continue))
				r.Post("/pause", handler(s.postV1Pause))
				r.Post("/resume", handler(s.postV1Resume))
				r.Put("/sort", handler(s.putV1Sort))
				r.Post("/cards/{cardID}/toggle", handler(s.postV1ToggleCard))
				r.Post("/document", handler(s.postV1Document))
			})
		})

		r.Get("/documents/{name}", handler(s.getV1Document))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
