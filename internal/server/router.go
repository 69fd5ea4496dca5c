package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the API routing table with common middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/ideas", h.Ideas)
		r.Post("/competitor-analysis", h.CompetitorAnalysis)
		r.Post("/keywords", h.Keywords)
		r.Post("/captions", h.Captions)
		r.Post("/ranks", h.Ranks)
		r.Post("/thumbnail", h.Thumbnail)
		r.Post("/repurpose", h.Repurpose)

		r.Get("/reports", h.Reports)
	})

	return r
}
