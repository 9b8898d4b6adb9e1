package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all snapshot routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/snapshots", func(r chi.Router) {
		r.Get("/", h.HandleHistory) // Valuation history for an owner
		r.Post("/run", h.HandleRun) // Snapshot every portfolio now
	})
}
