package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the projection route
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/projection", h.HandleProject) // Compound-growth projection
}
