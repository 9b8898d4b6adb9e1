package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all concept catalog routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/concepts", func(r chi.Router) {
		r.Get("/", h.HandleList)    // Full concept catalog
		r.Post("/", h.HandleCreate) // Add a concept
	})
}
