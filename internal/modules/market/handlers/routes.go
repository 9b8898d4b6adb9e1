package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all market catalog routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/market", func(r chi.Router) {
		r.Get("/", h.HandleList)            // Full instrument catalog
		r.Get("/stream", h.HandleStream)    // Simulated quote ticks (WebSocket)
		r.Get("/{symbol}", h.HandleGet)     // Single instrument
	})
}
