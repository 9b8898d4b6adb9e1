package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all quiz routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/quiz", func(r chi.Router) {
		r.Post("/", h.HandleStart)              // Start a new quiz
		r.Get("/{id}", h.HandleGet)             // Current question
		r.Post("/{id}/answer", h.HandleAnswer)  // Answer current question
		r.Get("/{id}/result", h.HandleResult)   // Final score
	})
}
