package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all guidance routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/guidance", func(r chi.Router) {
		r.Get("/flowchart", h.HandleFlowchart)            // Static flowchart definition
		r.Get("/questions", h.HandleQuestions)            // Questionnaire
		r.Post("/recommendations", h.HandleRecommendations) // Questionnaire advice
		r.Post("/", h.HandleStart)                        // Start a flowchart session
		r.Get("/{id}", h.HandleGet)                       // Session state
		r.Post("/{id}/choose", h.HandleChoose)            // Apply a choice
		r.Post("/{id}/restart", h.HandleRestart)          // Back to step 1
	})
}
