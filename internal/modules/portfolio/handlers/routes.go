package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all portfolio routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/", h.HandleGet)                     // Portfolio (create-if-absent)
		r.Get("/summary", h.HandleSummary)          // Current valuation
		r.Get("/transactions", h.HandleTransactions) // Trade log
		r.Post("/buy", h.HandleBuy)                 // Buy order
		r.Post("/sell", h.HandleSell)               // Sell order
	})
}
