// Package handlers provides HTTP handlers for the market catalog.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/market"
)

// Handler handles market catalog HTTP requests
type Handler struct {
	catalog  *market.Catalog
	streamer *market.QuoteStreamer
	log      zerolog.Logger
}

// NewHandler creates a new market handler
func NewHandler(catalog *market.Catalog, streamer *market.QuoteStreamer, log zerolog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		streamer: streamer,
		log:      log.With().Str("handler", "market").Logger(),
	}
}

// HandleList returns every instrument in the catalog
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.All())
}

// HandleGet returns a single instrument by symbol
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	inst, ok := h.catalog.Lookup(symbol)
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown symbol")
		return
	}

	h.writeJSON(w, http.StatusOK, inst)
}

// HandleStream serves the simulated quote tick stream over WebSocket
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	h.streamer.ServeHTTP(w, r)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
