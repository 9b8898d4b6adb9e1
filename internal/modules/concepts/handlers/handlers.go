// Package handlers provides HTTP handlers for the concept catalog.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/concepts"
)

// Handler handles concept HTTP requests
type Handler struct {
	repo *concepts.Repository
	log  zerolog.Logger
}

// NewHandler creates a new concepts handler
func NewHandler(repo *concepts.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "concepts").Logger(),
	}
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// HandleList returns every concept
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.All()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if all == nil {
		all = []concepts.Concept{}
	}

	h.writeJSON(w, http.StatusOK, all)
}

// HandleCreate adds a new concept
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Category == "" {
		h.writeError(w, http.StatusBadRequest, "title, description and category are required")
		return
	}

	created, err := h.repo.Create(concepts.Concept{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusCreated, created)
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
