// Package handlers provides HTTP handlers for portfolio snapshot history.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/snapshots"
)

// defaultOwner is used when no owner is named, matching the portfolio API.
const defaultOwner = "guest"

// Handler handles snapshot HTTP requests
type Handler struct {
	recorder *snapshots.Recorder
	log      zerolog.Logger
}

// NewHandler creates a new snapshots handler
func NewHandler(recorder *snapshots.Recorder, log zerolog.Logger) *Handler {
	return &Handler{
		recorder: recorder,
		log:      log.With().Str("handler", "snapshots").Logger(),
	}
}

// HandleHistory returns an owner's snapshot history, newest first
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = defaultOwner
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	history, err := h.recorder.History(owner, limit)
	if err != nil {
		h.log.Error().Err(err).Str("owner_id", owner).Msg("Failed to load snapshot history")
		h.writeError(w, http.StatusInternalServerError, "failed to load snapshot history")
		return
	}
	if history == nil {
		history = []snapshots.Snapshot{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"owner_id":  owner,
		"snapshots": history,
	})
}

// HandleRun triggers an immediate snapshot of every portfolio
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	recorded, err := h.recorder.RecordAll()
	if err != nil {
		h.log.Error().Err(err).Msg("Snapshot run failed")
		h.writeError(w, http.StatusInternalServerError, "snapshot run failed")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"recorded": recorded,
	})
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
