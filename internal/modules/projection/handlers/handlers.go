// Package handlers provides the HTTP handler for portfolio growth projections.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/portfolio"
	"github.com/moneywise/moneywise/internal/modules/projection"
)

const defaultOwner = "guest"

// Handler handles projection HTTP requests
type Handler struct {
	ledger *portfolio.Ledger
	log    zerolog.Logger
}

// NewHandler creates a new projection handler
func NewHandler(ledger *portfolio.Ledger, log zerolog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		log:    log.With().Str("handler", "projection").Logger(),
	}
}

// HandleProject values the owner's portfolio and projects it over the
// requested horizon. Query parameters: owner, horizon, unit
// (days|weeks|months), rate (annual percent, optional).
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	owner := q.Get("owner")
	if owner == "" {
		owner = defaultOwner
	}

	horizon, err := strconv.Atoi(q.Get("horizon"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "horizon must be an integer")
		return
	}

	days, err := projection.HorizonDays(horizon, q.Get("unit"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rate := projection.DefaultAnnualRatePct
	if raw := q.Get("rate"); raw != "" {
		rate, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "rate must be a number")
			return
		}
	}

	v, err := h.ledger.Valuation(owner)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	res, err := projection.Project(v.TotalValue, days, rate)
	if err != nil {
		if errors.Is(err, projection.ErrInvalidInput) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"owner":           owner,
		"total_value":     v.TotalValue,
		"horizon_days":    days,
		"annual_rate_pct": rate,
		"projected_value": res.ProjectedValue,
		"growth_amount":   res.GrowthAmount,
		"growth_percent":  res.GrowthPercent,
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
