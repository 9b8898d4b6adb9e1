// Package handlers provides HTTP handlers for the paper-trading portfolio API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/portfolio"
)

// defaultOwner is used when a request carries no owner identifier,
// so the site works without sign-in.
const defaultOwner = "guest"

// Handler handles portfolio HTTP requests
type Handler struct {
	ledger *portfolio.Ledger
	log    zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(ledger *portfolio.Ledger, log zerolog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		log:    log.With().Str("handler", "portfolio").Logger(),
	}
}

type buyRequest struct {
	Owner  string  `json:"owner"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Shares int     `json:"shares"`
	Price  float64 `json:"price"`
}

type sellRequest struct {
	Owner  string  `json:"owner"`
	Symbol string  `json:"symbol"`
	Shares int     `json:"shares"`
	Price  float64 `json:"price"`
}

// HandleGet returns the owner's portfolio, creating it on first access
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromQuery(r)

	p, err := h.ledger.GetOrCreate(owner)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// HandleSummary returns the owner's current valuation
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromQuery(r)

	v, err := h.ledger.Valuation(owner)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, v)
}

// HandleTransactions returns the owner's trade log, oldest first
func (h *Handler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromQuery(r)

	p, err := h.ledger.GetOrCreate(owner)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, p.Transactions)
}

// HandleBuy executes a buy order and returns the updated portfolio
func (h *Handler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Owner == "" {
		req.Owner = defaultOwner
	}

	p, err := h.ledger.Buy(req.Owner, req.Symbol, req.Name, req.Shares, req.Price)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// HandleSell executes a sell order and returns the updated portfolio plus
// the realized gain or loss
func (h *Handler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req sellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Owner == "" {
		req.Owner = defaultOwner
	}

	res, err := h.ledger.Sell(req.Owner, req.Symbol, req.Shares, req.Price)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

// writeLedgerError maps ledger validation failures to 400 responses.
// Anything else is a storage failure and surfaces as 500.
func (h *Handler) writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, portfolio.ErrInvalidInput),
		errors.Is(err, portfolio.ErrUnknownSymbol),
		errors.Is(err, portfolio.ErrInsufficientFunds),
		errors.Is(err, portfolio.ErrPortfolioNotFound),
		errors.Is(err, portfolio.ErrHoldingNotFound),
		errors.Is(err, portfolio.ErrInsufficientShares):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error().Err(err).Msg("Ledger operation failed")
		h.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func ownerFromQuery(r *http.Request) string {
	if owner := r.URL.Query().Get("owner"); owner != "" {
		return owner
	}
	return defaultOwner
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
