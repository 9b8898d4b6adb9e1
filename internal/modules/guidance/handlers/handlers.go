// Package handlers provides HTTP handlers for guidance flowchart sessions
// and the questionnaire.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/guidance"
)

// Handler handles guidance HTTP requests
type Handler struct {
	engine *guidance.Engine
	log    zerolog.Logger
}

// NewHandler creates a new guidance handler
func NewHandler(engine *guidance.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log.With().Str("handler", "guidance").Logger(),
	}
}

// HandleFlowchart returns the full static flowchart
func (h *Handler) HandleFlowchart(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.Steps())
}

// HandleStart opens a new flowchart session at step 1
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	session := h.engine.Start()
	h.writeJSON(w, http.StatusCreated, h.sessionView(session))
}

// HandleGet returns a session's current state
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, err := h.engine.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.sessionView(session))
}

type chooseRequest struct {
	Option int `json:"option"`
}

// HandleChoose applies a choice to the session's current step
func (h *Handler) HandleChoose(w http.ResponseWriter, r *http.Request) {
	var req chooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.engine.Choose(chi.URLParam(r, "id"), req.Option)
	if err != nil {
		switch {
		case errors.Is(err, guidance.ErrSessionNotFound):
			h.writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, guidance.ErrInvalidOption), errors.Is(err, guidance.ErrFlowComplete):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, h.sessionView(session))
}

// HandleRestart resets a session back to step 1
func (h *Handler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	session, err := h.engine.Restart(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.sessionView(session))
}

// HandleQuestions returns the questionnaire
func (h *Handler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, guidance.Questions())
}

// HandleRecommendations maps questionnaire answers to suggestions
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	var answers guidance.Answers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recs := guidance.Recommendations(answers)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
	})
}

type sessionResponse struct {
	ID       string           `json:"id"`
	Progress int              `json:"progress"`
	Path     []int            `json:"path"`
	Complete bool             `json:"complete"`
	Step     *guidance.Step   `json:"step,omitempty"`
	Advice   *guidance.Advice `json:"advice,omitempty"`
}

func (h *Handler) sessionView(session *guidance.Session) sessionResponse {
	resp := sessionResponse{
		ID:       session.ID,
		Progress: session.Progress(h.engine.StepCount()),
		Path:     session.Path,
		Complete: session.Complete(),
		Advice:   session.Advice,
	}
	if !session.Complete() {
		if step, err := h.engine.Step(session.Current); err == nil {
			resp.Step = &step
		}
	}
	return resp
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
