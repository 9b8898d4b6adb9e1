// Package handlers provides HTTP handlers for quiz sessions.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/concepts"
	"github.com/moneywise/moneywise/internal/modules/quiz"
)

// Handler handles quiz HTTP requests
type Handler struct {
	generator *quiz.Generator
	sessions  *quiz.SessionStore
	concepts  *concepts.Repository
	log       zerolog.Logger
}

// NewHandler creates a new quiz handler
func NewHandler(generator *quiz.Generator, sessions *quiz.SessionStore, repo *concepts.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		sessions:  sessions,
		concepts:  repo,
		log:       log.With().Str("handler", "quiz").Logger(),
	}
}

type startRequest struct {
	Count int `json:"count"`
}

type questionResponse struct {
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
	Number   int      `json:"number"`
	Total    int      `json:"total"`
	Finished bool     `json:"finished"`
}

// HandleStart generates a fresh quiz and opens a session for it
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	req := startRequest{Count: quiz.DefaultQuestionCount}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.Count == 0 {
		req.Count = quiz.DefaultQuestionCount
	}

	catalog, err := h.concepts.All()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load concepts for quiz")
		h.writeError(w, http.StatusInternalServerError, "failed to load concepts")
		return
	}

	questions, err := h.generator.Generate(catalog, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrInvalidCount), errors.Is(err, quiz.ErrInsufficientConcepts):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	session := h.sessions.Create(questions)
	h.log.Info().Str("session_id", session.ID).Int("questions", len(questions)).Msg("Quiz started")

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       session.ID,
		"total":    len(questions),
		"question": currentQuestion(session),
	})
}

// HandleGet returns the session's current question
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, currentQuestion(session))
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// HandleAnswer records an answer to the current question
func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Answer == "" {
		h.writeError(w, http.StatusBadRequest, "answer is required")
		return
	}

	outcome, err := h.sessions.Answer(chi.URLParam(r, "id"), req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrSessionNotFound):
			h.writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, quiz.ErrInvalidAnswer), errors.Is(err, quiz.ErrQuizFinished):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, outcome)
}

// HandleResult returns the final score of a finished quiz
func (h *Handler) HandleResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessions.Result(chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrSessionNotFound):
			h.writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, quiz.ErrQuizNotFinished):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func currentQuestion(session *quiz.Session) questionResponse {
	if session.Finished() {
		return questionResponse{
			Number:   len(session.Questions),
			Total:    len(session.Questions),
			Finished: true,
		}
	}

	q := session.Questions[session.Current]
	return questionResponse{
		Prompt:  q.Prompt,
		Options: q.Options,
		Number:  session.Current + 1,
		Total:   len(session.Questions),
	}
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
