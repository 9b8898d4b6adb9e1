package quiz

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound marks an unknown quiz session id.
	ErrSessionNotFound = errors.New("quiz session not found")

	// ErrQuizFinished means every question has already been answered.
	ErrQuizFinished = errors.New("quiz already finished")

	// ErrQuizNotFinished means a result was requested before the last answer.
	ErrQuizNotFinished = errors.New("quiz not finished yet")

	// ErrInvalidAnswer marks an answer outside the question's options.
	ErrInvalidAnswer = errors.New("answer is not one of the options")
)

// Session is one in-flight quiz attempt. Questions are answered strictly
// in order and each question accepts exactly one answer.
type Session struct {
	ID        string
	Questions []Question
	Current   int
	Correct   int
	CreatedAt time.Time
}

// Finished reports whether every question has been answered.
func (s *Session) Finished() bool {
	return s.Current >= len(s.Questions)
}

// AnswerOutcome is the feedback returned after answering one question.
type AnswerOutcome struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	ConceptTitle  string `json:"concept"`
	Finished      bool   `json:"finished"`
}

// Result is the final score of a finished quiz.
type Result struct {
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// SessionStore keeps active quiz sessions in memory. Quizzes are short-lived
// and regenerated on demand, so there is nothing worth persisting.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create registers a new session around the given questions.
func (s *SessionStore) Create(questions []Question) *Session {
	session := &Session{
		ID:        uuid.New().String(),
		Questions: questions,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get returns a session by id.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Answer records the answer to the session's current question and advances
// the cursor. The answer must match one of the question's options verbatim.
func (s *SessionStore) Answer(id, answer string) (AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return AnswerOutcome{}, ErrSessionNotFound
	}
	if session.Finished() {
		return AnswerOutcome{}, ErrQuizFinished
	}

	question := session.Questions[session.Current]
	valid := false
	for _, opt := range question.Options {
		if opt == answer {
			valid = true
			break
		}
	}
	if !valid {
		return AnswerOutcome{}, ErrInvalidAnswer
	}

	correct := answer == question.CorrectAnswer
	if correct {
		session.Correct++
	}
	session.Current++

	return AnswerOutcome{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		ConceptTitle:  question.ConceptTitle,
		Finished:      session.Finished(),
	}, nil
}

// Result returns the final score of a finished session and removes it
// from the store.
func (s *SessionStore) Result(id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Result{}, ErrSessionNotFound
	}
	if !session.Finished() {
		return Result{}, ErrQuizNotFinished
	}

	delete(s.sessions, id)

	total := len(session.Questions)
	percent := 0.0
	if total > 0 {
		percent = math.Round(float64(session.Correct) / float64(total) * 100)
	}

	return Result{
		Correct:   session.Correct,
		Incorrect: total - session.Correct,
		Total:     total,
		Percent:   percent,
	}, nil
}
