package guidance

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownStep marks a step number outside the flowchart.
	ErrUnknownStep = errors.New("unknown flowchart step")

	// ErrUnknownAdviceKey marks an option pointing at a missing template.
	ErrUnknownAdviceKey = errors.New("unknown advice key")

	// ErrInvalidOption marks an option index outside the current step.
	ErrInvalidOption = errors.New("invalid option")

	// ErrFlowComplete means advice was already reached and no more choices
	// are accepted until the session is restarted.
	ErrFlowComplete = errors.New("flowchart already complete")

	// ErrSessionNotFound marks an unknown session id.
	ErrSessionNotFound = errors.New("guidance session not found")
)

// Session is one walk through the flowchart. Path records every step
// visited in order; Advice is set once a terminal option is chosen.
type Session struct {
	ID        string    `json:"id"`
	Current   int       `json:"current_step"`
	Path      []int     `json:"path"`
	AdviceKey string    `json:"advice_key,omitempty"`
	Advice    *Advice   `json:"advice,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// Complete reports whether the walk reached advice.
func (s *Session) Complete() bool {
	return s.Advice != nil
}

// Progress reports how far through the flowchart the session is, as a
// whole percentage of the step count.
func (s *Session) Progress(totalSteps int) int {
	if s.Complete() || totalSteps == 0 {
		return 100
	}
	return int(math.Round(float64(s.Current) / float64(totalSteps) * 100))
}

// Engine runs flowchart sessions over the static step data. Sessions are
// kept in memory; an abandoned walk costs nothing to redo.
type Engine struct {
	steps    map[int]Step
	ordered  []Step
	advice   map[string]Advice
	mu       sync.RWMutex
	sessions map[string]*Session
	log      zerolog.Logger
}

// NewEngine builds an engine around the built-in flowchart, validating
// that every option points at a real step or advice template.
func NewEngine(log zerolog.Logger) (*Engine, error) {
	return newEngine(flowchartSteps, adviceTemplates, log)
}

func newEngine(steps []Step, advice map[string]Advice, log zerolog.Logger) (*Engine, error) {
	byNumber := make(map[int]Step, len(steps))
	for _, s := range steps {
		if _, dup := byNumber[s.Step]; dup {
			return nil, fmt.Errorf("duplicate flowchart step %d", s.Step)
		}
		byNumber[s.Step] = s
	}
	for _, s := range steps {
		for _, opt := range s.Options {
			switch {
			case opt.AdviceKey != "":
				if _, ok := advice[opt.AdviceKey]; !ok {
					return nil, fmt.Errorf("step %d option %q: %w: %s", s.Step, opt.Text, ErrUnknownAdviceKey, opt.AdviceKey)
				}
			case opt.Next != 0:
				if _, ok := byNumber[opt.Next]; !ok {
					return nil, fmt.Errorf("step %d option %q: %w: %d", s.Step, opt.Text, ErrUnknownStep, opt.Next)
				}
			default:
				return nil, fmt.Errorf("step %d option %q has no destination", s.Step, opt.Text)
			}
		}
	}

	return &Engine{
		steps:    byNumber,
		ordered:  steps,
		advice:   advice,
		sessions: make(map[string]*Session),
		log:      log.With().Str("component", "guidance").Logger(),
	}, nil
}

// Steps returns the full flowchart in step order.
func (e *Engine) Steps() []Step {
	return e.ordered
}

// StepCount returns the number of steps in the flowchart.
func (e *Engine) StepCount() int {
	return len(e.ordered)
}

// Step returns a single step by number.
func (e *Engine) Step(number int) (Step, error) {
	step, ok := e.steps[number]
	if !ok {
		return Step{}, fmt.Errorf("%w: %d", ErrUnknownStep, number)
	}
	return step, nil
}

// AdviceFor returns the advice template behind a key.
func (e *Engine) AdviceFor(key string) (Advice, error) {
	advice, ok := e.advice[key]
	if !ok {
		return Advice{}, fmt.Errorf("%w: %s", ErrUnknownAdviceKey, key)
	}
	return advice, nil
}

// Start opens a new session positioned at step 1.
func (e *Engine) Start() *Session {
	first := e.ordered[0].Step
	session := &Session{
		ID:        uuid.New().String(),
		Current:   first,
		Path:      []int{first},
		CreatedAt: time.Now(),
	}

	e.mu.Lock()
	e.sessions[session.ID] = session
	e.mu.Unlock()

	e.log.Debug().Str("session_id", session.ID).Msg("Flowchart session started")
	return session
}

// Get returns a session by id.
func (e *Engine) Get(id string) (*Session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	session, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Choose applies the option at index to the session's current step,
// either advancing to the next step or resolving terminal advice.
func (e *Engine) Choose(id string, optionIndex int) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Complete() {
		return nil, ErrFlowComplete
	}

	step := e.steps[session.Current]
	if optionIndex < 0 || optionIndex >= len(step.Options) {
		return nil, fmt.Errorf("%w: index %d at step %d", ErrInvalidOption, optionIndex, step.Step)
	}

	option := step.Options[optionIndex]
	if option.AdviceKey != "" {
		advice := e.advice[option.AdviceKey]
		session.AdviceKey = option.AdviceKey
		session.Advice = &advice
		e.log.Debug().
			Str("session_id", session.ID).
			Str("advice", option.AdviceKey).
			Ints("path", session.Path).
			Msg("Flowchart session resolved")
		return session, nil
	}

	session.Current = option.Next
	session.Path = append(session.Path, option.Next)
	return session, nil
}

// Restart resets an existing session back to step 1, keeping its id.
func (e *Engine) Restart(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	first := e.ordered[0].Step
	session.Current = first
	session.Path = []int{first}
	session.AdviceKey = ""
	session.Advice = nil
	return session, nil
}
