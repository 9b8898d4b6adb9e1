// Package quiz generates multiple-choice quizzes from the concept catalog
// and tracks per-session progress and score.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/moneywise/moneywise/internal/modules/concepts"
)

// DefaultQuestionCount is the quiz length requested by the site.
const DefaultQuestionCount = 5

// maxDistractors is the number of wrong answers shown next to the correct one.
const maxDistractors = 3

var (
	// ErrInsufficientConcepts means the catalog cannot supply at least one
	// correct answer and one distractor.
	ErrInsufficientConcepts = errors.New("not enough concepts to build a quiz")

	// ErrInvalidCount marks a non-positive requested question count.
	ErrInvalidCount = errors.New("question count must be positive")
)

// Question is one generated multiple-choice question. Ephemeral, never
// persisted; a restarted quiz is regenerated from scratch.
type Question struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
	ConceptTitle  string   `json:"-"`
}

// Generator builds quizzes. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator. A nil rng gets a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds up to count questions from the catalog. Concepts are
// shuffled uniformly and the first min(count, len) become question sources;
// a catalog smaller than count yields a shorter quiz, not an error.
//
// Each question pairs the source concept's description with up to three
// distractor descriptions sampled without replacement from the other
// concepts, and the display order of options is shuffled per question.
func (g *Generator) Generate(catalog []concepts.Concept, count int) ([]Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if len(catalog) < 2 {
		return nil, fmt.Errorf("%w: have %d, need at least 2", ErrInsufficientConcepts, len(catalog))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	shuffled := make([]concepts.Concept, len(catalog))
	copy(shuffled, catalog)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := count
	if len(shuffled) < n {
		n = len(shuffled)
	}

	questions := make([]Question, 0, n)
	for _, source := range shuffled[:n] {
		questions = append(questions, g.buildQuestion(source, catalog))
	}
	return questions, nil
}

// buildQuestion assembles one question for a source concept.
func (g *Generator) buildQuestion(source concepts.Concept, catalog []concepts.Concept) Question {
	// Distractor pool: every other concept's description
	pool := make([]string, 0, len(catalog)-1)
	for _, c := range catalog {
		if c.ID == source.ID {
			continue
		}
		pool = append(pool, c.Description)
	}
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > maxDistractors {
		pool = pool[:maxDistractors]
	}

	options := append([]string{source.Description}, pool...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	prompts := []string{
		fmt.Sprintf("What is %s?", source.Title),
		fmt.Sprintf("Which statement best describes %s?", source.Title),
	}

	return Question{
		Prompt:        prompts[g.rng.Intn(len(prompts))],
		Options:       options,
		CorrectAnswer: source.Description,
		ConceptTitle:  source.Title,
	}
}
