package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/moneywise/internal/modules/concepts"
)

func testCatalog(n int) []concepts.Concept {
	catalog := make([]concepts.Concept, 0, n)
	for i := 1; i <= n; i++ {
		catalog = append(catalog, concepts.Concept{
			ID:          int64(i),
			Title:       fmt.Sprintf("Concept %d", i),
			Description: fmt.Sprintf("Description of concept %d.", i),
			Category:    "Test",
		})
	}
	return catalog
}

func seededGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(42)))
}

func TestGenerateProducesRequestedCount(t *testing.T) {
	g := seededGenerator()

	questions, err := g.Generate(testCatalog(10), DefaultQuestionCount)
	require.NoError(t, err)
	assert.Len(t, questions, DefaultQuestionCount)
}

func TestGenerateCapsAtCatalogSize(t *testing.T) {
	g := seededGenerator()

	questions, err := g.Generate(testCatalog(3), DefaultQuestionCount)
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestGenerateRejectsInvalidCount(t *testing.T) {
	g := seededGenerator()

	_, err := g.Generate(testCatalog(10), 0)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = g.Generate(testCatalog(10), -1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestGenerateRejectsTinyCatalog(t *testing.T) {
	g := seededGenerator()

	_, err := g.Generate(testCatalog(1), 5)
	assert.ErrorIs(t, err, ErrInsufficientConcepts)

	_, err = g.Generate(nil, 5)
	assert.ErrorIs(t, err, ErrInsufficientConcepts)
}

func TestQuestionsContainCorrectAnswer(t *testing.T) {
	g := seededGenerator()

	questions, err := g.Generate(testCatalog(10), 5)
	require.NoError(t, err)

	for _, q := range questions {
		assert.Contains(t, q.Options, q.CorrectAnswer)
		assert.NotEmpty(t, q.Prompt)
		assert.Contains(t, q.Prompt, q.ConceptTitle)
	}
}

func TestOptionsAreUniqueAndCapped(t *testing.T) {
	g := seededGenerator()

	questions, err := g.Generate(testCatalog(20), 5)
	require.NoError(t, err)

	for _, q := range questions {
		assert.LessOrEqual(t, len(q.Options), maxDistractors+1)
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
		}
	}
}

func TestSmallCatalogShrinksOptionList(t *testing.T) {
	g := seededGenerator()

	// Two concepts leave exactly one distractor per question.
	questions, err := g.Generate(testCatalog(2), 2)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Len(t, q.Options, 2)
	}
}

func TestSourceConceptsAreDistinct(t *testing.T) {
	g := seededGenerator()

	questions, err := g.Generate(testCatalog(10), 5)
	require.NoError(t, err)

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		assert.False(t, seen[q.ConceptTitle], "concept %q used twice", q.ConceptTitle)
		seen[q.ConceptTitle] = true
	}
}
