package concepts

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/moneywise/internal/database"
)

var testDBCounter atomic.Int64

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.NewMemory(fmt.Sprintf("concepts_test_%d", testDBCounter.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.InitSchema(database.Schema))

	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestCreateAndAll(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Create(Concept{
		Title:       "Net Worth",
		Description: "Everything you own minus everything you owe.",
		Category:    "Basics",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Net Worth", all[0].Title)
	assert.Equal(t, "Basics", all[0].Category)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Seed())
	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(seedConcepts), n)

	// Seeding again must not duplicate
	require.NoError(t, repo.Seed())
	n, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(seedConcepts), n)
}

func TestSeedSkippedWhenContentExists(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Create(Concept{Title: "T", Description: "D", Category: "C"})
	require.NoError(t, err)

	require.NoError(t, repo.Seed())
	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
