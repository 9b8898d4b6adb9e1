package concepts

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// conceptColumns is the column list for the concepts table. Kept explicit so
// scan order is obvious and schema changes fail loudly.
const conceptColumns = `id, title, description, category, created_at`

// Repository handles concept database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new concept repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "concepts").Logger(),
	}
}

// All returns every concept, oldest first.
func (r *Repository) All() ([]Concept, error) {
	rows, err := r.db.Query(`SELECT ` + conceptColumns + ` FROM concepts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}
	defer rows.Close()

	var out []Concept
	for rows.Next() {
		var c Concept
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan concept row: %w", err)
		}
		c.CreatedAt = time.Unix(createdAt, 0).UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate concepts: %w", err)
	}
	return out, nil
}

// Create inserts a new concept and returns it with its assigned id.
func (r *Repository) Create(c Concept) (Concept, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(
		`INSERT INTO concepts (title, description, category, created_at) VALUES (?, ?, ?, ?)`,
		c.Title, c.Description, c.Category, now.Unix(),
	)
	if err != nil {
		return Concept{}, fmt.Errorf("failed to insert concept: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Concept{}, fmt.Errorf("failed to read concept id: %w", err)
	}

	c.ID = id
	c.CreatedAt = now
	return c, nil
}

// Count returns the number of stored concepts.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM concepts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count concepts: %w", err)
	}
	return n, nil
}

// Seed inserts the starter concept set when the table is empty, so the quiz
// works before anyone has posted content.
func (r *Repository) Seed() error {
	n, err := r.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, c := range seedConcepts {
		if _, err := r.Create(c); err != nil {
			return fmt.Errorf("failed to seed concepts: %w", err)
		}
	}

	r.log.Info().Int("count", len(seedConcepts)).Msg("Seeded concept catalog")
	return nil
}
