package portfolio

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository persists portfolios as whole JSON documents keyed by owner,
// mirroring a document store: find-one, insert, save-with-overwrite.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new portfolio repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "portfolio").Logger(),
	}
}

// FindByOwner returns the portfolio for an owner, or nil when none exists.
func (r *Repository) FindByOwner(ownerID string) (*Portfolio, error) {
	var data string
	err := r.db.QueryRow(`SELECT data FROM portfolios WHERE owner_id = ?`, ownerID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio for %q: %w", ownerID, err)
	}

	var p Portfolio
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio document for %q: %w", ownerID, err)
	}
	return &p, nil
}

// Insert stores a newly created portfolio.
func (r *Repository) Insert(p *Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio document: %w", err)
	}

	now := time.Now().Unix()
	_, err = r.db.Exec(
		`INSERT INTO portfolios (owner_id, data, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		p.OwnerID, string(data), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio for %q: %w", p.OwnerID, err)
	}

	r.log.Debug().Str("owner", p.OwnerID).Msg("Portfolio created")
	return nil
}

// Save overwrites the stored document for the portfolio's owner.
func (r *Repository) Save(p *Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio document: %w", err)
	}

	res, err := r.db.Exec(
		`UPDATE portfolios SET data = ?, updated_at = ? WHERE owner_id = ?`,
		string(data), time.Now().Unix(), p.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to save portfolio for %q: %w", p.OwnerID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save portfolio for %q: %w", p.OwnerID, err)
	}
	if rows == 0 {
		return fmt.Errorf("save portfolio for %q: %w", p.OwnerID, ErrPortfolioNotFound)
	}
	return nil
}

// All returns every stored portfolio, ordered by owner. Used by the
// valuation snapshot job.
func (r *Repository) All() ([]*Portfolio, error) {
	rows, err := r.db.Query(`SELECT data FROM portfolios ORDER BY owner_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []*Portfolio
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio row: %w", err)
		}
		var p Portfolio
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("failed to decode portfolio document: %w", err)
		}
		portfolios = append(portfolios, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate portfolios: %w", err)
	}
	return portfolios, nil
}
