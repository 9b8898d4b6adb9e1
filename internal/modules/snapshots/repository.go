package snapshots

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// snapshotColumns is the column list for the portfolio_snapshots table.
const snapshotColumns = `id, owner_id, cash, holdings_value, total_value, created_at`

// DefaultHistoryLimit caps how many snapshots a listing returns unless
// the caller asks for a specific window.
const DefaultHistoryLimit = 90

// Repository handles snapshot database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new snapshot repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "snapshots").Logger(),
	}
}

// Insert records one valuation.
func (r *Repository) Insert(s Snapshot) (Snapshot, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(
		`INSERT INTO portfolio_snapshots (owner_id, cash, holdings_value, total_value, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.OwnerID, s.Cash, s.HoldingsValue, s.TotalValue, now.Unix(),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot id: %w", err)
	}

	s.ID = id
	s.CreatedAt = now
	return s, nil
}

// ListByOwner returns an owner's snapshots, newest first, capped at limit.
// A non-positive limit falls back to DefaultHistoryLimit.
func (r *Repository) ListByOwner(ownerID string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := r.db.Query(
		`SELECT `+snapshotColumns+` FROM portfolio_snapshots WHERE owner_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		var createdAt int64
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Cash, &s.HoldingsValue, &s.TotalValue, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		s.CreatedAt = time.Unix(createdAt, 0).UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return out, nil
}
