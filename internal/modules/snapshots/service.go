package snapshots

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/market"
	"github.com/moneywise/moneywise/internal/modules/portfolio"
)

// Recorder values every stored portfolio against the market catalog and
// writes the result to the snapshot history.
type Recorder struct {
	repo       *Repository
	portfolios *portfolio.Repository
	catalog    *market.Catalog
	log        zerolog.Logger
}

// NewRecorder creates a new snapshot recorder
func NewRecorder(repo *Repository, portfolios *portfolio.Repository, catalog *market.Catalog, log zerolog.Logger) *Recorder {
	return &Recorder{
		repo:       repo,
		portfolios: portfolios,
		catalog:    catalog,
		log:        log.With().Str("component", "snapshots").Logger(),
	}
}

// Record values one portfolio and stores a snapshot.
func (r *Recorder) Record(p *portfolio.Portfolio) (Snapshot, error) {
	valuation := portfolio.Valuate(p, r.catalog.Price)

	snapshot, err := r.repo.Insert(Snapshot{
		OwnerID:       p.OwnerID,
		Cash:          valuation.Cash,
		HoldingsValue: valuation.HoldingsValue,
		TotalValue:    valuation.TotalValue,
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to record snapshot for %s: %w", p.OwnerID, err)
	}
	return snapshot, nil
}

// RecordAll snapshots every stored portfolio. A failure on one owner is
// logged and does not stop the rest; the first error is returned so the
// scheduler can flag the run.
func (r *Recorder) RecordAll() (int, error) {
	portfolios, err := r.portfolios.All()
	if err != nil {
		return 0, fmt.Errorf("failed to load portfolios: %w", err)
	}

	recorded := 0
	var firstErr error
	for _, p := range portfolios {
		if _, err := r.Record(p); err != nil {
			r.log.Error().Err(err).Str("owner_id", p.OwnerID).Msg("Snapshot failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		recorded++
	}

	r.log.Info().Int("recorded", recorded).Int("total", len(portfolios)).Msg("Snapshot run complete")
	return recorded, firstErr
}

// History returns an owner's snapshots, newest first.
func (r *Recorder) History(ownerID string, limit int) ([]Snapshot, error) {
	return r.repo.ListByOwner(ownerID, limit)
}
