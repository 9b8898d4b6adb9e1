// Package snapshots records periodic portfolio valuations so users can
// see how their paper portfolio developed over time.
package snapshots

import "time"

// Snapshot is one recorded valuation of an owner's portfolio.
type Snapshot struct {
	ID            int64     `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Cash          float64   `json:"cash"`
	HoldingsValue float64   `json:"holdings_value"`
	TotalValue    float64   `json:"total_value"`
	CreatedAt     time.Time `json:"created_at"`
}
