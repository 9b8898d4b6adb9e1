// Package concepts stores the financial-literacy concept catalog that feeds
// the quiz generator.
package concepts

import "time"

// Concept is one teachable financial-literacy entry.
type Concept struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
