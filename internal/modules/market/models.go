// Package market provides the fixed catalog of tradable instruments.
package market

// Instrument represents one tradable company in the simulator.
// Reference data only; instruments never change for the lifetime of a process.
type Instrument struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change"`
	Sector        string  `json:"sector"`
}
