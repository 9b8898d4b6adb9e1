package market

import "strings"

// defaultInstruments is the simulator's universe: 15 companies across
// different sectors with their reference prices.
var defaultInstruments = []Instrument{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 175.50, ChangePercent: 2.3, Sector: "Technology"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 142.30, ChangePercent: 1.8, Sector: "Technology"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Price: 378.90, ChangePercent: -0.5, Sector: "Technology"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Price: 242.80, ChangePercent: 3.2, Sector: "Automotive"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 178.25, ChangePercent: 1.5, Sector: "E-commerce"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Price: 485.60, ChangePercent: -1.2, Sector: "Technology"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: 875.25, ChangePercent: 4.5, Sector: "Technology"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Price: 198.45, ChangePercent: 0.8, Sector: "Finance"},
	{Symbol: "V", Name: "Visa Inc.", Price: 267.80, ChangePercent: 1.1, Sector: "Finance"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Price: 156.90, ChangePercent: -0.3, Sector: "Healthcare"},
	{Symbol: "WMT", Name: "Walmart Inc.", Price: 172.35, ChangePercent: 0.6, Sector: "Retail"},
	{Symbol: "PG", Name: "Procter & Gamble", Price: 165.20, ChangePercent: 0.4, Sector: "Consumer Goods"},
	{Symbol: "DIS", Name: "The Walt Disney Company", Price: 95.80, ChangePercent: -1.8, Sector: "Entertainment"},
	{Symbol: "NFLX", Name: "Netflix Inc.", Price: 525.40, ChangePercent: 2.9, Sector: "Entertainment"},
	{Symbol: "BA", Name: "Boeing Company", Price: 178.90, ChangePercent: -2.1, Sector: "Aerospace"},
}

// Catalog is the read-only instrument catalog. Safe for concurrent use.
type Catalog struct {
	instruments []Instrument
	bySymbol    map[string]Instrument
}

// NewCatalog creates a catalog with the default instrument universe.
func NewCatalog() *Catalog {
	return NewCatalogWith(defaultInstruments)
}

// NewCatalogWith creates a catalog from the given instruments.
// Symbols are normalized to uppercase.
func NewCatalogWith(instruments []Instrument) *Catalog {
	c := &Catalog{
		instruments: make([]Instrument, 0, len(instruments)),
		bySymbol:    make(map[string]Instrument, len(instruments)),
	}
	for _, inst := range instruments {
		inst.Symbol = strings.ToUpper(strings.TrimSpace(inst.Symbol))
		c.instruments = append(c.instruments, inst)
		c.bySymbol[inst.Symbol] = inst
	}
	return c
}

// All returns every instrument in catalog order.
func (c *Catalog) All() []Instrument {
	out := make([]Instrument, len(c.instruments))
	copy(out, c.instruments)
	return out
}

// Lookup finds an instrument by symbol (case-insensitive).
func (c *Catalog) Lookup(symbol string) (Instrument, bool) {
	inst, ok := c.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return inst, ok
}

// Price returns the reference price for a symbol.
func (c *Catalog) Price(symbol string) (float64, bool) {
	inst, ok := c.Lookup(symbol)
	if !ok {
		return 0, false
	}
	return inst.Price, true
}
