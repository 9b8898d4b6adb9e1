// Package portfolio implements the paper-trading ledger: one simulated cash
// balance and set of equity positions per owner, with an append-only
// transaction log.
package portfolio

import "time"

// TransactionKind is the side of a recorded transaction
type TransactionKind string

const (
	TransactionBuy  TransactionKind = "buy"
	TransactionSell TransactionKind = "sell"
)

// Holding is a position in one instrument. A symbol appears at most once per
// portfolio, and only while its share count is above zero.
type Holding struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Shares      int     `json:"shares"`
	AverageCost float64 `json:"avg_cost"`
}

// Transaction is one entry of the append-only trade log. Entries are never
// mutated or deleted; slice order is chronological.
type Transaction struct {
	Kind   TransactionKind `json:"kind"`
	Symbol string          `json:"symbol"`
	Shares int             `json:"shares"`
	Price  float64         `json:"price"`
	Date   time.Time       `json:"date"`
}

// Portfolio is the whole per-owner document persisted by the repository.
type Portfolio struct {
	OwnerID      string        `json:"owner_id"`
	Cash         float64       `json:"cash"`
	Holdings     []Holding     `json:"holdings"`
	Transactions []Transaction `json:"transactions"`
}

// findHolding returns the index of the holding for symbol, or -1.
func (p *Portfolio) findHolding(symbol string) int {
	for i := range p.Holdings {
		if p.Holdings[i].Symbol == symbol {
			return i
		}
	}
	return -1
}

// Holding returns the holding for symbol, if present.
func (p *Portfolio) Holding(symbol string) (Holding, bool) {
	if i := p.findHolding(symbol); i >= 0 {
		return p.Holdings[i], true
	}
	return Holding{}, false
}

// Valuation is a derived, non-persisted view of a portfolio against current
// prices.
type Valuation struct {
	Cash               float64 `json:"cash"`
	HoldingsValue      float64 `json:"holdings_value"`
	TotalValue         float64 `json:"total_value"`
	TotalInvested      float64 `json:"total_invested"`
	UnrealizedGainLoss float64 `json:"unrealized_gain_loss"`
}

// PriceFunc resolves the current price for a symbol.
type PriceFunc func(symbol string) (float64, bool)

// Valuate computes the current valuation of a portfolio. Pure read; symbols
// the price source cannot resolve are valued at their average cost.
func Valuate(p *Portfolio, price PriceFunc) Valuation {
	v := Valuation{Cash: p.Cash}
	for _, h := range p.Holdings {
		current, ok := price(h.Symbol)
		if !ok {
			current = h.AverageCost
		}
		v.HoldingsValue += float64(h.Shares) * current
		v.TotalInvested += float64(h.Shares) * h.AverageCost
	}
	v.TotalValue = v.Cash + v.HoldingsValue
	v.UnrealizedGainLoss = v.HoldingsValue - v.TotalInvested
	return v
}

// SellResult carries the updated portfolio plus the derived outcome of a sale.
type SellResult struct {
	Portfolio        *Portfolio `json:"portfolio"`
	Revenue          float64    `json:"revenue"`
	RealizedGainLoss float64    `json:"realized_gain_loss"`
}
