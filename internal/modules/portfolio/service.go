package portfolio

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/modules/market"
)

// Ledger owns all mutations of per-owner portfolios. Buy and sell validate
// before they touch anything, mutate in memory, and persist the whole
// document once, so a failed operation leaves the stored portfolio unchanged.
//
// Mutations are serialized per owner with a keyed mutex. The store itself
// has last-write-wins semantics; the lock closes the read-modify-write race
// between concurrent requests for the same owner.
type Ledger struct {
	repo         *Repository
	catalog      *market.Catalog
	startingCash float64
	log          zerolog.Logger

	mu         sync.Mutex
	ownerLocks map[string]*sync.Mutex
}

// NewLedger creates a new portfolio ledger
func NewLedger(repo *Repository, catalog *market.Catalog, startingCash float64, log zerolog.Logger) *Ledger {
	return &Ledger{
		repo:         repo,
		catalog:      catalog,
		startingCash: startingCash,
		log:          log.With().Str("service", "ledger").Logger(),
		ownerLocks:   make(map[string]*sync.Mutex),
	}
}

// lockOwner acquires the mutation lock for one owner and returns its release.
func (l *Ledger) lockOwner(ownerID string) func() {
	l.mu.Lock()
	lock, ok := l.ownerLocks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		l.ownerLocks[ownerID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// GetOrCreate returns the portfolio for an owner, creating and persisting a
// fresh one with the starting cash endowment when none exists.
func (l *Ledger) GetOrCreate(ownerID string) (*Portfolio, error) {
	unlock := l.lockOwner(ownerID)
	defer unlock()
	return l.getOrCreateLocked(ownerID)
}

func (l *Ledger) getOrCreateLocked(ownerID string) (*Portfolio, error) {
	p, err := l.repo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = &Portfolio{
		OwnerID:      ownerID,
		Cash:         l.startingCash,
		Holdings:     []Holding{},
		Transactions: []Transaction{},
	}
	if err := l.repo.Insert(p); err != nil {
		return nil, err
	}

	l.log.Info().Str("owner", ownerID).Float64("cash", l.startingCash).Msg("Created portfolio")
	return p, nil
}

// Buy purchases shares at the given unit price. The symbol must resolve in
// the market catalog; the price itself is taken from the caller.
// No partial fills: the whole order fails on insufficient funds.
func (l *Ledger) Buy(ownerID, symbol, name string, shares int, unitPrice float64) (*Portfolio, error) {
	if shares <= 0 {
		return nil, fmt.Errorf("%w: shares must be positive, got %d", ErrInvalidInput, shares)
	}
	if unitPrice <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %v", ErrInvalidInput, unitPrice)
	}

	inst, ok := l.catalog.Lookup(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	if name == "" {
		name = inst.Name
	}

	unlock := l.lockOwner(ownerID)
	defer unlock()

	p, err := l.getOrCreateLocked(ownerID)
	if err != nil {
		return nil, err
	}

	totalCost := float64(shares) * unitPrice
	if totalCost > p.Cash {
		return nil, fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, totalCost, p.Cash)
	}

	p.Cash -= totalCost

	if i := p.findHolding(inst.Symbol); i >= 0 {
		h := &p.Holdings[i]
		// Weighted average cost basis across all buys of this symbol.
		// The division must use the combined totals or the basis drifts.
		totalShares := h.Shares + shares
		h.AverageCost = (h.AverageCost*float64(h.Shares) + totalCost) / float64(totalShares)
		h.Shares = totalShares
	} else {
		p.Holdings = append(p.Holdings, Holding{
			Symbol:      inst.Symbol,
			Name:        name,
			Shares:      shares,
			AverageCost: unitPrice,
		})
	}

	p.Transactions = append(p.Transactions, Transaction{
		Kind:   TransactionBuy,
		Symbol: inst.Symbol,
		Shares: shares,
		Price:  unitPrice,
		Date:   time.Now().UTC(),
	})

	if err := l.repo.Save(p); err != nil {
		return nil, err
	}

	l.log.Info().
		Str("owner", ownerID).
		Str("symbol", inst.Symbol).
		Int("shares", shares).
		Float64("price", unitPrice).
		Msg("Buy executed")

	return p, nil
}

// Sell disposes shares at the given unit price. Selling every share of a
// symbol removes the holding; no zero-share holdings persist.
func (l *Ledger) Sell(ownerID, symbol string, shares int, unitPrice float64) (*SellResult, error) {
	if shares <= 0 {
		return nil, fmt.Errorf("%w: shares must be positive, got %d", ErrInvalidInput, shares)
	}
	if unitPrice <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %v", ErrInvalidInput, unitPrice)
	}

	unlock := l.lockOwner(ownerID)
	defer unlock()

	p, err := l.repo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: owner %q", ErrPortfolioNotFound, ownerID)
	}

	i := p.findHolding(strings.ToUpper(strings.TrimSpace(symbol)))
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrHoldingNotFound, symbol)
	}

	h := &p.Holdings[i]
	if shares > h.Shares {
		return nil, fmt.Errorf("%w: selling %d, holding %d", ErrInsufficientShares, shares, h.Shares)
	}

	revenue := float64(shares) * unitPrice
	realized := revenue - h.AverageCost*float64(shares)

	p.Cash += revenue
	h.Shares -= shares
	soldSymbol := h.Symbol
	if h.Shares == 0 {
		p.Holdings = append(p.Holdings[:i], p.Holdings[i+1:]...)
	}

	p.Transactions = append(p.Transactions, Transaction{
		Kind:   TransactionSell,
		Symbol: soldSymbol,
		Shares: shares,
		Price:  unitPrice,
		Date:   time.Now().UTC(),
	})

	if err := l.repo.Save(p); err != nil {
		return nil, err
	}

	l.log.Info().
		Str("owner", ownerID).
		Str("symbol", soldSymbol).
		Int("shares", shares).
		Float64("price", unitPrice).
		Float64("realized", realized).
		Msg("Sell executed")

	return &SellResult{Portfolio: p, Revenue: revenue, RealizedGainLoss: realized}, nil
}

// Valuation computes the current valuation for an owner's portfolio against
// the market catalog, creating the portfolio if absent.
func (l *Ledger) Valuation(ownerID string) (Valuation, error) {
	p, err := l.GetOrCreate(ownerID)
	if err != nil {
		return Valuation{}, err
	}
	return Valuate(p, l.catalog.Price), nil
}
