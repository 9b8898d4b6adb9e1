package portfolio

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/moneywise/internal/database"
	"github.com/moneywise/moneywise/internal/modules/market"
)

var testDBCounter atomic.Int64

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	db, err := database.NewMemory(fmt.Sprintf("ledger_test_%d", testDBCounter.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.InitSchema(database.Schema))

	repo := NewRepository(db.Conn(), zerolog.Nop())
	return NewLedger(repo, market.NewCatalog(), 10000, zerolog.Nop())
}

func TestGetOrCreateStartsWithEndowment(t *testing.T) {
	ledger := newTestLedger(t)

	p, err := ledger.GetOrCreate("alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", p.OwnerID)
	assert.Equal(t, 10000.0, p.Cash)
	assert.Empty(t, p.Holdings)
	assert.Empty(t, p.Transactions)

	// Second call returns the same portfolio, not a fresh one
	again, err := ledger.GetOrCreate("alice")
	require.NoError(t, err)
	assert.Equal(t, p.Cash, again.Cash)
}

func TestBuyDeductsCashAndRecordsHolding(t *testing.T) {
	ledger := newTestLedger(t)

	p, err := ledger.Buy("alice", "AAPL", "", 10, 175.50)
	require.NoError(t, err)

	assert.InDelta(t, 8245.00, p.Cash, 1e-9)
	require.Len(t, p.Holdings, 1)
	assert.Equal(t, "AAPL", p.Holdings[0].Symbol)
	assert.Equal(t, "Apple Inc.", p.Holdings[0].Name)
	assert.Equal(t, 10, p.Holdings[0].Shares)
	assert.InDelta(t, 175.50, p.Holdings[0].AverageCost, 1e-9)

	require.Len(t, p.Transactions, 1)
	assert.Equal(t, TransactionBuy, p.Transactions[0].Kind)
	assert.Equal(t, 10, p.Transactions[0].Shares)
}

func TestBuyRecomputesWeightedAverageCost(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.Buy("alice", "AAPL", "", 10, 175.50)
	require.NoError(t, err)

	p, err := ledger.Buy("alice", "AAPL", "", 5, 200.00)
	require.NoError(t, err)

	assert.InDelta(t, 7245.00, p.Cash, 1e-9)
	require.Len(t, p.Holdings, 1)
	assert.Equal(t, 15, p.Holdings[0].Shares)
	// (10*175.50 + 5*200.00) / 15
	assert.InDelta(t, 183.50, p.Holdings[0].AverageCost, 1e-9)
}

func TestBuyInsufficientFundsLeavesPortfolioUnchanged(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.Buy("alice", "NVDA", "", 100, 875.25)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	p, err := ledger.GetOrCreate("alice")
	require.NoError(t, err)
	assert.Equal(t, 10000.0, p.Cash)
	assert.Empty(t, p.Holdings)
	assert.Empty(t, p.Transactions)
}

func TestBuyValidation(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.Buy("alice", "AAPL", "", 0, 175.50)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.Buy("alice", "AAPL", "", -3, 175.50)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.Buy("alice", "AAPL", "", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.Buy("alice", "ZZZZ", "", 1, 10)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestBuyNormalizesSymbolCase(t *testing.T) {
	ledger := newTestLedger(t)

	p, err := ledger.Buy("alice", "aapl", "", 1, 175.50)
	require.NoError(t, err)
	require.Len(t, p.Holdings, 1)
	assert.Equal(t, "AAPL", p.Holdings[0].Symbol)
}

func TestSellPartialKeepsAverageCost(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.Buy("alice", "AAPL", "", 10, 175.50)
	require.NoError(t, err)

	res, err := ledger.Sell("alice", "AAPL", 4, 180.00)
	require.NoError(t, err)

	p := res.Portfolio
	require.Len(t, p.Holdings, 1)
	assert.Equal(t, 6, p.Holdings[0].Shares)
	assert.InDelta(t, 175.50, p.Holdings[0].AverageCost, 1e-9)
	assert.InDelta(t, 4*180.00, res.Revenue, 1e-9)
	assert.InDelta(t, 4*(180.00-175.50), res.RealizedGainLoss, 1e-9)
}

func TestSellAllRemovesHolding(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.Buy("alice", "AAPL", "", 10, 175.50)
	require.NoError(t, err)
	_, err = ledger.Buy("alice", "AAPL", "", 5, 200.00)
	require.NoError(t, err)

	res, err := ledger.Sell("alice", "AAPL", 15, 190.00)
	require.NoError(t, err)

	p := res.Portfolio
	assert.InDelta(t, 10095.00, p.Cash, 1e-9)
	assert.Empty(t, p.Holdings)
	// 15*190 - 15*183.50
	assert.InDelta(t, 97.50, res.RealizedGainLoss, 1e-6)

	require.Len(t, p.Transactions, 3)
	assert.Equal(t, TransactionSell, p.Transactions[2].Kind)
}

func TestSellErrorsLeavePortfolioUnchanged(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.Sell("nobody", "AAPL", 1, 100)
	assert.ErrorIs(t, err, ErrPortfolioNotFound)

	_, err = ledger.Buy("alice", "AAPL", "", 10, 175.50)
	require.NoError(t, err)

	_, err = ledger.Sell("alice", "MSFT", 1, 100)
	assert.ErrorIs(t, err, ErrHoldingNotFound)

	_, err = ledger.Sell("alice", "AAPL", 11, 100)
	assert.ErrorIs(t, err, ErrInsufficientShares)

	_, err = ledger.Sell("alice", "AAPL", 0, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)

	p, err := ledger.GetOrCreate("alice")
	require.NoError(t, err)
	assert.InDelta(t, 8245.00, p.Cash, 1e-9)
	require.Len(t, p.Holdings, 1)
	assert.Equal(t, 10, p.Holdings[0].Shares)
	assert.Len(t, p.Transactions, 1)
}

func TestCashNeverGoesNegativeAcrossBuys(t *testing.T) {
	ledger := newTestLedger(t)

	cash := 10000.0
	for {
		p, err := ledger.Buy("alice", "DIS", "", 7, 95.80)
		if err != nil {
			assert.ErrorIs(t, err, ErrInsufficientFunds)
			break
		}
		cash -= 7 * 95.80
		assert.InDelta(t, cash, p.Cash, 1e-6)
		assert.GreaterOrEqual(t, p.Cash, 0.0)
	}
}

func TestValuate(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.Buy("alice", "AAPL", "", 10, 170.00)
	require.NoError(t, err)

	v, err := ledger.Valuation("alice")
	require.NoError(t, err)

	assert.InDelta(t, 10000-1700.0, v.Cash, 1e-9)
	assert.InDelta(t, 10*175.50, v.HoldingsValue, 1e-9) // catalog price
	assert.InDelta(t, v.Cash+v.HoldingsValue, v.TotalValue, 1e-9)
	assert.InDelta(t, 1700.0, v.TotalInvested, 1e-9)
	assert.InDelta(t, v.HoldingsValue-1700.0, v.UnrealizedGainLoss, 1e-9)
}

func TestValuateUnknownSymbolFallsBackToCost(t *testing.T) {
	p := &Portfolio{
		Cash:     100,
		Holdings: []Holding{{Symbol: "GONE", Shares: 2, AverageCost: 50}},
	}

	v := Valuate(p, func(string) (float64, bool) { return 0, false })
	assert.InDelta(t, 100.0, v.HoldingsValue, 1e-9)
	assert.InDelta(t, 0.0, v.UnrealizedGainLoss, 1e-9)
}
