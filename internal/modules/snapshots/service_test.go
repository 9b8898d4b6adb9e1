package snapshots

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/moneywise/internal/database"
	"github.com/moneywise/moneywise/internal/modules/market"
	"github.com/moneywise/moneywise/internal/modules/portfolio"
)

var testDBCounter atomic.Int64

func newTestRecorder(t *testing.T) (*Recorder, *portfolio.Repository) {
	t.Helper()

	db, err := database.NewMemory(fmt.Sprintf("snapshots_test_%d", testDBCounter.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.InitSchema(database.Schema))

	portfolios := portfolio.NewRepository(db.Conn(), zerolog.Nop())
	repo := NewRepository(db.Conn(), zerolog.Nop())
	catalog := market.NewCatalog()

	return NewRecorder(repo, portfolios, catalog, zerolog.Nop()), portfolios
}

func TestRecordValuesHoldingsAtMarket(t *testing.T) {
	recorder, portfolios := newTestRecorder(t)

	p := &portfolio.Portfolio{
		OwnerID: "guest",
		Cash:    8245.00,
		Holdings: []portfolio.Holding{
			{Symbol: "AAPL", Name: "Apple Inc.", Shares: 10, AverageCost: 175.50},
		},
	}
	require.NoError(t, portfolios.Insert(p))

	snapshot, err := recorder.Record(p)
	require.NoError(t, err)
	assert.NotZero(t, snapshot.ID)
	assert.Equal(t, "guest", snapshot.OwnerID)
	assert.InDelta(t, 8245.00, snapshot.Cash, 1e-9)
	assert.InDelta(t, 1755.00, snapshot.HoldingsValue, 1e-9)
	assert.InDelta(t, 10000.00, snapshot.TotalValue, 1e-9)
}

func TestRecordAllCoversEveryOwner(t *testing.T) {
	recorder, portfolios := newTestRecorder(t)

	for _, owner := range []string{"alice", "bob", "carol"} {
		require.NoError(t, portfolios.Insert(&portfolio.Portfolio{OwnerID: owner, Cash: 10000}))
	}

	recorded, err := recorder.RecordAll()
	require.NoError(t, err)
	assert.Equal(t, 3, recorded)

	history, err := recorder.History("bob", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 10000.00, history[0].TotalValue, 1e-9)
}

func TestRecordAllEmptyStore(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	recorded, err := recorder.RecordAll()
	require.NoError(t, err)
	assert.Zero(t, recorded)
}

func TestHistoryNewestFirstWithLimit(t *testing.T) {
	recorder, portfolios := newTestRecorder(t)

	p := &portfolio.Portfolio{OwnerID: "guest", Cash: 10000}
	require.NoError(t, portfolios.Insert(p))

	for i := 0; i < 5; i++ {
		_, err := recorder.Record(p)
		require.NoError(t, err)
	}

	history, err := recorder.History("guest", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Newest first: ids descend.
	assert.Greater(t, history[0].ID, history[1].ID)
	assert.Greater(t, history[1].ID, history[2].ID)
}

func TestHistoryUnknownOwnerIsEmpty(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	history, err := recorder.History("nobody", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestJobRunsRecorder(t *testing.T) {
	recorder, portfolios := newTestRecorder(t)

	require.NoError(t, portfolios.Insert(&portfolio.Portfolio{OwnerID: "guest", Cash: 10000}))

	job := NewJob(recorder)
	assert.Equal(t, "valuation_snapshot", job.Name())
	require.NoError(t, job.Run())

	history, err := recorder.History("guest", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
