package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/moneywise/internal/config"
	"github.com/moneywise/moneywise/internal/database"
	"github.com/moneywise/moneywise/internal/modules/concepts"
	"github.com/moneywise/moneywise/internal/modules/guidance"
	"github.com/moneywise/moneywise/internal/modules/market"
	"github.com/moneywise/moneywise/internal/modules/portfolio"
	"github.com/moneywise/moneywise/internal/modules/quiz"
	"github.com/moneywise/moneywise/internal/modules/snapshots"
)

var testDBCounter atomic.Int64

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := database.NewMemory(fmt.Sprintf("server_test_%d", testDBCounter.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.InitSchema(database.Schema))

	log := zerolog.Nop()
	catalog := market.NewCatalog()
	portfolioRepo := portfolio.NewRepository(db.Conn(), log)
	ledger := portfolio.NewLedger(portfolioRepo, catalog, 10000, log)
	conceptsRepo := concepts.NewRepository(db.Conn(), log)
	require.NoError(t, conceptsRepo.Seed())
	engine, err := guidance.NewEngine(log)
	require.NoError(t, err)
	snapshotsRepo := snapshots.NewRepository(db.Conn(), log)
	recorder := snapshots.NewRecorder(snapshotsRepo, portfolioRepo, catalog, log)

	return New(Config{
		Log:      log,
		Cfg:      &config.Config{},
		DB:       db,
		Catalog:  catalog,
		Streamer: market.NewQuoteStreamer(catalog, time.Second, log),
		Ledger:   ledger,
		Concepts: conceptsRepo,
		Quiz:     quiz.NewGenerator(nil),
		Sessions: quiz.NewSessionStore(),
		Guidance: engine,
		Recorder: recorder,
		Port:     0,
	})
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func post(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestSystemStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/api/system/status")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "goroutines")
	assert.Contains(t, body, "uptime_seconds")
}

func TestAPIRoutesAreWired(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/market",
		"/api/portfolio",
		"/api/portfolio/summary",
		"/api/projection?horizon=30",
		"/api/concepts",
		"/api/guidance/flowchart",
		"/api/guidance/questions",
		"/api/snapshots",
	} {
		rec := get(t, srv, path)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestQuizFlowThroughRouter(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, "/api/quiz", `{"count": 3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var started struct {
		ID       string `json:"id"`
		Total    int    `json:"total"`
		Question struct {
			Options []string `json:"options"`
		} `json:"question"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))
	assert.Equal(t, 3, started.Total)
	require.NotEmpty(t, started.Question.Options)

	answer, err := json.Marshal(map[string]string{"answer": started.Question.Options[0]})
	require.NoError(t, err)
	rec = post(t, srv, "/api/quiz/"+started.ID+"/answer", string(answer))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuidanceFlowThroughRouter(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, "/api/guidance", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var session struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = post(t, srv, "/api/guidance/"+session.ID+"/choose", `{"option": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var chosen struct {
		Complete bool `json:"complete"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chosen))
	assert.True(t, chosen.Complete)
}

func TestBuyThroughRouter(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, "/api/portfolio/buy", `{"symbol": "AAPL", "shares": 2, "price": 175.50}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, srv, "/api/snapshots")
	assert.Equal(t, http.StatusOK, rec.Code)
}
