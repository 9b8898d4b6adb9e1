package market

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// writeWait bounds how long a single frame write may take
	writeWait = 10 * time.Second

	// maxDrift bounds how far a simulated price may wander from the
	// instrument's reference price. Ticks are display-only and feed nothing.
	maxDrift = 0.05

	// stepRange is the per-tick relative price move (+/- half of this)
	stepRange = 0.004
)

// Tick is one simulated quote update.
type Tick struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change"`
}

// QuoteStreamer serves simulated quote ticks over a WebSocket connection.
// Prices follow a bounded random walk around each instrument's reference
// price; the catalog itself is never mutated.
type QuoteStreamer struct {
	catalog  *Catalog
	interval time.Duration
	log      zerolog.Logger
}

// NewQuoteStreamer creates a quote streamer ticking at the given interval.
func NewQuoteStreamer(catalog *Catalog, interval time.Duration, log zerolog.Logger) *QuoteStreamer {
	if interval <= 0 {
		interval = time.Second
	}
	return &QuoteStreamer{
		catalog:  catalog,
		interval: interval,
		log:      log.With().Str("component", "quote_stream").Logger(),
	}
}

// ServeHTTP upgrades the request to a WebSocket and streams ticks until the
// client disconnects.
func (s *QuoteStreamer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.log.Debug().Err(err).Msg("WebSocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "stream closed")

	s.log.Debug().Str("remote", r.RemoteAddr).Msg("Quote stream connected")

	// Per-connection walk state, seeded per connection so concurrent
	// clients see independent walks
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	instruments := s.catalog.All()
	prices := make(map[string]float64, len(instruments))
	for _, inst := range instruments {
		prices[inst.Symbol] = inst.Price
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ticks := s.advance(rng, instruments, prices)
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := wsjson.Write(writeCtx, conn, ticks)
			cancel()
			if err != nil {
				s.log.Debug().Err(err).Msg("Quote stream disconnected")
				return
			}
		}
	}
}

// advance moves every simulated price one step and returns the tick batch.
func (s *QuoteStreamer) advance(rng *rand.Rand, instruments []Instrument, prices map[string]float64) []Tick {
	ticks := make([]Tick, 0, len(instruments))
	for _, inst := range instruments {
		price := prices[inst.Symbol] * (1 + (rng.Float64()-0.5)*stepRange)

		// Clamp to the drift band around the reference price
		lo := inst.Price * (1 - maxDrift)
		hi := inst.Price * (1 + maxDrift)
		if price < lo {
			price = lo
		}
		if price > hi {
			price = hi
		}
		prices[inst.Symbol] = price

		ticks = append(ticks, Tick{
			Symbol:        inst.Symbol,
			Price:         price,
			ChangePercent: (price - inst.Price) / inst.Price * 100,
		})
	}
	return ticks
}
