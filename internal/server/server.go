// Package server provides the HTTP server and routing for MoneyWise.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/moneywise/moneywise/internal/config"
	"github.com/moneywise/moneywise/internal/database"
	"github.com/moneywise/moneywise/internal/modules/concepts"
	conceptshandlers "github.com/moneywise/moneywise/internal/modules/concepts/handlers"
	"github.com/moneywise/moneywise/internal/modules/guidance"
	guidancehandlers "github.com/moneywise/moneywise/internal/modules/guidance/handlers"
	"github.com/moneywise/moneywise/internal/modules/market"
	markethandlers "github.com/moneywise/moneywise/internal/modules/market/handlers"
	"github.com/moneywise/moneywise/internal/modules/portfolio"
	portfoliohandlers "github.com/moneywise/moneywise/internal/modules/portfolio/handlers"
	projectionhandlers "github.com/moneywise/moneywise/internal/modules/projection/handlers"
	"github.com/moneywise/moneywise/internal/modules/quiz"
	quizhandlers "github.com/moneywise/moneywise/internal/modules/quiz/handlers"
	"github.com/moneywise/moneywise/internal/modules/snapshots"
	snapshotshandlers "github.com/moneywise/moneywise/internal/modules/snapshots/handlers"
)

// Config holds everything the server needs to route requests.
type Config struct {
	Log      zerolog.Logger
	Cfg      *config.Config
	DB       *database.DB
	Catalog  *market.Catalog
	Streamer *market.QuoteStreamer
	Ledger   *portfolio.Ledger
	Concepts *concepts.Repository
	Quiz     *quiz.Generator
	Sessions *quiz.SessionStore
	Guidance *guidance.Engine
	Recorder *snapshots.Recorder
	Port     int
	DevMode  bool
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	cfg            Config
	systemHandlers *SystemHandlers
	startedAt      time.Time
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		cfg:       cfg,
		startedAt: time.Now(),
	}

	s.systemHandlers = NewSystemHandlers(cfg.Log, cfg.DB, s.startedAt)

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check (outside /api, for load balancers and uptime probes)
	s.router.Get("/health", s.systemHandlers.HandleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// System monitoring
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
		})

		marketHandler := markethandlers.NewHandler(s.cfg.Catalog, s.cfg.Streamer, s.cfg.Log)
		marketHandler.RegisterRoutes(r)

		portfolioHandler := portfoliohandlers.NewHandler(s.cfg.Ledger, s.cfg.Log)
		portfolioHandler.RegisterRoutes(r)

		projectionHandler := projectionhandlers.NewHandler(s.cfg.Ledger, s.cfg.Log)
		projectionHandler.RegisterRoutes(r)

		conceptsHandler := conceptshandlers.NewHandler(s.cfg.Concepts, s.cfg.Log)
		conceptsHandler.RegisterRoutes(r)

		quizHandler := quizhandlers.NewHandler(s.cfg.Quiz, s.cfg.Sessions, s.cfg.Concepts, s.cfg.Log)
		quizHandler.RegisterRoutes(r)

		guidanceHandler := guidancehandlers.NewHandler(s.cfg.Guidance, s.cfg.Log)
		guidanceHandler.RegisterRoutes(r)

		snapshotsHandler := snapshotshandlers.NewHandler(s.cfg.Recorder, s.cfg.Log)
		snapshotsHandler.RegisterRoutes(r)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
