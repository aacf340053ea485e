// Package server wires the application together: database, session store,
// services, handlers, routes, and the HTTP server lifecycle.
//
// This is the composition root — every dependency is constructed here (or
// in main) and handed down, so the rest of the codebase stays free of
// globals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/auth"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/handler"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/middleware"
	sqliteRepo "github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository/sqlite"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/seed"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/service"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/session"
)

// Config holds everything New needs to assemble the server.
type Config struct {
	Port       int
	DBPath     string
	SessionTTL time.Duration
	Admin      seed.Admin
}

// Server owns the router, the database connection and the session store.
// The database is closed during graceful shutdown in Start.
type Server struct {
	router   *chi.Mux
	config   Config
	logger   *slog.Logger
	db       *sqliteRepo.DB
	sessions *session.Store
}

// New opens the database, seeds it, and wires routes and handlers.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router:   chi.NewRouter(),
		config:   cfg,
		logger:   logger,
		db:       db,
		sessions: session.NewStore(cfg.SessionTTL),
	}

	if err := s.setup(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// setup builds the dependency chain (repositories → services → handlers),
// seeds the database, and registers routes.
func (s *Server) setup() error {
	accounts := s.db.Accounts()
	institutions := s.db.Institutions()
	events := s.db.LoginEvents()

	hasher := auth.NewHasher()

	authService := service.NewAuthService(accounts, events, hasher, s.sessions, s.logger)
	institutionService := service.NewInstitutionService(institutions, s.logger)
	statsService := service.NewStatsService(accounts, institutions, events, s.logger)

	// Idempotent: only the first boot actually writes anything.
	if err := seed.Run(context.Background(), s.config.Admin, accounts, institutionService, hasher, s.logger); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	authHandler := handler.NewAuthHandler(authService, s.sessions, s.logger)
	institutionHandler := handler.NewInstitutionHandler(institutionService, s.logger)
	adminHandler := handler.NewAdminHandler(statsService, s.logger)

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	s.router.Route("/api", func(r chi.Router) {
		// Anonymous endpoints.
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/forgot-password", authHandler.HandleForgotPassword)

		// Session-guarded endpoints.
		r.Group(func(r chi.Router) {
			r.Use(session.Require(s.sessions))
			r.Post("/logout", authHandler.HandleLogout)
			r.Get("/institutions", institutionHandler.HandleList)
		})

		// Admin-only endpoints.
		r.Group(func(r chi.Router) {
			r.Use(session.RequireAdmin(s.sessions))
			r.Get("/admin/stats", adminHandler.HandleStats)
		})
	})

	return nil
}

// Handler exposes the assembled router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: in-flight requests get 30 seconds, and the database is
// closed last.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
