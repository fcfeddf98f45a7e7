package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/developer-projects-backend/config"
	"github.com/rpupo63/developer-projects-backend/database"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Server, db database.Database) Server {
	startupTime := time.Now()

	router := newRouter(storesFrom(db),
		withStartupTime(startupTime),
		withAcceptedOrigins(cfg.AcceptedOrigins))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeoutDuration(),  // Timeout for reading the entire request
		WriteTimeout: cfg.WriteTimeoutDuration(), // Timeout for writing the response
		IdleTimeout:  cfg.IdleTimeoutDuration(),  // Timeout for idle connections
	}

	return Server{server, startupTime}
}

type router struct {
	startupTime     time.Time
	acceptedOrigins []string
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withAcceptedOrigins(origins []string) func(*router) {
	return func(r *router) {
		r.acceptedOrigins = origins
	}
}

func newRouter(s stores, opts ...func(*router)) *chi.Mux {
	router := router{
		startupTime:     time.Now(),
		acceptedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestID)
	chiRouter.Use(HTTPLoggingMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(corsMiddleware(router.acceptedOrigins))

	setupRoutes(chiRouter, initializeHandlers(s, router.startupTime))

	return chiRouter
}

// Start serves until the server is shut down. A graceful shutdown is not an error.
func (s Server) Start() error {
	log.Info().Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) error {
	log.Info().Dur("uptime", time.Since(s.startupTime)).Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
		return err
	}
	log.Info().Msg("HttpServer gracefully shut down")
	return nil
}
