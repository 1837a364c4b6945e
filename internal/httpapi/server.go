// Package httpapi exposes stored newsletters over HTTP, both as JSON
// for the app and as rendered pages for the web reader.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/render/blocks"
	"github.com/fieldside/loanwatch/internal/storage"
)

// Store is the slice of storage the API reads from.
type Store interface {
	ListNewsletters(ctx context.Context, limit int) ([]storage.Newsletter, error)
	GetNewsletter(ctx context.Context, id uuid.UUID) (*storage.Newsletter, error)
	LatestNewsletter(ctx context.Context) (*storage.Newsletter, error)
}

// Server serves the newsletter read API.
type Server struct {
	store    Store
	renderer *blocks.Renderer
	brand    string
	webURL   string
	port     int
	logger   zerolog.Logger

	httpServer *http.Server
}

func NewServer(store Store, renderer *blocks.Renderer, brand, webURL string, port int, logger zerolog.Logger) *Server {
	return &Server{
		store:    store,
		renderer: renderer,
		brand:    brand,
		webURL:   webURL,
		port:     port,
		logger:   logger.With().Str("component", "httpapi").Logger(),
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.webURL},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Subscriber"},
		MaxAge:         300,
	}))

	r.Route("/api/newsletters", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/latest", s.handleLatest)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/markdown", s.handleMarkdown)
	})

	r.Get("/newsletters/{id}", s.handlePage)

	return r
}

// Start runs the HTTP server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Int("port", s.port).Msg("http api listening")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return s.httpServer.Shutdown(shutdownCtx)
	}
}
