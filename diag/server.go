// Package diag exposes the cache's observability surface over HTTP for the
// operator: a read-only stats snapshot plus the manual prune and clear
// actions. Nothing else can write the store's counters.
package diag

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/adeilh/metcat/cache"
)

// Server serves the diagnostics API for one shared store.
type Server struct {
	echo     *echo.Echo
	store    *cache.Store
	log      *slog.Logger
	address  string
	shutdown time.Duration
	srv      *http.Server
}

// NewServer builds the diagnostics server around the shared store.
func NewServer(store *cache.Store, opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		store:    store,
		log:      cfg.log,
		address:  cfg.address,
		shutdown: cfg.shutdown,
	}
	e.GET("/healthz", s.handleHealth)
	e.GET("/api/cache/stats", s.handleStats)
	e.POST("/api/cache/prune", s.handlePrune)
	e.POST("/api/cache/clear", s.handleClear)
	return s
}

// Handler returns the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:         s.address,
		Handler:      s.echo,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()
	s.log.Info("diagnostics server listening", "address", s.address)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Stats())
}

func (s *Server) handlePrune(c echo.Context) error {
	removed := s.store.Prune()
	s.log.Info("cache pruned", "removed", removed)
	return c.JSON(http.StatusOK, map[string]any{"removed": removed})
}

func (s *Server) handleClear(c echo.Context) error {
	s.store.Clear()
	s.log.Info("cache cleared")
	return c.NoContent(http.StatusNoContent)
}
