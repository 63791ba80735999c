package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oselz/menupush/internal/catalog"
	"github.com/oselz/menupush/internal/logging"
	"go.uber.org/zap"
)

// Config holds the server configuration
type Config struct {
	Host     string
	Port     int
	LogLevel string
}

// Server represents the menu ingest HTTP server
type Server struct {
	config     *Config
	catalog    *catalog.Catalog
	httpServer *http.Server
}

// New creates a new Server instance. The catalog is used to cross-check
// the brand and location submitted with each upload; pass nil to accept
// uploads for any brand.
func New(config *Config, cat *catalog.Catalog) (*Server, error) {
	// Initialize logging
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	s := &Server{
		config:  config,
		catalog: cat,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/upload", s.handleUpload)
	mux.HandleFunc("/", s.handleIndex)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: mux,
		// No WriteTimeout: upload responses stream for as long as the
		// CSV takes to ingest.
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	logging.Info("Starting menu ingest server",
		zap.String("addr", s.httpServer.Addr),
		zap.String("log_level", s.config.LogLevel),
		zap.Int("brands", s.brandCount()),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	logging.Info("Server listening for uploads",
		zap.String("addr", s.httpServer.Addr),
	)

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the server, waiting for in-flight uploads
// to finish streaming.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logging.Info("Server stopped")
	logging.Sync()
	return nil
}

func (s *Server) brandCount() int {
	if s.catalog == nil {
		return 0
	}
	return s.catalog.Len()
}
