// Package server provides the HTTP REST API for the job engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/purplesquirrel/jobengine/internal/aggregate"
	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/matching"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	catalog    catalog.Catalog
	aggregator *aggregate.Service
	engine     *matching.Engine
}

// Config holds server configuration
type Config struct {
	Port int
}

// New creates a new server instance over an already-connected catalog.
func New(cfg Config, cat catalog.Catalog, aggregator *aggregate.Service, engine *matching.Engine) *Server {
	s := &Server{
		catalog:    cat,
		aggregator: aggregator,
		engine:     engine,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/jobs/aggregate", requireMethod(http.MethodPost, s.handleAggregate))
	mux.HandleFunc("/api/match", requireMethod(http.MethodPost, s.handleMatch))
	mux.HandleFunc("/api/jobs", requireMethod(http.MethodGet, s.handleListJobs))
	mux.HandleFunc("/health", requireMethod(http.MethodGet, s.handleHealth))
	return mux
}

// requireMethod emulates Go 1.22 ServeMux method patterns ("POST /path") on
// the Go 1.21 toolchain this module is built with: wrong methods get 405 with
// an Allow header, and HEAD is accepted wherever GET is.
func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method && !(method == http.MethodGet && r.Method == http.MethodHead) {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// jsonResponse writes a JSON response with the given status
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
