// Package server provides the HTTP REST API for resume parsing and job
// matching.
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

	"github.com/go-playground/validator/v10"

	"github.com/Kieseatic/Ats/internal/config"
	"github.com/Kieseatic/Ats/internal/matching"
	"github.com/Kieseatic/Ats/internal/parsing"
	"github.com/Kieseatic/Ats/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	parser     *parsing.Parser
	matcher    *matching.Matcher
	jobs       store.JobStore
	validator  *validator.Validate
}

// New creates a server around the given parser, matcher, and job store.
func New(cfg *config.Config, parser *parsing.Parser, matcher *matching.Matcher, jobs store.JobStore) *Server {
	s := &Server{
		cfg:       cfg,
		parser:    parser,
		matcher:   matcher,
		jobs:      jobs,
		validator: validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/upload_job_description", s.handleUploadJobDescription)
	mux.HandleFunc("POST /api/upload_resume", s.handleUploadResume)
	mux.HandleFunc("POST /api/extract-resume-text", s.handleExtractResumeText)
	mux.HandleFunc("POST /api/analyze-job", s.handleAnalyzeJob)
	mux.HandleFunc("POST /api/match-resume-job", s.handleMatchResumeJob)
	mux.HandleFunc("POST /api/parse-career", s.handleParseCareer)
	mux.HandleFunc("POST /api/parse-career-robust", s.handleParseCareerRobust)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening and blocks until an interrupt, then shuts down
// gracefully.
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

	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"service": "ats",
		"status":  "running",
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.jobs.Count(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "job store unavailable")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"jobs_count": count,
	})
}

// jsonResponse writes a JSON response
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
