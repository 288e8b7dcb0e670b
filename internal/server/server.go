// Package server provides the HTTP surface for the résumé site: the public
// document and page reads, the admin session protocol, and the mutation
// endpoints backed by the document store.
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

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/polish"
	"github.com/jonathan/resume-site/internal/server/middleware"
	"github.com/jonathan/resume-site/internal/session"
	"github.com/jonathan/resume-site/internal/store"
	"github.com/jonathan/resume-site/internal/web"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	sessions   *session.Manager
	polisher   *polish.Service
	jwtService *JWTService
	validator  *validator.Validate
	renderer   *web.Renderer
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance around the already-constructed
// collaborators. The composition root owns the store, session manager, and
// polish service; the server only wires them to routes.
func New(cfg Config, st *store.Store, sessions *session.Manager, polisher *polish.Service) (*Server, error) {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s := &Server{
		store:      st,
		sessions:   sessions,
		polisher:   polisher,
		jwtService: NewJWTService(jwtConfig),
		validator:  validator.New(),
		renderer:   renderer,
	}

	mux := http.NewServeMux()

	// Public surface
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("GET /session", s.handleGetSession)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session protocol
	mux.HandleFunc("POST /session/dialog", s.handleRequestLogin)
	mux.HandleFunc("DELETE /session/dialog", s.handleCancelLogin)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("POST /auth/logout", s.requireAdmin(s.handleLogout))
	mux.Handle("POST /session/editing", s.requireAdmin(s.handleToggleEditing))

	// Scalar mutations
	mux.Handle("PUT /resume/summary", s.requireAdmin(s.handleSetSummary))
	mux.Handle("PUT /resume/intro-video", s.requireAdmin(s.handleSetIntroVideo))
	mux.Handle("PUT /resume/personal-info", s.requireAdmin(s.handleSetPersonalInfo))

	// Experience (new entries prepend)
	mux.Handle("POST /resume/experience", s.requireAdmin(s.handleAddExperience))
	mux.Handle("PUT /resume/experience/{id}", s.requireAdmin(s.handleUpdateExperience))
	mux.Handle("DELETE /resume/experience/{id}", s.requireAdmin(s.handleRemoveExperience))
	mux.Handle("POST /resume/experience/{id}/polish", s.requireAdmin(s.handlePolishExperience))

	// Project videos (new items append)
	mux.Handle("POST /resume/videos", s.requireAdmin(s.handleAddProjectVideo))
	mux.Handle("PUT /resume/videos/{id}", s.requireAdmin(s.handleUpdateProjectVideo))
	mux.Handle("DELETE /resume/videos/{id}", s.requireAdmin(s.handleRemoveProjectVideo))

	// Skills and achievements (index-addressed, append)
	mux.Handle("POST /resume/skills/{list}", s.requireAdmin(s.handleAddSkill))
	mux.Handle("PUT /resume/skills/{list}/{index}", s.requireAdmin(s.handleSetSkill))
	mux.Handle("DELETE /resume/skills/{list}/{index}", s.requireAdmin(s.handleRemoveSkill))
	mux.Handle("POST /resume/achievements", s.requireAdmin(s.handleAddAchievement))
	mux.Handle("PUT /resume/achievements/{index}", s.requireAdmin(s.handleSetAchievement))
	mux.Handle("DELETE /resume/achievements/{index}", s.requireAdmin(s.handleRemoveAchievement))

	// Text polish: returns the polished text, the caller applies it through
	// a normal field mutation
	mux.Handle("POST /polish", s.requireAdmin(s.handlePolish))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // polish calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
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

// Handler returns the configured handler. Exposed for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// requireAdmin guards mutation routes: the bearer token must validate and the
// session must still be in admin state. Logout kills outstanding tokens
// because it drops the admin flag.
func (s *Server) requireAdmin(h http.HandlerFunc) http.Handler {
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	return auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.sessions.State().IsAdmin {
			s.errorResponse(w, http.StatusUnauthorized, "Admin session has ended")
			return
		}
		h(w, r)
	}))
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePage renders the full HTML page from the current document and
// session state.
func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, s.store.Document(), s.sessions.State()); err != nil {
		log.Printf("Error rendering page: %v", err)
	}
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
