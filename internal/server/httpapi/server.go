// Package httpapi exposes the task and auth operations over HTTP/JSON.
// It is the only layer that maps service outcomes to transport status codes
// and error kinds.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/users"
)

type HTTPServer struct {
	address       string
	users         *users.Service
	tasks         *tasks.Service
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
	secureCookies bool
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us *users.Service, ts *tasks.Service) *HTTPServer {
	return &HTTPServer{
		address:       cfg.EndpointAddrHTTP,
		logger:        l.With("module", "http_server"),
		users:         us,
		tasks:         ts,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		secureCookies: cfg.SecureCookies,
	}
}

// routes assembles the full request mux. Task routes pass through the auth
// boundary; auth routes do not.
func (s *HTTPServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)

	mux.HandleFunc("GET /tasks", s.requireUser(s.handleListTasks))
	mux.HandleFunc("POST /tasks", s.requireUser(s.handleCreateTask))
	mux.HandleFunc("GET /tasks/{id}", s.requireUser(s.handleGetTask))
	mux.HandleFunc("PUT /tasks/{id}", s.requireUser(s.handleUpdateTask))
	mux.HandleFunc("DELETE /tasks/{id}", s.requireUser(s.handleDeleteTask))
	mux.HandleFunc("PATCH /tasks/{id}/toggle", s.requireUser(s.handleToggleTask))

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"services": map[string]string{
			"api": "up",
		},
	})
}
