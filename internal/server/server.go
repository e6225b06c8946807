// Package server wires the HTTP surface: session middleware, the /tasks
// CRUD handlers and the register/login endpoints.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/nja-rasheed/taskfy/internal/auth"
	"github.com/nja-rasheed/taskfy/internal/models"
)

// storeTimeout bounds every call into the persistence layer.
const storeTimeout = 5 * time.Second

// TaskStore is the persistence surface the task handlers depend on.
// Implementations enforce ownership inside each query.
type TaskStore interface {
	ListByOwner(ctx context.Context, owner string) ([]models.Task, error)
	Create(ctx context.Context, owner, title, category string) (models.Task, error)
	Update(ctx context.Context, owner, id, title string, completed bool, category string) (models.Task, error)
	Delete(ctx context.Context, owner, id string) (models.Task, error)
}

// UserStore is the persistence surface the auth handlers depend on.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// Server holds the handler dependencies.
type Server struct {
	tasks    TaskStore
	users    UserStore
	sessions *auth.Sessions
}

// New assembles a Server.
func New(tasks TaskStore, users UserStore, sessions *auth.Sessions) *Server {
	return &Server{tasks: tasks, users: users, sessions: sessions}
}

// Handler returns the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/auth/register", s.handleRegister)
	mux.HandleFunc("/auth/login", s.handleLogin)
	mux.HandleFunc("/tasks", s.requireAuth(s.handleTasks))
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
