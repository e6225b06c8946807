package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nja-rasheed/taskfy/internal/auth"
)

type taskRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

// handleTasks dispatches the four task operations by method. Every branch
// re-resolves the caller identity from context; the store scopes each query
// to that owner.
func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.listTasks(w, r, caller)
	case http.MethodPost:
		s.createTask(w, r, caller)
	case http.MethodPatch:
		s.updateTask(w, r, caller)
	case http.MethodDelete:
		s.deleteTask(w, r, caller)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request, caller string) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	tasks, err := s.tasks.ListByOwner(ctx, caller)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request, caller string) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "Title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	task, err := s.tasks.Create(ctx, caller, req.Title, req.Category)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request, caller string) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	// Title, completed and category are written exactly as supplied; an
	// omitted field zeroes the stored value.
	task, err := s.tasks.Update(ctx, caller, req.ID, req.Title, req.Completed, req.Category)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request, caller string) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	task, err := s.tasks.Delete(ctx, caller, req.ID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Task deleted successfully",
		"deleted": task,
	})
}
