// Package client talks to the taskfy server. The Gateway interface is the
// client-side view of the task API; the TUI and its tests never build HTTP
// requests themselves.
package client

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when the server rejects the session token.
var ErrUnauthorized = errors.New("not authenticated")

// Task is the client-side task record.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

// Gateway is the task API surface consumed by the controller.
type Gateway interface {
	// Tasks returns the caller's tasks, newest first.
	Tasks(ctx context.Context) ([]Task, error)

	// Create adds a task and returns the stored record.
	Create(ctx context.Context, title, category string) (Task, error)

	// Update overwrites title, completed and category on the given task
	// and returns the stored record.
	Update(ctx context.Context, id, title string, completed bool, category string) (Task, error)

	// Delete removes a task and returns its prior state.
	Delete(ctx context.Context, id string) (Task, error)
}
