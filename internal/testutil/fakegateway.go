// Package testutil provides in-memory fakes for the gateway and store
// interfaces.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/nja-rasheed/taskfy/internal/client"
)

// FakeGateway is an in-memory client.Gateway for controller tests.
type FakeGateway struct {
	mu     sync.Mutex
	tasks  []client.Task
	nextID int

	// Error injection.
	TasksErr  error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// Call counters, for asserting that an operation never reached the
	// gateway.
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// NewFakeGateway returns an empty FakeGateway.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

// Seed adds a task directly, bypassing Create.
func (f *FakeGateway) Seed(title, category string, completed bool) client.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := client.Task{
		ID:        fmt.Sprintf("task-%d", f.nextID),
		Title:     title,
		Category:  category,
		Completed: completed,
	}
	f.tasks = append(f.tasks, t)
	return t
}

// Tasks implements client.Gateway.
func (f *FakeGateway) Tasks(ctx context.Context) ([]client.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	out := make([]client.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// Create implements client.Gateway.
func (f *FakeGateway) Create(ctx context.Context, title, category string) (client.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return client.Task{}, f.CreateErr
	}
	f.nextID++
	t := client.Task{
		ID:       fmt.Sprintf("task-%d", f.nextID),
		Title:    title,
		Category: category,
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// Update implements client.Gateway.
func (f *FakeGateway) Update(ctx context.Context, id, title string, completed bool, category string) (client.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return client.Task{}, f.UpdateErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = title
			f.tasks[i].Completed = completed
			f.tasks[i].Category = category
			return f.tasks[i], nil
		}
	}
	return client.Task{}, fmt.Errorf("no matching task")
}

// Delete implements client.Gateway.
func (f *FakeGateway) Delete(ctx context.Context, id string) (client.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return client.Task{}, f.DeleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return client.Task{}, fmt.Errorf("no matching task")
}
