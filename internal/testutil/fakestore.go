package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nja-rasheed/taskfy/internal/models"
	"github.com/nja-rasheed/taskfy/internal/store"
)

// FakeTaskStore is an in-memory server.TaskStore. It mirrors the Mongo
// store's contract: update and delete match id and owner together and
// report store.ErrNoTask when nothing matches.
type FakeTaskStore struct {
	mu    sync.Mutex
	tasks []models.Task
	clock time.Time

	// Error injection.
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

// NewFakeTaskStore returns an empty FakeTaskStore.
func NewFakeTaskStore() *FakeTaskStore {
	return &FakeTaskStore{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// tick advances the fake insert clock so ordering is deterministic.
func (f *FakeTaskStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

// SeedTask inserts a task directly, bypassing Create.
func (f *FakeTaskStore) SeedTask(owner, title, category string, completed bool) models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := models.Task{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Category:   category,
		Completed:  completed,
		UserID:     owner,
		InsertedAt: f.tick(),
	}
	f.tasks = append(f.tasks, t)
	return t
}

// ListByOwner implements server.TaskStore.
func (f *FakeTaskStore) ListByOwner(ctx context.Context, owner string) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := []models.Task{}
	for _, t := range f.tasks {
		if t.UserID == owner {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InsertedAt.After(out[j].InsertedAt)
	})
	return out, nil
}

// Create implements server.TaskStore.
func (f *FakeTaskStore) Create(ctx context.Context, owner, title, category string) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return models.Task{}, f.CreateErr
	}
	t := models.Task{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Category:   category,
		Completed:  false,
		UserID:     owner,
		InsertedAt: f.tick(),
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// Update implements server.TaskStore.
func (f *FakeTaskStore) Update(ctx context.Context, owner, id, title string, completed bool, category string) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return models.Task{}, f.UpdateErr
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Task{}, err
	}
	for i, t := range f.tasks {
		if t.ID.Hex() == id && t.UserID == owner {
			f.tasks[i].Title = title
			f.tasks[i].Completed = completed
			f.tasks[i].Category = category
			return f.tasks[i], nil
		}
	}
	return models.Task{}, store.ErrNoTask
}

// Delete implements server.TaskStore.
func (f *FakeTaskStore) Delete(ctx context.Context, owner, id string) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return models.Task{}, f.DeleteErr
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Task{}, err
	}
	for i, t := range f.tasks {
		if t.ID.Hex() == id && t.UserID == owner {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return models.Task{}, store.ErrNoTask
}

// FakeUserStore is an in-memory server.UserStore.
type FakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User

	CreateErr error
	FindErr   error
}

// NewFakeUserStore returns an empty FakeUserStore.
func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[string]models.User)}
}

// Create implements server.UserStore.
func (f *FakeUserStore) Create(ctx context.Context, email, passwordHash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return models.User{}, f.CreateErr
	}
	if _, ok := f.users[email]; ok {
		return models.User{}, store.ErrEmailTaken
	}
	u := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	f.users[email] = u
	return u, nil
}

// FindByEmail implements server.UserStore.
func (f *FakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindErr != nil {
		return models.User{}, f.FindErr
	}
	u, ok := f.users[email]
	if !ok {
		return models.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}
