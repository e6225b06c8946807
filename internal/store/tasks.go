package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nja-rasheed/taskfy/internal/models"
)

// TaskStore reads and writes the tasks collection.
type TaskStore struct {
	coll *mongo.Collection
}

// NewTaskStore returns a TaskStore over db's "tasks" collection.
func NewTaskStore(db *mongo.Database) *TaskStore {
	return &TaskStore{coll: db.Collection("tasks")}
}

// ListByOwner returns every task owned by owner, newest first.
func (s *TaskStore) ListByOwner(ctx context.Context, owner string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "inserted_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create inserts a new task for owner. Completed always starts false and
// the insert timestamp is assigned here.
func (s *TaskStore) Create(ctx context.Context, owner, title, category string) (models.Task, error) {
	task := models.Task{
		Title:      title,
		Category:   category,
		Completed:  false,
		UserID:     owner,
		InsertedAt: time.Now().UTC(),
	}

	res, err := s.coll.InsertOne(ctx, task)
	if err != nil {
		return models.Task{}, err
	}
	task.ID = res.InsertedID.(primitive.ObjectID)
	return task, nil
}

// Update sets title, completed and category on the task matching both id
// and owner, and returns the post-update document. All three fields are
// written verbatim; there are no partial-patch semantics, so resending an
// empty title stores an empty title.
func (s *TaskStore) Update(ctx context.Context, owner, id, title string, completed bool, category string) (models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Task{}, err
	}

	filter := bson.M{"_id": oid, "user_id": owner}
	update := bson.M{"$set": bson.M{
		"title":     title,
		"completed": completed,
		"category":  category,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task models.Task
	err = s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return models.Task{}, ErrNoTask
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Delete removes the task matching both id and owner and returns its prior
// state as confirmation.
func (s *TaskStore) Delete(ctx context.Context, owner, id string) (models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Task{}, err
	}

	var task models.Task
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "user_id": owner}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return models.Task{}, ErrNoTask
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}
