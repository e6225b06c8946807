package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is the sole persisted entity. UserID references the owning User
// and never changes after creation.
type Task struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Category   string             `bson:"category,omitempty" json:"category"`
	Completed  bool               `bson:"completed" json:"completed"`
	UserID     string             `bson:"user_id" json:"user_id"`
	InsertedAt time.Time          `bson:"inserted_at" json:"inserted_at"`
}
