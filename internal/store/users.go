package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nja-rasheed/taskfy/internal/models"
)

// UserStore reads and writes the users collection.
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore returns a UserStore over db's "users" collection.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection("users")}
}

// Create inserts a new user with the given bcrypt password hash. Fails
// with ErrEmailTaken when the email is already registered.
func (s *UserStore) Create(ctx context.Context, email, passwordHash string) (models.User, error) {
	var existing models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	user := models.User{
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// FindByEmail looks up a user by email. Returns mongo.ErrNoDocuments when
// no such user exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
