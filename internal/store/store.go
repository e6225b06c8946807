// Package store persists tasks and users in MongoDB. Ownership checks ride
// inside the store queries themselves: update and delete match _id and
// user_id in a single filter, so a caller can never act on another user's
// task through a check/use gap.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// ErrNoTask is returned when an update or delete matches no document,
// either because the id does not exist or the task belongs to someone else.
// The two cases are deliberately indistinguishable.
var ErrNoTask = errors.New("no matching task")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already registered")

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}
