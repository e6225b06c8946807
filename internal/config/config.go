// Package config loads server settings from the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// MongoURI is the connection string for the task database.
	MongoURI string

	// Database is the Mongo database name.
	Database string

	// JWTSecret signs session tokens. Required.
	JWTSecret []byte

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing optional values fall back to defaults; a missing
// JWT_SECRET is an error.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:     os.Getenv("PORT"),
		MongoURI: os.Getenv("MONGO_URI"),
		Database: os.Getenv("MONGO_DB"),
		TokenTTL: 24 * time.Hour,
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "taskfy"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	cfg.JWTSecret = []byte(secret)

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, errors.New("TOKEN_TTL is not a valid duration")
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}
