package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const credFileName = "credentials.json"

// Credentials is the session state persisted between runs.
type Credentials struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func credsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskfy"), nil
}

func credFilePath() (string, error) {
	dir, err := credsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credFileName), nil
}

// LoadCredentials returns the stored session, or nil when not logged in.
// TASKFY_TOKEN overrides the credentials file.
func LoadCredentials() (*Credentials, error) {
	if env := strings.TrimSpace(os.Getenv("TASKFY_TOKEN")); env != "" {
		return &Credentials{Token: env}, nil
	}

	p, err := credFilePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var creds Credentials
	if err := json.Unmarshal(b, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// SaveCredentials stores the session under ~/.taskfy with owner-only
// permissions.
func SaveCredentials(token, email string) error {
	dir, err := credsDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(Credentials{
		Token:     token,
		Email:     email,
		CreatedAt: time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}

	p, err := credFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// DeleteCredentials removes the stored session. Removing an absent file is
// not an error.
func DeleteCredentials() error {
	p, err := credFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
