package client_test

import (
	"testing"

	"github.com/nja-rasheed/taskfy/internal/client"
)

func TestCredentialsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKFY_TOKEN", "")

	creds, err := client.LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if creds != nil {
		t.Fatal("expected no stored credentials in a fresh home")
	}

	if err := client.SaveCredentials("tok-123", "alice@example.com"); err != nil {
		t.Fatalf("SaveCredentials: %v", err)
	}

	creds, err = client.LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if creds == nil || creds.Token != "tok-123" || creds.Email != "alice@example.com" {
		t.Fatalf("unexpected credentials %+v", creds)
	}

	if err := client.DeleteCredentials(); err != nil {
		t.Fatalf("DeleteCredentials: %v", err)
	}
	creds, err = client.LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if creds != nil {
		t.Fatal("credentials should be gone after delete")
	}

	// Deleting twice is fine.
	if err := client.DeleteCredentials(); err != nil {
		t.Fatalf("second DeleteCredentials: %v", err)
	}
}

func TestEnvTokenOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := client.SaveCredentials("file-token", "alice@example.com"); err != nil {
		t.Fatalf("SaveCredentials: %v", err)
	}

	t.Setenv("TASKFY_TOKEN", "env-token")
	creds, err := client.LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if creds == nil || creds.Token != "env-token" {
		t.Fatalf("expected env token to win, got %+v", creds)
	}
}
