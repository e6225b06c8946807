package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nja-rasheed/taskfy/internal/auth"
	"github.com/nja-rasheed/taskfy/internal/client"
	"github.com/nja-rasheed/taskfy/internal/server"
	"github.com/nja-rasheed/taskfy/internal/testutil"
)

// startServer runs the real handler over in-memory stores so the HTTP
// gateway is exercised end to end.
func startServer(t *testing.T) (*httptest.Server, *auth.Sessions) {
	t.Helper()
	sessions := auth.NewSessions([]byte("test-secret"), time.Hour)
	srv := server.New(testutil.NewFakeTaskStore(), testutil.NewFakeUserStore(), sessions)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, sessions
}

func TestGatewayCRUD(t *testing.T) {
	ts, sessions := startServer(t)
	token, err := sessions.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	gw := client.New(ts.URL, token)
	ctx := context.Background()

	created, err := gw.Create(ctx, "Buy milk", "Shopping")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.Completed {
		t.Fatalf("unexpected created task %+v", created)
	}

	updated, err := gw.Update(ctx, created.ID, "Buy oat milk", true, "Shopping")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Buy oat milk" || !updated.Completed {
		t.Fatalf("unexpected updated task %+v", updated)
	}

	tasks, err := gw.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != created.ID {
		t.Fatalf("unexpected task list %+v", tasks)
	}

	deleted, err := gw.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.Title != "Buy oat milk" {
		t.Errorf("delete should return the prior state, got %+v", deleted)
	}

	tasks, err = gw.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list after delete, got %+v", tasks)
	}
}

func TestGatewayUnauthorized(t *testing.T) {
	ts, _ := startServer(t)
	gw := client.New(ts.URL, "")

	if _, err := gw.Tasks(context.Background()); err != client.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGatewayValidationErrors(t *testing.T) {
	ts, sessions := startServer(t)
	token, _ := sessions.Issue("alice")
	gw := client.New(ts.URL, token)
	ctx := context.Background()

	if _, err := gw.Create(ctx, "", "Work"); err == nil {
		t.Error("empty title should be rejected by the server")
	}
	if _, err := gw.Update(ctx, "", "x", false, ""); err == nil {
		t.Error("empty id should be rejected by the server")
	}
	if _, err := gw.Delete(ctx, ""); err == nil {
		t.Error("empty id should be rejected by the server")
	}
}

func TestLoginAndRegister(t *testing.T) {
	ts, _ := startServer(t)
	gw := client.New(ts.URL, "")
	ctx := context.Background()

	if err := gw.Register(ctx, "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, email, err := gw.Login(ctx, "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || email != "alice@example.com" {
		t.Fatalf("unexpected login result token=%q email=%q", token, email)
	}

	// The gateway adopts the token; task calls now succeed.
	if _, err := gw.Tasks(ctx); err != nil {
		t.Fatalf("Tasks after login: %v", err)
	}

	if _, _, err := gw.Login(ctx, "alice@example.com", "wrong"); err == nil {
		t.Error("wrong password should fail login")
	}
}
