package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTP implements Gateway over the server's JSON API.
type HTTP struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// New returns an HTTP gateway for the server at baseURL authenticating
// with token.
func New(baseURL, token string) *HTTP {
	return &HTTP{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type apiError struct {
	Error string `json:"error"`
}

func (c *HTTP) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Login exchanges credentials for a session token and the account record.
func (c *HTTP) Login(ctx context.Context, email, password string) (string, string, error) {
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", "", err
	}
	c.Token = resp.Token
	return resp.Token, resp.User.Email, nil
}

// Register creates a new account.
func (c *HTTP) Register(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Tasks implements Gateway.
func (c *HTTP) Tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create implements Gateway.
func (c *HTTP) Create(ctx context.Context, title, category string) (Task, error) {
	var task Task
	body := map[string]string{"title": title, "category": category}
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Update implements Gateway.
func (c *HTTP) Update(ctx context.Context, id, title string, completed bool, category string) (Task, error) {
	var task Task
	body := map[string]interface{}{
		"id":        id,
		"title":     title,
		"completed": completed,
		"category":  category,
	}
	if err := c.do(ctx, http.MethodPatch, "/tasks", body, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Delete implements Gateway.
func (c *HTTP) Delete(ctx context.Context, id string) (Task, error) {
	var resp struct {
		Message string `json:"message"`
		Deleted Task   `json:"deleted"`
	}
	body := map[string]string{"id": id}
	if err := c.do(ctx, http.MethodDelete, "/tasks", body, &resp); err != nil {
		return Task{}, err
	}
	return resp.Deleted, nil
}
