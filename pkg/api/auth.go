package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/lexmentor/lexclient/pkg/model"
)

// AuthResponse is the payload returned by login and signup.
type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	User        model.UserWire `json:"user"`
}

// Login submits credentials as multipart form fields named username and
// password, the shape the backend's OAuth2 password flow expects.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("username", email); err != nil {
		return nil, fmt.Errorf("api: build login form: %w", err)
	}
	if err := w.WriteField("password", password); err != nil {
		return nil, fmt.Errorf("api: build login form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("api: build login form: %w", err)
	}

	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account and returns the same shape as Login.
func (c *Client) Signup(ctx context.Context, data model.RegisterData) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/signup", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the identity record behind the current token. The session
// manager uses it on startup to validate a persisted token.
func (c *Client) Me(ctx context.Context) (*model.UserWire, error) {
	var out model.UserWire
	if err := c.getJSON(ctx, "/api/auth/users/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword asks the backend to start a password reset for email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.sendJSON(ctx, http.MethodPost, "/api/auth/forgot-password", payload, nil)
}
