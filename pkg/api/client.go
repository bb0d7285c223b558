// Package api talks to the LexMentor backend. Every endpoint wrapper builds
// a URL and body and delegates to the one shared request funnel, which
// attaches the session token, performs the call, and classifies the
// response. Nothing else in the repository touches the network.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is where a development backend listens. Deployments
// override it through configuration.
const DefaultBaseURL = "http://localhost:8000"

// TokenSource supplies the current session token. The session manager's
// store implements it; an empty token means the call goes out
// unauthenticated and the backend decides whether to reject it.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, mostly for tests.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client is the typed API client. All methods are safe for concurrent use;
// the client itself holds no per-request state.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// New creates a Client for the backend at baseURL. A nil httpc falls back
// to a default http.Client with no timeout: a hung request is surfaced to
// the caller as a hung call, never retried or cancelled behind its back.
func New(baseURL string, tokens TokenSource, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		tokens:  tokens,
	}
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// FieldError is one entry of a 422 validation response, in the backend's
// own shape: loc walks the request body to the offending field.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type,omitempty"`
}

// APIError is a classified non-2xx backend response.
type APIError struct {
	Status      int
	Message     string
	FieldErrors []FieldError // populated only for validation failures
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsValidation reports whether the error is a 422 validation failure whose
// FieldErrors can be mapped back onto form fields.
func (e *APIError) IsValidation() bool {
	return e.Status == http.StatusUnprocessableEntity
}

// newRequest builds a request with the bearer header attached when a token
// exists. An empty contentType leaves the header unset so multipart bodies
// keep the boundary their writer chose.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// classifyError turns a non-2xx response body into an *APIError. A parseable
// JSON body contributes its detail/message text; 422 additionally carries
// the structured field errors verbatim. Anything unparseable degrades to a
// generic message built from the status code alone.
func classifyError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: fmt.Sprintf("request failed with status %d", status),
	}

	if status == http.StatusUnprocessableEntity {
		var payload struct {
			Detail []FieldError `json:"detail"`
			Errors []FieldError `json:"errors"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			apiErr.Message = "validation failed"
			apiErr.FieldErrors = payload.Detail
			if apiErr.FieldErrors == nil {
				apiErr.FieldErrors = payload.Errors
			}
			return apiErr
		}
	}

	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	var detail string
	if len(payload.Detail) > 0 && json.Unmarshal(payload.Detail, &detail) == nil && detail != "" {
		apiErr.Message = detail
	} else if payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}

// do executes one request through the funnel. A 204 resolves to success
// without ever touching the body; a 2xx body is decoded into out when out is
// non-nil; everything else is classified into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := c.newRequest(ctx, method, c.baseURL+path, body, contentType)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: %s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: %s %s: decode response: %w", method, path, err)
	}
	return nil
}

// getJSON issues an unauthenticated-shaped GET through the funnel.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "application/json", out)
}

// sendJSON marshals payload and issues method through the funnel. A nil
// payload sends no body but keeps the JSON content type.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}
