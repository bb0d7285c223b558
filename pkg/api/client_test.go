package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, StaticToken(token), srv.Client())
}

func TestDoAttachesBearerToken(t *testing.T) {
	var got string
	c := newTestClient(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	if err := c.getJSON(context.Background(), "/api/x", &struct{}{}); err != nil {
		t.Fatalf("getJSON: %v", err)
	}
	if got != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer tok123")
	}
}

func TestDoOmitsHeaderWithoutToken(t *testing.T) {
	var got string
	var present bool
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	if err := c.getJSON(context.Background(), "/api/x", &struct{}{}); err != nil {
		t.Fatalf("getJSON: %v", err)
	}
	if present {
		t.Errorf("Authorization header sent without a token: %q", got)
	}
}

func TestDoNoContentSkipsDecoding(t *testing.T) {
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	out := map[string]string{"existing": "untouched"}
	if err := c.sendJSON(context.Background(), http.MethodDelete, "/api/x/1", nil, &out); err != nil {
		t.Fatalf("sendJSON: %v", err)
	}
	if out["existing"] != "untouched" {
		t.Errorf("204 response mutated out: %v", out)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *APIError
	}{
		{
			name:   "validation with detail array",
			status: 422,
			body:   `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address","type":"value_error.email"}]}`,
			want: &APIError{
				Status:  422,
				Message: "validation failed",
				FieldErrors: []FieldError{
					{Loc: []any{"body", "email"}, Msg: "value is not a valid email address", Type: "value_error.email"},
				},
			},
		},
		{
			name:   "validation with errors array",
			status: 422,
			body:   `{"errors":[{"loc":["body","title"],"msg":"field required"}]}`,
			want: &APIError{
				Status:      422,
				Message:     "validation failed",
				FieldErrors: []FieldError{{Loc: []any{"body", "title"}, Msg: "field required"}},
			},
		},
		{
			name:   "detail string",
			status: 404,
			body:   `{"detail":"Case not found"}`,
			want:   &APIError{Status: 404, Message: "Case not found"},
		},
		{
			name:   "message field",
			status: 500,
			body:   `{"message":"internal error"}`,
			want:   &APIError{Status: 500, Message: "internal error"},
		},
		{
			name:   "unparseable body",
			status: 502,
			body:   `<html>bad gateway</html>`,
			want:   &APIError{Status: 502, Message: "request failed with status 502"},
		},
		{
			name:   "empty body",
			status: 401,
			body:   ``,
			want:   &APIError{Status: 401, Message: "request failed with status 401"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.status, []byte(tt.body))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("classifyError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !(&APIError{Status: 422}).IsValidation() {
		t.Error("422 should classify as validation")
	}
	if (&APIError{Status: 400}).IsValidation() {
		t.Error("400 should not classify as validation")
	}
}

func TestDoClassifiesErrorResponse(t *testing.T) {
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Client not found"}`))
	})

	err := c.getJSON(context.Background(), "/api/clients/9", &struct{}{})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("got %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Client not found" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}
