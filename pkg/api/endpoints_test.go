package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lexmentor/lexclient/pkg/model"
)

func TestDashboardReadersDegradeOnFailure(t *testing.T) {
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
	})
	ctx := context.Background()

	stats := c.GetDashboardStats(ctx)
	if diff := cmp.Diff(model.EmptyDashboardStats(), stats); diff != "" {
		t.Errorf("stats fallback mismatch (-want +got):\n%s", diff)
	}
	if cases := c.GetCasesForDashboard(ctx); cases == nil || len(cases) != 0 {
		t.Errorf("cases fallback = %v, want empty non-nil slice", cases)
	}
	if appts := c.GetUpcomingAppointments(ctx); appts == nil || len(appts) != 0 {
		t.Errorf("appointments fallback = %v, want empty non-nil slice", appts)
	}

	// GetClients is not part of the degrading trio.
	if _, err := c.GetClients(ctx); err == nil {
		t.Error("GetClients should propagate backend failure")
	}
}

func TestDashboardReadersPassThroughSuccess(t *testing.T) {
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/dashboard/":
			w.Write([]byte(`{"activeCases":3,"totalClients":2,"totalRevenue":1500.5,"recentActivities":[]}`))
		case "/api/dashboard/clients":
			w.Write([]byte(`[{"client_id":1,"name":"Acme Corp","email":"legal@acme.test"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})
	ctx := context.Background()

	stats := c.GetDashboardStats(ctx)
	if stats.ActiveCases != 3 || stats.TotalRevenue != 1500.5 {
		t.Errorf("stats = %+v", stats)
	}

	clients, err := c.GetClients(ctx)
	if err != nil {
		t.Fatalf("GetClients: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Acme Corp" {
		t.Fatalf("clients = %+v", clients)
	}
	if clients[0].Cases == nil {
		t.Error("Cases should be normalized to an empty slice")
	}
	if clients[0].CasesCount != 0 {
		t.Errorf("CasesCount = %d, want 0", clients[0].CasesCount)
	}
}

func TestCreateChatSessionDefaultsAndGreeting(t *testing.T) {
	var posted map[string]string
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&posted)
		w.Write([]byte(`{"id":12,"title":"` + posted["title"] + `","category":"` + posted["category"] + `","created_at":"2026-01-05T10:00:00Z"}`))
	})

	session, err := c.CreateChatSession(context.Background(), "", "")
	if err != nil {
		t.Fatalf("CreateChatSession: %v", err)
	}
	if posted["title"] != "New Legal Consultation" || posted["category"] != "general" {
		t.Errorf("posted defaults = %v", posted)
	}
	if session.ID != "12" {
		t.Errorf("ID = %q, want %q", session.ID, "12")
	}
	if session.LastMessage != "No messages yet" {
		t.Errorf("LastMessage = %q", session.LastMessage)
	}
	if len(session.Messages) != 1 {
		t.Fatalf("Messages = %v, want one greeting", session.Messages)
	}
	greeting := session.Messages[0]
	if greeting.Text != model.WelcomeText || greeting.Sender != model.SenderMentor {
		t.Errorf("greeting = %+v", greeting)
	}
	if !greeting.Pending() {
		t.Error("greeting should carry a local ID")
	}
}

func TestCreateCaseActivityNormalizesDate(t *testing.T) {
	var posted model.CaseActivityCreate
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&posted)
		w.Write([]byte(`{"activity_id":1}`))
	})

	_, err := c.CreateCaseActivity(context.Background(), model.CaseActivityCreate{
		CaseID:       4,
		Type:         model.ActivityHearing,
		Title:        "First hearing",
		ActivityDate: "2024-03-05T09:00:00.123-05:00",
	})
	if err != nil {
		t.Fatalf("CreateCaseActivity: %v", err)
	}
	if posted.ActivityDate != "2024-03-05T14:00:00Z" {
		t.Errorf("ActivityDate = %q, want %q", posted.ActivityDate, "2024-03-05T14:00:00Z")
	}
}

func TestCreateCaseActivityRejectsBadDate(t *testing.T) {
	called := false
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.CreateCaseActivity(context.Background(), model.CaseActivityCreate{
		CaseID:       4,
		Title:        "x",
		ActivityDate: "05/03/2024",
	})
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 *APIError", err)
	}
	if called {
		t.Error("bad date should fail before any request goes out")
	}
}

func TestUploadDocumentMultipart(t *testing.T) {
	type received struct {
		contentType string
		fields      map[string]string
		fileContent string
		hasCaseID   bool
	}
	var got received
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		got.contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		got.fields = map[string]string{}
		for key := range r.MultipartForm.Value {
			got.fields[key] = r.FormValue(key)
		}
		_, got.hasCaseID = r.MultipartForm.Value["case_id"]
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		raw, _ := io.ReadAll(file)
		got.fileContent = string(raw)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"document_id":7,"title":"Retainer"}`))
	})

	doc, err := c.UploadDocument(context.Background(), model.DocumentUpload{
		File:     bytes.NewReader([]byte("pdf bytes")),
		FileName: "retainer.pdf",
		Title:    "Retainer",
	})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}
	if doc.DocumentID != 7 {
		t.Errorf("DocumentID = %d", doc.DocumentID)
	}
	if !strings.HasPrefix(got.contentType, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q", got.contentType)
	}
	if got.fields["title"] != "Retainer" {
		t.Errorf("title field = %q", got.fields["title"])
	}
	if got.fileContent != "pdf bytes" {
		t.Errorf("file content = %q", got.fileContent)
	}
	// Unset optional metadata must be absent, not empty.
	if got.hasCaseID {
		t.Error("case_id field sent despite being unset")
	}
	if _, ok := got.fields["description"]; ok {
		t.Error("description field sent despite being unset")
	}
}

func TestDownloadDocument(t *testing.T) {
	payload := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff}
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/3/download" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Document not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(payload)
	})

	raw, err := c.DownloadDocument(context.Background(), 3)
	if err != nil {
		t.Fatalf("DownloadDocument: %v", err)
	}
	if !bytes.Equal(raw, payload) {
		t.Errorf("content = %v, want %v", raw, payload)
	}

	_, err = c.DownloadDocument(context.Background(), 99)
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusNotFound || apiErr.Message != "Document not found" {
		t.Errorf("err = %v, want classified 404", err)
	}
}

func TestSendMessageRejectsNonNumericSession(t *testing.T) {
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not go out")
	})
	_, err := c.SendMessage(context.Background(), "local_123_abc", "hello")
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 *APIError", err)
	}
}

func TestLoginSendsMultipartForm(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("username"); got != "ada@example.test" {
			t.Errorf("username = %q", got)
		}
		if got := r.FormValue("password"); got != "hunter2" {
			t.Errorf("password = %q", got)
		}
		w.Write([]byte(`{"access_token":"tok","user":{"user_id":7,"full_name":"Ada Lovelace","email":"ada@example.test","user_type":"lawyer"}}`))
	})

	resp, err := c.Login(context.Background(), "ada@example.test", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken != "tok" {
		t.Errorf("AccessToken = %q", resp.AccessToken)
	}
	if resp.User.FullName != "Ada Lovelace" {
		t.Errorf("user = %+v", resp.User)
	}
}
