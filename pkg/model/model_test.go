package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input string
		want  AccountType
	}{
		{"lawyer", AccountLawyer},
		{"client", AccountClient},
		{"admin", AccountAdmin},
		{"", AccountClient},
		{"paralegal", AccountClient},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseAccountType(tt.input); got != tt.want {
				t.Errorf("ParseAccountType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAccountTypeLandingPath(t *testing.T) {
	tests := []struct {
		account AccountType
		want    string
	}{
		{AccountLawyer, "/dashboard"},
		{AccountClient, "/chat"},
		{AccountAdmin, "/admin"},
		{AccountType("intern"), "/"},
	}

	for _, tt := range tests {
		t.Run(string(tt.account), func(t *testing.T) {
			if got := tt.account.LandingPath(); got != tt.want {
				t.Errorf("LandingPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeActivityDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"offset with millis", "2024-03-05T09:00:00.123-05:00", "2024-03-05T14:00:00Z", false},
		{"already canonical", "2024-03-05T14:00:00Z", "2024-03-05T14:00:00Z", false},
		{"utc with nanos", "2024-12-31T23:59:59.999999999Z", "2024-12-31T23:59:59Z", false},
		{"positive offset", "2024-06-01T02:30:00+05:30", "2024-05-31T21:00:00Z", false},
		{"not a timestamp", "yesterday", "", true},
		{"date only", "2024-03-05", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeActivityDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeActivityDate(%q): expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeActivityDate(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeActivityDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocalMessageIDs(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

	id := NewLocalMessageID(now)
	if !strings.HasPrefix(id, "local_") {
		t.Fatalf("NewLocalMessageID() = %q, want local_ prefix", id)
	}
	if !IsLocalMessageID(id) {
		t.Errorf("IsLocalMessageID(%q) = false, want true", id)
	}
	if IsLocalMessageID("42") {
		t.Errorf("IsLocalMessageID(\"42\") = true, want false")
	}

	if other := NewLocalMessageID(now); other == id {
		t.Errorf("two local IDs from the same instant collided: %q", id)
	}
}

func TestChatMessageConfirm(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	msg := ChatMessage{ID: NewLocalMessageID(now), Status: StatusSent}

	if !msg.Pending() {
		t.Fatalf("freshly created message should be pending")
	}

	msg.Confirm("17")
	if msg.ID != "17" {
		t.Errorf("Confirm: ID = %q, want %q", msg.ID, "17")
	}
	if msg.Status != StatusRead {
		t.Errorf("Confirm: Status = %q, want %q", msg.Status, StatusRead)
	}
	if msg.Pending() {
		t.Errorf("confirmed message should not be pending")
	}

	// A second confirmation must not overwrite the durable identifier.
	msg.Confirm("99")
	if msg.ID != "17" {
		t.Errorf("Confirm after confirm: ID = %q, want %q", msg.ID, "17")
	}
}

func TestUserWireRawAccountType(t *testing.T) {
	tests := []struct {
		name string
		wire UserWire
		want string
	}{
		{"user_type only", UserWire{UserType: "paralegal"}, "paralegal"},
		{"accountType preferred", UserWire{AccountType: "lawyer", UserType: "client"}, "lawyer"},
		{"neither", UserWire{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wire.RawAccountType(); got != tt.want {
				t.Errorf("RawAccountType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserWireCanonical(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		body string
		want User
	}{
		{
			name: "snake_case backend shape",
			body: `{"user_id": 7, "full_name": "Ada Lovelace", "email": "a@b.com", "user_type": "lawyer", "phone_number": "555-0100", "created_at": "2023-01-01T00:00:00Z"}`,
			want: User{
				ID: "7", Name: "Ada Lovelace", Email: "a@b.com",
				AccountType: AccountLawyer, Phone: "555-0100",
				IsEmailVerified: true,
				CreatedAt:       "2023-01-01T00:00:00Z",
				UpdatedAt:       "2024-03-05T14:00:00Z",
			},
		},
		{
			name: "camelCase legacy shape",
			body: `{"id": "12", "name": "Grace Hopper", "email": "g@h.com", "accountType": "admin"}`,
			want: User{
				ID: "12", Name: "Grace Hopper", Email: "g@h.com",
				AccountType: AccountAdmin, IsEmailVerified: true,
				CreatedAt: "2024-03-05T14:00:00Z",
				UpdatedAt: "2024-03-05T14:00:00Z",
			},
		},
		{
			name: "missing type defaults to client",
			body: `{"user_id": 3, "full_name": "X", "email": "x@y.com"}`,
			want: User{
				ID: "3", Name: "X", Email: "x@y.com",
				AccountType: AccountClient, IsEmailVerified: true,
				CreatedAt: "2024-03-05T14:00:00Z",
				UpdatedAt: "2024-03-05T14:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w UserWire
			if err := json.Unmarshal([]byte(tt.body), &w); err != nil {
				t.Fatalf("unmarshal wire user: %v", err)
			}
			got := w.Canonical(now, true)
			if got != tt.want {
				t.Errorf("Canonical() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChatSessionWireCanonical(t *testing.T) {
	var w ChatSessionWire
	body := `{"id": 5, "title": "Lease review", "created_at": "2024-01-01T10:00:00Z", "is_pinned": true, "category": "case"}`
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		t.Fatalf("unmarshal wire session: %v", err)
	}

	got := w.Canonical()
	if got.ID != "5" {
		t.Errorf("ID = %q, want %q", got.ID, "5")
	}
	if got.LastMessage != "No messages yet" {
		t.Errorf("LastMessage = %q, want placeholder", got.LastMessage)
	}
	if got.Timestamp != "2024-01-01T10:00:00Z" {
		t.Errorf("Timestamp = %q, want created_at fallback", got.Timestamp)
	}
	if !got.IsPinned || got.Category != CategoryCase {
		t.Errorf("flags not mapped: %+v", got)
	}
}

func TestChatMessageWireCanonical(t *testing.T) {
	var w ChatMessageWire
	body := `{"id": 9, "text": "hello", "sender_type": "mentor", "timestamp": "2024-01-01T10:00:00Z", "editable": false, "status": "read", "is_important": true, "case_reference": "C-12"}`
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		t.Fatalf("unmarshal wire message: %v", err)
	}

	got := w.Canonical()
	want := ChatMessage{
		ID: "9", Text: "hello", Sender: SenderMentor,
		Timestamp: "2024-01-01T10:00:00Z", Status: StatusRead,
		IsImportant: true, CaseReference: "C-12",
	}
	if got != want {
		t.Errorf("Canonical() = %+v, want %+v", got, want)
	}
}
