package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderMentor Sender = "mentor"
)

// MessageStatus tracks delivery progress of a message.
type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// Chat session categories.
const (
	CategoryGeneral      = "general"
	CategoryCase         = "case"
	CategoryConsultation = "consultation"
	CategoryDocument     = "document"
)

// WelcomeText is the canned mentor greeting seeded into every new session.
const WelcomeText = "Hello! I'm your legal mentor. How can I assist you with your legal matters today?"

// ChatSession is a conversation container. Messages are loaded separately.
type ChatSession struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	LastMessage string        `json:"lastMessage"`
	Timestamp   string        `json:"timestamp"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	IsPinned    bool          `json:"isPinned,omitempty"`
	IsArchived  bool          `json:"isArchived,omitempty"`
	Category    string        `json:"category,omitempty"`
}

// ChatMessage is one entry in a session. A message created locally carries a
// client-assigned "local_" identifier until the backend acknowledges it; see
// Pending and Confirm.
type ChatMessage struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	Sender        Sender        `json:"sender"`
	Timestamp     string        `json:"timestamp"`
	Editable      bool          `json:"editable"`
	Status        MessageStatus `json:"status,omitempty"`
	IsImportant   bool          `json:"isImportant,omitempty"`
	CaseReference string        `json:"caseReference,omitempty"`
}

const localIDPrefix = "local_"

// NewLocalMessageID returns a client-assigned identifier for a message the
// backend has not acknowledged yet. The prefix keeps local IDs from ever
// colliding with server-assigned numeric ones.
func NewLocalMessageID(now time.Time) string {
	return fmt.Sprintf("%s%d_%s", localIDPrefix, now.UnixMilli(), uuid.NewString()[:8])
}

// IsLocalMessageID reports whether id was assigned client-side.
func IsLocalMessageID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}

// Pending reports whether the message still carries a client-assigned ID,
// i.e. the backend has not confirmed it yet.
func (m *ChatMessage) Pending() bool {
	return IsLocalMessageID(m.ID)
}

// Confirm swaps the client-assigned ID for the server-assigned one and marks
// the message read. No-op when the message is already confirmed, so the
// reconciliation step can never regress a durable identifier.
func (m *ChatMessage) Confirm(serverID string) {
	if !m.Pending() {
		return
	}
	m.ID = serverID
	m.Status = StatusRead
}

// NewWelcomeMessage builds the mentor greeting that opens a fresh session.
// It is purely local and never submitted to the backend.
func NewWelcomeMessage(now time.Time) ChatMessage {
	return ChatMessage{
		ID:        NewLocalMessageID(now),
		Text:      WelcomeText,
		Sender:    SenderMentor,
		Timestamp: now.UTC().Format(time.RFC3339),
		Editable:  false,
		Status:    StatusRead,
	}
}

// ChatSessionWire is the backend shape of a session.
type ChatSessionWire struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	LastMessage string      `json:"lastMessage"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	IsPinned    bool        `json:"is_pinned"`
	IsArchived  bool        `json:"is_archived"`
	Category    string      `json:"category"`
}

// Canonical maps the wire session into the canonical shape. A session with
// no traffic yet gets the placeholder last message the UI expects.
func (w ChatSessionWire) Canonical() ChatSession {
	last := w.LastMessage
	if last == "" {
		last = "No messages yet"
	}
	ts := w.UpdatedAt
	if ts == "" {
		ts = w.CreatedAt
	}
	return ChatSession{
		ID:          w.ID.String(),
		Title:       w.Title,
		LastMessage: last,
		Timestamp:   ts,
		IsPinned:    w.IsPinned,
		IsArchived:  w.IsArchived,
		Category:    w.Category,
	}
}

// ChatMessageWire is the backend shape of a message.
type ChatMessageWire struct {
	ID            json.Number `json:"id"`
	Text          string      `json:"text"`
	SenderType    string      `json:"sender_type"`
	Timestamp     string      `json:"timestamp"`
	Editable      bool        `json:"editable"`
	Status        string      `json:"status"`
	IsImportant   bool        `json:"is_important"`
	CaseReference string      `json:"case_reference"`
}

// Canonical maps the wire message into the canonical shape.
func (w ChatMessageWire) Canonical() ChatMessage {
	return ChatMessage{
		ID:            w.ID.String(),
		Text:          w.Text,
		Sender:        Sender(w.SenderType),
		Timestamp:     w.Timestamp,
		Editable:      w.Editable,
		Status:        MessageStatus(w.Status),
		IsImportant:   w.IsImportant,
		CaseReference: w.CaseReference,
	}
}
