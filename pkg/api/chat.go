package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetChatSessions lists the user's conversations, newest first.
func (c *Client) GetChatSessions(ctx context.Context) ([]model.ChatSession, error) {
	var wire []model.ChatSessionWire
	if err := c.getJSON(ctx, "/api/chat/sessions", &wire); err != nil {
		return nil, err
	}
	sessions := make([]model.ChatSession, 0, len(wire))
	for _, w := range wire {
		sessions = append(sessions, w.Canonical())
	}
	return sessions, nil
}

// GetChatHistory returns the ordered messages of one session.
func (c *Client) GetChatHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	var wire []model.ChatMessageWire
	if err := c.getJSON(ctx, "/api/chat/history/"+url.PathEscape(sessionID), &wire); err != nil {
		return nil, err
	}
	messages := make([]model.ChatMessage, 0, len(wire))
	for _, w := range wire {
		messages = append(messages, w.Canonical())
	}
	return messages, nil
}

// CreateChatSession opens a new conversation. Empty title and category fall
// back to the defaults every new consultation starts with, and the returned
// session is seeded with a single local mentor greeting so the conversation
// is never blank before the first user message.
func (c *Client) CreateChatSession(ctx context.Context, title, category string) (*model.ChatSession, error) {
	if title == "" {
		title = "New Legal Consultation"
	}
	if category == "" {
		category = model.CategoryGeneral
	}

	payload := map[string]string{"title": title, "category": category}
	var wire model.ChatSessionWire
	if err := c.sendJSON(ctx, http.MethodPost, "/api/chat/sessions", payload, &wire); err != nil {
		return nil, err
	}

	session := wire.Canonical()
	session.Messages = []model.ChatMessage{model.NewWelcomeMessage(time.Now())}
	return &session, nil
}

// ChatSessionUpdate carries partial session edits.
type ChatSessionUpdate struct {
	Title      *string `json:"title,omitempty"`
	IsPinned   *bool   `json:"isPinned,omitempty"`
	IsArchived *bool   `json:"isArchived,omitempty"`
	Category   *string `json:"category,omitempty"`
}

// UpdateChatSession renames, pins, archives, or recategorises a session.
func (c *Client) UpdateChatSession(ctx context.Context, sessionID string, updates ChatSessionUpdate) (*model.ChatSession, error) {
	var wire model.ChatSessionWire
	if err := c.sendJSON(ctx, http.MethodPut, "/api/chat/sessions/"+url.PathEscape(sessionID), updates, &wire); err != nil {
		return nil, err
	}
	session := wire.Canonical()
	return &session, nil
}

// DeleteChatSession removes a session. The backend answers 204.
func (c *Client) DeleteChatSession(ctx context.Context, sessionID string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/chat/sessions/"+url.PathEscape(sessionID), nil, nil)
}

// SendMessage submits a user question and returns the mentor's reply.
func (c *Client) SendMessage(ctx context.Context, sessionID, question string) (*model.ChatMessage, error) {
	id, err := strconv.ParseInt(sessionID, 10, 64)
	if err != nil {
		return nil, &APIError{Status: http.StatusBadRequest, Message: "invalid session id " + sessionID}
	}
	payload := map[string]any{"session_id": id, "query_text": question}

	var wire model.ChatMessageWire
	if err := c.sendJSON(ctx, http.MethodPost, "/api/chat/send", payload, &wire); err != nil {
		return nil, err
	}
	msg := wire.Canonical()
	return &msg, nil
}

// ChatMessageUpdate carries the mutable message flags.
type ChatMessageUpdate struct {
	IsImportant *bool
	Status      *model.MessageStatus
}

// UpdateChatMessage flips a message's importance or delivery status. The
// backend takes these as query parameters, not a body.
func (c *Client) UpdateChatMessage(ctx context.Context, messageID string, updates ChatMessageUpdate) (*model.ChatMessage, error) {
	params := url.Values{}
	if updates.IsImportant != nil {
		params.Set("is_important", strconv.FormatBool(*updates.IsImportant))
	}
	if updates.Status != nil {
		params.Set("status", string(*updates.Status))
	}

	path := "/api/chat/messages/" + url.PathEscape(messageID) + "?" + params.Encode()
	var wire model.ChatMessageWire
	if err := c.sendJSON(ctx, http.MethodPut, path, nil, &wire); err != nil {
		return nil, err
	}
	msg := wire.Canonical()
	return &msg, nil
}
