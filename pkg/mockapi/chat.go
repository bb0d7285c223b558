package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type chatSession struct {
	ID          int64
	UserID      int64
	Title       string
	Category    string
	IsPinned    bool
	IsArchived  bool
	LastMessage string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *chatSession) wire() map[string]any {
	return map[string]any{
		"id":          c.ID,
		"title":       c.Title,
		"category":    c.Category,
		"is_pinned":   c.IsPinned,
		"is_archived": c.IsArchived,
		"lastMessage": c.LastMessage,
		"created_at":  c.CreatedAt.Format(time.RFC3339),
		"updated_at":  c.UpdatedAt.Format(time.RFC3339),
	}
}

type chatMessage struct {
	ID            int64
	SessionID     int64
	Text          string
	SenderType    string
	Timestamp     time.Time
	Editable      bool
	Status        string
	IsImportant   bool
	CaseReference string
}

func (m *chatMessage) wire() map[string]any {
	return map[string]any{
		"id":             m.ID,
		"text":           m.Text,
		"sender_type":    m.SenderType,
		"timestamp":      m.Timestamp.Format(time.RFC3339),
		"editable":       m.Editable,
		"status":         m.Status,
		"is_important":   m.IsImportant,
		"case_reference": m.CaseReference,
	}
}

func (s *Server) handleListChatSessions(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []map[string]any{}
	for _, session := range s.chatSessions {
		if session.UserID == userID {
			out = append(out, session.wire())
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateChatSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Title == "" {
		writeValidation(w, []fieldError{missingField("title")})
		return
	}
	if body.Category == "" {
		body.Category = "general"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := &chatSession{
		ID:        s.nextSessionID,
		UserID:    requestUserID(r),
		Title:     body.Title,
		Category:  body.Category,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	s.nextSessionID++
	s.chatSessions[session.ID] = session
	writeJSON(w, http.StatusCreated, session.wire())
}

func (s *Server) handleUpdateChatSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title      *string `json:"title"`
		IsPinned   *bool   `json:"isPinned"`
		IsArchived *bool   `json:"isArchived"`
		Category   *string `json:"category"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessionForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Chat session not found")
		return
	}
	if body.Title != nil {
		session.Title = *body.Title
	}
	if body.IsPinned != nil {
		session.IsPinned = *body.IsPinned
	}
	if body.IsArchived != nil {
		session.IsArchived = *body.IsArchived
	}
	if body.Category != nil {
		session.Category = *body.Category
	}
	session.UpdatedAt = s.now()
	writeJSON(w, http.StatusOK, session.wire())
}

func (s *Server) handleDeleteChatSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessionForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Chat session not found")
		return
	}
	delete(s.chatSessions, session.ID)
	delete(s.chatMessages, session.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessionForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Chat session not found")
		return
	}
	out := []map[string]any{}
	for i := range s.chatMessages[session.ID] {
		out = append(out, s.chatMessages[session.ID][i].wire())
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID int64  `json:"session_id"`
		QueryText string `json:"query_text"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.QueryText == "" {
		writeValidation(w, []fieldError{missingField("query_text")})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.chatSessions[body.SessionID]
	if !ok || session.UserID != requestUserID(r) {
		writeDetail(w, http.StatusNotFound, "Chat session not found")
		return
	}

	question := chatMessage{
		ID:         s.nextMessageID,
		SessionID:  session.ID,
		Text:       body.QueryText,
		SenderType: "user",
		Timestamp:  s.now(),
		Editable:   true,
		Status:     "read",
	}
	s.nextMessageID++

	reply := chatMessage{
		ID:         s.nextMessageID,
		SessionID:  session.ID,
		Text:       mentorReply(body.QueryText),
		SenderType: "mentor",
		Timestamp:  s.now(),
		Status:     "delivered",
	}
	s.nextMessageID++

	s.chatMessages[session.ID] = append(s.chatMessages[session.ID], question, reply)
	session.LastMessage = reply.Text
	session.UpdatedAt = s.now()

	writeJSON(w, http.StatusOK, reply.wire())
}

// mentorReply is the canned response engine. The real backend runs a legal
// reasoning model here; the mock acknowledges the question and nothing more.
func mentorReply(question string) string {
	if len(question) > 80 {
		question = question[:80] + "..."
	}
	return "I understand you're asking about: \"" + question + "\". " +
		"In a full deployment the legal mentor analyses this against your cases and applicable law."
}

func (s *Server) handleUpdateChatMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Message not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID, messages := range s.chatMessages {
		if s.chatSessions[sessionID] == nil || s.chatSessions[sessionID].UserID != requestUserID(r) {
			continue
		}
		for i := range messages {
			if messages[i].ID != id {
				continue
			}
			q := r.URL.Query()
			if v := q.Get("is_important"); v != "" {
				messages[i].IsImportant = v == "true"
			}
			if v := q.Get("status"); v != "" {
				messages[i].Status = v
			}
			writeJSON(w, http.StatusOK, messages[i].wire())
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Message not found")
}

// sessionForRequest resolves the {id} URL parameter to a session owned by
// the requesting user. Callers hold the lock.
func (s *Server) sessionForRequest(r *http.Request) (*chatSession, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	session, ok := s.chatSessions[id]
	if !ok || session.UserID != requestUserID(r) {
		return nil, false
	}
	return session, true
}
