package mockapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lexmentor/lexclient/pkg/model"
)

// notificationRecord is one alert in a user's feed.
type notificationRecord struct {
	model.Notification
}

// PushNotification appends an alert to a user's feed. Tests and cmd/mockapi
// seed data through it; the handlers only read and flag.
func (s *Server) PushNotification(userID int64, title, message string, kind model.NotificationType) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.notifications[userID] = append(s.notifications[userID], &notificationRecord{
		Notification: model.Notification{
			ID:        id,
			Title:     title,
			Message:   message,
			Type:      kind,
			CreatedAt: s.now().Format(time.RFC3339),
		},
	})
	return id
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*notificationRecord{}
	out = append(out, s.notifications[requestUserID(r)]...)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReadNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.notifications[requestUserID(r)] {
		if rec.ID == id {
			rec.Read = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Notification not found")
}

func (s *Server) handleReadAllNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.notifications[requestUserID(r)] {
		rec.Read = true
	}
	w.WriteHeader(http.StatusNoContent)
}
