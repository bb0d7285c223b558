// Package mockapi is an in-memory stand-in for the LexMentor backend. It
// serves the same REST surface the SDK consumes, with the same status-code
// contract: 2xx success, 204 on deletes, 401 with a detail body when
// unauthenticated, 422 with structured field errors on validation failures.
// cmd/mockapi runs it for local development; the SDK's integration tests
// mount it on httptest servers.
package mockapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Server holds all backend state in memory. One instance per test or
// process; nothing survives a restart.
type Server struct {
	mu        sync.Mutex
	jwtSecret []byte
	now       func() time.Time

	nextUserID        int64
	nextSessionID     int64
	nextMessageID     int64
	nextCaseID        int64
	nextActivityID    int64
	nextClientID      int64
	nextDocumentID    int64
	nextTaskID        int64
	nextInvoiceID     int64
	nextAppointmentID int64
	nextMemberID      int64

	users         map[int64]*userAccount
	usersByEmail  map[string]int64
	chatSessions  map[int64]*chatSession
	chatMessages  map[int64][]chatMessage // by session ID, in order
	cases         map[int64]*caseRecord
	activities    map[int64]*activityRecord
	clients       map[int64]*clientRecord
	documents     map[int64]*documentRecord
	tasks         map[int64]*taskRecord
	invoices      map[int64]*invoiceRecord
	appointments  map[int64]*appointmentRecord
	teamMembers   map[int64]*teamMemberRecord
	notifications map[int64][]*notificationRecord // by user ID
	preferences   map[int64]map[string]any        // by user ID
}

// New creates an empty Server with a random JWT signing secret.
func New() *Server {
	return &Server{
		jwtSecret: []byte(uuid.NewString()),
		now:       func() time.Time { return time.Now().UTC() },

		nextUserID:        1,
		nextSessionID:     1,
		nextMessageID:     1,
		nextCaseID:        1,
		nextActivityID:    1,
		nextClientID:      1,
		nextDocumentID:    1,
		nextTaskID:        1,
		nextInvoiceID:     1,
		nextAppointmentID: 1,
		nextMemberID:      1,

		users:         make(map[int64]*userAccount),
		usersByEmail:  make(map[string]int64),
		chatSessions:  make(map[int64]*chatSession),
		chatMessages:  make(map[int64][]chatMessage),
		cases:         make(map[int64]*caseRecord),
		activities:    make(map[int64]*activityRecord),
		clients:       make(map[int64]*clientRecord),
		documents:     make(map[int64]*documentRecord),
		tasks:         make(map[int64]*taskRecord),
		invoices:      make(map[int64]*invoiceRecord),
		appointments:  make(map[int64]*appointmentRecord),
		teamMembers:   make(map[int64]*teamMemberRecord),
		notifications: make(map[int64][]*notificationRecord),
		preferences:   make(map[int64]map[string]any),
	}
}

// Handler returns the chi router serving the full API surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Post("/forgot-password", s.handleForgotPassword)
		r.With(s.requireAuth).Get("/users/me", s.handleMe)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Route("/api/chat", func(r chi.Router) {
			r.Get("/sessions", s.handleListChatSessions)
			r.Post("/sessions", s.handleCreateChatSession)
			r.Put("/sessions/{id}", s.handleUpdateChatSession)
			r.Delete("/sessions/{id}", s.handleDeleteChatSession)
			r.Get("/history/{id}", s.handleChatHistory)
			r.Post("/send", s.handleSendMessage)
			r.Put("/messages/{id}", s.handleUpdateChatMessage)
		})

		r.Route("/api/dashboard", func(r chi.Router) {
			r.Get("/", s.handleDashboardStats)
			r.Get("/cases", s.handleDashboardCases)
			r.Get("/appointments", s.handleDashboardAppointments)
			r.Get("/clients", s.handleDashboardClients)
		})

		r.Route("/api/cases", func(r chi.Router) {
			r.Post("/", s.handleCreateCase)
			r.Get("/{id}", s.handleGetCase)
			r.Put("/{id}", s.handleUpdateCase)
		})

		r.Route("/api/case-diary", func(r chi.Router) {
			r.Get("/", s.handleListActivities)
			r.Post("/", s.handleCreateActivity)
			r.Get("/{id}", s.handleGetActivity)
			r.Put("/{id}", s.handleUpdateActivity)
			r.Delete("/{id}", s.handleDeleteActivity)
		})

		r.Route("/api/calendar/appointments", func(r chi.Router) {
			r.Get("/", s.handleListAppointments)
			r.Post("/", s.handleCreateAppointment)
			r.Put("/{id}", s.handleUpdateAppointment)
			r.Delete("/{id}", s.handleDeleteAppointment)
		})

		r.Route("/api/team-members", func(r chi.Router) {
			r.Get("/", s.handleListTeamMembers)
			r.Post("/", s.handleCreateTeamMember)
			r.Put("/{id}", s.handleUpdateTeamMember)
			r.Delete("/{id}", s.handleDeleteTeamMember)
		})

		r.Route("/api/documents", func(r chi.Router) {
			r.Get("/", s.handleListDocuments)
			r.Post("/", s.handleUploadDocument)
			r.Delete("/{id}", s.handleDeleteDocument)
			r.Get("/{id}/download", s.handleDownloadDocument)
		})

		r.Route("/api/clients", func(r chi.Router) {
			r.Post("/", s.handleCreateClient)
			r.Get("/{id}", s.handleGetClient)
			r.Put("/{id}", s.handleUpdateClient)
			r.Delete("/{id}", s.handleDeleteClient)
		})

		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Put("/{id}", s.handleUpdateTask)
			r.Delete("/{id}", s.handleDeleteTask)
		})

		r.Route("/api/invoices", func(r chi.Router) {
			r.Get("/", s.handleListInvoices)
			r.Post("/", s.handleCreateInvoice)
			r.Put("/{id}", s.handleUpdateInvoice)
			r.Delete("/{id}", s.handleDeleteInvoice)
		})

		r.Route("/api/notifications", func(r chi.Router) {
			r.Get("/", s.handleListNotifications)
			r.Put("/read-all", s.handleReadAllNotifications)
			r.Put("/{id}/read", s.handleReadNotification)
		})

		r.Route("/api/settings", func(r chi.Router) {
			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)
			r.Put("/password", s.handleChangePassword)
			r.Get("/preferences", s.handleGetPreferences)
			r.Put("/preferences", s.handleUpdatePreferences)
		})
	})

	return r
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail emits the backend's flat error shape: {"detail": "..."}.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// fieldError is one entry of a 422 body, matching the backend's loc/msg/type
// validation shape.
type fieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// writeValidation emits a 422 with structured field errors.
func writeValidation(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": errs})
}

func missingField(name string) fieldError {
	return fieldError{Loc: []any{"body", name}, Msg: "field required", Type: "value_error.missing"}
}

// decodeBody decodes a JSON request body into v, answering 422 itself on
// malformed input. Returns false when the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeValidation(w, []fieldError{{Loc: []any{"body"}, Msg: "invalid JSON body", Type: "value_error.jsondecode"}})
		return false
	}
	return true
}
