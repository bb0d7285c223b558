package model

// Appointment kinds and statuses accepted by the calendar endpoints.
const (
	AppointmentMeeting      = "meeting"
	AppointmentCourt        = "court"
	AppointmentCall         = "call"
	AppointmentConsultation = "consultation"
)

// Attendee names a person attached to an appointment.
type Attendee struct {
	Name string `json:"name"`
}

// Appointment is a calendar entry as the backend returns it.
type Appointment struct {
	AppointmentID  int64    `json:"appointment_id"`
	Title          string   `json:"title"`
	Type           string   `json:"type"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date,omitempty"`
	Description    string   `json:"description,omitempty"`
	Location       string   `json:"location"`
	AttendeesCount int      `json:"attendees_count"`
	Status         string   `json:"status"`
	Attendees      []string `json:"attendees"`
	ClientID       *int64   `json:"client_id,omitempty"`
	CaseID         *int64   `json:"case_id,omitempty"`
}

// AppointmentCreate carries the new-appointment form in the backend's
// snake_case create schema.
type AppointmentCreate struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Type        string     `json:"type"`
	ClientID    *int64     `json:"client_id,omitempty"`
	Location    string     `json:"location"`
	Attendees   []Attendee `json:"attendees,omitempty"`
}

// AppointmentUpdate carries partial appointment edits. The update schema
// predates the create one and still uses camelCase keys.
type AppointmentUpdate struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	StartDate   string     `json:"startDate,omitempty"`
	EndDate     string     `json:"endDate,omitempty"`
	Type        string     `json:"type,omitempty"`
	ClientID    string     `json:"clientId,omitempty"`
	Location    string     `json:"location,omitempty"`
	Status      string     `json:"status,omitempty"` // scheduled, completed, canceled
	Attendees   []Attendee `json:"attendees,omitempty"`
}
