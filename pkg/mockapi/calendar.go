package mockapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// appointmentRecord is a calendar entry bound to its owner.
type appointmentRecord struct {
	OwnerID int64 `json:"-"`
	model.Appointment
}

func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*appointmentRecord{}
	for _, rec := range s.appointments {
		if rec.OwnerID == userID {
			out = append(out, rec)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var body model.AppointmentCreate
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.Title == "" {
		errs = append(errs, missingField("title"))
	}
	if body.StartDate == "" {
		errs = append(errs, missingField("start_date"))
	}
	if body.Type == "" {
		errs = append(errs, missingField("type"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(body.Attendees))
	for _, a := range body.Attendees {
		names = append(names, a.Name)
	}
	rec := &appointmentRecord{
		OwnerID: requestUserID(r),
		Appointment: model.Appointment{
			AppointmentID:  s.nextAppointmentID,
			Title:          body.Title,
			Type:           body.Type,
			StartDate:      body.StartDate,
			EndDate:        body.EndDate,
			Description:    body.Description,
			Location:       body.Location,
			AttendeesCount: len(names),
			Status:         "scheduled",
			Attendees:      names,
			ClientID:       body.ClientID,
		},
	}
	s.nextAppointmentID++
	s.appointments[rec.AppointmentID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var body model.AppointmentUpdate
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.appointmentForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Appointment not found")
		return
	}
	if body.Title != "" {
		rec.Title = body.Title
	}
	if body.Description != "" {
		rec.Description = body.Description
	}
	if body.StartDate != "" {
		rec.StartDate = body.StartDate
	}
	if body.EndDate != "" {
		rec.EndDate = body.EndDate
	}
	if body.Type != "" {
		rec.Type = body.Type
	}
	if body.Location != "" {
		rec.Location = body.Location
	}
	if body.Status != "" {
		rec.Status = body.Status
	}
	if body.ClientID != "" {
		if id, err := strconv.ParseInt(body.ClientID, 10, 64); err == nil {
			rec.ClientID = &id
		}
	}
	if body.Attendees != nil {
		names := make([]string, 0, len(body.Attendees))
		for _, a := range body.Attendees {
			names = append(names, a.Name)
		}
		rec.Attendees = names
		rec.AttendeesCount = len(names)
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.appointmentForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Appointment not found")
		return
	}
	delete(s.appointments, rec.AppointmentID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) appointmentForRequest(r *http.Request) (*appointmentRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.appointments[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
