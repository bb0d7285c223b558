package mockapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// teamMemberRecord is a colleague entry bound to the practice owner. Each
// member gets a synthetic user ID in a range far above real accounts so the
// two namespaces never collide.
type teamMemberRecord struct {
	OwnerID int64 `json:"-"`
	model.TeamMember
}

func (s *Server) handleListTeamMembers(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*teamMemberRecord{}
	for _, rec := range s.teamMembers {
		if rec.OwnerID == userID {
			out = append(out, rec)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var body model.TeamMemberCreate
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.FirstName == "" {
		errs = append(errs, missingField("first_name"))
	}
	if body.Email == "" {
		errs = append(errs, missingField("email"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fullName := strings.TrimSpace(body.FirstName + " " + body.LastName)
	rec := &teamMemberRecord{
		OwnerID: requestUserID(r),
		TeamMember: model.TeamMember{
			TeamMemberID: s.nextMemberID,
			UserID:       s.nextMemberID + 100000,
			Designation:  body.Designation,
			City:         body.City,
			Mobile:       body.Mobile,
			CreatedAt:    s.now().Format(time.RFC3339),
			UpdatedAt:    s.now().Format(time.RFC3339),
			User: model.TeamMemberUser{
				UserID:      s.nextMemberID + 100000,
				Email:       body.Email,
				FullName:    fullName,
				PhoneNumber: body.Mobile,
			},
		},
	}
	s.nextMemberID++
	s.teamMembers[rec.TeamMemberID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var body model.TeamMemberUpdate
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.teamMemberForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Team member not found")
		return
	}
	if body.Designation != "" {
		rec.Designation = body.Designation
	}
	if body.City != "" {
		rec.City = body.City
	}
	if body.Mobile != "" {
		rec.Mobile = body.Mobile
		rec.User.PhoneNumber = body.Mobile
	}
	rec.UpdatedAt = s.now().Format(time.RFC3339)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.teamMemberForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Team member not found")
		return
	}
	delete(s.teamMembers, rec.TeamMemberID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) teamMemberForRequest(r *http.Request) (*teamMemberRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.teamMembers[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
