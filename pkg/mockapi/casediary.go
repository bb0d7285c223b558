package mockapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// activityRecord is a case-diary entry bound to the lawyer who wrote it.
type activityRecord struct {
	OwnerID int64 `json:"-"`
	model.CaseActivity
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	q := r.URL.Query()

	var caseID int64
	if v := q.Get("case_id"); v != "" {
		caseID, _ = strconv.ParseInt(v, 10, 64)
	}
	activityType := q.Get("activity_type")
	search := strings.ToLower(q.Get("search_term"))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*activityRecord{}
	for _, rec := range s.activities {
		if rec.OwnerID != userID {
			continue
		}
		if caseID != 0 && rec.CaseID != caseID {
			continue
		}
		if activityType != "" && string(rec.Type) != activityType {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Title), search) &&
			!strings.Contains(strings.ToLower(rec.Description), search) {
			continue
		}
		out = append(out, rec)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	var body model.CaseActivityCreate
	if !decodeBody(w, r, &body) {
		return
	}

	errs := validateActivity(body)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := s.cases[body.CaseID]
	if !ok || parent.OwnerID != requestUserID(r) {
		writeDetail(w, http.StatusNotFound, "Case not found")
		return
	}

	rec := &activityRecord{
		OwnerID: requestUserID(r),
		CaseActivity: model.CaseActivity{
			ActivityID:   s.nextActivityID,
			CaseID:       body.CaseID,
			LawyerID:     requestUserID(r),
			Type:         body.Type,
			Title:        body.Title,
			Description:  body.Description,
			ActivityDate: body.ActivityDate,
			Location:     body.Location,
			Notes:        body.Notes,
			CreatedAt:    s.now().Format(time.RFC3339),
			UpdatedAt:    s.now().Format(time.RFC3339),
			CaseTitle:    parent.Title,
			CaseNumber:   parent.CaseNumber,
			CaseStatus:   parent.Status,
		},
	}
	s.nextActivityID++
	s.activities[rec.ActivityID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.activityForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Activity not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	var body model.CaseActivityCreate
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.activityForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Activity not found")
		return
	}
	if body.Type != "" {
		if !body.Type.Valid() {
			writeValidation(w, []fieldError{{Loc: []any{"body", "type"}, Msg: "unknown activity type", Type: "value_error"}})
			return
		}
		rec.Type = body.Type
	}
	if body.Title != "" {
		rec.Title = body.Title
	}
	if body.Description != "" {
		rec.Description = body.Description
	}
	if body.ActivityDate != "" {
		if _, err := time.Parse(time.RFC3339, body.ActivityDate); err != nil {
			writeValidation(w, []fieldError{{Loc: []any{"body", "activity_date"}, Msg: "invalid datetime format", Type: "value_error.datetime"}})
			return
		}
		rec.ActivityDate = body.ActivityDate
	}
	if body.Location != "" {
		rec.Location = body.Location
	}
	if body.Notes != "" {
		rec.Notes = body.Notes
	}
	rec.UpdatedAt = s.now().Format(time.RFC3339)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.activityForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Activity not found")
		return
	}
	delete(s.activities, rec.ActivityID)
	w.WriteHeader(http.StatusNoContent)
}

func validateActivity(body model.CaseActivityCreate) []fieldError {
	var errs []fieldError
	if body.CaseID == 0 {
		errs = append(errs, missingField("case_id"))
	}
	if body.Title == "" {
		errs = append(errs, missingField("title"))
	}
	if !body.Type.Valid() {
		errs = append(errs, fieldError{Loc: []any{"body", "type"}, Msg: "unknown activity type", Type: "value_error"})
	}
	if body.ActivityDate == "" {
		errs = append(errs, missingField("activity_date"))
	} else if _, err := time.Parse(time.RFC3339, body.ActivityDate); err != nil {
		errs = append(errs, fieldError{Loc: []any{"body", "activity_date"}, Msg: "invalid datetime format", Type: "value_error.datetime"})
	}
	return errs
}

func (s *Server) activityForRequest(r *http.Request) (*activityRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.activities[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
