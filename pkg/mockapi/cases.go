package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// caseRecord is a case owned by a lawyer.
type caseRecord struct {
	OwnerID int64 `json:"-"`
	model.CaseDetails
}

// dashboard projects the record into the condensed list shape.
func (c *caseRecord) dashboard() model.CaseDashboard {
	return model.CaseDashboard{
		CaseID:      c.CaseID,
		Title:       c.Title,
		CaseNumber:  c.CaseNumber,
		Priority:    c.Priority,
		Client:      c.Client,
		Court:       c.Court,
		UpdatedAt:   c.UpdatedAt,
		NextHearing: c.NextHearing,
		Status:      c.Status,
		BillingInfo: c.BillingInfo,
	}
}

func (s *Server) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	var body model.CaseCreate
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.Title == "" {
		errs = append(errs, missingField("title"))
	}
	if body.Court == "" {
		errs = append(errs, missingField("court"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	priority := body.Priority
	if priority == "" {
		priority = "medium"
	}
	affidavit := body.IsAffidavitFiled
	if affidavit == "" {
		affidavit = "notapplicable"
	}

	rec := &caseRecord{
		OwnerID: requestUserID(r),
		CaseDetails: model.CaseDetails{
			CaseID:           s.nextCaseID,
			Title:            body.Title,
			CaseNumber:       body.CaseNumber,
			Priority:         priority,
			Court:            body.Court,
			Status:           "active",
			Description:      body.Description,
			CreatedAt:        s.now().Format(time.RFC3339),
			UpdatedAt:        s.now().Format(time.RFC3339),
			AssignedLawyers:  []string{},
			BeforeJudge:      body.BeforeJudge,
			ReferredBy:       body.ReferredBy,
			SectionCategory:  body.SectionCategory,
			UnderActs:        body.UnderActs,
			UnderSections:    body.UnderSections,
			FIRPoliceStation: body.FIRPoliceStation,
			FIRNumber:        body.FIRNumber,
			FIRYear:          body.FIRYear,
			IsAffidavitFiled: affidavit,
			CourtHall:        body.CourtHall,
			FloorNo:          body.FloorNo,
			Classification:   body.Classification,
			Year:             body.Year,
			DateOfFiling:     body.DateOfFiling,
		},
	}
	if body.ClientID != nil {
		client, ok := s.clients[*body.ClientID]
		if !ok {
			writeDetail(w, http.StatusNotFound, "Client not found")
			return
		}
		rec.Client = client.ClientRecord
	}
	s.nextCaseID++
	s.cases[rec.CaseID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.caseForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Case not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleUpdateCase applies an untyped partial edit, the same loose shape the
// real backend takes from the edit-case form.
func (s *Server) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	var updates map[string]any
	if !decodeBody(w, r, &updates) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.caseForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Case not found")
		return
	}
	for key, value := range updates {
		str, _ := value.(string)
		switch key {
		case "title":
			rec.Title = str
		case "description":
			rec.Description = str
		case "status":
			rec.Status = str
		case "priority":
			rec.Priority = str
		case "court":
			rec.Court = str
		case "nextHearing":
			rec.NextHearing = str
		case "before_judge", "beforeJudge":
			rec.BeforeJudge = str
		}
	}
	rec.UpdatedAt = s.now().Format(time.RFC3339)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) caseForRequest(r *http.Request) (*caseRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.cases[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
