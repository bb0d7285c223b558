package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// clientRecord binds a client to the lawyer who created it. The embedded
// model carries the wire tags, so records marshal directly.
type clientRecord struct {
	OwnerID int64 `json:"-"`
	model.ClientRecord
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var body model.ClientCreate
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.Name == "" {
		errs = append(errs, missingField("name"))
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

	rec := &clientRecord{
		OwnerID: requestUserID(r),
		ClientRecord: model.ClientRecord{
			ClientID:  s.nextClientID,
			Name:      body.Name,
			Email:     body.Email,
			Phone:     body.Phone,
			Address:   body.Address,
			Cases:     []model.CaseDashboard{},
			DateAdded: s.now().Format(time.RFC3339),
		},
	}
	if body.Company != nil {
		rec.Company = *body.Company
	}
	s.nextClientID++
	s.clients[rec.ClientID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.clientForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Client not found")
		return
	}
	s.refreshClientCases(rec)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var body model.ClientUpdate
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.clientForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Client not found")
		return
	}
	if body.Name != "" {
		rec.Name = body.Name
	}
	if body.Email != "" {
		rec.Email = body.Email
	}
	if body.Phone != "" {
		rec.Phone = body.Phone
	}
	if body.Address != "" {
		rec.Address = body.Address
	}
	if body.Company != "" {
		rec.Company = body.Company
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.clientForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Client not found")
		return
	}
	delete(s.clients, rec.ClientID)
	w.WriteHeader(http.StatusNoContent)
}

// refreshClientCases recomputes the embedded case list from the case table.
// Callers hold the lock.
func (s *Server) refreshClientCases(rec *clientRecord) {
	rec.Cases = []model.CaseDashboard{}
	rec.TotalBilled = 0
	for _, c := range s.cases {
		if c.Client.ClientID == rec.ClientID {
			rec.Cases = append(rec.Cases, c.dashboard())
			rec.TotalBilled += c.BillingInfo.TotalAmount
		}
	}
	rec.CasesCount = len(rec.Cases)
}

func (s *Server) clientForRequest(r *http.Request) (*clientRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.clients[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
