package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// invoiceRecord is a billing record bound to its issuer.
type invoiceRecord struct {
	OwnerID int64 `json:"-"`
	model.Invoice
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*invoiceRecord{}
	for _, rec := range s.invoices {
		if rec.OwnerID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceID < out[j].InvoiceID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var body model.InvoiceCreate
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.ClientID == "" {
		errs = append(errs, missingField("clientId"))
	}
	if body.DueDate == "" {
		errs = append(errs, missingField("dueDate"))
	}
	if len(body.Items) == 0 {
		errs = append(errs, missingField("items"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	clientID, err := strconv.ParseInt(body.ClientID, 10, 64)
	if err != nil {
		writeValidation(w, []fieldError{{Loc: []any{"body", "clientId"}, Msg: "not a valid integer", Type: "type_error.integer"}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[clientID]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Client not found")
		return
	}

	amount := body.Amount
	if amount == 0 {
		for _, item := range body.Items {
			amount += item.Amount
		}
	}
	rec := &invoiceRecord{
		OwnerID: requestUserID(r),
		Invoice: model.Invoice{
			InvoiceID:  s.nextInvoiceID,
			ClientID:   clientID,
			Amount:     amount,
			Status:     model.InvoiceDraft,
			DueDate:    body.DueDate,
			CreatedAt:  s.now().Format(time.RFC3339),
			Items:      body.Items,
			ClientName: client.Name,
		},
	}
	if body.CaseID != "" {
		if caseID, err := strconv.ParseInt(body.CaseID, 10, 64); err == nil {
			rec.CaseID = &caseID
			if parent, ok := s.cases[caseID]; ok {
				rec.CaseTitle = parent.Title
			}
		}
	}
	s.nextInvoiceID++
	s.invoices[rec.InvoiceID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		model.InvoiceCreate
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.invoiceForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invoice not found")
		return
	}
	if body.DueDate != "" {
		rec.DueDate = body.DueDate
	}
	if body.Status != "" {
		rec.Status = model.InvoiceStatus(body.Status)
	}
	if len(body.Items) > 0 {
		rec.Items = body.Items
		amount := body.Amount
		if amount == 0 {
			for _, item := range body.Items {
				amount += item.Amount
			}
		}
		rec.Amount = amount
	} else if body.Amount != 0 {
		rec.Amount = body.Amount
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.invoiceForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invoice not found")
		return
	}
	delete(s.invoices, rec.InvoiceID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) invoiceForRequest(r *http.Request) (*invoiceRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.invoices[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
