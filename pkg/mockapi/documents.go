package mockapi

import (
	"io"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// documentRecord keeps the metadata plus the uploaded bytes, so downloads
// round-trip the exact content.
type documentRecord struct {
	OwnerID int64  `json:"-"`
	Content []byte `json:"-"`
	model.Document
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	q := r.URL.Query()

	var caseID *int64
	if v := q.Get("case_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			caseID = &id
		}
	}
	search := strings.ToLower(q.Get("search"))
	skip, _ := strconv.Atoi(q.Get("skip"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*documentRecord{}
	for _, rec := range s.documents {
		if rec.OwnerID != userID {
			continue
		}
		if caseID != nil && (rec.CaseID == nil || *rec.CaseID != *caseID) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(rec.Title), search) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DocumentID < out[j].DocumentID })
	if skip > 0 {
		if skip > len(out) {
			skip = len(out)
		}
		out = out[skip:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeValidation(w, []fieldError{{Loc: []any{"body"}, Msg: "expected multipart form data", Type: "value_error"}})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeValidation(w, []fieldError{missingField("file")})
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		writeValidation(w, []fieldError{missingField("title")})
		return
	}
	content, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not read upload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &documentRecord{
		OwnerID: requestUserID(r),
		Content: content,
		Document: model.Document{
			DocumentID:  s.nextDocumentID,
			Title:       title,
			FileType:    strings.TrimPrefix(filepath.Ext(header.Filename), "."),
			FileSize:    int64(len(content)),
			CreatedAt:   s.now().Format(time.RFC3339),
			Description: r.FormValue("description"),
			FilePath:    "/uploads/" + header.Filename,
		},
	}
	if v := r.FormValue("case_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			rec.CaseID = &id
			if parent, ok := s.cases[id]; ok {
				rec.CaseTitle = parent.Title
			}
		}
	}
	if v := r.FormValue("client_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			rec.ClientID = &id
			if client, ok := s.clients[id]; ok {
				rec.ClientName = client.Name
			}
		}
	}
	s.nextDocumentID++
	s.documents[rec.DocumentID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.documentForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Document not found")
		return
	}
	delete(s.documents, rec.DocumentID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rec, ok := s.documentForRequest(r)
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "Document not found")
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(rec.FilePath)+"\"")
	_, _ = w.Write(rec.Content)
}

func (s *Server) documentForRequest(r *http.Request) (*documentRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.documents[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
