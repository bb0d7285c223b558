package mockapi

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lexmentor/lexclient/pkg/model"
)

// taskRecord is a to-do item bound to its creator.
type taskRecord struct {
	OwnerID int64 `json:"-"`
	model.Task
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	q := r.URL.Query()

	status := q.Get("status")
	var caseID *int64
	if v := q.Get("case_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			caseID = &id
		}
	}
	var isPrivate *bool
	if v := q.Get("is_private"); v != "" {
		b := v == "true"
		isPrivate = &b
	}
	skip, _ := strconv.Atoi(q.Get("skip"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*taskRecord{}
	for _, rec := range s.tasks {
		if rec.OwnerID != userID {
			continue
		}
		if status != "" && string(rec.Status) != status {
			continue
		}
		if caseID != nil && (rec.CaseID == nil || *rec.CaseID != *caseID) {
			continue
		}
		if isPrivate != nil && rec.IsPrivate != *isPrivate {
			continue
		}
		if v := q.Get("start_date"); v != "" && rec.StartDate < v {
			continue
		}
		if v := q.Get("end_date"); v != "" && rec.EndDate > v {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
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

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var body model.TaskCreate
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.Description == "" {
		errs = append(errs, missingField("description"))
	}
	if body.StartDate == "" {
		errs = append(errs, missingField("start_date"))
	}
	if body.EndDate == "" {
		errs = append(errs, missingField("end_date"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &taskRecord{
		OwnerID: requestUserID(r),
		Task: model.Task{
			TaskID:      s.nextTaskID,
			Description: body.Description,
			StartDate:   body.StartDate,
			EndDate:     body.EndDate,
			Status:      model.TaskPending,
			CaseID:      body.CaseID,
			TeamMembers: []model.TaskAssignee{},
		},
	}
	if body.IsPrivate != nil {
		rec.IsPrivate = *body.IsPrivate
	}
	if body.CaseID != nil {
		if parent, ok := s.cases[*body.CaseID]; ok {
			rec.CaseTitle = parent.Title
		}
	}
	for _, memberID := range body.TeamMemberIDs {
		member, ok := s.teamMembers[memberID]
		if !ok {
			continue
		}
		assignee := model.TaskAssignee{TeamMemberID: memberID}
		assignee.User.FullName = member.User.FullName
		rec.TeamMembers = append(rec.TeamMembers, assignee)
	}
	s.nextTaskID++
	s.tasks[rec.TaskID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		model.TaskCreate
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.taskForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
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
	if body.IsPrivate != nil {
		rec.IsPrivate = *body.IsPrivate
	}
	if body.Status != "" {
		rec.Status = model.TaskStatus(body.Status)
	}
	if body.CaseID != nil {
		rec.CaseID = body.CaseID
		if parent, ok := s.cases[*body.CaseID]; ok {
			rec.CaseTitle = parent.Title
		}
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.taskForRequest(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
	}
	delete(s.tasks, rec.TaskID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) taskForRequest(r *http.Request) (*taskRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, false
	}
	rec, ok := s.tasks[id]
	if !ok || rec.OwnerID != requestUserID(r) {
		return nil, false
	}
	return rec, true
}
