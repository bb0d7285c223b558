package mockapi

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// handleDashboardStats aggregates headline numbers from the live tables.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := model.EmptyDashboardStats()
	for _, c := range s.cases {
		if c.OwnerID == userID && c.Status == "active" {
			stats.ActiveCases++
		}
	}
	for _, cl := range s.clients {
		if cl.OwnerID == userID {
			stats.TotalClients++
		}
	}
	for _, a := range s.appointments {
		if a.OwnerID == userID && a.Status == "scheduled" {
			stats.UpcomingAppointments++
		}
	}
	for _, inv := range s.invoices {
		if inv.OwnerID != userID {
			continue
		}
		if inv.Status == model.InvoicePaid {
			stats.TotalRevenue += inv.Amount
		} else {
			stats.OutstandingRevenue += inv.Amount
		}
	}
	for _, act := range s.activities {
		if act.OwnerID != userID {
			continue
		}
		stats.RecentActivities = append(stats.RecentActivities, model.RecentActivity{
			ID:     act.ActivityID,
			Type:   string(act.Type),
			Action: act.Title,
			Info:   act.CaseTitle,
			Time:   act.ActivityDate,
		})
	}
	sort.Slice(stats.RecentActivities, func(i, j int) bool {
		return stats.RecentActivities[i].Time > stats.RecentActivities[j].Time
	})
	if len(stats.RecentActivities) > 10 {
		stats.RecentActivities = stats.RecentActivities[:10]
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDashboardCases(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.CaseDashboard{}
	for _, c := range s.cases {
		if c.OwnerID != userID {
			continue
		}
		out = append(out, c.dashboard())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDashboardAppointments(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*appointmentRecord{}
	for _, a := range s.appointments {
		if a.OwnerID == userID && a.Status == "scheduled" {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDashboardClients(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*clientRecord{}
	for _, cl := range s.clients {
		if cl.OwnerID != userID {
			continue
		}
		s.refreshClientCases(cl)
		out = append(out, cl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	writeJSON(w, http.StatusOK, out)
}
