package api

import (
	"context"
	"log/slog"

	"github.com/lexmentor/lexclient/pkg/model"
)

// The three dashboard readers degrade to empty data instead of propagating
// errors: a partial backend outage must never block the dashboard from
// rendering. Every other wrapper in this package propagates.

// GetDashboardStats returns the headline numbers, or zeroes on failure.
func (c *Client) GetDashboardStats(ctx context.Context) model.DashboardStats {
	var stats model.DashboardStats
	if err := c.getJSON(ctx, "/api/dashboard/", &stats); err != nil {
		slog.Warn("dashboard stats unavailable, rendering zeroes", "err", err)
		return model.EmptyDashboardStats()
	}
	if stats.RecentActivities == nil {
		stats.RecentActivities = []model.RecentActivity{}
	}
	return stats
}

// GetCasesForDashboard returns the dashboard case list, or empty on failure.
func (c *Client) GetCasesForDashboard(ctx context.Context) []model.CaseDashboard {
	var cases []model.CaseDashboard
	if err := c.getJSON(ctx, "/api/dashboard/cases", &cases); err != nil {
		slog.Warn("dashboard cases unavailable, rendering empty list", "err", err)
		return []model.CaseDashboard{}
	}
	if cases == nil {
		cases = []model.CaseDashboard{}
	}
	return cases
}

// GetUpcomingAppointments returns upcoming appointments, or empty on failure.
func (c *Client) GetUpcomingAppointments(ctx context.Context) []model.Appointment {
	var appts []model.Appointment
	if err := c.getJSON(ctx, "/api/dashboard/appointments", &appts); err != nil {
		slog.Warn("dashboard appointments unavailable, rendering empty list", "err", err)
		return []model.Appointment{}
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	return appts
}

// GetClients lists the practice's clients. Unlike the three readers above
// this one propagates errors; the clients page shows its own failure state.
func (c *Client) GetClients(ctx context.Context) ([]model.ClientRecord, error) {
	var clients []model.ClientRecord
	if err := c.getJSON(ctx, "/api/dashboard/clients", &clients); err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].Cases == nil {
			clients[i].Cases = []model.CaseDashboard{}
		}
		clients[i].CasesCount = len(clients[i].Cases)
	}
	return clients, nil
}
