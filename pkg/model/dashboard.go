package model

// RecentActivity is one row of the dashboard activity feed.
type RecentActivity struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Action string `json:"action"`
	Info   string `json:"info"`
	Time   string `json:"time"`
}

// DashboardStats aggregates the headline numbers for the dashboard page.
type DashboardStats struct {
	ActiveCases          int              `json:"activeCases"`
	TotalClients         int              `json:"totalClients"`
	UpcomingAppointments int              `json:"upcomingAppointments"`
	TotalRevenue         float64          `json:"totalRevenue"`
	OutstandingRevenue   float64          `json:"outstandingRevenue"`
	RecentActivities     []RecentActivity `json:"recentActivities"`
}

// EmptyDashboardStats is the fallback rendered when the stats endpoint is
// unreachable; the dashboard must still draw with zeroes.
func EmptyDashboardStats() DashboardStats {
	return DashboardStats{RecentActivities: []RecentActivity{}}
}
