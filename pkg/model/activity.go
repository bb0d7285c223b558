package model

import "time"

// ActivityType classifies a case-diary entry.
type ActivityType string

const (
	ActivityHearing  ActivityType = "hearing"
	ActivityFiling   ActivityType = "filing"
	ActivityMeeting  ActivityType = "meeting"
	ActivityDeadline ActivityType = "deadline"
)

// Valid returns true if the activity type is a recognised value.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityHearing, ActivityFiling, ActivityMeeting, ActivityDeadline:
		return true
	}
	return false
}

// CaseActivity is a case-diary entry as returned by the backend.
type CaseActivity struct {
	ActivityID   int64        `json:"activity_id"`
	CaseID       int64        `json:"case_id"`
	LawyerID     int64        `json:"lawyer_id"`
	Type         ActivityType `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	ActivityDate string       `json:"activity_date"`
	Location     string       `json:"location,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
	CaseTitle    string       `json:"case_title"`
	CaseNumber   string       `json:"case_number,omitempty"`
	CaseStatus   string       `json:"case_status"`
}

// CaseActivityCreate carries a new or updated diary entry. ActivityDate must
// pass through NormalizeActivityDate before submission.
type CaseActivityCreate struct {
	CaseID       int64        `json:"case_id"`
	Type         ActivityType `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	ActivityDate string       `json:"activity_date,omitempty"`
	Location     string       `json:"location,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

// NormalizeActivityDate converts an RFC 3339 timestamp of any precision or
// offset into the exact form the backend accepts: UTC, truncated to whole
// seconds, with a literal trailing Z.
func NormalizeActivityDate(s string) (string, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", err
	}
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05") + "Z", nil
}
