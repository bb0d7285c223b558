package model

// TaskStatus tracks where a task sits in its lifecycle.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskUpcoming  TaskStatus = "upcoming"
	TaskCompleted TaskStatus = "completed"
)

// TaskAssignee links a task to a team member.
type TaskAssignee struct {
	TeamMemberID int64 `json:"team_member_id"`
	User         struct {
		FullName string `json:"full_name"`
	} `json:"user"`
}

// Task is a to-do item, optionally bound to a case.
type Task struct {
	TaskID      int64          `json:"task_id"`
	Description string         `json:"description"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	IsPrivate   bool           `json:"is_private"`
	Status      TaskStatus     `json:"status"`
	CaseID      *int64         `json:"case_id,omitempty"`
	CaseTitle   string         `json:"case_title,omitempty"`
	TeamMembers []TaskAssignee `json:"team_members"`
}

// TaskCreate carries new-task form fields; also used for partial updates
// with zero fields omitted.
type TaskCreate struct {
	Description   string  `json:"description,omitempty"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	IsPrivate     *bool   `json:"is_private,omitempty"`
	CaseID        *int64  `json:"case_id,omitempty"`
	TeamMemberIDs []int64 `json:"team_member_ids,omitempty"`
}

// TaskFilters narrows a task listing.
type TaskFilters struct {
	Status    TaskStatus
	CaseID    *int64
	IsPrivate *bool
	StartDate string
	EndDate   string
	Skip      int
	Limit     int
}
