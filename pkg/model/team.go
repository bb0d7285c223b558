package model

// TeamMemberUser is the user account backing a team member.
type TeamMemberUser struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// TeamMember is a colleague within the practice.
type TeamMember struct {
	TeamMemberID int64          `json:"team_member_id"`
	UserID       int64          `json:"user_id"`
	Designation  string         `json:"designation"`
	City         string         `json:"city"`
	Mobile       string         `json:"mobile"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
	User         TeamMemberUser `json:"user"`
}

// TeamMemberCreate carries the add-member form in the backend's schema.
type TeamMemberCreate struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Designation string `json:"designation"`
	City        string `json:"city"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
}

// TeamMemberUpdate carries partial member edits.
type TeamMemberUpdate struct {
	Designation string `json:"designation,omitempty"`
	City        string `json:"city,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
}
