package model

// CaseBillingInfo summarises billing figures for a case.
type CaseBillingInfo struct {
	TotalAmount float64 `json:"totalAmount"`
	HourlyRate  float64 `json:"hourlyRate"`
	TotalHours  float64 `json:"totalHours"`
}

// CaseDashboard is the condensed case shape used by list views.
type CaseDashboard struct {
	CaseID      int64           `json:"case_id"`
	Title       string          `json:"title"`
	CaseNumber  string          `json:"case_number,omitempty"`
	Priority    string          `json:"priority"`
	Client      ClientRecord    `json:"client"`
	Court       string          `json:"court"`
	UpdatedAt   string          `json:"updated_at"`
	NextHearing string          `json:"nextHearing,omitempty"`
	Status      string          `json:"status"`
	BillingInfo CaseBillingInfo `json:"billingInfo"`
}

// CaseDetails is the full case record returned by the single-case endpoints.
type CaseDetails struct {
	CaseID           int64           `json:"case_id"`
	Title            string          `json:"title"`
	CaseNumber       string          `json:"case_number,omitempty"`
	Priority         string          `json:"priority"`
	Client           ClientRecord    `json:"client"`
	Court            string          `json:"court"`
	UpdatedAt        string          `json:"updated_at"`
	NextHearing      string          `json:"nextHearing,omitempty"`
	Status           string          `json:"status"`
	BillingInfo      CaseBillingInfo `json:"billingInfo"`
	Description      string          `json:"description,omitempty"`
	CreatedAt        string          `json:"created_at"`
	AssignedLawyers  []string        `json:"assignedLawyers"`
	BeforeJudge      string          `json:"before_judge,omitempty"`
	ReferredBy       string          `json:"referred_by,omitempty"`
	SectionCategory  string          `json:"section_category,omitempty"`
	UnderActs        string          `json:"under_acts,omitempty"`
	UnderSections    string          `json:"under_sections,omitempty"`
	FIRPoliceStation string          `json:"fir_police_station,omitempty"`
	FIRNumber        string          `json:"fir_number,omitempty"`
	FIRYear          int             `json:"fir_year,omitempty"`
	IsAffidavitFiled string          `json:"is_affidavit_filed"`
	CourtHall        string          `json:"court_hall,omitempty"`
	FloorNo          string          `json:"floor_no,omitempty"`
	Classification   string          `json:"classification,omitempty"`
	Year             int             `json:"year"`
	DateOfFiling     string          `json:"date_of_filing,omitempty"`
}

// CaseCreate carries the add-case form fields. Tags mirror the backend's
// create schema, which mixes snake and camel case.
type CaseCreate struct {
	ClientID         *int64 `json:"client_id,omitempty"`
	Court            string `json:"court"`
	CaseNumber       string `json:"caseNumber,omitempty"`
	Year             int    `json:"year"`
	DateOfFiling     string `json:"dateOfFiling,omitempty"` // YYYY-MM-DD
	CourtHall        string `json:"courtHall,omitempty"`
	FloorNo          string `json:"floorNo,omitempty"`
	Classification   string `json:"classification,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	BeforeJudge      string `json:"beforeJudge,omitempty"`
	ReferredBy       string `json:"referredBy,omitempty"`
	SectionCategory  string `json:"sectionCategory,omitempty"`
	Priority         string `json:"priority,omitempty"`
	UnderActs        string `json:"underActs,omitempty"`
	UnderSections    string `json:"underSections,omitempty"`
	FIRPoliceStation string `json:"firPoliceStation,omitempty"`
	FIRNumber        string `json:"firNumber,omitempty"`
	FIRYear          int    `json:"firYear,omitempty"`
	IsAffidavitFiled string `json:"isAffidavitFiled,omitempty"` // yes, no, notapplicable
}
