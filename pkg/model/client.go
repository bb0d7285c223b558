package model

// ClientRecord is a law-firm client as the backend returns it. JSON tags
// mirror the backend shape directly; the record passes through unchanged.
type ClientRecord struct {
	ClientID    int64           `json:"client_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Address     string          `json:"address,omitempty"`
	Company     string          `json:"company,omitempty"`
	TotalBilled float64         `json:"totalBilled"`
	CasesCount  int             `json:"cases_count"`
	Cases       []CaseDashboard `json:"cases"`
	DateAdded   string          `json:"dateAdded,omitempty"`
}

// ClientCreate carries the fields of the new-client form. Company is a
// pointer so an unset value serialises as null, which the backend requires
// in place of an absent key.
type ClientCreate struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Company *string `json:"company"`
}

// ClientUpdate carries partial client edits; zero fields are omitted.
type ClientUpdate struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Company string `json:"company,omitempty"`
}
