package model

// InvoiceStatus tracks an invoice through billing.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Invoice is a billing record for a client, optionally tied to a case.
type Invoice struct {
	InvoiceID  int64         `json:"invoice_id"`
	ClientID   int64         `json:"client_id"`
	CaseID     *int64        `json:"case_id,omitempty"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	DueDate    string        `json:"due_date"`
	CreatedAt  string        `json:"created_at"`
	Items      []InvoiceItem `json:"items"`
	ClientName string        `json:"client_name,omitempty"`
	CaseTitle  string        `json:"case_title,omitempty"`
}

// InvoiceCreate carries the new-invoice form. The backend's create schema
// takes string IDs in camelCase, unlike the records it returns.
type InvoiceCreate struct {
	ClientID string        `json:"clientId"`
	CaseID   string        `json:"caseId,omitempty"`
	DueDate  string        `json:"dueDate"`
	Items    []InvoiceItem `json:"items"`
	Amount   float64       `json:"amount"`
}
