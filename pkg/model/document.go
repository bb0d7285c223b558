package model

import "io"

// Document is a stored file's metadata record.
type Document struct {
	DocumentID  int64  `json:"document_id"`
	Title       string `json:"title"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description,omitempty"`
	CaseID      *int64 `json:"case_id"`
	CaseTitle   string `json:"case_title,omitempty"`
	ClientID    *int64 `json:"client_id,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	FilePath    string `json:"file_path"`
}

// DocumentUpload carries a file plus its metadata for a multipart upload.
// Optional fields that are nil are omitted from the form entirely rather
// than sent as empty strings.
type DocumentUpload struct {
	File          io.Reader
	FileName      string
	Title         string
	Description   string
	CaseID        *int64
	AppointmentID *int64
	ClientID      *int64
}

// DocumentFilters narrows a document listing. Zero-valued fields are left
// out of the query string.
type DocumentFilters struct {
	CaseID        *int64
	AppointmentID *int64
	Search        string
	Skip          int
	Limit         int
}
