package models

// Document represents an uploaded company document and its parse lifecycle
type Document struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id,omitempty"`
	Name       string `json:"name"`
	Source     string `json:"source,omitempty"`
	ParseState string `json:"parse_state,omitempty"`
	UploadedAt string `json:"uploaded_at,omitempty"`
}
