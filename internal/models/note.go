package models

// Note represents investor commentary attached to a company.
// CreatedAt may be absent in older records; consumers treat the empty
// string as "oldest" when ordering by recency.
type Note struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
