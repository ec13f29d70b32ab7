package models

// Budget represents a company budget. Company holds the owning company ID
// (the API returns it under the "company" key).
type Budget struct {
	ID        string `json:"id"`
	Company   string `json:"company"`
	Name      string `json:"name"`
	Year      int    `json:"year,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CustomColumn holds one firm-defined column value for a company
type CustomColumn struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Value     string `json:"value,omitempty"`
}

// CustomColumnOption describes a firm-defined column and its allowed values
type CustomColumnOption struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}
