package models

// Fund represents an investment fund managed by the firm
type Fund struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Currency    string  `json:"currency,omitempty"`
	VintageYear int     `json:"vintage_year,omitempty"`
	Size        float64 `json:"size,omitempty"`
}

// InformationRequest represents a data request sent to portfolio companies
type InformationRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
}

// InformationReport represents a company's submission against a request
type InformationReport struct {
	ID                   string `json:"id"`
	CompanyID            string `json:"company_id"`
	InformationRequestID string `json:"information_request_id"`
	SubmittedAt          string `json:"submitted_at,omitempty"`
}
