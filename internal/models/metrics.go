package models

// MetricData represents a single reported metric value for a company.
// Date is the ISO reporting date (YYYY-MM-DD); ISO dates compare
// chronologically as strings, which the aggregation layer relies on.
type MetricData struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	Name      string  `json:"name,omitempty"`
	Category  string  `json:"category,omitempty"`
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	Cadence   string  `json:"cadence,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Source    string  `json:"source,omitempty"`
	IsBudget  bool    `json:"is_budget,omitempty"`
}

// MetricOption describes an available metric category
type MetricOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	IsStandard   bool   `json:"is_standard"`
	Description  string `json:"description,omitempty"`
}
