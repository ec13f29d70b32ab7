package models

// DateRange bounds a reporting window with ISO dates (inclusive)
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CompanyMetricsEntry pairs a company with its recent metrics inside a
// portfolio summary. When the metric fetch for that company failed, Error
// carries the message and RecentMetrics is empty; other companies are
// unaffected.
type CompanyMetricsEntry struct {
	CompanyInfo   Company      `json:"company_info"`
	RecentMetrics []MetricData `json:"recent_metrics,omitempty"`
	Error         string       `json:"error,omitempty"`
}

// PortfolioSummary is the assembled cross-portfolio view. TotalCompanies
// counts the sampled company slice (at most the first ten of the portfolio),
// not the full portfolio; TotalFunds counts the fetched funds page.
type PortfolioSummary struct {
	TotalCompanies   int                            `json:"total_companies"`
	TotalFunds       int                            `json:"total_funds"`
	Companies        []Company                      `json:"companies"`
	Funds            []Fund                         `json:"funds"`
	PortfolioMetrics map[string]CompanyMetricsEntry `json:"portfolio_metrics"`
}

// CompanyPerformance is a snapshot of one company over a reporting window
type CompanyPerformance struct {
	Company           Company        `json:"company"`
	Metrics           []MetricData   `json:"metrics"`
	Budgets           []Budget       `json:"budgets"`
	Notes             []Note         `json:"notes"`
	CustomColumns     []CustomColumn `json:"custom_columns"`
	PerformancePeriod string         `json:"performance_period"`
	DateRange         DateRange      `json:"date_range"`
}

// FinancialSummary groups a company's in-window metrics by category.
// LatestMetrics holds, per category, the metric with the maximum date;
// metrics without a category land in the "unknown" bucket.
type FinancialSummary struct {
	Company           Company               `json:"company"`
	Period            string                `json:"period"`
	TotalMetrics      int                   `json:"total_metrics"`
	MetricsByCategory map[string]int        `json:"metrics_by_category"`
	LatestMetrics     map[string]MetricData `json:"latest_metrics"`
	DateRange         DateRange             `json:"date_range"`
}

// NotesSummary condenses a company's notes: the total count, the five most
// recently created, and the distinct non-empty authors.
type NotesSummary struct {
	TotalNotes  int      `json:"total_notes"`
	RecentNotes []Note   `json:"recent_notes"`
	Authors     []string `json:"authors"`
}
