// Package interfaces defines client and service contracts for smx-mcp
package interfaces

import (
	"context"

	"github.com/standardmetrics/smx-mcp/internal/models"
)

// StandardMetricsClient provides read access to the Standard Metrics REST
// API. Every method maps to exactly one GET request; filters left at their
// zero value are omitted from the query string entirely.
type StandardMetricsClient interface {
	// ListCompanies retrieves one page of the firm's companies
	ListCompanies(ctx context.Context, params PageParams) (*models.Page[models.Company], error)

	// GetCompany retrieves a single company by ID. The ID not resolving is
	// a distinct not-found condition, not a generic transport failure.
	GetCompany(ctx context.Context, companyID string) (*models.Company, error)

	// SearchCompanies filters companies by name fragment, sector, or city
	SearchCompanies(ctx context.Context, params SearchCompaniesParams) (*models.Page[models.Company], error)

	// GetCompanyMetrics retrieves metrics for one company
	GetCompanyMetrics(ctx context.Context, companyID string, params CompanyMetricsParams) (*models.Page[models.MetricData], error)

	// GetMetricsOptions retrieves the available metric categories
	GetMetricsOptions(ctx context.Context, params MetricOptionsParams) (*models.Page[models.MetricOption], error)

	// ListBudgets retrieves budgets, optionally scoped to a company
	ListBudgets(ctx context.Context, params BudgetsParams) (*models.Page[models.Budget], error)

	// GetCustomColumns retrieves custom column values, optionally scoped to a company
	GetCustomColumns(ctx context.Context, params CustomColumnsParams) (*models.Page[models.CustomColumn], error)

	// GetCustomColumnOptions retrieves the firm's custom column definitions
	GetCustomColumnOptions(ctx context.Context, params PageParams) (*models.Page[models.CustomColumnOption], error)

	// ListDocuments retrieves document metadata
	ListDocuments(ctx context.Context, params DocumentsParams) (*models.Page[models.Document], error)

	// ListFunds retrieves one page of the firm's funds
	ListFunds(ctx context.Context, params PageParams) (*models.Page[models.Fund], error)

	// ListInformationRequests retrieves the firm's information requests
	ListInformationRequests(ctx context.Context, params InformationRequestsParams) (*models.Page[models.InformationRequest], error)

	// ListInformationReports retrieves company submissions against requests
	ListInformationReports(ctx context.Context, params InformationReportsParams) (*models.Page[models.InformationReport], error)

	// ListNotes retrieves notes, optionally scoped to a company
	ListNotes(ctx context.Context, params NotesParams) (*models.Page[models.Note], error)

	// ListUsers retrieves the firm's users
	ListUsers(ctx context.Context, params UsersParams) (*models.Page[models.User], error)
}

// PageParams selects one page of a paginated collection. The zero value
// requests page 1 with 100 items (the API defaults).
type PageParams struct {
	Page     int // 1-based page number
	PageSize int // items per page (API recommends at most 100)
}

// SearchCompaniesParams filters the company search
type SearchCompaniesParams struct {
	NameContains string // substring match on company name
	Sector       string
	City         string
	PageParams
}

// CompanyMetricsParams filters a company metrics query. Dates are ISO
// YYYY-MM-DD and travel under the "from"/"to" query keys.
type CompanyMetricsParams struct {
	FromDate       string
	ToDate         string
	Category       string
	Cadence        string // reporting frequency (daily, monthly, quarterly, ...)
	IncludeBudgets bool   // when true, sent as include_budgets=1
	PageParams
}

// MetricOptionsParams filters the metric category listing. IsStandard is
// tri-state: nil omits the filter.
type MetricOptionsParams struct {
	CategoryName string
	IsStandard   *bool
	PageParams
}

// BudgetsParams scopes a budget listing to a company by slug or ID
type BudgetsParams struct {
	CompanySlug string
	CompanyID   string
	PageParams
}

// CustomColumnsParams scopes a custom column listing to a company
type CustomColumnsParams struct {
	CompanySlug string
	CompanyID   string
	PageParams
}

// DocumentsParams filters the document listing
type DocumentsParams struct {
	CompanyID  string
	ParseState string
	FromDate   string // ISO date, sent as "from"
	ToDate     string // ISO date, sent as "to"
	Source     string
	PageParams
}

// InformationRequestsParams filters information requests by name
type InformationRequestsParams struct {
	Name string
	PageParams
}

// InformationReportsParams filters information reports
type InformationReportsParams struct {
	CompanyID            string
	InformationRequestID string
	PageParams
}

// NotesParams scopes and orders a note listing
type NotesParams struct {
	CompanySlug string
	CompanyID   string
	SortBy      string
	PageParams
}

// UsersParams filters users by email
type UsersParams struct {
	Email string
	PageParams
}
