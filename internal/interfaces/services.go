package interfaces

import (
	"context"

	"github.com/standardmetrics/smx-mcp/internal/models"
)

// AnalyticsService composes Standard Metrics API calls into derived views.
// Operations taking a months window treat months <= 0 as the 12-month
// default; the window is computed as months*30 days back from now.
type AnalyticsService interface {
	// PortfolioSummary assembles companies, funds, and recent metrics for
	// up to the first ten companies. A single company's metric fetch
	// failing is recorded in that company's entry and never aborts the
	// rest.
	PortfolioSummary(ctx context.Context) (*models.PortfolioSummary, error)

	// CompanyPerformance gathers the company record, metrics, budgets,
	// notes, and custom columns for one company over the window
	CompanyPerformance(ctx context.Context, companyID string, months int) (*models.CompanyPerformance, error)

	// FinancialSummary groups the company's in-window metrics by category
	// and selects the latest metric per category
	FinancialSummary(ctx context.Context, companyID string, months int) (*models.FinancialSummary, error)

	// FindCompanyByName resolves a company by exact, case-insensitive name
	// match over the search results. Returns (nil, nil) when no company
	// matches exactly.
	FindCompanyByName(ctx context.Context, name string) (*models.Company, error)

	// CompanyRecentMetrics returns at most limit metrics ordered newest
	// first, optionally filtered by category
	CompanyRecentMetrics(ctx context.Context, companyID, category string, limit int) ([]models.MetricData, error)

	// CompaniesBySector lists companies in the given sector
	CompaniesBySector(ctx context.Context, sector string) ([]models.Company, error)

	// CompanyNotesSummary condenses a company's notes into totals, the
	// five most recent, and the distinct authors
	CompanyNotesSummary(ctx context.Context, companyID string) (*models.NotesSummary, error)
}
