package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/standardmetrics/smx-mcp/internal/interfaces"
	"github.com/standardmetrics/smx-mcp/internal/models"
)

// CompanyPerformance assembles the company record, its metrics over the
// reporting window, and its budgets, notes, and custom columns. The five
// fetches are independent and run concurrently; the first failure cancels
// the rest. An unresolvable company ID surfaces as a not-found error.
func (s *Service) CompanyPerformance(ctx context.Context, companyID string, months int) (*models.CompanyPerformance, error) {
	months = normalizeMonths(months)
	start, end := reportingWindow(months)

	s.logger.Info().Str("company", companyID).Int("months", months).Msg("Building company performance")

	var (
		company *models.Company
		metrics *models.Page[models.MetricData]
		budgets *models.Page[models.Budget]
		notes   *models.Page[models.Note]
		columns *models.Page[models.CustomColumn]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = s.client.GetCompany(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = s.client.GetCompanyMetrics(gctx, companyID, interfaces.CompanyMetricsParams{
			FromDate: start.Format(dateLayout),
			ToDate:   end.Format(dateLayout),
		})
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.client.ListBudgets(gctx, interfaces.BudgetsParams{CompanyID: companyID})
		return err
	})
	g.Go(func() error {
		var err error
		notes, err = s.client.ListNotes(gctx, interfaces.NotesParams{CompanyID: companyID})
		return err
	})
	g.Go(func() error {
		var err error
		columns, err = s.client.GetCustomColumns(gctx, interfaces.CustomColumnsParams{CompanyID: companyID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.CompanyPerformance{
		Company:           *company,
		Metrics:           metrics.Results,
		Budgets:           budgets.Results,
		Notes:             notes.Results,
		CustomColumns:     columns.Results,
		PerformancePeriod: fmt.Sprintf("%d months", months),
		DateRange: models.DateRange{
			Start: start.Format(dateLayout),
			End:   end.Format(dateLayout),
		},
	}, nil
}

// FinancialSummary groups a company's metrics over the reporting window by
// category and picks each category's latest data point. Metrics without a
// category land in the "unknown" bucket.
func (s *Service) FinancialSummary(ctx context.Context, companyID string, months int) (*models.FinancialSummary, error) {
	months = normalizeMonths(months)
	start, end := reportingWindow(months)

	s.logger.Info().Str("company", companyID).Int("months", months).Msg("Building financial summary")

	company, err := s.client.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.client.GetCompanyMetrics(ctx, companyID, interfaces.CompanyMetricsParams{
		FromDate: start.Format(dateLayout),
		ToDate:   end.Format(dateLayout),
	})
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int)
	latest := make(map[string]models.MetricData)
	for _, metric := range metrics.Results {
		category := metric.Category
		if category == "" {
			category = "unknown"
		}
		byCategory[category]++

		// ISO dates order lexicographically; ties keep the first fetched
		if current, ok := latest[category]; !ok || metric.Date > current.Date {
			latest[category] = metric
		}
	}

	return &models.FinancialSummary{
		Company:           *company,
		Period:            fmt.Sprintf("%d months", months),
		TotalMetrics:      len(metrics.Results),
		MetricsByCategory: byCategory,
		LatestMetrics:     latest,
		DateRange: models.DateRange{
			Start: start.Format(dateLayout),
			End:   end.Format(dateLayout),
		},
	}, nil
}
