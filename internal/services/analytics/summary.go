package analytics

import (
	"context"
	"fmt"

	"github.com/standardmetrics/smx-mcp/internal/interfaces"
	"github.com/standardmetrics/smx-mcp/internal/models"
)

// PortfolioSummary fetches the firm's companies and funds and samples recent
// metrics for the first few companies. A failed metric fetch is recorded on
// that company's entry and never aborts the rest of the summary.
func (s *Service) PortfolioSummary(ctx context.Context) (*models.PortfolioSummary, error) {
	s.logger.Info().Msg("Building portfolio summary")

	companies, err := s.client.ListCompanies(ctx, interfaces.PageParams{PageSize: fullPageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	funds, err := s.client.ListFunds(ctx, interfaces.PageParams{PageSize: fullPageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}

	sampled := companies.Results
	if len(sampled) > summaryCompanyCap {
		sampled = sampled[:summaryCompanyCap]
	}

	portfolioMetrics := make(map[string]models.CompanyMetricsEntry, len(sampled))
	for _, company := range sampled {
		if company.ID == "" {
			continue
		}

		metrics, err := s.client.GetCompanyMetrics(ctx, company.ID, interfaces.CompanyMetricsParams{
			PageParams: interfaces.PageParams{PageSize: summaryMetricsCap},
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("company", company.ID).Msg("Metrics fetch failed, recording error on entry")
			portfolioMetrics[company.Name] = models.CompanyMetricsEntry{
				CompanyInfo: company,
				Error:       err.Error(),
			}
			continue
		}

		portfolioMetrics[company.Name] = models.CompanyMetricsEntry{
			CompanyInfo:   company,
			RecentMetrics: metrics.Results,
		}
	}

	// Totals describe the sampled slice, not the whole firm
	return &models.PortfolioSummary{
		TotalCompanies:   len(sampled),
		TotalFunds:       len(funds.Results),
		Companies:        sampled,
		Funds:            funds.Results,
		PortfolioMetrics: portfolioMetrics,
	}, nil
}
