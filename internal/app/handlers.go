package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/standardmetrics/smx-mcp/internal/clients/standardmetrics"
	"github.com/standardmetrics/smx-mcp/internal/common"
	"github.com/standardmetrics/smx-mcp/internal/interfaces"
)

// pageParams extracts the shared pagination arguments
func pageParams(request mcp.CallToolRequest) interfaces.PageParams {
	return interfaces.PageParams{
		Page:     request.GetInt("page", 1),
		PageSize: request.GetInt("page_size", 100),
	}
}

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Standard Metrics MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.Version, common.Build, common.GitCommit)
		return textResult(result), nil
	}
}

// handleListCompanies implements the list_companies tool
func handleListCompanies(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListCompanies(ctx, pageParams(request))
		if err != nil {
			logger.Error().Err(err).Msg("Company list failed")
			return errorResult(fmt.Sprintf("Company list error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleGetCompany implements the get_company tool
func handleGetCompany(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return errorResult("Error: company_id parameter is required"), nil
		}

		company, err := client.GetCompany(ctx, companyID)
		if err != nil {
			var notFound *standardmetrics.NotFoundError
			if errors.As(err, &notFound) {
				return errorResult(fmt.Sprintf("Error: %v", notFound)), nil
			}
			logger.Error().Err(err).Str("company", companyID).Msg("Company fetch failed")
			return errorResult(fmt.Sprintf("Company error: %v", err)), nil
		}

		return jsonResult(company)
	}
}

// handleSearchCompanies implements the search_companies tool
func handleSearchCompanies(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.SearchCompanies(ctx, interfaces.SearchCompaniesParams{
			PageParams:   pageParams(request),
			NameContains: request.GetString("name_contains", ""),
			Sector:       request.GetString("sector", ""),
			City:         request.GetString("city", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Company search failed")
			return errorResult(fmt.Sprintf("Search error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleGetCompanyMetrics implements the get_company_metrics tool
func handleGetCompanyMetrics(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return errorResult("Error: company_id parameter is required"), nil
		}

		page, err := client.GetCompanyMetrics(ctx, companyID, interfaces.CompanyMetricsParams{
			PageParams:     pageParams(request),
			FromDate:       request.GetString("from_date", ""),
			ToDate:         request.GetString("to_date", ""),
			Category:       request.GetString("category", ""),
			Cadence:        request.GetString("cadence", ""),
			IncludeBudgets: request.GetBool("include_budgets", false),
		})
		if err != nil {
			logger.Error().Err(err).Str("company", companyID).Msg("Metrics fetch failed")
			return errorResult(fmt.Sprintf("Metrics error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleGetMetricsOptions implements the get_metrics_options tool
func handleGetMetricsOptions(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := interfaces.MetricOptionsParams{
			PageParams:   pageParams(request),
			CategoryName: request.GetString("category_name", ""),
		}

		// Absent and false are different filters here
		if raw, ok := request.GetArguments()["is_standard"]; ok {
			if b, ok := raw.(bool); ok {
				params.IsStandard = &b
			}
		}

		page, err := client.GetMetricsOptions(ctx, params)
		if err != nil {
			logger.Error().Err(err).Msg("Metric options fetch failed")
			return errorResult(fmt.Sprintf("Metric options error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleListBudgets implements the list_budgets tool
func handleListBudgets(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListBudgets(ctx, interfaces.BudgetsParams{
			PageParams:  pageParams(request),
			CompanySlug: request.GetString("company_slug", ""),
			CompanyID:   request.GetString("company_id", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Budget list failed")
			return errorResult(fmt.Sprintf("Budget error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleGetCustomColumns implements the get_custom_columns tool
func handleGetCustomColumns(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.GetCustomColumns(ctx, interfaces.CustomColumnsParams{
			PageParams:  pageParams(request),
			CompanySlug: request.GetString("company_slug", ""),
			CompanyID:   request.GetString("company_id", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Custom column fetch failed")
			return errorResult(fmt.Sprintf("Custom column error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleGetCustomColumnOptions implements the get_custom_column_options tool
func handleGetCustomColumnOptions(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.GetCustomColumnOptions(ctx, pageParams(request))
		if err != nil {
			logger.Error().Err(err).Msg("Custom column options fetch failed")
			return errorResult(fmt.Sprintf("Custom column options error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleListDocuments implements the list_documents tool
func handleListDocuments(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListDocuments(ctx, interfaces.DocumentsParams{
			PageParams: pageParams(request),
			CompanyID:  request.GetString("company_id", ""),
			ParseState: request.GetString("parse_state", ""),
			FromDate:   request.GetString("from_date", ""),
			ToDate:     request.GetString("to_date", ""),
			Source:     request.GetString("source", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Document list failed")
			return errorResult(fmt.Sprintf("Document error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleListFunds implements the list_funds tool
func handleListFunds(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListFunds(ctx, pageParams(request))
		if err != nil {
			logger.Error().Err(err).Msg("Fund list failed")
			return errorResult(fmt.Sprintf("Fund error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleListInformationRequests implements the list_information_requests tool
func handleListInformationRequests(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListInformationRequests(ctx, interfaces.InformationRequestsParams{
			PageParams: pageParams(request),
			Name:       request.GetString("name", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Information request list failed")
			return errorResult(fmt.Sprintf("Information request error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleListInformationReports implements the list_information_reports tool
func handleListInformationReports(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListInformationReports(ctx, interfaces.InformationReportsParams{
			PageParams:           pageParams(request),
			CompanyID:            request.GetString("company_id", ""),
			InformationRequestID: request.GetString("information_request_id", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Information report list failed")
			return errorResult(fmt.Sprintf("Information report error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleListNotes implements the list_notes tool
func handleListNotes(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListNotes(ctx, interfaces.NotesParams{
			PageParams:  pageParams(request),
			CompanySlug: request.GetString("company_slug", ""),
			CompanyID:   request.GetString("company_id", ""),
			SortBy:      request.GetString("sort_by", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Note list failed")
			return errorResult(fmt.Sprintf("Note error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleListUsers implements the list_users tool
func handleListUsers(client interfaces.StandardMetricsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := client.ListUsers(ctx, interfaces.UsersParams{
			PageParams: pageParams(request),
			Email:      request.GetString("email", ""),
		})
		if err != nil {
			logger.Error().Err(err).Msg("User list failed")
			return errorResult(fmt.Sprintf("User error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

// handleGetPortfolioSummary implements the get_portfolio_summary tool
func handleGetPortfolioSummary(svc interfaces.AnalyticsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.PortfolioSummary(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Portfolio summary failed")
			return errorResult(fmt.Sprintf("Portfolio summary error: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

// handleGetCompanyPerformance implements the get_company_performance tool
func handleGetCompanyPerformance(svc interfaces.AnalyticsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return errorResult("Error: company_id parameter is required"), nil
		}

		months := request.GetInt("months", 12)

		perf, err := svc.CompanyPerformance(ctx, companyID, months)
		if err != nil {
			var notFound *standardmetrics.NotFoundError
			if errors.As(err, &notFound) {
				return errorResult(fmt.Sprintf("Error: %v", notFound)), nil
			}
			logger.Error().Err(err).Str("company", companyID).Msg("Company performance failed")
			return errorResult(fmt.Sprintf("Performance error: %v", err)), nil
		}
		return jsonResult(perf)
	}
}

// handleGetCompanyFinancialSummary implements the get_company_financial_summary tool
func handleGetCompanyFinancialSummary(svc interfaces.AnalyticsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return errorResult("Error: company_id parameter is required"), nil
		}

		months := request.GetInt("months", 12)

		summary, err := svc.FinancialSummary(ctx, companyID, months)
		if err != nil {
			var notFound *standardmetrics.NotFoundError
			if errors.As(err, &notFound) {
				return errorResult(fmt.Sprintf("Error: %v", notFound)), nil
			}
			logger.Error().Err(err).Str("company", companyID).Msg("Financial summary failed")
			return errorResult(fmt.Sprintf("Financial summary error: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

// handleFindCompanyByName implements the find_company_by_name tool
func handleFindCompanyByName(svc interfaces.AnalyticsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil || name == "" {
			return errorResult("Error: name parameter is required"), nil
		}

		company, err := svc.FindCompanyByName(ctx, name)
		if err != nil {
			logger.Error().Err(err).Str("name", name).Msg("Company name lookup failed")
			return errorResult(fmt.Sprintf("Lookup error: %v", err)), nil
		}
		if company == nil {
			return textResult(fmt.Sprintf("No company found with name %q", name)), nil
		}
		return jsonResult(company)
	}
}

// handleGetCompanyRecentMetrics implements the get_company_recent_metrics tool
func handleGetCompanyRecentMetrics(svc interfaces.AnalyticsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return errorResult("Error: company_id parameter is required"), nil
		}

		category := request.GetString("category", "")
		limit := request.GetInt("limit", 10)

		metrics, err := svc.CompanyRecentMetrics(ctx, companyID, category, limit)
		if err != nil {
			logger.Error().Err(err).Str("company", companyID).Msg("Recent metrics fetch failed")
			return errorResult(fmt.Sprintf("Recent metrics error: %v", err)), nil
		}
		return jsonResult(metrics)
	}
}

// handleGetCompaniesBySector implements the get_companies_by_sector tool
func handleGetCompaniesBySector(svc interfaces.AnalyticsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sector, err := request.RequireString("sector")
		if err != nil || sector == "" {
			return errorResult("Error: sector parameter is required"), nil
		}

		companies, err := svc.CompaniesBySector(ctx, sector)
		if err != nil {
			logger.Error().Err(err).Str("sector", sector).Msg("Sector lookup failed")
			return errorResult(fmt.Sprintf("Sector error: %v", err)), nil
		}
		return jsonResult(companies)
	}
}

// handleGetCompanyNotesSummary implements the get_company_notes_summary tool
func handleGetCompanyNotesSummary(svc interfaces.AnalyticsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return errorResult("Error: company_id parameter is required"), nil
		}

		summary, err := svc.CompanyNotesSummary(ctx, companyID)
		if err != nil {
			logger.Error().Err(err).Str("company", companyID).Msg("Notes summary failed")
			return errorResult(fmt.Sprintf("Notes summary error: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult renders v as indented JSON text content
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error: failed to encode result: %v", err)), nil
	}
	return textResult(string(data)), nil
}
