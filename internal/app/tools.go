package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// withPagination appends the standard page/page_size parameters shared by
// every list tool.
func withPagination(itemName string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of "+itemName+" per page (default: 100)"),
		),
	}
}

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Standard Metrics MCP server version and status. Use this to verify connectivity."),
	)
}

// createListCompaniesTool returns the list_companies tool definition
func createListCompaniesTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all companies associated with your firm."),
	}
	opts = append(opts, withPagination("companies")...)
	return mcp.NewTool("list_companies", opts...)
}

// createGetCompanyTool returns the get_company tool definition
func createGetCompanyTool() mcp.Tool {
	return mcp.NewTool("get_company",
		mcp.WithDescription("Get a specific company by ID."),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("The unique identifier for the company"),
		),
	)
}

// createSearchCompaniesTool returns the search_companies tool definition
func createSearchCompaniesTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Search companies by name fragment, sector, or city."),
		mcp.WithString("name_contains",
			mcp.Description("Filter companies containing this text in their name"),
		),
		mcp.WithString("sector",
			mcp.Description("Filter companies by sector"),
		),
		mcp.WithString("city",
			mcp.Description("Filter companies by city"),
		),
	}
	opts = append(opts, withPagination("companies")...)
	return mcp.NewTool("search_companies", opts...)
}

// createGetCompanyMetricsTool returns the get_company_metrics tool definition
func createGetCompanyMetricsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get metrics for a specific company."),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("The unique identifier for the company"),
		),
		mcp.WithString("from_date",
			mcp.Description("Start date for metrics (YYYY-MM-DD format)"),
		),
		mcp.WithString("to_date",
			mcp.Description("End date for metrics (YYYY-MM-DD format)"),
		),
		mcp.WithString("category",
			mcp.Description("Filter by metric category"),
		),
		mcp.WithString("cadence",
			mcp.Description("Filter by metric cadence (daily, monthly, etc.)"),
		),
		mcp.WithBoolean("include_budgets",
			mcp.Description("Include budget metrics in results (default: false)"),
		),
	}
	opts = append(opts, withPagination("metrics")...)
	return mcp.NewTool("get_company_metrics", opts...)
}

// createGetMetricsOptionsTool returns the get_metrics_options tool definition
func createGetMetricsOptionsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get available metric categories and options."),
		mcp.WithString("category_name",
			mcp.Description("Filter by specific category name"),
		),
		mcp.WithBoolean("is_standard",
			mcp.Description("Filter by standard vs custom metrics"),
		),
	}
	opts = append(opts, withPagination("options")...)
	return mcp.NewTool("get_metrics_options", opts...)
}

// createListBudgetsTool returns the list_budgets tool definition
func createListBudgetsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all budgets associated with your firm."),
		mcp.WithString("company_slug",
			mcp.Description("Filter by company slug"),
		),
		mcp.WithString("company_id",
			mcp.Description("Filter by company ID"),
		),
	}
	opts = append(opts, withPagination("budgets")...)
	return mcp.NewTool("list_budgets", opts...)
}

// createGetCustomColumnsTool returns the get_custom_columns tool definition
func createGetCustomColumnsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get custom column data for companies."),
		mcp.WithString("company_slug",
			mcp.Description("Filter by company slug"),
		),
		mcp.WithString("company_id",
			mcp.Description("Filter by company ID"),
		),
	}
	opts = append(opts, withPagination("custom columns")...)
	return mcp.NewTool("get_custom_columns", opts...)
}

// createGetCustomColumnOptionsTool returns the get_custom_column_options tool definition
func createGetCustomColumnOptionsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get all custom columns and their available options."),
	}
	opts = append(opts, withPagination("options")...)
	return mcp.NewTool("get_custom_column_options", opts...)
}

// createListDocumentsTool returns the list_documents tool definition
func createListDocumentsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all documents associated with your firm."),
		mcp.WithString("company_id",
			mcp.Description("Filter by company ID"),
		),
		mcp.WithString("parse_state",
			mcp.Description("Filter by document parse state"),
		),
		mcp.WithString("from_date",
			mcp.Description("Start date filter (YYYY-MM-DD format)"),
		),
		mcp.WithString("to_date",
			mcp.Description("End date filter (YYYY-MM-DD format)"),
		),
		mcp.WithString("source",
			mcp.Description("Filter by document source"),
		),
	}
	opts = append(opts, withPagination("documents")...)
	return mcp.NewTool("list_documents", opts...)
}

// createListFundsTool returns the list_funds tool definition
func createListFundsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all funds associated with the firm."),
	}
	opts = append(opts, withPagination("funds")...)
	return mcp.NewTool("list_funds", opts...)
}

// createListInformationRequestsTool returns the list_information_requests tool definition
func createListInformationRequestsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all information requests associated with the firm."),
		mcp.WithString("name",
			mcp.Description("Filter by request name"),
		),
	}
	opts = append(opts, withPagination("requests")...)
	return mcp.NewTool("list_information_requests", opts...)
}

// createListInformationReportsTool returns the list_information_reports tool definition
func createListInformationReportsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all information reports associated with the firm."),
		mcp.WithString("company_id",
			mcp.Description("Filter by company ID"),
		),
		mcp.WithString("information_request_id",
			mcp.Description("Filter by information request ID"),
		),
	}
	opts = append(opts, withPagination("reports")...)
	return mcp.NewTool("list_information_reports", opts...)
}

// createListNotesTool returns the list_notes tool definition
func createListNotesTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all notes associated with a specific company."),
		mcp.WithString("company_slug",
			mcp.Description("Filter by company slug"),
		),
		mcp.WithString("company_id",
			mcp.Description("Filter by company ID"),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort notes by specific field"),
		),
	}
	opts = append(opts, withPagination("notes")...)
	return mcp.NewTool("list_notes", opts...)
}

// createListUsersTool returns the list_users tool definition
func createListUsersTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List all users associated with your firm."),
		mcp.WithString("email",
			mcp.Description("Filter by user email"),
		),
	}
	opts = append(opts, withPagination("users")...)
	return mcp.NewTool("list_users", opts...)
}

// createGetPortfolioSummaryTool returns the get_portfolio_summary tool definition
func createGetPortfolioSummaryTool() mcp.Tool {
	return mcp.NewTool("get_portfolio_summary",
		mcp.WithDescription("Get a comprehensive portfolio summary including companies, funds, and key metrics. Metric details and totals cover a sample of the first 10 companies."),
	)
}

// createGetCompanyPerformanceTool returns the get_company_performance tool definition
func createGetCompanyPerformanceTool() mcp.Tool {
	return mcp.NewTool("get_company_performance",
		mcp.WithDescription("Get comprehensive performance data for a specific company, including metrics, budgets, notes, and custom columns."),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("The unique identifier for the company"),
		),
		mcp.WithNumber("months",
			mcp.Description("Number of months of historical data to include (default: 12)"),
		),
	)
}

// createGetCompanyFinancialSummaryTool returns the get_company_financial_summary tool definition
func createGetCompanyFinancialSummaryTool() mcp.Tool {
	return mcp.NewTool("get_company_financial_summary",
		mcp.WithDescription("Get a financial summary for a company including key metrics over time, grouped by category."),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("The unique identifier for the company"),
		),
		mcp.WithNumber("months",
			mcp.Description("Number of months of historical data to include (default: 12)"),
		),
	)
}

// createFindCompanyByNameTool returns the find_company_by_name tool definition
func createFindCompanyByNameTool() mcp.Tool {
	return mcp.NewTool("find_company_by_name",
		mcp.WithDescription("Find a company by name (case-insensitive exact match)."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The company name to search for"),
		),
	)
}

// createGetCompanyRecentMetricsTool returns the get_company_recent_metrics tool definition
func createGetCompanyRecentMetricsTool() mcp.Tool {
	return mcp.NewTool("get_company_recent_metrics",
		mcp.WithDescription("Get the most recent metrics for a company, sorted newest first."),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("The unique identifier for the company"),
		),
		mcp.WithString("category",
			mcp.Description("Filter by specific metric category"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of recent metrics to return (default: 10)"),
		),
	)
}

// createGetCompaniesBySectorTool returns the get_companies_by_sector tool definition
func createGetCompaniesBySectorTool() mcp.Tool {
	return mcp.NewTool("get_companies_by_sector",
		mcp.WithDescription("Get all companies in a specific sector."),
		mcp.WithString("sector",
			mcp.Required(),
			mcp.Description("The sector to filter companies by"),
		),
	)
}

// createGetCompanyNotesSummaryTool returns the get_company_notes_summary tool definition
func createGetCompanyNotesSummaryTool() mcp.Tool {
	return mcp.NewTool("get_company_notes_summary",
		mcp.WithDescription("Get a summary of notes for a company: total count, most recent notes, and distinct authors."),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("The unique identifier for the company"),
		),
	)
}
