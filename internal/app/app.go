// Package app wires configuration, the Standard Metrics client, the
// analytics service, and the MCP server into one shared core used by both
// cmd/smx-server and cmd/smx-mcp.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/standardmetrics/smx-mcp/internal/clients/standardmetrics"
	"github.com/standardmetrics/smx-mcp/internal/common"
	"github.com/standardmetrics/smx-mcp/internal/interfaces"
	"github.com/standardmetrics/smx-mcp/internal/services/analytics"
)

// App holds the initialized client, services, and MCP server
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Client      interfaces.StandardMetricsClient
	Analytics   interfaces.AnalyticsService
	MCPServer   *server.MCPServer
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, the API client, services, and
// the MCP server. configPath may be empty, in which case SMX_CONFIG and the
// binary directory are checked for an smx.toml.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	if configPath == "" {
		configPath = os.Getenv("SMX_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "smx.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/smx.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	// Refuse to start without credentials rather than failing per-call
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client := standardmetrics.NewClient(config.API.APIKey,
		standardmetrics.WithBaseURL(config.API.BaseURL),
		standardmetrics.WithLogger(logger),
		standardmetrics.WithRateLimit(config.API.RateLimit),
		standardmetrics.WithTimeout(config.API.GetTimeout()),
	)

	analyticsService := analytics.NewService(client, logger)

	a := newAppWithDeps(config, logger, client, analyticsService)
	a.StartupTime = startupStart

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// newAppWithDeps assembles an App around already-constructed dependencies.
// Tests use it to swap in a client pointed at a fixture server.
func newAppWithDeps(
	config *common.Config,
	logger *common.Logger,
	client interfaces.StandardMetricsClient,
	analyticsService interfaces.AnalyticsService,
) *App {
	mcpServer := server.NewMCPServer(
		"smx-mcp",
		common.Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
	)

	a := &App{
		Config:      config,
		Logger:      logger,
		Client:      client,
		Analytics:   analyticsService,
		MCPServer:   mcpServer,
		StartupTime: time.Now(),
	}

	a.registerTools()

	return a
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	c := a.Client
	svc := a.Analytics
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())

	s.AddTool(createListCompaniesTool(), handleListCompanies(c, logger))
	s.AddTool(createGetCompanyTool(), handleGetCompany(c, logger))
	s.AddTool(createSearchCompaniesTool(), handleSearchCompanies(c, logger))
	s.AddTool(createGetCompanyMetricsTool(), handleGetCompanyMetrics(c, logger))
	s.AddTool(createGetMetricsOptionsTool(), handleGetMetricsOptions(c, logger))
	s.AddTool(createListBudgetsTool(), handleListBudgets(c, logger))
	s.AddTool(createGetCustomColumnsTool(), handleGetCustomColumns(c, logger))
	s.AddTool(createGetCustomColumnOptionsTool(), handleGetCustomColumnOptions(c, logger))
	s.AddTool(createListDocumentsTool(), handleListDocuments(c, logger))
	s.AddTool(createListFundsTool(), handleListFunds(c, logger))
	s.AddTool(createListInformationRequestsTool(), handleListInformationRequests(c, logger))
	s.AddTool(createListInformationReportsTool(), handleListInformationReports(c, logger))
	s.AddTool(createListNotesTool(), handleListNotes(c, logger))
	s.AddTool(createListUsersTool(), handleListUsers(c, logger))

	s.AddTool(createGetPortfolioSummaryTool(), handleGetPortfolioSummary(svc, logger))
	s.AddTool(createGetCompanyPerformanceTool(), handleGetCompanyPerformance(svc, logger))
	s.AddTool(createGetCompanyFinancialSummaryTool(), handleGetCompanyFinancialSummary(svc, logger))
	s.AddTool(createFindCompanyByNameTool(), handleFindCompanyByName(svc, logger))
	s.AddTool(createGetCompanyRecentMetricsTool(), handleGetCompanyRecentMetrics(svc, logger))
	s.AddTool(createGetCompaniesBySectorTool(), handleGetCompaniesBySector(svc, logger))
	s.AddTool(createGetCompanyNotesSummaryTool(), handleGetCompanyNotesSummary(svc, logger))
}
