package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardmetrics/smx-mcp/internal/clients/standardmetrics"
	"github.com/standardmetrics/smx-mcp/internal/common"
	"github.com/standardmetrics/smx-mcp/internal/interfaces"
	"github.com/standardmetrics/smx-mcp/internal/models"
)

// --- mock client ---

func pageOf[T any](items []T) *models.Page[T] {
	return &models.Page[T]{Results: items, Count: len(items)}
}

// mockClient serves canned data and records the parameters it was called
// with so tests can assert on query construction.
type mockClient struct {
	companies []models.Company
	funds     []models.Fund
	budgets   []models.Budget
	notes     []models.Note
	columns   []models.CustomColumn
	metrics   map[string][]models.MetricData

	metricsErr map[string]error
	missing    map[string]bool

	metricsCalls      []string
	lastMetricsParams interfaces.CompanyMetricsParams
	lastSearch        interfaces.SearchCompaniesParams
	lastNotes         interfaces.NotesParams
}

func (m *mockClient) ListCompanies(_ context.Context, _ interfaces.PageParams) (*models.Page[models.Company], error) {
	return pageOf(m.companies), nil
}

func (m *mockClient) GetCompany(_ context.Context, companyID string) (*models.Company, error) {
	if m.missing[companyID] {
		return nil, &standardmetrics.NotFoundError{Resource: "company", ID: companyID}
	}
	for i := range m.companies {
		if m.companies[i].ID == companyID {
			return &m.companies[i], nil
		}
	}
	return nil, &standardmetrics.NotFoundError{Resource: "company", ID: companyID}
}

func (m *mockClient) SearchCompanies(_ context.Context, params interfaces.SearchCompaniesParams) (*models.Page[models.Company], error) {
	m.lastSearch = params
	var matched []models.Company
	for _, c := range m.companies {
		if params.NameContains != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(params.NameContains)) {
			continue
		}
		if params.Sector != "" && c.Sector != params.Sector {
			continue
		}
		matched = append(matched, c)
	}
	return pageOf(matched), nil
}

func (m *mockClient) GetCompanyMetrics(_ context.Context, companyID string, params interfaces.CompanyMetricsParams) (*models.Page[models.MetricData], error) {
	m.metricsCalls = append(m.metricsCalls, companyID)
	m.lastMetricsParams = params
	if err := m.metricsErr[companyID]; err != nil {
		return nil, err
	}
	return pageOf(m.metrics[companyID]), nil
}

func (m *mockClient) GetMetricsOptions(_ context.Context, _ interfaces.MetricOptionsParams) (*models.Page[models.MetricOption], error) {
	return pageOf[models.MetricOption](nil), nil
}

func (m *mockClient) ListBudgets(_ context.Context, _ interfaces.BudgetsParams) (*models.Page[models.Budget], error) {
	return pageOf(m.budgets), nil
}

func (m *mockClient) GetCustomColumns(_ context.Context, _ interfaces.CustomColumnsParams) (*models.Page[models.CustomColumn], error) {
	return pageOf(m.columns), nil
}

func (m *mockClient) GetCustomColumnOptions(_ context.Context, _ interfaces.PageParams) (*models.Page[models.CustomColumnOption], error) {
	return pageOf[models.CustomColumnOption](nil), nil
}

func (m *mockClient) ListDocuments(_ context.Context, _ interfaces.DocumentsParams) (*models.Page[models.Document], error) {
	return pageOf[models.Document](nil), nil
}

func (m *mockClient) ListFunds(_ context.Context, _ interfaces.PageParams) (*models.Page[models.Fund], error) {
	return pageOf(m.funds), nil
}

func (m *mockClient) ListInformationRequests(_ context.Context, _ interfaces.InformationRequestsParams) (*models.Page[models.InformationRequest], error) {
	return pageOf[models.InformationRequest](nil), nil
}

func (m *mockClient) ListInformationReports(_ context.Context, _ interfaces.InformationReportsParams) (*models.Page[models.InformationReport], error) {
	return pageOf[models.InformationReport](nil), nil
}

func (m *mockClient) ListNotes(_ context.Context, params interfaces.NotesParams) (*models.Page[models.Note], error) {
	m.lastNotes = params
	return pageOf(m.notes), nil
}

func (m *mockClient) ListUsers(_ context.Context, _ interfaces.UsersParams) (*models.Page[models.User], error) {
	return pageOf[models.User](nil), nil
}

var _ interfaces.StandardMetricsClient = (*mockClient)(nil)

func newTestService(client interfaces.StandardMetricsClient) *Service {
	return NewService(client, common.NewSilentLogger())
}

// --- portfolio summary ---

func TestPortfolioSummary_ContainsPerCompanyFailure(t *testing.T) {
	mock := &mockClient{
		companies: []models.Company{
			{ID: "company_1", Name: "Alpha"},
			{ID: "company_2", Name: "Beta"},
			{ID: "company_3", Name: "Gamma"},
		},
		funds: []models.Fund{{ID: "fund_1", Name: "Fund I"}},
		metrics: map[string][]models.MetricData{
			"company_1": {{ID: "m1", Name: "ARR", Date: "2024-06-30"}},
			"company_3": {{ID: "m3", Name: "ARR", Date: "2024-06-30"}},
		},
		metricsErr: map[string]error{
			"company_2": errors.New("upstream timeout"),
		},
	}

	summary, err := newTestService(mock).PortfolioSummary(context.Background())
	require.NoError(t, err, "one company's failure must not abort the summary")

	assert.Equal(t, 3, summary.TotalCompanies)
	assert.Equal(t, 1, summary.TotalFunds)

	beta := summary.PortfolioMetrics["Beta"]
	assert.Contains(t, beta.Error, "upstream timeout")
	assert.Empty(t, beta.RecentMetrics)
	assert.Equal(t, "company_2", beta.CompanyInfo.ID)

	alpha := summary.PortfolioMetrics["Alpha"]
	assert.Empty(t, alpha.Error)
	require.Len(t, alpha.RecentMetrics, 1)
	assert.Equal(t, "m1", alpha.RecentMetrics[0].ID)

	gamma := summary.PortfolioMetrics["Gamma"]
	require.Len(t, gamma.RecentMetrics, 1)
}

func TestPortfolioSummary_SamplesFirstTenCompanies(t *testing.T) {
	var companies []models.Company
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		companies = append(companies, models.Company{ID: "company_" + suffix, Name: "Company " + suffix})
	}
	mock := &mockClient{companies: companies, metrics: map[string][]models.MetricData{}}

	summary, err := newTestService(mock).PortfolioSummary(context.Background())
	require.NoError(t, err)

	// Totals reflect the sampled slice, not the full company list
	assert.Equal(t, 10, summary.TotalCompanies)
	assert.Len(t, summary.Companies, 10)
	assert.Len(t, mock.metricsCalls, 10)
	assert.Equal(t, "company_a", summary.Companies[0].ID)
	assert.NotContains(t, mock.metricsCalls, "company_k")
}

func TestPortfolioSummary_SkipsCompaniesWithoutID(t *testing.T) {
	mock := &mockClient{
		companies: []models.Company{
			{ID: "", Name: "Ghost"},
			{ID: "company_1", Name: "Alpha"},
		},
		metrics: map[string][]models.MetricData{},
	}

	summary, err := newTestService(mock).PortfolioSummary(context.Background())
	require.NoError(t, err)

	// The unidentified company still counts but gets no metrics entry
	assert.Equal(t, 2, summary.TotalCompanies)
	assert.NotContains(t, summary.PortfolioMetrics, "Ghost")
	assert.Contains(t, summary.PortfolioMetrics, "Alpha")
	assert.Equal(t, []string{"company_1"}, mock.metricsCalls)
}

func TestPortfolioSummary_MetricsFetchSize(t *testing.T) {
	mock := &mockClient{
		companies: []models.Company{{ID: "company_1", Name: "Alpha"}},
		metrics:   map[string][]models.MetricData{},
	}

	_, err := newTestService(mock).PortfolioSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, mock.lastMetricsParams.PageSize)
	assert.False(t, mock.lastMetricsParams.IncludeBudgets)
}
