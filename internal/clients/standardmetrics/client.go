// Package standardmetrics provides a client for the Standard Metrics REST API
package standardmetrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/standardmetrics/smx-mcp/internal/common"
	"github.com/standardmetrics/smx-mcp/internal/interfaces"
	"github.com/standardmetrics/smx-mcp/internal/models"
)

const (
	DefaultBaseURL   = "https://api.standardmetrics.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
	DefaultPageSize  = 100
)

// Client implements the StandardMetricsClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit. Values below 1 are ignored; a zero
// limiter would block every request forever.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond < 1 {
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Standard Metrics client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError reports a non-2xx response from the Standard Metrics API.
// It carries the status code and response body so callers can tell a
// rejected request apart from an unreachable server.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Standard Metrics API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// DecodeError reports a 2xx response whose body did not match the expected
// schema. Distinct from APIError: the server answered, but with something
// this client does not understand.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Standard Metrics response decode failed (endpoint: %s): %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a resource ID that did not resolve
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}

// get performs a rate-limited GET request with bearer auth and decodes the
// JSON response into result. The response body is closed on every path.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", path).Msg("Standard Metrics API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}

	return nil
}

// getPage fetches one page of a paginated collection
func getPage[T any](ctx context.Context, c *Client, path string, params url.Values) (*models.Page[T], error) {
	var page models.Page[T]
	if err := c.get(ctx, path, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// pageValues builds the pagination query values, applying the API defaults
// for unset fields
func pageValues(p interfaces.PageParams) url.Values {
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size < 1 {
		size = DefaultPageSize
	}

	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(size))
	return v
}

// setNonEmpty adds key=value only when value is non-empty; absent filters
// never appear in the query string
func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// ListCompanies retrieves one page of the firm's companies
func (c *Client) ListCompanies(ctx context.Context, params interfaces.PageParams) (*models.Page[models.Company], error) {
	return getPage[models.Company](ctx, c, "/v1/companies/", pageValues(params))
}

// GetCompany retrieves a single company by ID. A 404 from the API is
// returned as *NotFoundError.
func (c *Client) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	path := fmt.Sprintf("/v1/companies/%s/", url.PathEscape(companyID))

	var company models.Company
	if err := c.get(ctx, path, nil, &company); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{Resource: "company", ID: companyID}
		}
		return nil, err
	}

	return &company, nil
}

// SearchCompanies filters companies by name fragment, sector, or city
func (c *Client) SearchCompanies(ctx context.Context, params interfaces.SearchCompaniesParams) (*models.Page[models.Company], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "name_contains", params.NameContains)
	setNonEmpty(v, "sector", params.Sector)
	setNonEmpty(v, "city", params.City)
	return getPage[models.Company](ctx, c, "/v1/companies/", v)
}

// GetCompanyMetrics retrieves metrics for one company. The company ID is
// always sent verbatim under company_id; date bounds travel as from/to.
func (c *Client) GetCompanyMetrics(ctx context.Context, companyID string, params interfaces.CompanyMetricsParams) (*models.Page[models.MetricData], error) {
	v := pageValues(params.PageParams)
	v.Set("company_id", companyID)
	setNonEmpty(v, "from", params.FromDate)
	setNonEmpty(v, "to", params.ToDate)
	setNonEmpty(v, "category", params.Category)
	setNonEmpty(v, "cadence", params.Cadence)
	if params.IncludeBudgets {
		v.Set("include_budgets", "1")
	}
	return getPage[models.MetricData](ctx, c, "/v1/metrics/", v)
}

// GetMetricsOptions retrieves the available metric categories
func (c *Client) GetMetricsOptions(ctx context.Context, params interfaces.MetricOptionsParams) (*models.Page[models.MetricOption], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "category_name", params.CategoryName)
	if params.IsStandard != nil {
		v.Set("is_standard", strconv.FormatBool(*params.IsStandard))
	}
	return getPage[models.MetricOption](ctx, c, "/v1/metrics/options/", v)
}

// ListBudgets retrieves budgets, optionally scoped to a company
func (c *Client) ListBudgets(ctx context.Context, params interfaces.BudgetsParams) (*models.Page[models.Budget], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "company_slug", params.CompanySlug)
	setNonEmpty(v, "company_id", params.CompanyID)
	return getPage[models.Budget](ctx, c, "/v1/budgets/", v)
}

// GetCustomColumns retrieves custom column values, optionally scoped to a company
func (c *Client) GetCustomColumns(ctx context.Context, params interfaces.CustomColumnsParams) (*models.Page[models.CustomColumn], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "company_slug", params.CompanySlug)
	setNonEmpty(v, "company_id", params.CompanyID)
	return getPage[models.CustomColumn](ctx, c, "/v1/custom-columns/", v)
}

// GetCustomColumnOptions retrieves the firm's custom column definitions
func (c *Client) GetCustomColumnOptions(ctx context.Context, params interfaces.PageParams) (*models.Page[models.CustomColumnOption], error) {
	return getPage[models.CustomColumnOption](ctx, c, "/v1/custom-columns/options/", pageValues(params))
}

// ListDocuments retrieves document metadata
func (c *Client) ListDocuments(ctx context.Context, params interfaces.DocumentsParams) (*models.Page[models.Document], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "company_id", params.CompanyID)
	setNonEmpty(v, "parse_state", params.ParseState)
	setNonEmpty(v, "from", params.FromDate)
	setNonEmpty(v, "to", params.ToDate)
	setNonEmpty(v, "source", params.Source)
	return getPage[models.Document](ctx, c, "/v1/documents/", v)
}

// ListFunds retrieves one page of the firm's funds
func (c *Client) ListFunds(ctx context.Context, params interfaces.PageParams) (*models.Page[models.Fund], error) {
	return getPage[models.Fund](ctx, c, "/v1/funds/", pageValues(params))
}

// ListInformationRequests retrieves the firm's information requests
func (c *Client) ListInformationRequests(ctx context.Context, params interfaces.InformationRequestsParams) (*models.Page[models.InformationRequest], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "name", params.Name)
	return getPage[models.InformationRequest](ctx, c, "/v1/information-requests/", v)
}

// ListInformationReports retrieves company submissions against requests
func (c *Client) ListInformationReports(ctx context.Context, params interfaces.InformationReportsParams) (*models.Page[models.InformationReport], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "company_id", params.CompanyID)
	setNonEmpty(v, "information_request_id", params.InformationRequestID)
	return getPage[models.InformationReport](ctx, c, "/v1/information-reports/", v)
}

// ListNotes retrieves notes, optionally scoped to a company
func (c *Client) ListNotes(ctx context.Context, params interfaces.NotesParams) (*models.Page[models.Note], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "company_slug", params.CompanySlug)
	setNonEmpty(v, "company_id", params.CompanyID)
	setNonEmpty(v, "sort_by", params.SortBy)
	return getPage[models.Note](ctx, c, "/v1/notes/", v)
}

// ListUsers retrieves the firm's users
func (c *Client) ListUsers(ctx context.Context, params interfaces.UsersParams) (*models.Page[models.User], error) {
	v := pageValues(params.PageParams)
	setNonEmpty(v, "email", params.Email)
	return getPage[models.User](ctx, c, "/v1/users/", v)
}

// Ensure Client implements StandardMetricsClient
var _ interfaces.StandardMetricsClient = (*Client)(nil)
