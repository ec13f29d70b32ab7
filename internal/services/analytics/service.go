// Package analytics aggregates Standard Metrics data into portfolio and
// company level summaries
package analytics

import (
	"time"

	"github.com/standardmetrics/smx-mcp/internal/common"
	"github.com/standardmetrics/smx-mcp/internal/interfaces"
)

const (
	// fullPageSize is the single large page the aggregations fetch. These
	// operations do not walk pagination cursors, so firms with more than
	// 1000 of a resource see a truncated view.
	fullPageSize = 1000

	// summaryCompanyCap bounds the per-company metric fetches in the
	// portfolio summary.
	summaryCompanyCap = 10

	// summaryMetricsCap is the number of recent metrics fetched per
	// sampled company.
	summaryMetricsCap = 50

	// recentNotesCap is how many notes a notes summary surfaces.
	recentNotesCap = 5

	defaultMonths      = 12
	defaultRecentLimit = 10

	dateLayout = "2006-01-02"
)

// Service implements AnalyticsService on top of the Standard Metrics client
type Service struct {
	client interfaces.StandardMetricsClient
	logger *common.Logger
}

// NewService creates a new analytics service
func NewService(client interfaces.StandardMetricsClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// reportingWindow computes the lookback window for performance queries.
// Months use a fixed 30-day approximation, not calendar months.
func reportingWindow(months int) (start, end time.Time) {
	end = time.Now()
	start = end.Add(-time.Duration(months) * 30 * 24 * time.Hour)
	return start, end
}

func normalizeMonths(months int) int {
	if months <= 0 {
		return defaultMonths
	}
	return months
}

// Ensure Service implements AnalyticsService
var _ interfaces.AnalyticsService = (*Service)(nil)
