package analytics

import (
	"context"
	"sort"
	"strings"

	"github.com/standardmetrics/smx-mcp/internal/interfaces"
	"github.com/standardmetrics/smx-mcp/internal/models"
)

// FindCompanyByName searches by name fragment and returns the first exact
// case-insensitive match, or nil when none of the returned companies match.
// Only one search page of up to 1000 companies is examined.
func (s *Service) FindCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	page, err := s.client.SearchCompanies(ctx, interfaces.SearchCompaniesParams{
		NameContains: name,
		PageParams:   interfaces.PageParams{PageSize: fullPageSize},
	})
	if err != nil {
		return nil, err
	}

	for i := range page.Results {
		if strings.EqualFold(page.Results[i].Name, name) {
			return &page.Results[i], nil
		}
	}
	return nil, nil
}

// CompanyRecentMetrics fetches one page of limit metrics and sorts it by
// date descending. The sort happens after the fetch, so the result is only
// as recent as the page the server returned.
func (s *Service) CompanyRecentMetrics(ctx context.Context, companyID, category string, limit int) ([]models.MetricData, error) {
	if limit < 1 {
		limit = defaultRecentLimit
	}

	page, err := s.client.GetCompanyMetrics(ctx, companyID, interfaces.CompanyMetricsParams{
		PageParams: interfaces.PageParams{PageSize: limit},
		Category:   category,
	})
	if err != nil {
		return nil, err
	}

	metrics := page.Results
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Date > metrics[j].Date
	})
	return metrics, nil
}

// CompaniesBySector returns up to 1000 companies in the given sector
func (s *Service) CompaniesBySector(ctx context.Context, sector string) ([]models.Company, error) {
	page, err := s.client.SearchCompanies(ctx, interfaces.SearchCompaniesParams{
		Sector:     sector,
		PageParams: interfaces.PageParams{PageSize: fullPageSize},
	})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// CompanyNotesSummary condenses up to 1000 of a company's notes into a
// count, the five most recent notes, and the distinct authors. Notes with
// no created_at timestamp sort last.
func (s *Service) CompanyNotesSummary(ctx context.Context, companyID string) (*models.NotesSummary, error) {
	page, err := s.client.ListNotes(ctx, interfaces.NotesParams{
		CompanyID:  companyID,
		PageParams: interfaces.PageParams{PageSize: fullPageSize},
	})
	if err != nil {
		return nil, err
	}

	notes := page.Results

	recent := make([]models.Note, len(notes))
	copy(recent, notes)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > recentNotesCap {
		recent = recent[:recentNotesCap]
	}

	seen := make(map[string]struct{})
	authors := make([]string, 0, len(notes))
	for _, note := range notes {
		if note.Author == "" {
			continue
		}
		if _, ok := seen[note.Author]; ok {
			continue
		}
		seen[note.Author] = struct{}{}
		authors = append(authors, note.Author)
	}
	sort.Strings(authors)

	return &models.NotesSummary{
		TotalNotes:  len(notes),
		RecentNotes: recent,
		Authors:     authors,
	}, nil
}
