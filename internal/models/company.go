// Package models defines data structures for the Standard Metrics API
package models

// Company represents a portfolio company tracked by the firm
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Sector      string `json:"sector,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	FoundedYear int    `json:"founded_year,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}
