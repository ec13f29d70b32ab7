package models

// Page is one bounded slice of a paginated collection as returned by the
// Standard Metrics API: the items for this page, the total item count
// across all pages, and cursor URLs for the adjacent pages (null at the
// edges).
type Page[T any] struct {
	Results  []T     `json:"results"`
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}
