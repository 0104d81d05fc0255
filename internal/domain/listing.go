package domain

import "strings"

// Listing defaults used by the admin directory.
const (
	DefaultPageSize = 20
	DefaultSortBy   = "departureTime"
)

// SortDir is the sort direction of the admin listing.
type SortDir string

// Sort directions.
const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// ListQuery selects one page of the admin flight listing.
// An empty SearchTerm means the listing is unfiltered.
type ListQuery struct {
	Page       int
	Size       int
	SearchTerm string
	SortBy     string
	SortDir    SortDir
}

// Normalize fills defaults for unset fields and trims the search term.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortDir != SortDesc {
		q.SortDir = SortAsc
	}
	q.SearchTerm = strings.TrimSpace(q.SearchTerm)
	return q
}

// HasSearchTerm reports whether the query is filtered.
func (q ListQuery) HasSearchTerm() bool {
	return strings.TrimSpace(q.SearchTerm) != ""
}
