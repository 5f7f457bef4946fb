// Package pager splits upstream object ID lists into fixed-size pages.
package pager

// DefaultPerPage is the default number of objects per page.
// The search route serves 4 columns * 5 rows.
const DefaultPerPage = 20

// Meta describes where a page sits in the full result list.
type Meta struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// TotalPages returns how many pages of perPage items are needed for total items.
func TotalPages(total, perPage int) int {
	if total <= 0 {
		return 0
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return (total + perPage - 1) / perPage
}

// Page returns the items of the 1-based page. Pages below 1 are treated as 1;
// pages past the end are empty.
func Page[T any](items []T, page, perPage int) ([]T, Meta) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	meta := Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      len(items),
		TotalPages: TotalPages(len(items), perPage),
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, meta
	}
	end := min(start+perPage, len(items))
	return items[start:end], meta
}
