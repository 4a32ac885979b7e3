package models

import "strconv"

// List query defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// SortOrder directions accepted by list endpoints
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListQuery captures pagination, sorting, search and equality filters parsed
// from a list endpoint's query string. Filter keys are validated against a
// per-repository allow-list before they reach the store.
type ListQuery struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	SearchTerm string
	Filters    map[string]string
}

// Normalize applies defaults for missing pagination and sorting values.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.SortOrder != SortAsc && q.SortOrder != SortDesc {
		q.SortOrder = SortDesc
	}
}

// Offset returns the row offset for the current page.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Meta carries pagination metadata for list responses
type Meta struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"totalPage"`
}

// NewMeta computes pagination metadata; TotalPage is ceil(total/limit).
func NewMeta(q ListQuery, total int) Meta {
	totalPage := 0
	if q.Limit > 0 {
		totalPage = (total + q.Limit - 1) / q.Limit
	}
	return Meta{
		Page:      q.Page,
		Limit:     q.Limit,
		Total:     total,
		TotalPage: totalPage,
	}
}

// ParseListQuery builds a ListQuery from raw query-string values. Keys that
// are not pagination, sorting or search controls are treated as equality
// filters and validated later against each repository's allow-list.
func ParseListQuery(values map[string][]string) ListQuery {
	q := ListQuery{Filters: map[string]string{}}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		val := vals[0]
		switch key {
		case "page":
			q.Page, _ = strconv.Atoi(val)
		case "limit":
			q.Limit, _ = strconv.Atoi(val)
		case "sortBy":
			q.SortBy = val
		case "sortOrder":
			q.SortOrder = val
		case "searchTerm":
			q.SearchTerm = val
		case "fields":
			// field selection is not supported; ignored for compatibility
		default:
			q.Filters[key] = val
		}
	}
	q.Normalize()
	return q
}
