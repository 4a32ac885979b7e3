package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListQuery(t *testing.T) {
	q := ParseListQuery(map[string][]string{
		"page":       {"3"},
		"limit":      {"25"},
		"sortBy":     {"name"},
		"sortOrder":  {"asc"},
		"searchTerm": {"toyota"},
		"brand":      {"Toyota"},
		"fuelType":   {"Hybrid"},
	})

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, SortAsc, q.SortOrder)
	assert.Equal(t, "toyota", q.SearchTerm)
	assert.Equal(t, map[string]string{"brand": "Toyota", "fuelType": "Hybrid"}, q.Filters)
}

func TestParseListQueryDefaults(t *testing.T) {
	q := ParseListQuery(map[string][]string{})

	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, "createdAt", q.SortBy)
	assert.Equal(t, SortDesc, q.SortOrder)
	assert.Empty(t, q.Filters)
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	q := ListQuery{Page: -1, Limit: 0, SortOrder: "sideways"}
	q.Normalize()

	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, SortDesc, q.SortOrder)
}

func TestOffset(t *testing.T) {
	q := ListQuery{Page: 4, Limit: 15}
	assert.Equal(t, 45, q.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(ListQuery{Page: 2, Limit: 5}, 12)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.Limit)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 3, meta.TotalPage)
}

func TestNewMetaExactDivision(t *testing.T) {
	meta := NewMeta(ListQuery{Page: 1, Limit: 10}, 30)
	assert.Equal(t, 3, meta.TotalPage)
}

func TestNewMetaEmpty(t *testing.T) {
	meta := NewMeta(ListQuery{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, meta.TotalPage)
}
