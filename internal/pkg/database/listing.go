package database

import (
	"fmt"
	"strings"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
)

// ListClauses holds SQL fragments for a paginated list query
type ListClauses struct {
	Where   string
	OrderBy string
	Args    []interface{}
}

// BuildListClauses turns a ListQuery into WHERE/ORDER BY fragments with
// positional arguments. Filter and sort keys must appear in the allow-lists
// (query key -> column name); unknown keys are rejected instead of being
// forwarded to the store. Search terms match any of searchColumns with ILIKE.
func BuildListClauses(q models.ListQuery, filterable map[string]string, searchColumns []string, sortable map[string]string) (*ListClauses, error) {
	var conds []string
	var args []interface{}

	for key, val := range q.Filters {
		column, ok := filterable[key]
		if !ok {
			return nil, apperrors.NewValidation("Invalid filter key",
				apperrors.Source{Path: key, Message: key + " is not a filterable field"})
		}
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if q.SearchTerm != "" && len(searchColumns) > 0 {
		args = append(args, "%"+q.SearchTerm+"%")
		placeholder := len(args)
		var ors []string
		for _, col := range searchColumns {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, placeholder))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	sortColumn, ok := sortable[q.SortBy]
	if !ok {
		return nil, apperrors.NewValidation("Invalid sort key",
			apperrors.Source{Path: q.SortBy, Message: q.SortBy + " is not a sortable field"})
	}
	direction := "DESC"
	if q.SortOrder == models.SortAsc {
		direction = "ASC"
	}

	return &ListClauses{
		Where:   where,
		OrderBy: fmt.Sprintf("ORDER BY %s %s", sortColumn, direction),
		Args:    args,
	}, nil
}

// Paginate appends LIMIT/OFFSET arguments to the clause set and returns the
// SQL fragment referencing them.
func (c *ListClauses) Paginate(q models.ListQuery) string {
	c.Args = append(c.Args, q.Limit)
	limit := len(c.Args)
	c.Args = append(c.Args, q.Offset())
	offset := len(c.Args)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", limit, offset)
}
