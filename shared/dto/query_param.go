package dto

import "fmt"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderedBy returns params that sort ascending by the given columns, in order.
func OrderedBy(columns ...string) QueryParams {
	sortBy := ""

	for i, column := range columns {
		if i > 0 {
			sortBy += fmt.Sprintf(" %s, ", SortDirAsc)
		}

		sortBy += column
	}

	return QueryParams{SortBy: sortBy, SortDir: SortDirAsc}
}
