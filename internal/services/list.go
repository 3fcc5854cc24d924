package services

import (
	"alumni-portal/dto"
	"alumni-portal/internal/utils"
)

// ListQuery is what every list endpoint accepts besides its own filters.
type ListQuery struct {
	Search string
	Sort   string
	Page   utils.PageQuery
}

// page sorts the filtered items by q.Sort, or by def when q.Sort is empty,
// and cuts out the requested page.
func page[T any](items []T, q ListQuery, keys utils.SortKeys[T], def string) (dto.Page[T], error) {
	order := q.Sort
	if order == "" {
		order = def
	}
	if err := utils.SortBy(items, order, keys); err != nil {
		return dto.Page[T]{}, Invalid("unknown sort field: " + order)
	}
	return utils.Paginate(items, q.Page), nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
