package utils

import (
	"strconv"
	"strings"

	"alumni-portal/dto"
)

const MaxPageLimit = 100

// PageQuery is a parsed page/limit pair. Limit 0 means everything on one page.
type PageQuery struct {
	Page  int
	Limit int
}

// ParsePageQuery reads page and limit query values. A missing or invalid page
// becomes 1, a missing or invalid limit becomes defaultLimit, and limits
// above MaxPageLimit are clamped.
func ParsePageQuery(page, limit string, defaultLimit int) PageQuery {
	q := PageQuery{Page: 1, Limit: defaultLimit}

	if p, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && p > 0 {
		q.Page = p
	}
	if l, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && l > 0 {
		q.Limit = l
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
	return q
}

// Paginate slices items, already filtered and sorted, into the requested page.
func Paginate[T any](items []T, q PageQuery) dto.Page[T] {
	total := len(items)

	if q.Limit <= 0 {
		out := make([]T, total)
		copy(out, items)
		totalPages := 0
		if total > 0 {
			totalPages = 1
		}
		return dto.Page[T]{
			Items:      out,
			Pagination: dto.Pagination{Page: 1, Limit: total, Total: total, TotalPages: totalPages},
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return dto.Page[T]{
		Items: out,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: (total + q.Limit - 1) / q.Limit,
		},
	}
}
