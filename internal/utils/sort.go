package utils

import (
	"errors"
	"slices"
	"strings"
)

var ErrUnknownSortField = errors.New("unknown sort field")

// SortKeys maps a public field name to a comparator.
type SortKeys[T any] map[string]func(a, b T) int

// SortBy sorts items in place by order, which is a field name optionally
// prefixed with "-" for descending order. An empty order leaves items as they
// are.
func SortBy[T any](items []T, order string, keys SortKeys[T]) error {
	order = strings.TrimSpace(order)
	if order == "" {
		return nil
	}
	desc := strings.HasPrefix(order, "-")
	field := strings.TrimPrefix(order, "-")

	cmp, ok := keys[field]
	if !ok {
		return ErrUnknownSortField
	}
	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return nil
}

// CompareFold orders strings case-insensitively.
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
