package utils

import (
	"strconv"
	"strings"
)

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchAny reports whether query is found in any of fields. An empty query
// matches everything.
func MatchAny(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, query) {
			return true
		}
	}
	return false
}

// MatchExact is an equality filter that is off when want is empty.
func MatchExact(want, got string) bool {
	return want == "" || want == got
}

// ParseBoolFilter returns nil when s is empty or not a bool.
func ParseBoolFilter(s string) *bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &b
}
