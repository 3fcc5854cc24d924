package utils

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageQuery(t *testing.T) {
	cases := []struct {
		page, limit string
		def         int
		want        PageQuery
	}{
		{"", "", 10, PageQuery{Page: 1, Limit: 10}},
		{"3", "5", 10, PageQuery{Page: 3, Limit: 5}},
		{"0", "-2", 10, PageQuery{Page: 1, Limit: 10}},
		{"abc", "xyz", 0, PageQuery{Page: 1, Limit: 0}},
		{"2", "1000", 10, PageQuery{Page: 2, Limit: MaxPageLimit}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePageQuery(tc.page, tc.limit, tc.def), "page=%q limit=%q", tc.page, tc.limit)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	for limit := 1; limit <= 8; limit++ {
		for page := 1; page <= 9; page++ {
			got := Paginate(items, PageQuery{Page: page, Limit: limit})
			assert.LessOrEqual(t, len(got.Items), limit)
			assert.Equal(t, (len(items)+limit-1)/limit, got.Pagination.TotalPages)
			assert.Equal(t, len(items), got.Pagination.Total)
		}
	}

	p := Paginate(items, PageQuery{Page: 3, Limit: 3})
	assert.Equal(t, []int{7}, p.Items)

	p = Paginate(items, PageQuery{Page: 10, Limit: 3})
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)

	all := Paginate(items, PageQuery{Page: 4, Limit: 0})
	assert.Equal(t, items, all.Items)
	assert.Equal(t, 1, all.Pagination.TotalPages)

	empty := Paginate([]int{}, PageQuery{Page: 1, Limit: 0})
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.Pagination.TotalPages)
}

func TestMatchAny(t *testing.T) {
	assert.True(t, MatchAny("", "anything"))
	assert.True(t, MatchAny("goo", "Sarah", "Google"))
	assert.False(t, MatchAny("apple", "Sarah", "Google"))
	assert.True(t, MatchExact("", "Software"))
	assert.False(t, MatchExact("software", "Software"))
}

func TestParseBoolFilter(t *testing.T) {
	assert.Nil(t, ParseBoolFilter(""))
	require.NotNil(t, ParseBoolFilter("true"))
	assert.True(t, *ParseBoolFilter("true"))
	assert.False(t, *ParseBoolFilter("0"))
}

func TestSortBy(t *testing.T) {
	type row struct {
		Name string
		N    int
	}
	keys := SortKeys[row]{
		"name": func(a, b row) int { return CompareFold(a.Name, b.Name) },
		"n":    func(a, b row) int { return cmp.Compare(a.N, b.N) },
	}
	rows := []row{{"bob", 2}, {"Alice", 3}, {"carol", 1}}

	require.NoError(t, SortBy(rows, "name", keys))
	assert.Equal(t, "Alice", rows[0].Name)

	require.NoError(t, SortBy(rows, "-n", keys))
	assert.Equal(t, []int{3, 2, 1}, []int{rows[0].N, rows[1].N, rows[2].N})

	assert.ErrorIs(t, SortBy(rows, "age", keys), ErrUnknownSortField)
	assert.NoError(t, SortBy(rows, "", keys))
}
