package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehublabs/warehub-backend/pkg/pagination"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestNormalizeItemsPerPage(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"zero falls back to default", 0, pagination.DefaultItemsPerPage},
		{"negative falls back to default", -3, pagination.DefaultItemsPerPage},
		{"in range passes through", 25, 25},
		{"above max is capped", 500, pagination.MaxItemsPerPage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pagination.NormalizeItemsPerPage(tc.in))
		})
	}
}

func TestPaginateSlicesRequestedPage(t *testing.T) {
	page := pagination.Paginate(seq(120), pagination.Params{Page: 2, ItemsPerPage: 50})

	assert.Len(t, page.Data, 50)
	assert.Equal(t, 51, page.Data[0])
	assert.Equal(t, 100, page.Data[49])
	assert.Equal(t, pagination.Meta{Total: 120, Page: 2, ItemsPerPage: 50, Pages: 3}, page.Pagination)
}

func TestPaginateClampsOutOfRangePageToFirst(t *testing.T) {
	cases := []struct {
		name string
		page int
	}{
		{"zero", 0},
		{"negative", -1},
		{"past the end", 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := pagination.Paginate(seq(10), pagination.Params{Page: tc.page, ItemsPerPage: 5})
			assert.Equal(t, 1, page.Pagination.Page)
			assert.Equal(t, 1, page.Data[0])
		})
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	page := pagination.Paginate(seq(7), pagination.Params{Page: 2, ItemsPerPage: 5})

	assert.Len(t, page.Data, 2)
	assert.Equal(t, []int{6, 7}, page.Data)
	assert.Equal(t, 2, page.Pagination.Pages)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := pagination.Paginate([]int{}, pagination.Params{Page: 1, ItemsPerPage: 50})

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.Page)
}
