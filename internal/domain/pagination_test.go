package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQueryNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query PageQuery
		want  PageQuery
	}{
		{
			name:  "zero value gets defaults",
			query: PageQuery{},
			want:  PageQuery{Page: 1, PageSize: 20},
		},
		{
			name:  "negative page clamps to first",
			query: PageQuery{Page: -3, PageSize: 10},
			want:  PageQuery{Page: 1, PageSize: 10},
		},
		{
			name:  "oversized page size clamps to max",
			query: PageQuery{Page: 2, PageSize: 500},
			want:  PageQuery{Page: 2, PageSize: 100},
		},
		{
			name:  "valid query unchanged",
			query: PageQuery{Page: 3, PageSize: 50},
			want:  PageQuery{Page: 3, PageSize: 50},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.query.Normalize())
		})
	}
}

func TestPageQueryOffset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PageQuery{Page: 3, PageSize: 20}.Offset())
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		wantLast int
	}{
		{name: "exact multiple", total: 40, pageSize: 20, wantLast: 2},
		{name: "partial last page", total: 41, pageSize: 20, wantLast: 3},
		{name: "empty result", total: 0, pageSize: 20, wantLast: 0},
		{name: "single item", total: 1, pageSize: 20, wantLast: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPage([]int{}, PageQuery{Page: 1, PageSize: tc.pageSize}, tc.total)

			assert.Equal(t, tc.wantLast, page.LastPage)
			assert.Equal(t, tc.total, page.Total)
		})
	}
}

func TestNewPageNilData(t *testing.T) {
	page := NewPage[int](nil, PageQuery{Page: 1, PageSize: 20}, 0)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}
