package web

import (
	"testing"

	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	results := []domain.Result{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
	}
	testCases := []struct {
		name    string
		offset  int
		limit   int
		wantIds []int64
	}{
		{
			name:    "正常分页",
			offset:  1,
			limit:   2,
			wantIds: []int64{2, 3},
		},
		{
			name:    "limit 为零用默认值",
			offset:  0,
			limit:   0,
			wantIds: []int64{1, 2, 3, 4, 5},
		},
		{
			name:    "offset 越界返回空",
			offset:  10,
			limit:   2,
			wantIds: []int64{},
		},
		{
			name:    "负 offset 按零处理",
			offset:  -3,
			limit:   2,
			wantIds: []int64{1, 2},
		},
		{
			name:    "负 limit 用默认值",
			offset:  0,
			limit:   -1,
			wantIds: []int64{1, 2, 3, 4, 5},
		},
		{
			name:    "末尾截断",
			offset:  4,
			limit:   10,
			wantIds: []int64{5},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := paginate(results, tc.offset, tc.limit)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}
