package domain

import (
	"testing"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/stretchr/testify/assert"
)

func TestFilterForExport(t *testing.T) {
	ranked := Rank([]Result{
		resultWith(1, 90, func(r *Result) { r.CandidateDegree = candidate.DegreeMasters }),
		resultWith(2, 80, func(r *Result) { r.CandidateDegree = candidate.DegreeBachelors }),
		resultWith(3, 70, func(r *Result) {
			r.CandidateDegree = candidate.DegreeBachelors
			r.FlaggedForReview = true
		}),
		resultWith(4, 60, disqualified()),
	})
	testCases := []struct {
		name    string
		opts    ExportOptions
		wantIDs []int64
	}{
		{
			name:    "all 含被取消资格的",
			opts:    ExportOptions{Mode: ExportModeAll},
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:    "shortlistedOnly 排除被取消资格的",
			opts:    ExportOptions{Mode: ExportModeShortlistedOnly},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "按学历过滤",
			opts:    ExportOptions{Mode: ExportModeAll, DegreeLevel: candidate.DegreeMasters},
			wantIDs: []int64{1},
		},
		{
			name:    "按状态过滤",
			opts:    ExportOptions{Mode: ExportModeAll, Status: StatusFlagged},
			wantIDs: []int64{3},
		},
		{
			name:    "按最低分过滤",
			opts:    ExportOptions{Mode: ExportModeShortlistedOnly, MinScore: 75},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "topN 在排序后截断",
			opts:    ExportOptions{Mode: ExportModeShortlistedOnly, TopN: 2},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "组合过滤",
			opts:    ExportOptions{Mode: ExportModeShortlistedOnly, DegreeLevel: candidate.DegreeBachelors, TopN: 1},
			wantIDs: []int64{1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterForExport(ranked, tc.opts)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.CandidateID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}
