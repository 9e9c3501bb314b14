package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStale(t *testing.T) {
	testCases := []struct {
		name          string
		criteriaUtime int64
		generatedAt   int64
		wantStale     bool
	}{
		{name: "配置晚于结果", criteriaUtime: 2000, generatedAt: 1000, wantStale: true},
		{name: "结果是新的", criteriaUtime: 1000, generatedAt: 2000, wantStale: false},
		{name: "时间相同", criteriaUtime: 1000, generatedAt: 1000, wantStale: false},
		{name: "尚未生成过", criteriaUtime: 1000, generatedAt: 0, wantStale: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := CheckStale(tc.criteriaUtime, tc.generatedAt)
			assert.Equal(t, tc.wantStale, st.IsStale)
			if tc.wantStale {
				assert.NotEmpty(t, st.Reason)
			} else {
				assert.Empty(t, st.Reason)
			}
		})
	}
}
