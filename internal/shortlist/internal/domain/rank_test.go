package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWith(candidateID int64, total float64, opts ...func(*Result)) Result {
	r := Result{
		JobID:       1,
		CandidateID: candidateID,
		TotalScore:  total,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func disqualified() func(*Result) {
	return func(r *Result) {
		r.HasDisqualifyingFactor = true
		r.DisqualificationReasons = []string{"期望薪资超上限"}
	}
}

func TestRank_Basic(t *testing.T) {
	results := []Result{
		resultWith(1, 60),
		resultWith(2, 90),
		resultWith(3, 75),
	}
	ranked := Rank(results)
	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].CandidateID)
	assert.Equal(t, int64(3), ranked[1].CandidateID)
	assert.Equal(t, int64(1), ranked[2].CandidateID)
	for i, r := range ranked {
		require.NotNil(t, r.CandidateRank)
		assert.Equal(t, i+1, *r.CandidateRank)
	}
	assert.Equal(t, float64(100), ranked[0].Percentile)
	assert.Equal(t, 66.7, ranked[1].Percentile)
	assert.Equal(t, 33.3, ranked[2].Percentile)
}

func TestRank_Ties(t *testing.T) {
	// 总分相同先比系统经验分，再比候选人 ID，名次连续不并列
	results := []Result{
		resultWith(5, 80, func(r *Result) { r.ExperienceScore = 50 }),
		resultWith(3, 80, func(r *Result) { r.ExperienceScore = 70 }),
		resultWith(4, 80, func(r *Result) { r.ExperienceScore = 50 }),
	}
	ranked := Rank(results)
	assert.Equal(t, int64(3), ranked[0].CandidateID)
	assert.Equal(t, int64(4), ranked[1].CandidateID)
	assert.Equal(t, int64(5), ranked[2].CandidateID)
	ranks := make([]int, 0, 3)
	for _, r := range ranked {
		ranks = append(ranks, *r.CandidateRank)
	}
	assert.Equal(t, []int{1, 2, 3}, ranks)
}

func TestRank_DisqualifiedExcluded(t *testing.T) {
	results := []Result{
		resultWith(1, 95, disqualified()),
		resultWith(2, 60),
		resultWith(3, 70),
	}
	ranked := Rank(results)
	require.Len(t, ranked, 3)
	// 被取消资格的排最后且无名次，不计入 N
	assert.Equal(t, int64(3), ranked[0].CandidateID)
	assert.Equal(t, float64(100), ranked[0].Percentile)
	assert.Equal(t, int64(2), ranked[1].CandidateID)
	assert.Equal(t, float64(50), ranked[1].Percentile)
	assert.Equal(t, int64(1), ranked[2].CandidateID)
	assert.Nil(t, ranked[2].CandidateRank)
	assert.Equal(t, float64(0), ranked[2].Percentile)
}

// 复核放行后参与排名，但系统判定本身不变
func TestRank_OverrideReinstates(t *testing.T) {
	results := []Result{
		resultWith(1, 95, disqualified(), func(r *Result) { r.OverrideDisqualification = true }),
		resultWith(2, 60),
	}
	ranked := Rank(results)
	require.NotNil(t, ranked[0].CandidateRank)
	assert.Equal(t, int64(1), ranked[0].CandidateID)
	assert.Equal(t, 1, *ranked[0].CandidateRank)
	assert.True(t, ranked[0].HasDisqualifyingFactor)
}

// 人工总分生效后按人工分排序
func TestRank_UsesEffectiveScore(t *testing.T) {
	manual := 82.5
	results := []Result{
		resultWith(1, 61, func(r *Result) { r.ManualTotalScore = &manual }),
		resultWith(2, 70),
	}
	ranked := Rank(results)
	assert.Equal(t, int64(1), ranked[0].CandidateID)
	assert.Equal(t, 1, *ranked[0].CandidateRank)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestRank_ContiguousRanks(t *testing.T) {
	results := make([]Result, 0, 20)
	for i := int64(1); i <= 20; i++ {
		opts := []func(*Result){}
		if i%5 == 0 {
			opts = append(opts, disqualified())
		}
		results = append(results, resultWith(i, float64(50+i%7), opts...))
	}
	ranked := Rank(results)
	seen := make(map[int]bool)
	qualified := 0
	for _, r := range ranked {
		if r.EffectivelyDisqualified() {
			assert.Nil(t, r.CandidateRank)
			continue
		}
		qualified++
		require.NotNil(t, r.CandidateRank)
		assert.False(t, seen[*r.CandidateRank], "名次重复")
		seen[*r.CandidateRank] = true
	}
	for i := 1; i <= qualified; i++ {
		assert.True(t, seen[i], "名次不连续: %d", i)
	}
}
