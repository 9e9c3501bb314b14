package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_EffectiveScores(t *testing.T) {
	manual := 82.5
	testCases := []struct {
		name   string
		result Result
		want   float64
	}{
		{
			name:   "无人工分取系统分",
			result: Result{TotalScore: 61},
			want:   61,
		},
		{
			name:   "人工分优先",
			result: Result{TotalScore: 61, ManualTotalScore: &manual},
			want:   82.5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.result.EffectiveTotalScore())
		})
	}
}

func TestResult_EffectiveScorePerCategory(t *testing.T) {
	manual := 90.0
	r := Result{
		EducationScore:       70,
		ExperienceScore:      60,
		SkillsScore:          50,
		ClearanceScore:       100,
		ProfessionalScore:    40,
		ManualEducationScore: &manual,
	}
	assert.Equal(t, 90.0, r.EffectiveScore(CategoryEducation))
	assert.Equal(t, 60.0, r.EffectiveScore(CategoryExperience))
	assert.Equal(t, 50.0, r.EffectiveScore(CategorySkills))
	assert.Equal(t, 100.0, r.EffectiveScore(CategoryClearance))
	assert.Equal(t, 40.0, r.EffectiveScore(CategoryProfessional))
}

func TestResult_EffectivelyDisqualified(t *testing.T) {
	testCases := []struct {
		name     string
		hasDisq  bool
		override bool
		want     bool
	}{
		{name: "无取消资格因素", want: false},
		{name: "有因素未复核", hasDisq: true, want: true},
		{name: "有因素已复核放行", hasDisq: true, override: true, want: false},
		{name: "无因素误设复核位", override: true, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Result{
				HasDisqualifyingFactor:   tc.hasDisq,
				OverrideDisqualification: tc.override,
			}
			assert.Equal(t, tc.want, r.EffectivelyDisqualified())
		})
	}
}

func TestResult_Status(t *testing.T) {
	manual := 10.0
	assert.Equal(t, StatusQualified, Result{}.Status())
	assert.Equal(t, StatusFlagged, Result{FlaggedForReview: true}.Status())
	assert.Equal(t, StatusDisqualified, Result{HasDisqualifyingFactor: true, FlaggedForReview: true}.Status())
	assert.Equal(t, StatusQualified, Result{ManualTotalScore: &manual}.Status())
}

func TestComputeStats(t *testing.T) {
	manual := 95.0
	results := []Result{
		{TotalScore: 60},
		{TotalScore: 80, ManualTotalScore: &manual},
		{TotalScore: 70, HasDisqualifyingFactor: true},
	}
	stats := ComputeStats(results)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Qualified)
	// 统计口径用生效总分
	assert.Equal(t, 95.0, stats.TopScore)
	assert.Equal(t, 75.0, stats.AverageScore)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, Stats{}, stats)
}
