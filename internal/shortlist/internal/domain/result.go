// Copyright 2024 ajirahub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "github.com/ajirahub/ajirahub/internal/candidate"

// Result 一个 (岗位, 候选人) 的入围评估结果。
// 系统分由一次生成写入后不再改动，人工分只叠加在旁边，排序用"生效值"。
type Result struct {
	ID            int64
	JobID         int64
	ApplicationID int64
	CandidateID   int64

	// 冗余的展示字段，生成时从候选人档案抄一份
	CandidateName   string
	CandidateEmail  string
	CandidatePhone  string
	CandidateDegree candidate.DegreeLevel

	EducationScore    float64
	ExperienceScore   float64
	SkillsScore       float64
	ClearanceScore    float64
	ProfessionalScore float64
	TotalScore        float64

	ManualEducationScore    *float64
	ManualExperienceScore   *float64
	ManualSkillsScore       *float64
	ManualClearanceScore    *float64
	ManualProfessionalScore *float64
	ManualTotalScore        *float64

	HasDisqualifyingFactor   bool
	DisqualificationReasons  []string
	OverrideDisqualification bool

	MatchedCriteria []string
	MissedCriteria  []string
	BonusCriteria   []string
	HasAllMandatory bool
	// IncompleteProfile 生成时档案缺字段，结果未完整评估
	IncompleteProfile bool

	// CandidateRank 为 nil 表示未参与排名（被取消资格）
	CandidateRank *int
	Percentile    float64

	HrNotes          string
	FlaggedForReview bool
	InternalRating   uint8
	// AuditFlag 只要有人改过人工分或资格复核位就永久为 true
	AuditFlag bool

	GeneratedAt int64
	Utime       int64
}

func effective(manual *float64, system float64) float64 {
	if manual != nil {
		return *manual
	}
	return system
}

func (r Result) EffectiveScore(cat Category) float64 {
	switch cat {
	case CategoryEducation:
		return effective(r.ManualEducationScore, r.EducationScore)
	case CategoryExperience:
		return effective(r.ManualExperienceScore, r.ExperienceScore)
	case CategorySkills:
		return effective(r.ManualSkillsScore, r.SkillsScore)
	case CategoryClearance:
		return effective(r.ManualClearanceScore, r.ClearanceScore)
	case CategoryProfessional:
		return effective(r.ManualProfessionalScore, r.ProfessionalScore)
	default:
		return 0
	}
}

func (r Result) EffectiveTotalScore() float64 {
	return effective(r.ManualTotalScore, r.TotalScore)
}

// EffectivelyDisqualified 系统判定可被复核位覆盖，但系统判定本身保留
func (r Result) EffectivelyDisqualified() bool {
	return r.HasDisqualifyingFactor && !r.OverrideDisqualification
}

// HasManualInput 是否存在任何人工打分
func (r Result) HasManualInput() bool {
	return r.ManualEducationScore != nil ||
		r.ManualExperienceScore != nil ||
		r.ManualSkillsScore != nil ||
		r.ManualClearanceScore != nil ||
		r.ManualProfessionalScore != nil ||
		r.ManualTotalScore != nil
}

// AdminScores 一次人工打分请求的载荷，nil 表示该项不改写系统分
type AdminScores struct {
	Education    *float64
	Experience   *float64
	Skills       *float64
	Clearance    *float64
	Professional *float64
	Total        *float64
}

const (
	StatusQualified    = "qualified"
	StatusDisqualified = "disqualified"
	StatusFlagged      = "flagged"
)

// Status 列表与导出过滤用的派生状态
func (r Result) Status() string {
	if r.EffectivelyDisqualified() {
		return StatusDisqualified
	}
	if r.FlaggedForReview {
		return StatusFlagged
	}
	return StatusQualified
}

type Stats struct {
	Total        int
	Qualified    int
	TopScore     float64
	AverageScore float64
	// 本批结果的生成时间，毫秒时间戳
	GeneratedAt int64
}

// ComputeStats 统计口径使用生效总分，含被取消资格的结果
func ComputeStats(results []Result) Stats {
	stats := Stats{Total: len(results)}
	if len(results) == 0 {
		return stats
	}
	var sum float64
	for _, r := range results {
		score := r.EffectiveTotalScore()
		sum += score
		if score > stats.TopScore {
			stats.TopScore = score
		}
		if !r.EffectivelyDisqualified() {
			stats.Qualified++
		}
	}
	stats.AverageScore = round1(sum / float64(len(results)))
	return stats
}
