package domain

import (
	"testing"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/stretchr/testify/assert"
)

func TestCheckDisqualification(t *testing.T) {
	testCases := []struct {
		name        string
		criteria    Criteria
		profile     func() candidate.Profile
		wantDisq    bool
		wantReasons int
	}{
		{
			name:     "无任何硬性门槛",
			criteria: Criteria{Weights: validWeights()},
			profile:  fullProfile,
		},
		{
			name: "期望薪资超上限",
			criteria: Criteria{
				Weights:      validWeights(),
				Compensation: CompensationCriteria{MaxExpectedSalary: 500000},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				p.Compensation.ExpectedSalary = 600000
				return p
			},
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "年龄低于下限",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{MinAge: 35},
			},
			profile:     fullProfile,
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "缺年龄数据不取消资格",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{MinAge: 35, MaxAge: 45},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				p.Personal.Age = 0
				return p
			},
		},
		{
			name: "多项违规全部收集不短路",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{MinAge: 35},
				Compensation: CompensationCriteria{
					MaxExpectedSalary:            200000,
					MaxNoticeDays:                14,
					RequireImmediateAvailability: true,
				},
			},
			profile:     fullProfile,
			wantDisq:    true,
			wantReasons: 4,
		},
		{
			name: "要求在职但候选人不在职",
			criteria: Criteria{
				Weights:    validWeights(),
				Experience: ExperienceCriteria{RequireCurrentlyEmployed: true},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				for i := range p.Experience {
					p.Experience[i].Current = false
				}
				return p
			},
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "排除在职",
			criteria: Criteria{
				Weights:    validWeights(),
				Experience: ExperienceCriteria{ExcludeCurrentlyEmployed: true},
			},
			profile:     fullProfile,
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "现场岗位遇到只接受远程的候选人",
			criteria: Criteria{
				Weights:      validWeights(),
				Compensation: CompensationCriteria{WorkMode: candidate.WorkModeOnsite},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				p.Compensation.WorkMode = candidate.WorkModeRemote
				return p
			},
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "混合办公不冲突",
			criteria: Criteria{
				Weights:      validWeights(),
				Compensation: CompensationCriteria{WorkMode: candidate.WorkModeOnsite},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				p.Compensation.WorkMode = candidate.WorkModeHybrid
				return p
			},
		},
		{
			name: "推荐人数量不足",
			criteria: Criteria{
				Weights:      validWeights(),
				Professional: ProfessionalCriteria{RequireReferees: true, MinReferees: 3},
			},
			profile:     fullProfile,
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "只勾选要求推荐人时至少要一个",
			criteria: Criteria{
				Weights:      validWeights(),
				Professional: ProfessionalCriteria{RequireReferees: true},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				p.Referees = nil
				return p
			},
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "仅面向残障人士",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{AcceptPLWD: true, RequirePLWD: true},
			},
			profile:     fullProfile,
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "所在郡不在限定范围",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{Counties: []string{"Nairobi", "Kiambu"}},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				p.Personal.County = "Mombasa"
				return p
			},
			wantDisq:    true,
			wantReasons: 1,
		},
		{
			name: "所在郡匹配忽略大小写",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{Counties: []string{"Nairobi", "Kiambu"}},
			},
			profile: func() candidate.Profile {
				p := fullProfile()
				p.Personal.County = "nairobi"
				return p
			},
		},
		{
			name: "缺郡数据不取消资格",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{Counties: []string{"Nairobi"}},
			},
			profile: fullProfile,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			disq, reasons := CheckDisqualification(tc.criteria, tc.profile())
			assert.Equal(t, tc.wantDisq, disq)
			assert.Len(t, reasons, tc.wantReasons)
		})
	}
}

// 薪资超标的理由要能看出是薪资问题
func TestCheckDisqualification_SalaryReason(t *testing.T) {
	c := Criteria{
		Weights:      validWeights(),
		Compensation: CompensationCriteria{MaxExpectedSalary: 500000},
	}
	p := fullProfile()
	p.Compensation.ExpectedSalary = 600000
	disq, reasons := CheckDisqualification(c, p)
	assert.True(t, disq)
	assert.Contains(t, reasons[0], "600000")
	assert.Contains(t, reasons[0], "500000")
}
