package domain

import (
	"testing"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/stretchr/testify/assert"
)

func fullProfile() candidate.Profile {
	return candidate.Profile{
		ID:       1,
		FullName: "Wanjiku Kamau",
		Personal: candidate.Personal{Age: 30, Gender: "female", Nationality: "Kenyan"},
		Education: []candidate.Education{
			{Level: candidate.DegreeBachelors, Field: "Computer Science", Institution: "University of Nairobi", Grade: candidate.GradeSecondUpper},
		},
		Experience: []candidate.Experience{
			{Title: "Software Engineer", Industry: "Fintech", Years: 4, Current: true},
			{Title: "Senior Engineer", Industry: "Banking", Years: 3, Senior: true, Management: true, TeamSize: 6},
		},
		Skills: []string{"Go", "MySQL", "Kubernetes"},
		Professional: candidate.Professional{
			Memberships:    []string{"ISACA"},
			GoodStanding:   true,
			Certifications: []string{"CISA"},
			GithubURL:      "https://github.com/wanjiku",
		},
		Clearances: candidate.Clearances{Tax: true, HELB: true, DCI: true, CRB: true, EACC: true},
		Referees: []candidate.Referee{
			{Name: "A", Senior: true},
			{Name: "B", Academic: true},
		},
		Compensation: candidate.Compensation{ExpectedSalary: 300000, NoticeDays: 30},
	}
}

func TestEvaluate_EqualSplit(t *testing.T) {
	// 技能类目启用三条硬性条件，各占 100/3
	c := Criteria{
		Weights: validWeights(),
		Skills:  SkillsCriteria{Required: []string{"Go", "MySQL", "Rust"}},
	}
	p := fullProfile()
	ev := Evaluate(c, p)
	// 满足两条，33.3 * 2
	assert.Equal(t, 66.7, ev.Subscores[CategorySkills])
	assert.False(t, ev.HasAllMandatory)
	assert.Contains(t, ev.Missed, "掌握 Rust")
}

func TestEvaluate_CategoryNotInPlay(t *testing.T) {
	// 未启用任何条件的类目得 100 分
	c := Criteria{Weights: validWeights()}
	ev := Evaluate(c, fullProfile())
	for _, cat := range Categories() {
		assert.Equal(t, float64(100), ev.Subscores[cat], cat.String())
	}
	assert.True(t, ev.HasAllMandatory)
}

func TestEvaluate_PreferredBonus(t *testing.T) {
	testCases := []struct {
		name      string
		criteria  SkillsCriteria
		wantScore float64
		wantBonus []string
	}{
		{
			name:      "只有加分项且满足",
			criteria:  SkillsCriteria{Preferred: []string{"Go"}},
			wantScore: 100,
			wantBonus: []string{"加分技能 Go（满足）"},
		},
		{
			name:      "只有加分项且不满足",
			criteria:  SkillsCriteria{Preferred: []string{"Rust"}},
			wantScore: 100,
			wantBonus: []string{"加分技能 Rust（未满足）"},
		},
		{
			name:      "硬性条件满分后加分项封顶",
			criteria:  SkillsCriteria{Required: []string{"Go"}, Preferred: []string{"MySQL"}},
			wantScore: 100,
		},
		{
			name:      "加分项补足硬性缺口",
			criteria:  SkillsCriteria{Required: []string{"Go", "Rust"}, Preferred: []string{"MySQL"}},
			wantScore: 55,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Criteria{Weights: validWeights(), Skills: tc.criteria}
			ev := Evaluate(c, fullProfile())
			assert.Equal(t, tc.wantScore, ev.Subscores[CategorySkills])
			for _, b := range tc.wantBonus {
				assert.Contains(t, ev.Bonus, b)
			}
		})
	}
}

// 缺硬性学历但不取消资格：资格校验与类目打分互相独立
func TestEvaluate_MissingMandatoryDegreeDoesNotDisqualify(t *testing.T) {
	c := Criteria{
		Weights: validWeights(),
		Education: EducationCriteria{
			MinDegreeLevel: candidate.DegreeMasters,
		},
		Skills: SkillsCriteria{Required: []string{"Go"}},
	}
	p := fullProfile()
	ev := Evaluate(c, p)
	assert.False(t, ev.HasAllMandatory)
	assert.Equal(t, float64(0), ev.Subscores[CategoryEducation])
	assert.Equal(t, float64(100), ev.Subscores[CategorySkills])
	assert.Contains(t, ev.Missed, "最低学历 Masters")

	disqualified, reasons := CheckDisqualification(c, p)
	assert.False(t, disqualified)
	assert.Empty(t, reasons)
}

func TestEvaluate_IncompleteProfile(t *testing.T) {
	c := Criteria{
		Weights: validWeights(),
		Education: EducationCriteria{
			MinGrade: candidate.GradeSecondUpper,
		},
	}
	p := fullProfile()
	p.Education[0].Grade = candidate.GradeUnknown
	ev := Evaluate(c, p)
	// 缺成绩按未满足处理，但要打上未完整评估标记
	assert.True(t, ev.Incomplete)
	assert.False(t, ev.HasAllMandatory)
	assert.Equal(t, float64(0), ev.Subscores[CategoryEducation])
}

func TestEvaluate_ClearanceCriteria(t *testing.T) {
	c := Criteria{
		Weights:    validWeights(),
		Clearances: ClearanceCriteria{Tax: true, HELB: true, DCI: true, CRB: true},
	}
	p := fullProfile()
	p.Clearances.CRB = false
	ev := Evaluate(c, p)
	assert.Equal(t, float64(75), ev.Subscores[CategoryClearance])
	assert.Contains(t, ev.Missed, "CRB 征信证明")
	assert.Len(t, ev.Matched, 3)
}

func TestEvaluate_Deterministic(t *testing.T) {
	c := Criteria{
		Weights:    validWeights(),
		Education:  EducationCriteria{MinDegreeLevel: candidate.DegreeBachelors, Institutions: []string{"University of Nairobi"}},
		Experience: ExperienceCriteria{MinYears: 5, Industries: []string{"Fintech"}},
		Skills:     SkillsCriteria{Required: []string{"Go", "MySQL"}, Preferred: []string{"Rust"}},
		Clearances: ClearanceCriteria{Tax: true},
		Professional: ProfessionalCriteria{
			RequireMembership:       true,
			PreferredCertifications: []string{"CISA", "PMP"},
		},
	}
	p := fullProfile()
	first := Evaluate(c, p)
	second := Evaluate(c, p)
	assert.Equal(t, first, second)
}
