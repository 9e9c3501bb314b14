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

import (
	"fmt"
	"strings"

	"github.com/ajirahub/ajirahub/internal/candidate"
)

type Category uint8

const (
	CategoryEducation    Category = 1
	CategoryExperience   Category = 2
	CategorySkills       Category = 3
	CategoryClearance    Category = 4
	CategoryProfessional Category = 5
)

// Categories 固定遍历顺序，保证评估结果可复现
func Categories() []Category {
	return []Category{
		CategoryEducation,
		CategoryExperience,
		CategorySkills,
		CategoryClearance,
		CategoryProfessional,
	}
}

func (c Category) String() string {
	switch c {
	case CategoryEducation:
		return "education"
	case CategoryExperience:
		return "experience"
	case CategorySkills:
		return "skills"
	case CategoryClearance:
		return "clearance"
	case CategoryProfessional:
		return "professional"
	default:
		return "unknown"
	}
}

type CriterionKind uint8

const (
	// KindMandatory 未满足时标记 hasAllMandatory=false，并失去该项得分
	KindMandatory CriterionKind = 1
	// KindPreferred 加分项，未满足不扣分
	KindPreferred CriterionKind = 2
)

type MatchResult uint8

const (
	MatchNo  MatchResult = 0
	MatchYes MatchResult = 1
	// MatchUnknown 档案缺少判断所需字段，按未满足处理，但会打上"未完整评估"标记
	MatchUnknown MatchResult = 2
)

// Criterion 一条可求值的筛选条件。新增条件只是往列表里加一项，评估逻辑不变。
type Criterion struct {
	Key   string
	Label string
	Kind  CriterionKind
	Match func(p candidate.Profile) MatchResult
}

func matchBool(ok bool) MatchResult {
	if ok {
		return MatchYes
	}
	return MatchNo
}

func containsFold(list []string, target string) bool {
	for _, item := range list {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}

// CriteriaFor 把一个类目的配置物化为条件列表，只包含启用的条件
func (c Criteria) CriteriaFor(cat Category) []Criterion {
	switch cat {
	case CategoryEducation:
		return c.educationCriteria()
	case CategoryExperience:
		return c.experienceCriteria()
	case CategorySkills:
		return c.skillsCriteria()
	case CategoryClearance:
		return c.clearanceCriteria()
	case CategoryProfessional:
		return c.professionalCriteria()
	default:
		return nil
	}
}

func (c Criteria) educationCriteria() []Criterion {
	var res []Criterion
	edu := c.Education
	if edu.RequireDegree {
		res = append(res, Criterion{
			Key:   "education.degree",
			Label: "持有学位",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.HighestDegree().Level > candidate.DegreeUnknown)
			},
		})
	}
	if edu.MinDegreeLevel > candidate.DegreeUnknown {
		res = append(res, Criterion{
			Key:   "education.minLevel",
			Label: fmt.Sprintf("最低学历 %s", edu.MinDegreeLevel),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.HighestDegree().Level >= edu.MinDegreeLevel)
			},
		})
	}
	if len(edu.Fields) > 0 {
		res = append(res, Criterion{
			Key:   "education.field",
			Label: fmt.Sprintf("专业方向属于 %s", strings.Join(edu.Fields, "/")),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				for _, e := range p.Education {
					if containsFold(edu.Fields, e.Field) {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	if edu.MinGrade > candidate.GradeUnknown {
		res = append(res, Criterion{
			Key:   "education.minGrade",
			Label: "成绩达到最低等级",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				best := p.HighestDegree()
				if best.Level == candidate.DegreeUnknown {
					return MatchNo
				}
				if best.Grade == candidate.GradeUnknown {
					return MatchUnknown
				}
				return matchBool(best.Grade >= edu.MinGrade)
			},
		})
	}
	if len(edu.Institutions) > 0 {
		res = append(res, Criterion{
			Key:   "education.institution",
			Label: fmt.Sprintf("毕业院校属于 %s", strings.Join(edu.Institutions, "/")),
			Kind:  KindPreferred,
			Match: func(p candidate.Profile) MatchResult {
				for _, e := range p.Education {
					if containsFold(edu.Institutions, e.Institution) {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	return res
}

func (c Criteria) experienceCriteria() []Criterion {
	var res []Criterion
	exp := c.Experience
	if exp.MinYears > 0 {
		res = append(res, Criterion{
			Key:   "experience.minYears",
			Label: fmt.Sprintf("工作年限不少于 %.1f 年", exp.MinYears),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.TotalYears() >= exp.MinYears)
			},
		})
	}
	if exp.MaxYears > 0 {
		res = append(res, Criterion{
			Key:   "experience.maxYears",
			Label: fmt.Sprintf("工作年限不超过 %.1f 年", exp.MaxYears),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.TotalYears() <= exp.MaxYears)
			},
		})
	}
	if exp.MinSeniorYears > 0 {
		res = append(res, Criterion{
			Key:   "experience.minSeniorYears",
			Label: fmt.Sprintf("高级岗位年限不少于 %.1f 年", exp.MinSeniorYears),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.SeniorYears() >= exp.MinSeniorYears)
			},
		})
	}
	if exp.RequireManagement {
		res = append(res, Criterion{
			Key:   "experience.management",
			Label: "有管理经验",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				for _, e := range p.Experience {
					if e.Management {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	if exp.MinTeamSize > 0 {
		res = append(res, Criterion{
			Key:   "experience.minTeamSize",
			Label: fmt.Sprintf("带过不少于 %d 人的团队", exp.MinTeamSize),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.MaxTeamSize() >= exp.MinTeamSize)
			},
		})
	}
	if len(exp.Industries) > 0 {
		res = append(res, Criterion{
			Key:   "experience.industry",
			Label: fmt.Sprintf("行业背景属于 %s", strings.Join(exp.Industries, "/")),
			Kind:  KindPreferred,
			Match: func(p candidate.Profile) MatchResult {
				for _, e := range p.Experience {
					if containsFold(exp.Industries, e.Industry) {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	if len(exp.Titles) > 0 {
		res = append(res, Criterion{
			Key:   "experience.title",
			Label: fmt.Sprintf("担任过 %s", strings.Join(exp.Titles, "/")),
			Kind:  KindPreferred,
			Match: func(p candidate.Profile) MatchResult {
				for _, e := range p.Experience {
					if containsFold(exp.Titles, e.Title) {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	for _, et := range []struct {
		on    bool
		key   string
		label string
		typ   candidate.EmployerType
	}{
		{exp.PreferMNC, "experience.mnc", "有跨国公司经历", candidate.EmployerMNC},
		{exp.PreferStartup, "experience.startup", "有创业公司经历", candidate.EmployerStartup},
		{exp.PreferNGO, "experience.ngo", "有 NGO 经历", candidate.EmployerNGO},
		{exp.PreferGovernment, "experience.government", "有政府部门经历", candidate.EmployerGovernment},
	} {
		if !et.on {
			continue
		}
		typ := et.typ
		res = append(res, Criterion{
			Key:   et.key,
			Label: et.label,
			Kind:  KindPreferred,
			Match: func(p candidate.Profile) MatchResult {
				for _, e := range p.Experience {
					if e.EmployerType == typ {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	return res
}

func (c Criteria) skillsCriteria() []Criterion {
	var res []Criterion
	for _, skill := range c.Skills.Required {
		s := skill
		res = append(res, Criterion{
			Key:   "skills.required." + strings.ToLower(s),
			Label: fmt.Sprintf("掌握 %s", s),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(containsFold(p.Skills, s))
			},
		})
	}
	for _, skill := range c.Skills.Preferred {
		s := skill
		res = append(res, Criterion{
			Key:   "skills.preferred." + strings.ToLower(s),
			Label: fmt.Sprintf("加分技能 %s", s),
			Kind:  KindPreferred,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(containsFold(p.Skills, s))
			},
		})
	}
	return res
}

func (c Criteria) clearanceCriteria() []Criterion {
	var res []Criterion
	for _, cl := range []struct {
		on    bool
		key   string
		label string
		has   func(cs candidate.Clearances) bool
	}{
		{c.Clearances.Tax, "clearance.tax", "税务合规证明（KRA）", func(cs candidate.Clearances) bool { return cs.Tax }},
		{c.Clearances.HELB, "clearance.helb", "HELB 清偿证明", func(cs candidate.Clearances) bool { return cs.HELB }},
		{c.Clearances.DCI, "clearance.dci", "DCI 无犯罪证明", func(cs candidate.Clearances) bool { return cs.DCI }},
		{c.Clearances.CRB, "clearance.crb", "CRB 征信证明", func(cs candidate.Clearances) bool { return cs.CRB }},
		{c.Clearances.EACC, "clearance.eacc", "EACC 廉政证明", func(cs candidate.Clearances) bool { return cs.EACC }},
	} {
		if !cl.on {
			continue
		}
		has := cl.has
		res = append(res, Criterion{
			Key:   cl.key,
			Label: cl.label,
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(has(p.Clearances))
			},
		})
	}
	return res
}

func (c Criteria) professionalCriteria() []Criterion {
	var res []Criterion
	pro := c.Professional
	if pro.RequireMembership {
		res = append(res, Criterion{
			Key:   "professional.membership",
			Label: "持有专业协会会员资格",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(len(p.Professional.Memberships) > 0)
			},
		})
	}
	if pro.RequireGoodStanding {
		res = append(res, Criterion{
			Key:   "professional.goodStanding",
			Label: "会员资格状态良好",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.Professional.GoodStanding)
			},
		})
	}
	if pro.RequireLeadershipCourse {
		res = append(res, Criterion{
			Key:   "professional.leadership",
			Label: "完成领导力课程",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				if !p.Professional.LeadershipCourse {
					return MatchNo
				}
				return matchBool(p.Professional.LeadershipCourseMonths >= pro.MinLeadershipMonths)
			},
		})
	}
	for _, cert := range pro.RequiredCertifications {
		ct := cert
		res = append(res, Criterion{
			Key:   "professional.cert." + strings.ToLower(ct),
			Label: fmt.Sprintf("持有认证 %s", ct),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(containsFold(p.Professional.Certifications, ct))
			},
		})
	}
	for _, cert := range pro.PreferredCertifications {
		ct := cert
		res = append(res, Criterion{
			Key:   "professional.prefCert." + strings.ToLower(ct),
			Label: fmt.Sprintf("加分认证 %s", ct),
			Kind:  KindPreferred,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(containsFold(p.Professional.Certifications, ct))
			},
		})
	}
	if pro.MinPublications > 0 {
		res = append(res, Criterion{
			Key:   "professional.publications",
			Label: fmt.Sprintf("发表成果不少于 %d 篇", pro.MinPublications),
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(p.Professional.Publications >= pro.MinPublications)
			},
		})
	}
	for _, link := range []struct {
		on    bool
		key   string
		label string
		url   func(pp candidate.Professional) string
	}{
		{pro.PreferPortfolio, "professional.portfolio", "提供作品集", func(pp candidate.Professional) string { return pp.PortfolioURL }},
		{pro.PreferGithub, "professional.github", "提供 GitHub 主页", func(pp candidate.Professional) string { return pp.GithubURL }},
		{pro.PreferLinkedin, "professional.linkedin", "提供 LinkedIn 主页", func(pp candidate.Professional) string { return pp.LinkedinURL }},
	} {
		if !link.on {
			continue
		}
		url := link.url
		res = append(res, Criterion{
			Key:   link.key,
			Label: link.label,
			Kind:  KindPreferred,
			Match: func(p candidate.Profile) MatchResult {
				return matchBool(url(p.Professional) != "")
			},
		})
	}
	if pro.RequireSeniorReferee {
		res = append(res, Criterion{
			Key:   "professional.seniorReferee",
			Label: "有高级职位推荐人",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				for _, ref := range p.Referees {
					if ref.Senior {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	if pro.RequireAcademicReferee {
		res = append(res, Criterion{
			Key:   "professional.academicReferee",
			Label: "有学术推荐人",
			Kind:  KindMandatory,
			Match: func(p candidate.Profile) MatchResult {
				for _, ref := range p.Referees {
					if ref.Academic {
						return MatchYes
					}
				}
				return MatchNo
			},
		})
	}
	return res
}
