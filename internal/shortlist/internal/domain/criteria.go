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
	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/pkg/errors"
)

var (
	ErrInvalidWeights   = errors.New("五个类目权重之和必须等于 100")
	ErrConflictingFlags = errors.New("筛选条件互相冲突")
)

// Criteria 一个岗位的入围筛选配置，与岗位一一对应
type Criteria struct {
	ID    int64
	JobID int64

	Weights Weights

	Personal     PersonalCriteria
	Education    EducationCriteria
	Experience   ExperienceCriteria
	Skills       SkillsCriteria
	Professional ProfessionalCriteria
	Clearances   ClearanceCriteria
	Compensation CompensationCriteria

	Ctime int64
	Utime int64
}

type Weights struct {
	Education    int
	Experience   int
	Skills       int
	Clearance    int
	Professional int
}

func (w Weights) Sum() int {
	return w.Education + w.Experience + w.Skills + w.Clearance + w.Professional
}

func (w Weights) Of(cat Category) int {
	switch cat {
	case CategoryEducation:
		return w.Education
	case CategoryExperience:
		return w.Experience
	case CategorySkills:
		return w.Skills
	case CategoryClearance:
		return w.Clearance
	case CategoryProfessional:
		return w.Professional
	default:
		return 0
	}
}

// PersonalCriteria 只参与资格硬性校验，不参与类目打分
type PersonalCriteria struct {
	MinAge      int
	MaxAge      int
	Gender      string
	Nationality string
	Counties    []string
	AcceptPLWD  bool
	RequirePLWD bool
}

type EducationCriteria struct {
	RequireDegree  bool
	MinDegreeLevel candidate.DegreeLevel
	// Fields 学科范围，非空即为硬性条件
	Fields       []string
	Institutions []string
	MinGrade     candidate.Grade
}

type ExperienceCriteria struct {
	MinYears       float64
	MaxYears       float64
	MinSeniorYears float64

	RequireManagement bool
	PreferMNC         bool
	PreferStartup     bool
	PreferNGO         bool
	PreferGovernment  bool

	// 两者互斥，校验时兜底
	RequireCurrentlyEmployed bool
	ExcludeCurrentlyEmployed bool

	Industries  []string
	Titles      []string
	MinTeamSize int
}

type SkillsCriteria struct {
	Required  []string
	Preferred []string
}

type ProfessionalCriteria struct {
	RequireMembership       bool
	RequireGoodStanding     bool
	RequireLeadershipCourse bool
	MinLeadershipMonths     int

	RequiredCertifications  []string
	PreferredCertifications []string

	MinPublications int

	PreferPortfolio bool
	PreferGithub    bool
	PreferLinkedin  bool

	RequireReferees        bool
	MinReferees            int
	RequireSeniorReferee   bool
	RequireAcademicReferee bool
}

func (p ProfessionalCriteria) refereesRequired() bool {
	return p.RequireReferees || p.MinReferees > 0
}

// ClearanceCriteria 每个为 true 的项都是一条硬性打分条件
type ClearanceCriteria struct {
	Tax  bool
	HELB bool
	DCI  bool
	CRB  bool
	EACC bool
}

type CompensationCriteria struct {
	MinExpectedSalary            int64
	MaxExpectedSalary            int64
	MaxNoticeDays                int
	RequireImmediateAvailability bool
	// WorkMode 岗位要求的办公方式，WorkModeAny 表示不限
	WorkMode candidate.WorkMode
}

// flagDependency 前端里"勾了 A 才能勾 B"的那类约束，集中建表，校验时统一检查
type flagDependency struct {
	name string
	// set 该标记是否被启用
	set func(c Criteria) bool
	// ok 启用时其前置条件是否满足
	ok func(c Criteria) bool
}

var flagDependencies = []flagDependency{
	{
		name: "requirePLWD 要求同时 acceptPLWD",
		set:  func(c Criteria) bool { return c.Personal.RequirePLWD },
		ok:   func(c Criteria) bool { return c.Personal.AcceptPLWD },
	},
	{
		name: "requireCurrentlyEmployed 与 excludeCurrentlyEmployed 互斥",
		set:  func(c Criteria) bool { return c.Experience.RequireCurrentlyEmployed },
		ok:   func(c Criteria) bool { return !c.Experience.ExcludeCurrentlyEmployed },
	},
	{
		name: "requireSeniorReferee 依赖启用推荐人要求",
		set:  func(c Criteria) bool { return c.Professional.RequireSeniorReferee },
		ok:   func(c Criteria) bool { return c.Professional.refereesRequired() },
	},
	{
		name: "requireAcademicReferee 依赖启用推荐人要求",
		set:  func(c Criteria) bool { return c.Professional.RequireAcademicReferee },
		ok:   func(c Criteria) bool { return c.Professional.refereesRequired() },
	},
}

// Validate 持久化与生成之前都要走这里，纯函数
func (c Criteria) Validate() error {
	if c.Weights.Sum() != 100 {
		return errors.WithMessagef(ErrInvalidWeights, "当前权重之和为 %d", c.Weights.Sum())
	}
	for _, dep := range flagDependencies {
		if dep.set(c) && !dep.ok(c) {
			return errors.WithMessage(ErrConflictingFlags, dep.name)
		}
	}
	return nil
}
