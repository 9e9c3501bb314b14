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

package repository

import (
	"context"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository/cache"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository/dao"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./criteria.go -package=repomocks -destination=./mocks/criteria.mock.go CriteriaRepository

type CriteriaRepository interface {
	Save(ctx context.Context, c domain.Criteria) (int64, error)
	FindByJobId(ctx context.Context, jobId int64) (domain.Criteria, error)
}

type criteriaRepository struct {
	dao    dao.CriteriaDAO
	cache  cache.CriteriaCache
	logger *elog.Component
}

func NewCriteriaRepository(d dao.CriteriaDAO, c cache.CriteriaCache) CriteriaRepository {
	return &criteriaRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *criteriaRepository) Save(ctx context.Context, c domain.Criteria) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(c))
	if err != nil {
		return 0, err
	}
	// 缓存失效失败只记日志，下次读库兜底
	err = r.cache.Del(ctx, c.JobID)
	if err != nil {
		r.logger.Error("清理筛选标准缓存失败",
			elog.FieldErr(err),
			elog.Int64("jobId", c.JobID))
	}
	return id, nil
}

func (r *criteriaRepository) FindByJobId(ctx context.Context, jobId int64) (domain.Criteria, error) {
	res, err := r.cache.Get(ctx, jobId)
	if err == nil {
		return res, nil
	}
	entity, err := r.dao.FindByJobId(ctx, jobId)
	if err != nil {
		return domain.Criteria{}, err
	}
	res = r.toDomain(entity)
	err = r.cache.Set(ctx, res)
	if err != nil {
		r.logger.Error("回填筛选标准缓存失败",
			elog.FieldErr(err),
			elog.Int64("jobId", jobId))
	}
	return res, nil
}

func (r *criteriaRepository) toEntity(c domain.Criteria) dao.Criteria {
	return dao.Criteria{
		Id:    c.ID,
		JobId: c.JobID,

		EducationWeight:    c.Weights.Education,
		ExperienceWeight:   c.Weights.Experience,
		SkillsWeight:       c.Weights.Skills,
		ClearanceWeight:    c.Weights.Clearance,
		ProfessionalWeight: c.Weights.Professional,

		Personal: sqlx.JsonColumn[dao.PersonalCriteria]{
			Val: dao.PersonalCriteria{
				MinAge:      c.Personal.MinAge,
				MaxAge:      c.Personal.MaxAge,
				Gender:      c.Personal.Gender,
				Nationality: c.Personal.Nationality,
				Counties:    c.Personal.Counties,
				AcceptPLWD:  c.Personal.AcceptPLWD,
				RequirePLWD: c.Personal.RequirePLWD,
			},
			Valid: true,
		},
		Education: sqlx.JsonColumn[dao.EducationCriteria]{
			Val: dao.EducationCriteria{
				RequireDegree:  c.Education.RequireDegree,
				MinDegreeLevel: c.Education.MinDegreeLevel.ToUint8(),
				Fields:         c.Education.Fields,
				Institutions:   c.Education.Institutions,
				MinGrade:       c.Education.MinGrade.ToUint8(),
			},
			Valid: true,
		},
		Experience: sqlx.JsonColumn[dao.ExperienceCriteria]{
			Val: dao.ExperienceCriteria{
				MinYears:                 c.Experience.MinYears,
				MaxYears:                 c.Experience.MaxYears,
				MinSeniorYears:           c.Experience.MinSeniorYears,
				RequireManagement:        c.Experience.RequireManagement,
				PreferMNC:                c.Experience.PreferMNC,
				PreferStartup:            c.Experience.PreferStartup,
				PreferNGO:                c.Experience.PreferNGO,
				PreferGovernment:         c.Experience.PreferGovernment,
				RequireCurrentlyEmployed: c.Experience.RequireCurrentlyEmployed,
				ExcludeCurrentlyEmployed: c.Experience.ExcludeCurrentlyEmployed,
				Industries:               c.Experience.Industries,
				Titles:                   c.Experience.Titles,
				MinTeamSize:              c.Experience.MinTeamSize,
			},
			Valid: true,
		},
		Skills: sqlx.JsonColumn[dao.SkillsCriteria]{
			Val: dao.SkillsCriteria{
				Required:  c.Skills.Required,
				Preferred: c.Skills.Preferred,
			},
			Valid: true,
		},
		Professional: sqlx.JsonColumn[dao.ProfessionalCriteria]{
			Val: dao.ProfessionalCriteria{
				RequireMembership:       c.Professional.RequireMembership,
				RequireGoodStanding:     c.Professional.RequireGoodStanding,
				RequireLeadershipCourse: c.Professional.RequireLeadershipCourse,
				MinLeadershipMonths:     c.Professional.MinLeadershipMonths,
				RequiredCertifications:  c.Professional.RequiredCertifications,
				PreferredCertifications: c.Professional.PreferredCertifications,
				MinPublications:         c.Professional.MinPublications,
				PreferPortfolio:         c.Professional.PreferPortfolio,
				PreferGithub:            c.Professional.PreferGithub,
				PreferLinkedin:          c.Professional.PreferLinkedin,
				RequireReferees:         c.Professional.RequireReferees,
				MinReferees:             c.Professional.MinReferees,
				RequireSeniorReferee:    c.Professional.RequireSeniorReferee,
				RequireAcademicReferee:  c.Professional.RequireAcademicReferee,
			},
			Valid: true,
		},
		Clearances: sqlx.JsonColumn[dao.ClearanceCriteria]{
			Val: dao.ClearanceCriteria{
				Tax:  c.Clearances.Tax,
				HELB: c.Clearances.HELB,
				DCI:  c.Clearances.DCI,
				CRB:  c.Clearances.CRB,
				EACC: c.Clearances.EACC,
			},
			Valid: true,
		},
		Compensation: sqlx.JsonColumn[dao.CompensationCriteria]{
			Val: dao.CompensationCriteria{
				MinExpectedSalary:            c.Compensation.MinExpectedSalary,
				MaxExpectedSalary:            c.Compensation.MaxExpectedSalary,
				MaxNoticeDays:                c.Compensation.MaxNoticeDays,
				RequireImmediateAvailability: c.Compensation.RequireImmediateAvailability,
				WorkMode:                     c.Compensation.WorkMode.ToUint8(),
			},
			Valid: true,
		},
	}
}

func (r *criteriaRepository) toDomain(c dao.Criteria) domain.Criteria {
	return domain.Criteria{
		ID:    c.Id,
		JobID: c.JobId,
		Weights: domain.Weights{
			Education:    c.EducationWeight,
			Experience:   c.ExperienceWeight,
			Skills:       c.SkillsWeight,
			Clearance:    c.ClearanceWeight,
			Professional: c.ProfessionalWeight,
		},
		Personal: domain.PersonalCriteria{
			MinAge:      c.Personal.Val.MinAge,
			MaxAge:      c.Personal.Val.MaxAge,
			Gender:      c.Personal.Val.Gender,
			Nationality: c.Personal.Val.Nationality,
			Counties:    c.Personal.Val.Counties,
			AcceptPLWD:  c.Personal.Val.AcceptPLWD,
			RequirePLWD: c.Personal.Val.RequirePLWD,
		},
		Education: domain.EducationCriteria{
			RequireDegree:  c.Education.Val.RequireDegree,
			MinDegreeLevel: candidate.DegreeLevel(c.Education.Val.MinDegreeLevel),
			Fields:         c.Education.Val.Fields,
			Institutions:   c.Education.Val.Institutions,
			MinGrade:       candidate.Grade(c.Education.Val.MinGrade),
		},
		Experience: domain.ExperienceCriteria{
			MinYears:                 c.Experience.Val.MinYears,
			MaxYears:                 c.Experience.Val.MaxYears,
			MinSeniorYears:           c.Experience.Val.MinSeniorYears,
			RequireManagement:        c.Experience.Val.RequireManagement,
			PreferMNC:                c.Experience.Val.PreferMNC,
			PreferStartup:            c.Experience.Val.PreferStartup,
			PreferNGO:                c.Experience.Val.PreferNGO,
			PreferGovernment:         c.Experience.Val.PreferGovernment,
			RequireCurrentlyEmployed: c.Experience.Val.RequireCurrentlyEmployed,
			ExcludeCurrentlyEmployed: c.Experience.Val.ExcludeCurrentlyEmployed,
			Industries:               c.Experience.Val.Industries,
			Titles:                   c.Experience.Val.Titles,
			MinTeamSize:              c.Experience.Val.MinTeamSize,
		},
		Skills: domain.SkillsCriteria{
			Required:  c.Skills.Val.Required,
			Preferred: c.Skills.Val.Preferred,
		},
		Professional: domain.ProfessionalCriteria{
			RequireMembership:       c.Professional.Val.RequireMembership,
			RequireGoodStanding:     c.Professional.Val.RequireGoodStanding,
			RequireLeadershipCourse: c.Professional.Val.RequireLeadershipCourse,
			MinLeadershipMonths:     c.Professional.Val.MinLeadershipMonths,
			RequiredCertifications:  c.Professional.Val.RequiredCertifications,
			PreferredCertifications: c.Professional.Val.PreferredCertifications,
			MinPublications:         c.Professional.Val.MinPublications,
			PreferPortfolio:         c.Professional.Val.PreferPortfolio,
			PreferGithub:            c.Professional.Val.PreferGithub,
			PreferLinkedin:          c.Professional.Val.PreferLinkedin,
			RequireReferees:         c.Professional.Val.RequireReferees,
			MinReferees:             c.Professional.Val.MinReferees,
			RequireSeniorReferee:    c.Professional.Val.RequireSeniorReferee,
			RequireAcademicReferee:  c.Professional.Val.RequireAcademicReferee,
		},
		Clearances: domain.ClearanceCriteria{
			Tax:  c.Clearances.Val.Tax,
			HELB: c.Clearances.Val.HELB,
			DCI:  c.Clearances.Val.DCI,
			CRB:  c.Clearances.Val.CRB,
			EACC: c.Clearances.Val.EACC,
		},
		Compensation: domain.CompensationCriteria{
			MinExpectedSalary:            c.Compensation.Val.MinExpectedSalary,
			MaxExpectedSalary:            c.Compensation.Val.MaxExpectedSalary,
			MaxNoticeDays:                c.Compensation.Val.MaxNoticeDays,
			RequireImmediateAvailability: c.Compensation.Val.RequireImmediateAvailability,
			WorkMode:                     candidate.WorkMode(c.Compensation.Val.WorkMode),
		},
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}
