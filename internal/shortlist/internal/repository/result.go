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
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

//go:generate mockgen -source=./result.go -package=repomocks -destination=./mocks/result.mock.go ResultRepository

type ResultRepository interface {
	ReplaceForJob(ctx context.Context, jobId int64, results []domain.Result) error
	ListByJob(ctx context.Context, jobId int64) ([]domain.Result, error)
	FindById(ctx context.Context, id int64) (domain.Result, error)
	CountByJob(ctx context.Context, jobId int64) (int64, error)
	LatestGeneratedAt(ctx context.Context, jobId int64) (int64, error)
	UpdateRanks(ctx context.Context, jobId int64, results []domain.Result) error
	UpdateReview(ctx context.Context, id int64, notes string, flagged bool, rating uint8) error
	UpdateAdminScores(ctx context.Context, id int64, scores domain.AdminScores) error
	UpdateOverride(ctx context.Context, id int64, override bool) error
}

type resultRepository struct {
	dao dao.ResultDAO
}

func NewResultRepository(d dao.ResultDAO) ResultRepository {
	return &resultRepository{dao: d}
}

func (r *resultRepository) ReplaceForJob(ctx context.Context,
	jobId int64, results []domain.Result) error {
	entities := slice.Map(results, func(_ int, src domain.Result) dao.Result {
		return r.toEntity(src)
	})
	return r.dao.ReplaceForJob(ctx, jobId, entities)
}

func (r *resultRepository) ListByJob(ctx context.Context, jobId int64) ([]domain.Result, error) {
	entities, err := r.dao.ListByJob(ctx, jobId)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Result) domain.Result {
		return r.toDomain(src)
	}), nil
}

func (r *resultRepository) FindById(ctx context.Context, id int64) (domain.Result, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Result{}, err
	}
	return r.toDomain(entity), nil
}

func (r *resultRepository) CountByJob(ctx context.Context, jobId int64) (int64, error) {
	return r.dao.CountByJob(ctx, jobId)
}

func (r *resultRepository) LatestGeneratedAt(ctx context.Context, jobId int64) (int64, error) {
	return r.dao.LatestGeneratedAt(ctx, jobId)
}

func (r *resultRepository) UpdateRanks(ctx context.Context,
	jobId int64, results []domain.Result) error {
	updates := slice.Map(results, func(_ int, src domain.Result) dao.RankUpdate {
		return dao.RankUpdate{
			Id:         src.ID,
			Rank:       rankToInt64(src.CandidateRank),
			Percentile: src.Percentile,
		}
	})
	return r.dao.UpdateRanks(ctx, jobId, updates)
}

func (r *resultRepository) UpdateReview(ctx context.Context,
	id int64, notes string, flagged bool, rating uint8) error {
	return r.dao.UpdateReview(ctx, id, notes, flagged, rating)
}

func (r *resultRepository) UpdateAdminScores(ctx context.Context,
	id int64, scores domain.AdminScores) error {
	return r.dao.UpdateAdminScores(ctx, id, dao.AdminScores{
		Education:    scores.Education,
		Experience:   scores.Experience,
		Skills:       scores.Skills,
		Clearance:    scores.Clearance,
		Professional: scores.Professional,
		Total:        scores.Total,
	})
}

func (r *resultRepository) UpdateOverride(ctx context.Context, id int64, override bool) error {
	return r.dao.UpdateOverride(ctx, id, override)
}

func (r *resultRepository) toEntity(res domain.Result) dao.Result {
	return dao.Result{
		Id:            res.ID,
		JobId:         res.JobID,
		CandidateId:   res.CandidateID,
		ApplicationId: res.ApplicationID,

		CandidateName:   res.CandidateName,
		CandidateEmail:  res.CandidateEmail,
		CandidatePhone:  res.CandidatePhone,
		CandidateDegree: res.CandidateDegree.ToUint8(),

		EducationScore:    res.EducationScore,
		ExperienceScore:   res.ExperienceScore,
		SkillsScore:       res.SkillsScore,
		ClearanceScore:    res.ClearanceScore,
		ProfessionalScore: res.ProfessionalScore,
		TotalScore:        res.TotalScore,

		ManualEducationScore:    res.ManualEducationScore,
		ManualExperienceScore:   res.ManualExperienceScore,
		ManualSkillsScore:       res.ManualSkillsScore,
		ManualClearanceScore:    res.ManualClearanceScore,
		ManualProfessionalScore: res.ManualProfessionalScore,
		ManualTotalScore:        res.ManualTotalScore,

		HasDisqualifyingFactor: res.HasDisqualifyingFactor,
		DisqualificationReasons: sqlx.JsonColumn[[]string]{
			Val: res.DisqualificationReasons, Valid: true,
		},
		OverrideDisqualification: res.OverrideDisqualification,

		MatchedCriteria: sqlx.JsonColumn[[]string]{Val: res.MatchedCriteria, Valid: true},
		MissedCriteria:  sqlx.JsonColumn[[]string]{Val: res.MissedCriteria, Valid: true},
		BonusCriteria:   sqlx.JsonColumn[[]string]{Val: res.BonusCriteria, Valid: true},

		HasAllMandatory:   res.HasAllMandatory,
		IncompleteProfile: res.IncompleteProfile,

		CandidateRank: rankToInt64(res.CandidateRank),
		Percentile:    res.Percentile,

		HrNotes:          res.HrNotes,
		FlaggedForReview: res.FlaggedForReview,
		InternalRating:   res.InternalRating,
		AuditFlag:        res.AuditFlag,

		GeneratedAt: res.GeneratedAt,
	}
}

func (r *resultRepository) toDomain(res dao.Result) domain.Result {
	return domain.Result{
		ID:            res.Id,
		JobID:         res.JobId,
		CandidateID:   res.CandidateId,
		ApplicationID: res.ApplicationId,

		CandidateName:   res.CandidateName,
		CandidateEmail:  res.CandidateEmail,
		CandidatePhone:  res.CandidatePhone,
		CandidateDegree: candidate.DegreeLevel(res.CandidateDegree),

		EducationScore:    res.EducationScore,
		ExperienceScore:   res.ExperienceScore,
		SkillsScore:       res.SkillsScore,
		ClearanceScore:    res.ClearanceScore,
		ProfessionalScore: res.ProfessionalScore,
		TotalScore:        res.TotalScore,

		ManualEducationScore:    res.ManualEducationScore,
		ManualExperienceScore:   res.ManualExperienceScore,
		ManualSkillsScore:       res.ManualSkillsScore,
		ManualClearanceScore:    res.ManualClearanceScore,
		ManualProfessionalScore: res.ManualProfessionalScore,
		ManualTotalScore:        res.ManualTotalScore,

		HasDisqualifyingFactor:   res.HasDisqualifyingFactor,
		DisqualificationReasons:  res.DisqualificationReasons.Val,
		OverrideDisqualification: res.OverrideDisqualification,

		MatchedCriteria: res.MatchedCriteria.Val,
		MissedCriteria:  res.MissedCriteria.Val,
		BonusCriteria:   res.BonusCriteria.Val,

		HasAllMandatory:   res.HasAllMandatory,
		IncompleteProfile: res.IncompleteProfile,

		CandidateRank: rankToInt(res.CandidateRank),
		Percentile:    res.Percentile,

		HrNotes:          res.HrNotes,
		FlaggedForReview: res.FlaggedForReview,
		InternalRating:   res.InternalRating,
		AuditFlag:        res.AuditFlag,

		GeneratedAt: res.GeneratedAt,
		Utime:       res.Utime,
	}
}

func rankToInt64(rank *int) *int64 {
	if rank == nil {
		return nil
	}
	val := int64(*rank)
	return &val
}

func rankToInt(rank *int64) *int {
	if rank == nil {
		return nil
	}
	val := int(*rank)
	return &val
}
