package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type ResultDAO interface {
	// ReplaceForJob 在同一事务内删除旧榜单并写入新榜单
	ReplaceForJob(ctx context.Context, jobId int64, results []Result) error
	ListByJob(ctx context.Context, jobId int64) ([]Result, error)
	FindById(ctx context.Context, id int64) (Result, error)
	CountByJob(ctx context.Context, jobId int64) (int64, error)
	// LatestGeneratedAt 返回某岗位榜单的生成时间，没有榜单时返回 0
	LatestGeneratedAt(ctx context.Context, jobId int64) (int64, error)
	// UpdateRanks 重排后批量刷新名次和百分位
	UpdateRanks(ctx context.Context, jobId int64, ranks []RankUpdate) error
	UpdateReview(ctx context.Context, id int64, notes string, flagged bool, rating uint8) error
	// UpdateAdminScores 写入人工分并永久置位 audit_flag
	UpdateAdminScores(ctx context.Context, id int64, scores AdminScores) error
	UpdateOverride(ctx context.Context, id int64, override bool) error
}

type Result struct {
	Id            int64 `gorm:"primaryKey"`
	JobId         int64 `gorm:"uniqueIndex:shortlist_job_candidate,priority:1;index"`
	CandidateId   int64 `gorm:"uniqueIndex:shortlist_job_candidate,priority:2"`
	ApplicationId int64

	CandidateName   string `gorm:"type:varchar(256)"`
	CandidateEmail  string `gorm:"type:varchar(256)"`
	CandidatePhone  string `gorm:"type:varchar(64)"`
	CandidateDegree uint8

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
	DisqualificationReasons  sqlx.JsonColumn[[]string] `gorm:"type:text"`
	OverrideDisqualification bool

	MatchedCriteria sqlx.JsonColumn[[]string] `gorm:"type:text"`
	MissedCriteria  sqlx.JsonColumn[[]string] `gorm:"type:text"`
	BonusCriteria   sqlx.JsonColumn[[]string] `gorm:"type:text"`

	HasAllMandatory   bool
	IncompleteProfile bool

	CandidateRank *int64
	Percentile    float64

	HrNotes          string `gorm:"type:text"`
	FlaggedForReview bool
	InternalRating   uint8
	AuditFlag        bool

	GeneratedAt int64
	Ctime       int64
	Utime       int64
}

func (Result) TableName() string {
	return "shortlist_results"
}

type RankUpdate struct {
	Id         int64
	Rank       *int64
	Percentile float64
}

type AdminScores struct {
	Education    *float64
	Experience   *float64
	Skills       *float64
	Clearance    *float64
	Professional *float64
	Total        *float64
}

type resultDAO struct {
	db *egorm.Component
}

func NewResultDAO(db *egorm.Component) ResultDAO {
	return &resultDAO{db: db}
}

func (d *resultDAO) ReplaceForJob(ctx context.Context, jobId int64, results []Result) error {
	now := time.Now().UnixMilli()
	for i := range results {
		results[i].Ctime = now
		results[i].Utime = now
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("job_id = ?", jobId).Delete(&Result{}).Error
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return nil
		}
		return tx.Create(&results).Error
	})
}

func (d *resultDAO) ListByJob(ctx context.Context, jobId int64) ([]Result, error) {
	var res []Result
	// 有名次的在前按名次升序，淘汰的在后按候选人 ID 升序
	err := d.db.WithContext(ctx).
		Where("job_id = ?", jobId).
		Order("candidate_rank IS NULL, candidate_rank ASC, candidate_id ASC").
		Find(&res).Error
	return res, err
}

func (d *resultDAO) FindById(ctx context.Context, id int64) (Result, error) {
	var res Result
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *resultDAO) CountByJob(ctx context.Context, jobId int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Result{}).
		Where("job_id = ?", jobId).Count(&cnt).Error
	return cnt, err
}

func (d *resultDAO) LatestGeneratedAt(ctx context.Context, jobId int64) (int64, error) {
	var res Result
	err := d.db.WithContext(ctx).
		Where("job_id = ?", jobId).
		Order("generated_at DESC").
		Select("generated_at").
		First(&res).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return res.GeneratedAt, nil
}

func (d *resultDAO) UpdateRanks(ctx context.Context, jobId int64, ranks []RankUpdate) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range ranks {
			err := tx.Model(&Result{}).
				Where("id = ? AND job_id = ?", r.Id, jobId).
				Updates(map[string]any{
					"candidate_rank": r.Rank,
					"percentile":     r.Percentile,
					"utime":          now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *resultDAO) UpdateReview(ctx context.Context,
	id int64, notes string, flagged bool, rating uint8) error {
	return d.db.WithContext(ctx).Model(&Result{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"hr_notes":           notes,
			"flagged_for_review": flagged,
			"internal_rating":    rating,
			"utime":              time.Now().UnixMilli(),
		}).Error
}

func (d *resultDAO) UpdateAdminScores(ctx context.Context, id int64, scores AdminScores) error {
	updates := map[string]any{
		"audit_flag": true,
		"utime":      time.Now().UnixMilli(),
	}
	// 只更新这次传了的项，没传的人工分保持原值
	for col, val := range map[string]*float64{
		"manual_education_score":    scores.Education,
		"manual_experience_score":   scores.Experience,
		"manual_skills_score":       scores.Skills,
		"manual_clearance_score":    scores.Clearance,
		"manual_professional_score": scores.Professional,
		"manual_total_score":        scores.Total,
	} {
		if val != nil {
			updates[col] = *val
		}
	}
	return d.db.WithContext(ctx).Model(&Result{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (d *resultDAO) UpdateOverride(ctx context.Context, id int64, override bool) error {
	return d.db.WithContext(ctx).Model(&Result{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"override_disqualification": override,
			"audit_flag":                true,
			"utime":                     time.Now().UnixMilli(),
		}).Error
}
