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

package service

import (
	"context"
	"sync"
	"time"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/company"
	"github.com/ajirahub/ajirahub/internal/job"
	"github.com/ajirahub/ajirahub/internal/pkg/snowflake"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/event"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/syncx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrGenerationInProgress 同一岗位同一时刻只允许一次生成或重排
	ErrGenerationInProgress = errors.New("该岗位的榜单正在生成中")
	// ErrNoExistingResults 重排的前提是已经生成过榜单
	ErrNoExistingResults = errors.New("该岗位还没有榜单")
	ErrInvalidManualScore = errors.New("人工分必须在 0 到 100 之间")
)

// evaluateConcurrency 生成榜单时单岗位内的评估并发度
const evaluateConcurrency = 8

//go:generate mockgen -source=./shortlist.go -package=shortlistmocks -destination=../../mocks/shortlist.mock.go ShortlistService

// ShortlistView 榜单列表页一次性要的所有东西
type ShortlistView struct {
	Job     job.Job
	Company company.Company
	Results []domain.Result
	Stats   domain.Stats
	Stale   domain.Staleness
}

type ShortlistService interface {
	// Generate 对岗位的全部有效投递做全量评估并原子替换旧榜单
	Generate(ctx context.Context, jobId int64) (domain.Stats, error)
	// Rerank 只根据当前生效分重算名次和百分位，不重新评估
	Rerank(ctx context.Context, jobId int64) (domain.Stats, error)
	Results(ctx context.Context, jobId int64) (ShortlistView, error)
	// Review 写 HR 备注、复核标记和内部评级，不影响分数和名次
	Review(ctx context.Context, resultId int64, notes string, flagged bool, rating uint8) error
	// AdminScore 写人工分并触发重排，audit 标记从此一直为 true
	AdminScore(ctx context.Context, resultId int64, scores domain.AdminScores) error
	// OverrideDisqualification 复核资格判定并触发重排
	OverrideDisqualification(ctx context.Context, resultId int64, override bool) error
	Export(ctx context.Context, jobId int64, opts domain.ExportOptions) ([]domain.Result, error)
}

type shortlistService struct {
	criteriaRepo repository.CriteriaRepository
	resultRepo   repository.ResultRepository
	candidateSvc candidate.Service
	jobSvc       job.Service
	companySvc   company.Service
	producer     event.ShortlistGeneratedProducer
	idGen        snowflake.Generator

	// locks 岗位级别的生成锁，进程内互斥
	locks  syncx.Map[int64, *sync.Mutex]
	logger *elog.Component
}

func NewShortlistService(
	criteriaRepo repository.CriteriaRepository,
	resultRepo repository.ResultRepository,
	candidateSvc candidate.Service,
	jobSvc job.Service,
	companySvc company.Service,
	producer event.ShortlistGeneratedProducer,
	idGen snowflake.Generator,
) ShortlistService {
	return &shortlistService{
		criteriaRepo: criteriaRepo,
		resultRepo:   resultRepo,
		candidateSvc: candidateSvc,
		jobSvc:       jobSvc,
		companySvc:   companySvc,
		producer:     producer,
		idGen:        idGen,
		logger:       elog.DefaultLogger,
	}
}

func (s *shortlistService) Generate(ctx context.Context, jobId int64) (domain.Stats, error) {
	mu, _ := s.locks.LoadOrStore(jobId, &sync.Mutex{})
	if !mu.TryLock() {
		return domain.Stats{}, ErrGenerationInProgress
	}
	defer mu.Unlock()

	criteria, err := s.criteriaRepo.FindByJobId(ctx, jobId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Stats{}, ErrCriteriaNotConfigured
	}
	if err != nil {
		return domain.Stats{}, err
	}
	// 落库之后的配置也可能被老版本写坏，生成前再校验一次
	err = criteria.Validate()
	if err != nil {
		return domain.Stats{}, err
	}

	apps, err := s.jobSvc.Applications(ctx, jobId)
	if err != nil {
		return domain.Stats{}, err
	}
	generatedAt := time.Now().UnixMilli()
	results, err := s.evaluateAll(ctx, criteria, apps, generatedAt)
	if err != nil {
		return domain.Stats{}, err
	}
	ranked := domain.Rank(results)
	err = s.resultRepo.ReplaceForJob(ctx, jobId, ranked)
	if err != nil {
		return domain.Stats{}, err
	}
	stats := domain.ComputeStats(ranked)
	stats.GeneratedAt = generatedAt
	s.notify(jobId, "generate", stats, generatedAt)
	return stats, nil
}

func (s *shortlistService) evaluateAll(ctx context.Context,
	criteria domain.Criteria, apps []job.Application,
	generatedAt int64) ([]domain.Result, error) {
	if len(apps) == 0 {
		return []domain.Result{}, nil
	}
	ids := slice.Map(apps, func(_ int, src job.Application) int64 {
		return src.CandidateID
	})
	profiles, err := s.candidateSvc.Profiles(ctx, ids)
	if err != nil {
		return nil, err
	}
	results := make([]domain.Result, len(apps))
	var eg errgroup.Group
	eg.SetLimit(evaluateConcurrency)
	for i := range apps {
		i, app := i, apps[i]
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			id, err := s.idGen.Generate(snowflake.AppShortlist)
			if err != nil {
				return err
			}
			profile, ok := profiles[app.CandidateID]
			if !ok {
				// 有投递没档案，保留占位结果等档案补齐后重新生成
				results[i] = domain.Result{
					ID:                id.Int64(),
					JobID:             app.JobID,
					ApplicationID:     app.ID,
					CandidateID:       app.CandidateID,
					IncompleteProfile: true,
					GeneratedAt:       generatedAt,
				}
				return nil
			}
			results[i] = s.evaluateOne(criteria, app, profile, id.Int64(), generatedAt)
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *shortlistService) evaluateOne(criteria domain.Criteria,
	app job.Application, profile candidate.Profile,
	id, generatedAt int64) domain.Result {
	ev := domain.Evaluate(criteria, profile)
	disqualified, reasons := domain.CheckDisqualification(criteria, profile)
	return domain.Result{
		ID:            id,
		JobID:         app.JobID,
		ApplicationID: app.ID,
		CandidateID:   app.CandidateID,

		CandidateName:   profile.FullName,
		CandidateEmail:  profile.Email,
		CandidatePhone:  profile.Phone,
		CandidateDegree: profile.HighestDegree().Level,

		EducationScore:    ev.Subscores[domain.CategoryEducation],
		ExperienceScore:   ev.Subscores[domain.CategoryExperience],
		SkillsScore:       ev.Subscores[domain.CategorySkills],
		ClearanceScore:    ev.Subscores[domain.CategoryClearance],
		ProfessionalScore: ev.Subscores[domain.CategoryProfessional],
		TotalScore:        domain.Aggregate(ev.Subscores, criteria.Weights),

		HasDisqualifyingFactor:  disqualified,
		DisqualificationReasons: reasons,

		MatchedCriteria:   ev.Matched,
		MissedCriteria:    ev.Missed,
		BonusCriteria:     ev.Bonus,
		HasAllMandatory:   ev.HasAllMandatory,
		IncompleteProfile: ev.Incomplete,

		GeneratedAt: generatedAt,
	}
}

func (s *shortlistService) Rerank(ctx context.Context, jobId int64) (domain.Stats, error) {
	mu, _ := s.locks.LoadOrStore(jobId, &sync.Mutex{})
	if !mu.TryLock() {
		return domain.Stats{}, ErrGenerationInProgress
	}
	defer mu.Unlock()
	return s.rerankLocked(ctx, jobId)
}

func (s *shortlistService) rerankLocked(ctx context.Context, jobId int64) (domain.Stats, error) {
	results, err := s.resultRepo.ListByJob(ctx, jobId)
	if err != nil {
		return domain.Stats{}, err
	}
	if len(results) == 0 {
		return domain.Stats{}, ErrNoExistingResults
	}
	ranked := domain.Rank(results)
	err = s.resultRepo.UpdateRanks(ctx, jobId, ranked)
	if err != nil {
		return domain.Stats{}, err
	}
	stats := domain.ComputeStats(ranked)
	// 重排不重新评估，沿用原批次的生成时间
	stats.GeneratedAt = results[0].GeneratedAt
	s.notify(jobId, "rerank", stats, time.Now().UnixMilli())
	return stats, nil
}

func (s *shortlistService) Results(ctx context.Context, jobId int64) (ShortlistView, error) {
	var (
		eg       errgroup.Group
		view     ShortlistView
		criteria domain.Criteria
	)
	eg.Go(func() error {
		var err error
		view.Results, err = s.resultRepo.ListByJob(ctx, jobId)
		return err
	})
	eg.Go(func() error {
		j, err := s.jobSvc.GetById(ctx, jobId)
		if err != nil {
			return err
		}
		view.Job = j
		view.Company, err = s.companySvc.GetById(ctx, j.CompanyID)
		return err
	})
	eg.Go(func() error {
		c, err := s.criteriaRepo.FindByJobId(ctx, jobId)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 没配置标准自然也没有榜单，过期提示保持安静
			return nil
		}
		if err != nil {
			return err
		}
		criteria = c
		return nil
	})
	err := eg.Wait()
	if err != nil {
		return ShortlistView{}, err
	}
	view.Stats = domain.ComputeStats(view.Results)
	if len(view.Results) > 0 {
		view.Stats.GeneratedAt = view.Results[0].GeneratedAt
		view.Stale = domain.CheckStale(criteria.Utime, view.Results[0].GeneratedAt)
	}
	return view, nil
}

func (s *shortlistService) Review(ctx context.Context,
	resultId int64, notes string, flagged bool, rating uint8) error {
	_, err := s.resultRepo.FindById(ctx, resultId)
	if err != nil {
		return err
	}
	return s.resultRepo.UpdateReview(ctx, resultId, notes, flagged, rating)
}

func (s *shortlistService) AdminScore(ctx context.Context,
	resultId int64, scores domain.AdminScores) error {
	err := validateScores(scores)
	if err != nil {
		return err
	}
	res, err := s.resultRepo.FindById(ctx, resultId)
	if err != nil {
		return err
	}
	err = s.resultRepo.UpdateAdminScores(ctx, resultId, scores)
	if err != nil {
		return err
	}
	_, err = s.Rerank(ctx, res.JobID)
	return err
}

func (s *shortlistService) OverrideDisqualification(ctx context.Context,
	resultId int64, override bool) error {
	res, err := s.resultRepo.FindById(ctx, resultId)
	if err != nil {
		return err
	}
	err = s.resultRepo.UpdateOverride(ctx, resultId, override)
	if err != nil {
		return err
	}
	_, err = s.Rerank(ctx, res.JobID)
	return err
}

func (s *shortlistService) Export(ctx context.Context,
	jobId int64, opts domain.ExportOptions) ([]domain.Result, error) {
	results, err := s.resultRepo.ListByJob(ctx, jobId)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoExistingResults
	}
	return domain.FilterForExport(results, opts), nil
}

func validateScores(scores domain.AdminScores) error {
	for _, score := range []*float64{
		scores.Education, scores.Experience, scores.Skills,
		scores.Clearance, scores.Professional, scores.Total,
	} {
		if score != nil && (*score < 0 || *score > 100) {
			return errors.WithMessagef(ErrInvalidManualScore, "收到 %.1f", *score)
		}
	}
	return nil
}

// notify 榜单事件只影响下游通知，失败不影响主流程
func (s *shortlistService) notify(jobId int64, trigger string,
	stats domain.Stats, generatedAt int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := event.ShortlistGeneratedEvent{
		JobID:       jobId,
		Trigger:     trigger,
		Total:       stats.Total,
		Qualified:   stats.Qualified,
		TraceID:     shortuuid.New(),
		GeneratedAt: generatedAt,
	}
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送榜单事件失败",
			elog.FieldErr(err),
			elog.Int64("jobId", jobId),
			elog.String("trigger", trigger))
	}
}
