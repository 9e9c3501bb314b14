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

package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/company"
	"github.com/ajirahub/ajirahub/internal/job"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Handler struct {
	criteriaSvc service.CriteriaService
	svc         service.ShortlistService
	jobSvc      job.Service
	companySvc  company.Service
	logger      *elog.Component
}

func NewHandler(criteriaSvc service.CriteriaService,
	svc service.ShortlistService,
	jobSvc job.Service,
	companySvc company.Service) *Handler {
	return &Handler{
		criteriaSvc: criteriaSvc,
		svc:         svc,
		jobSvc:      jobSvc,
		companySvc:  companySvc,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/shortlist")
	g.POST("/criteria/detail", ginx.B[JobID](h.CriteriaDetail))
	g.POST("/criteria/save", ginx.B[SaveCriteriaReq](h.SaveCriteria))
	g.POST("/generate", ginx.B[JobID](h.Generate))
	g.POST("/rerank", ginx.B[JobID](h.Rerank))
	g.POST("/results/list", ginx.B[ListResultsReq](h.ListResults))
	g.POST("/results/review", ginx.B[ReviewReq](h.Review))
	g.POST("/results/admin-score", ginx.B[AdminScoreReq](h.AdminScore))
	g.POST("/results/override-disqualification",
		ginx.B[OverrideDisqualificationReq](h.OverrideDisqualification))
	g.GET("/export", h.Export)
}

func (h *Handler) CriteriaDetail(ctx *ginx.Context, req JobID) (ginx.Result, error) {
	j, err := h.jobSvc.GetById(ctx, req.JobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return jobNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	co, err := h.companySvc.GetById(ctx, j.CompanyID)
	if err != nil {
		return systemErrorResult, err
	}
	detail := CriteriaDetail{
		Job:     newJob(j),
		Company: newCompany(co),
	}
	criteria, stale, err := h.criteriaSvc.Detail(ctx, req.JobID)
	switch {
	case errors.Is(err, service.ErrCriteriaNotConfigured):
		// 尚未配置，返回零值配置让前端从头填
	case err != nil:
		return systemErrorResult, err
	default:
		detail.Criteria = newCriteria(criteria)
		detail.Configured = true
		detail.Stale = stale.IsStale
		detail.StaleReason = stale.Reason
	}
	return ginx.Result{Data: detail}, nil
}

func (h *Handler) SaveCriteria(ctx *ginx.Context, req SaveCriteriaReq) (ginx.Result, error) {
	id, err := h.criteriaSvc.Save(ctx, req.Criteria.toDomain(req.JobID))
	if errors.Is(err, domain.ErrInvalidWeights) ||
		errors.Is(err, domain.ErrConflictingFlags) {
		return ginx.Result{
			Code: invalidCriteriaResult.Code,
			Msg:  err.Error(),
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Generate(ctx *ginx.Context, req JobID) (ginx.Result, error) {
	stats, err := h.svc.Generate(ctx, req.JobID)
	switch {
	case errors.Is(err, service.ErrCriteriaNotConfigured):
		return criteriaNotConfiguredResult, err
	case errors.Is(err, service.ErrGenerationInProgress):
		return generationInProgressResult, err
	case errors.Is(err, domain.ErrInvalidWeights),
		errors.Is(err, domain.ErrConflictingFlags):
		return invalidCriteriaResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: GenerateResp{
		Total:        stats.Total,
		Qualified:    stats.Qualified,
		TopScore:     stats.TopScore,
		AverageScore: stats.AverageScore,
		GeneratedAt:  stats.GeneratedAt,
	}}, nil
}

func (h *Handler) Rerank(ctx *ginx.Context, req JobID) (ginx.Result, error) {
	stats, err := h.svc.Rerank(ctx, req.JobID)
	switch {
	case errors.Is(err, service.ErrNoExistingResults):
		return noExistingResultsResult, err
	case errors.Is(err, service.ErrGenerationInProgress):
		return generationInProgressResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: GenerateResp{
		Total:        stats.Total,
		Qualified:    stats.Qualified,
		TopScore:     stats.TopScore,
		AverageScore: stats.AverageScore,
		GeneratedAt:  stats.GeneratedAt,
	}}, nil
}

func (h *Handler) ListResults(ctx *ginx.Context, req ListResultsReq) (ginx.Result, error) {
	view, err := h.svc.Results(ctx, req.JobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return jobNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	filtered := make([]domain.Result, 0, len(view.Results))
	for _, r := range view.Results {
		if !req.IncludeDisqualified && r.EffectivelyDisqualified() {
			continue
		}
		if req.Status != "" && r.Status() != req.Status {
			continue
		}
		filtered = append(filtered, r)
	}
	total := len(filtered)
	filtered = paginate(filtered, req.Offset, req.Limit)
	return ginx.Result{Data: ResultList{
		Results:     newResults(filtered),
		Total:       total,
		Stats:       newStats(view.Stats),
		Job:         newJob(view.Job),
		Company:     newCompany(view.Company),
		Stale:       view.Stale.IsStale,
		StaleReason: view.Stale.Reason,
	}}, nil
}

func (h *Handler) Review(ctx *ginx.Context, req ReviewReq) (ginx.Result, error) {
	err := h.svc.Review(ctx, req.ID, req.HrNotes, req.FlaggedForReview, req.InternalRating)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resultNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) AdminScore(ctx *ginx.Context, req AdminScoreReq) (ginx.Result, error) {
	err := h.svc.AdminScore(ctx, req.ID, domain.AdminScores{
		Education:    req.ManualEducationScore,
		Experience:   req.ManualExperienceScore,
		Skills:       req.ManualSkillsScore,
		Clearance:    req.ManualClearanceScore,
		Professional: req.ManualProfessionalScore,
		Total:        req.ManualTotalScore,
	})
	switch {
	case errors.Is(err, service.ErrInvalidManualScore):
		return invalidManualScoreResult, err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return resultNotFoundResult, err
	case errors.Is(err, service.ErrGenerationInProgress):
		return generationInProgressResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) OverrideDisqualification(ctx *ginx.Context,
	req OverrideDisqualificationReq) (ginx.Result, error) {
	err := h.svc.OverrideDisqualification(ctx, req.ID, req.Override)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return resultNotFoundResult, err
	case errors.Is(err, service.ErrGenerationInProgress):
		return generationInProgressResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Export 导出 xlsx，直接往响应流里写字节，所以不走 ginx 包装
func (h *Handler) Export(ctx *gin.Context) {
	jobId, err := strconv.ParseInt(ctx.Query("jobId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ginx.Result{Msg: "jobId 不合法"})
		return
	}
	opts, err := parseExportOptions(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ginx.Result{Msg: err.Error()})
		return
	}
	results, err := h.svc.Export(ctx.Request.Context(), jobId, opts)
	if errors.Is(err, service.ErrNoExistingResults) {
		ctx.JSON(http.StatusNotFound, noExistingResultsResult)
		return
	}
	if err != nil {
		h.logger.Error("导出榜单失败", elog.FieldErr(err), elog.Int64("jobId", jobId))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
		return
	}
	file, err := buildWorkbook(results)
	if err != nil {
		h.logger.Error("生成 xlsx 失败", elog.FieldErr(err), elog.Int64("jobId", jobId))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
		return
	}
	ctx.Header("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="shortlist_%d.xlsx"`, jobId))
	_, err = file.WriteTo(ctx.Writer)
	if err != nil {
		h.logger.Error("写出 xlsx 失败", elog.FieldErr(err), elog.Int64("jobId", jobId))
	}
}

func parseExportOptions(ctx *gin.Context) (domain.ExportOptions, error) {
	opts := domain.ExportOptions{
		Mode:   ctx.DefaultQuery("mode", domain.ExportModeShortlistedOnly),
		Status: ctx.Query("status"),
	}
	if opts.Mode != domain.ExportModeAll && opts.Mode != domain.ExportModeShortlistedOnly {
		return domain.ExportOptions{}, errors.New("mode 不合法")
	}
	if raw := ctx.Query("degreeLevel"); raw != "" {
		level, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return domain.ExportOptions{}, errors.New("degreeLevel 不合法")
		}
		opts.DegreeLevel = candidate.DegreeLevel(uint8(level))
	}
	if raw := ctx.Query("minScore"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil || score < 0 || score > 100 {
			return domain.ExportOptions{}, errors.New("minScore 不合法")
		}
		opts.MinScore = score
	}
	if raw := ctx.Query("topN"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return domain.ExportOptions{}, errors.New("topN 不合法")
		}
		opts.TopN = n
	}
	return opts, nil
}

var exportHeader = []any{
	"名次", "候选人", "邮箱", "电话", "最高学历",
	"教育分", "经验分", "技能分", "背景核查分", "职业素养分",
	"生效总分", "百分位", "状态", "淘汰原因", "人工改分",
}

func buildWorkbook(results []domain.Result) (*excelize.File, error) {
	file := excelize.NewFile()
	const sheet = "Shortlist"
	err := file.SetSheetName("Sheet1", sheet)
	if err != nil {
		return nil, err
	}
	err = file.SetSheetRow(sheet, "A1", &exportHeader)
	if err != nil {
		return nil, err
	}
	for i, r := range results {
		rank := ""
		if r.CandidateRank != nil {
			rank = strconv.Itoa(*r.CandidateRank)
		}
		manual := "否"
		if r.HasManualInput() {
			manual = "是"
		}
		row := []any{
			rank, r.CandidateName, r.CandidateEmail, r.CandidatePhone,
			r.CandidateDegree.String(),
			r.EffectiveScore(domain.CategoryEducation),
			r.EffectiveScore(domain.CategoryExperience),
			r.EffectiveScore(domain.CategorySkills),
			r.EffectiveScore(domain.CategoryClearance),
			r.EffectiveScore(domain.CategoryProfessional),
			r.EffectiveTotalScore(),
			r.Percentile,
			r.Status(),
			joinReasons(r.DisqualificationReasons),
			manual,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		err = file.SetSheetRow(sheet, cell, &row)
		if err != nil {
			return nil, err
		}
	}
	return file, nil
}

func joinReasons(reasons []string) string {
	res := ""
	for i, r := range reasons {
		if i > 0 {
			res += "；"
		}
		res += r
	}
	return res
}

func paginate(results []domain.Result, offset, limit int) []domain.Result {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(results) {
		return []domain.Result{}
	}
	if limit <= 0 {
		limit = 50
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
