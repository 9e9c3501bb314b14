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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/company"
	"github.com/ajirahub/ajirahub/internal/job"
	"github.com/ajirahub/ajirahub/internal/shortlist"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/errs"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/web"
	"github.com/ajirahub/ajirahub/internal/test"
	testioc "github.com/ajirahub/ajirahub/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

const uid = int64(3201)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component

	candidateSvc candidate.Service
	jobSvc       job.Service
	companySvc   company.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	ec := testioc.InitCache()
	q := testioc.InitMQ()
	candidateModule := candidate.InitModule(db)
	jobModule := job.InitModule(db)
	companyModule := company.InitModule(db)
	m := shortlist.InitModule(db, ec, q, candidateModule, jobModule, companyModule)

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": "hr"},
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)

	s.server = server
	s.db = db
	s.candidateSvc = candidateModule.Svc
	s.jobSvc = jobModule.Svc
	s.companySvc = companyModule.Svc
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"shortlist_criteria", "shortlist_results",
		"jobs", "applications", "profiles", "companies",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

// seedJob 建一个岗位和三位投递人：
// 高分、普通、期望薪资超预算（会被取消资格）
func (s *HandlerTestSuite) seedJob() (jobId int64, candidateIds []int64) {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	companyId, err := s.companySvc.Save(ctx, company.Company{
		Name:     "Savannah Analytics",
		Industry: "Fintech",
		Location: "Nairobi",
	})
	require.NoError(t, err)
	jobId, err = s.jobSvc.Save(ctx, job.Job{
		CompanyID: companyId,
		Title:     "Backend Engineer",
		WorkMode:  candidate.WorkModeHybrid,
		Status:    job.JobStatusOpen,
	})
	require.NoError(t, err)

	profiles := []candidate.Profile{
		{
			FullName: "Achieng Odhiambo",
			Email:    "achieng@example.com",
			Phone:    "+254700000001",
			Personal: candidate.Personal{Age: 31, Gender: "F", Nationality: "Kenyan", County: "Kisumu"},
			Education: []candidate.Education{
				{Level: candidate.DegreeMasters, Field: "Computer Science", Grade: candidate.GradeSecondUpper},
			},
			Experience: []candidate.Experience{
				{Title: "Senior Engineer", Industry: "Fintech", Years: 6, Senior: true, Management: true, TeamSize: 5},
			},
			Skills:       []string{"Go", "MySQL", "Kafka"},
			Clearances:   candidate.Clearances{Tax: true, HELB: true, DCI: true, CRB: true, EACC: true},
			Compensation: candidate.Compensation{ExpectedSalary: 300000, NoticeDays: 30},
		},
		{
			FullName: "Brian Mwangi",
			Email:    "brian@example.com",
			Phone:    "+254700000002",
			Personal: candidate.Personal{Age: 27, Gender: "M", Nationality: "Kenyan", County: "Nairobi"},
			Education: []candidate.Education{
				{Level: candidate.DegreeBachelors, Field: "Information Technology", Grade: candidate.GradeSecondLower},
			},
			Experience: []candidate.Experience{
				{Title: "Engineer", Industry: "Fintech", Years: 3},
			},
			Skills:       []string{"Go"},
			Clearances:   candidate.Clearances{CRB: true},
			Compensation: candidate.Compensation{ExpectedSalary: 400000, NoticeDays: 30},
		},
		{
			FullName: "Carol Wanjiru",
			Email:    "carol@example.com",
			Phone:    "+254700000003",
			Personal: candidate.Personal{Age: 29, Gender: "F", Nationality: "Kenyan", County: "Kiambu"},
			Education: []candidate.Education{
				{Level: candidate.DegreeBachelors, Field: "Computer Science", Grade: candidate.GradeSecondUpper},
			},
			Experience: []candidate.Experience{
				{Title: "Engineer", Industry: "Fintech", Years: 2},
			},
			Skills:       []string{"Go", "MySQL"},
			Clearances:   candidate.Clearances{CRB: true},
			Compensation: candidate.Compensation{ExpectedSalary: 600000, NoticeDays: 30},
		},
	}
	for _, p := range profiles {
		id, err := s.candidateSvc.Save(ctx, p)
		require.NoError(t, err)
		candidateIds = append(candidateIds, id)
		_, err = s.jobSvc.Apply(ctx, job.Application{
			JobID:       jobId,
			CandidateID: id,
		})
		require.NoError(t, err)
	}
	return jobId, candidateIds
}

func (s *HandlerTestSuite) saveCriteria(jobId int64) {
	t := s.T()
	req := web.SaveCriteriaReq{
		JobID: jobId,
		Criteria: web.Criteria{
			Weights: web.Weights{
				Education:    25,
				Experience:   30,
				Skills:       20,
				Clearance:    15,
				Professional: 10,
			},
			Education: web.EducationCriteria{
				RequireDegree:  true,
				MinDegreeLevel: candidate.DegreeBachelors.ToUint8(),
			},
			Experience: web.ExperienceCriteria{
				MinYears: 5,
			},
			Skills: web.SkillsCriteria{
				Required:  []string{"Go"},
				Preferred: []string{"Kafka"},
			},
			Professional: web.ProfessionalCriteria{
				// 三位候选人都没有职业协会会员资格，拉开总分差距
				RequireMembership: true,
			},
			Clearances: web.ClearanceCriteria{CRB: true},
			Compensation: web.CompensationCriteria{
				MaxExpectedSalary: 500000,
			},
		},
	}
	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/criteria/save", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	require.True(t, recorder.MustScan().Data > 0)
}

func (s *HandlerTestSuite) generate(jobId int64) web.GenerateResp {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/generate", iox.NewJSONReader(web.JobID{JobID: jobId}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.GenerateResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) list(req web.ListResultsReq) web.ResultList {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/results/list", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ResultList]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestSaveCriteriaAndDetail() {
	t := s.T()
	jobId, _ := s.seedJob()
	s.saveCriteria(jobId)

	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/criteria/detail", iox.NewJSONReader(web.JobID{JobID: jobId}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CriteriaDetail]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	detail := recorder.MustScan().Data
	assert.True(t, detail.Configured)
	assert.Equal(t, jobId, detail.Criteria.JobID)
	assert.Equal(t, 25, detail.Criteria.Weights.Education)
	assert.Equal(t, "Backend Engineer", detail.Job.Title)
	assert.Equal(t, "Savannah Analytics", detail.Company.Name)
	// 还没生成过榜单，不算过期
	assert.False(t, detail.Stale)
}

func (s *HandlerTestSuite) TestSaveCriteriaInvalidWeights() {
	t := s.T()
	jobId, _ := s.seedJob()
	req := web.SaveCriteriaReq{
		JobID: jobId,
		Criteria: web.Criteria{
			// 权重和不是 100
			Weights: web.Weights{Education: 50, Experience: 40},
		},
	}
	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/criteria/save", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidCriteria.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestGenerateWithoutCriteria() {
	t := s.T()
	jobId, _ := s.seedJob()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/generate", iox.NewJSONReader(web.JobID{JobID: jobId}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.GenerateResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.CriteriaNotConfigured.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestGenerateAndList() {
	t := s.T()
	jobId, candidateIds := s.seedJob()
	s.saveCriteria(jobId)

	resp := s.generate(jobId)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Qualified)
	assert.True(t, resp.TopScore > 0)
	assert.True(t, resp.GeneratedAt > 0)

	// 默认不含被取消资格的
	data := s.list(web.ListResultsReq{JobID: jobId})
	require.Len(t, data.Results, 2)
	assert.Equal(t, 2, data.Total)
	assert.Equal(t, 3, data.Stats.Total)
	assert.Equal(t, resp.GeneratedAt, data.Stats.GeneratedAt)
	first := data.Results[0]
	require.NotNil(t, first.CandidateRank)
	assert.Equal(t, 1, *first.CandidateRank)
	assert.Equal(t, candidateIds[0], first.CandidateID)
	assert.Equal(t, "Achieng Odhiambo", first.CandidateName)
	assert.Equal(t, "qualified", first.Status)
	assert.True(t, first.TotalScore >= data.Results[1].TotalScore)
	assert.False(t, data.Stale)

	// 含被取消资格的
	data = s.list(web.ListResultsReq{JobID: jobId, IncludeDisqualified: true})
	require.Len(t, data.Results, 3)
	last := data.Results[2]
	assert.Equal(t, candidateIds[2], last.CandidateID)
	assert.Equal(t, "disqualified", last.Status)
	assert.True(t, last.HasDisqualifyingFactor)
	assert.NotEmpty(t, last.DisqualificationReasons)
	assert.Nil(t, last.CandidateRank)
}

func (s *HandlerTestSuite) TestStaleAfterCriteriaChange() {
	t := s.T()
	jobId, _ := s.seedJob()
	s.saveCriteria(jobId)
	s.generate(jobId)
	// 生成之后再改标准，榜单要标记为过期
	time.Sleep(10 * time.Millisecond)
	s.saveCriteria(jobId)

	data := s.list(web.ListResultsReq{JobID: jobId})
	assert.True(t, data.Stale)
	assert.NotEmpty(t, data.StaleReason)
}

func (s *HandlerTestSuite) TestReview() {
	t := s.T()
	jobId, _ := s.seedJob()
	s.saveCriteria(jobId)
	s.generate(jobId)
	data := s.list(web.ListResultsReq{JobID: jobId})
	require.Len(t, data.Results, 2)
	target := data.Results[1]

	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/results/review", iox.NewJSONReader(web.ReviewReq{
			ID:               target.ID,
			HrNotes:          "电话面试表现不错",
			FlaggedForReview: true,
			InternalRating:   4,
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)

	data = s.list(web.ListResultsReq{JobID: jobId})
	reviewed := data.Results[1]
	assert.Equal(t, "电话面试表现不错", reviewed.HrNotes)
	assert.Equal(t, "flagged", reviewed.Status)
	assert.Equal(t, uint8(4), reviewed.InternalRating)
	// 仅备注复核不算人工干预
	assert.False(t, reviewed.AuditFlag)
}

func (s *HandlerTestSuite) TestAdminScore() {
	t := s.T()
	jobId, candidateIds := s.seedJob()
	s.saveCriteria(jobId)
	s.generate(jobId)
	data := s.list(web.ListResultsReq{JobID: jobId})
	require.Len(t, data.Results, 2)
	// 给第二名一个碾压性的人工总分
	target := data.Results[1]
	manualTotal := 99.5

	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/results/admin-score", iox.NewJSONReader(web.AdminScoreReq{
			ID:               target.ID,
			ManualTotalScore: &manualTotal,
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)

	data = s.list(web.ListResultsReq{JobID: jobId})
	first := data.Results[0]
	assert.Equal(t, candidateIds[1], first.CandidateID)
	require.NotNil(t, first.ManualTotalScore)
	assert.Equal(t, manualTotal, *first.ManualTotalScore)
	assert.Equal(t, manualTotal, first.EffectiveTotalScore)
	assert.True(t, first.AuditFlag)

	// 再单独改教育分，之前的人工总分不能被冲掉
	manualEducation := 70.0
	httpReq, err = http.NewRequest(http.MethodPost,
		"/shortlist/results/admin-score", iox.NewJSONReader(web.AdminScoreReq{
			ID:                   target.ID,
			ManualEducationScore: &manualEducation,
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)

	data = s.list(web.ListResultsReq{JobID: jobId})
	first = data.Results[0]
	assert.Equal(t, candidateIds[1], first.CandidateID)
	require.NotNil(t, first.ManualEducationScore)
	assert.Equal(t, manualEducation, *first.ManualEducationScore)
	require.NotNil(t, first.ManualTotalScore)
	assert.Equal(t, manualTotal, *first.ManualTotalScore)
}

func (s *HandlerTestSuite) TestAdminScoreOutOfRange() {
	t := s.T()
	jobId, _ := s.seedJob()
	s.saveCriteria(jobId)
	s.generate(jobId)
	data := s.list(web.ListResultsReq{JobID: jobId})
	bad := 120.0

	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/results/admin-score", iox.NewJSONReader(web.AdminScoreReq{
			ID:                   data.Results[0].ID,
			ManualEducationScore: &bad,
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidManualScore.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestOverrideDisqualification() {
	t := s.T()
	jobId, candidateIds := s.seedJob()
	s.saveCriteria(jobId)
	s.generate(jobId)

	data := s.list(web.ListResultsReq{JobID: jobId, IncludeDisqualified: true})
	require.Len(t, data.Results, 3)
	disqualified := data.Results[2]
	require.Equal(t, candidateIds[2], disqualified.CandidateID)

	httpReq, err := http.NewRequest(http.MethodPost,
		"/shortlist/results/override-disqualification",
		iox.NewJSONReader(web.OverrideDisqualificationReq{
			ID:       disqualified.ID,
			Override: true,
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)

	data = s.list(web.ListResultsReq{JobID: jobId})
	require.Len(t, data.Results, 3)
	var reinstated web.Result
	for _, r := range data.Results {
		if r.CandidateID == candidateIds[2] {
			reinstated = r
		}
	}
	assert.Equal(t, "qualified", reinstated.Status)
	// 系统判定保留，只是被覆盖
	assert.True(t, reinstated.HasDisqualifyingFactor)
	assert.True(t, reinstated.OverrideDisqualification)
	assert.NotNil(t, reinstated.CandidateRank)
	assert.True(t, reinstated.AuditFlag)
}

func (s *HandlerTestSuite) TestExport() {
	t := s.T()
	jobId, _ := s.seedJob()
	s.saveCriteria(jobId)
	s.generate(jobId)

	httpReq, err := http.NewRequest(http.MethodGet,
		"/shortlist/export?jobId="+strconv.FormatInt(jobId, 10), nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)

	file, err := excelize.OpenReader(recorder.Body)
	require.NoError(t, err)
	rows, err := file.GetRows("Shortlist")
	require.NoError(t, err)
	// 表头 + 两个合格的
	require.Len(t, rows, 3)
	assert.Equal(t, "Achieng Odhiambo", rows[1][1])
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
