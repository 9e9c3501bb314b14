package web

import (
	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/company"
	"github.com/ajirahub/ajirahub/internal/job"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type JobID struct {
	JobID int64 `json:"jobId" binding:"required"`
}

type Weights struct {
	Education    int `json:"education"`
	Experience   int `json:"experience"`
	Skills       int `json:"skills"`
	Clearance    int `json:"clearance"`
	Professional int `json:"professional"`
}

type PersonalCriteria struct {
	MinAge      int      `json:"minAge,omitempty"`
	MaxAge      int      `json:"maxAge,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Nationality string   `json:"nationality,omitempty"`
	Counties    []string `json:"counties,omitempty"`
	AcceptPLWD  bool     `json:"acceptPlwd,omitempty"`
	RequirePLWD bool     `json:"requirePlwd,omitempty"`
}

type EducationCriteria struct {
	RequireDegree  bool     `json:"requireDegree,omitempty"`
	MinDegreeLevel uint8    `json:"minDegreeLevel,omitempty"`
	Fields         []string `json:"fields,omitempty"`
	Institutions   []string `json:"institutions,omitempty"`
	MinGrade       uint8    `json:"minGrade,omitempty"`
}

type ExperienceCriteria struct {
	MinYears                 float64  `json:"minYears,omitempty"`
	MaxYears                 float64  `json:"maxYears,omitempty"`
	MinSeniorYears           float64  `json:"minSeniorYears,omitempty"`
	RequireManagement        bool     `json:"requireManagement,omitempty"`
	PreferMNC                bool     `json:"preferMnc,omitempty"`
	PreferStartup            bool     `json:"preferStartup,omitempty"`
	PreferNGO                bool     `json:"preferNgo,omitempty"`
	PreferGovernment         bool     `json:"preferGovernment,omitempty"`
	RequireCurrentlyEmployed bool     `json:"requireCurrentlyEmployed,omitempty"`
	ExcludeCurrentlyEmployed bool     `json:"excludeCurrentlyEmployed,omitempty"`
	Industries               []string `json:"industries,omitempty"`
	Titles                   []string `json:"titles,omitempty"`
	MinTeamSize              int      `json:"minTeamSize,omitempty"`
}

type SkillsCriteria struct {
	Required  []string `json:"required,omitempty"`
	Preferred []string `json:"preferred,omitempty"`
}

type ProfessionalCriteria struct {
	RequireMembership       bool     `json:"requireMembership,omitempty"`
	RequireGoodStanding     bool     `json:"requireGoodStanding,omitempty"`
	RequireLeadershipCourse bool     `json:"requireLeadershipCourse,omitempty"`
	MinLeadershipMonths     int      `json:"minLeadershipMonths,omitempty"`
	RequiredCertifications  []string `json:"requiredCertifications,omitempty"`
	PreferredCertifications []string `json:"preferredCertifications,omitempty"`
	MinPublications         int      `json:"minPublications,omitempty"`
	PreferPortfolio         bool     `json:"preferPortfolio,omitempty"`
	PreferGithub            bool     `json:"preferGithub,omitempty"`
	PreferLinkedin          bool     `json:"preferLinkedin,omitempty"`
	RequireReferees         bool     `json:"requireReferees,omitempty"`
	MinReferees             int      `json:"minReferees,omitempty"`
	RequireSeniorReferee    bool     `json:"requireSeniorReferee,omitempty"`
	RequireAcademicReferee  bool     `json:"requireAcademicReferee,omitempty"`
}

type ClearanceCriteria struct {
	Tax  bool `json:"tax,omitempty"`
	HELB bool `json:"helb,omitempty"`
	DCI  bool `json:"dci,omitempty"`
	CRB  bool `json:"crb,omitempty"`
	EACC bool `json:"eacc,omitempty"`
}

type CompensationCriteria struct {
	MinExpectedSalary            int64 `json:"minExpectedSalary,omitempty"`
	MaxExpectedSalary            int64 `json:"maxExpectedSalary,omitempty"`
	MaxNoticeDays                int   `json:"maxNoticeDays,omitempty"`
	RequireImmediateAvailability bool  `json:"requireImmediateAvailability,omitempty"`
	WorkMode                     uint8 `json:"workMode,omitempty"`
}

type Criteria struct {
	ID           int64                `json:"id,omitempty"`
	JobID        int64                `json:"jobId"`
	Weights      Weights              `json:"weights"`
	Personal     PersonalCriteria     `json:"personal"`
	Education    EducationCriteria    `json:"education"`
	Experience   ExperienceCriteria   `json:"experience"`
	Skills       SkillsCriteria       `json:"skills"`
	Professional ProfessionalCriteria `json:"professional"`
	Clearances   ClearanceCriteria    `json:"clearances"`
	Compensation CompensationCriteria `json:"compensation"`
	Utime        int64                `json:"utime,omitempty"`
}

type SaveCriteriaReq struct {
	JobID    int64    `json:"jobId" binding:"required"`
	Criteria Criteria `json:"criteria"`
}

type CriteriaDetail struct {
	Criteria Criteria `json:"criteria"`
	// Configured false 时 criteria 为零值
	Configured  bool    `json:"configured"`
	Job         Job     `json:"job"`
	Company     Company `json:"company"`
	Stale       bool    `json:"stale"`
	StaleReason string  `json:"staleReason,omitempty"`
}

type Job struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	WorkMode uint8  `json:"workMode"`
	Status   uint8  `json:"status"`
}

type Company struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`
}

type GenerateResp struct {
	Total        int     `json:"total"`
	Qualified    int     `json:"qualified"`
	TopScore     float64 `json:"topScore"`
	AverageScore float64 `json:"averageScore"`
	GeneratedAt  int64   `json:"generatedAt"`
}

type ListResultsReq struct {
	JobID int64 `json:"jobId" binding:"required"`
	// IncludeDisqualified false 时过滤掉生效淘汰的结果
	IncludeDisqualified bool   `json:"includeDisqualified"`
	Status              string `json:"status,omitempty"`
	Offset              int    `json:"offset,omitempty"`
	Limit               int    `json:"limit,omitempty"`
}

type Result struct {
	ID          int64 `json:"id"`
	JobID       int64 `json:"jobId"`
	CandidateID int64 `json:"candidateId"`

	CandidateName   string `json:"candidateName,omitempty"`
	CandidateEmail  string `json:"candidateEmail,omitempty"`
	CandidatePhone  string `json:"candidatePhone,omitempty"`
	CandidateDegree uint8  `json:"candidateDegree,omitempty"`

	EducationScore    float64 `json:"educationScore"`
	ExperienceScore   float64 `json:"experienceScore"`
	SkillsScore       float64 `json:"skillsScore"`
	ClearanceScore    float64 `json:"clearanceScore"`
	ProfessionalScore float64 `json:"professionalScore"`
	TotalScore        float64 `json:"totalScore"`

	ManualEducationScore    *float64 `json:"manualEducationScore,omitempty"`
	ManualExperienceScore   *float64 `json:"manualExperienceScore,omitempty"`
	ManualSkillsScore       *float64 `json:"manualSkillsScore,omitempty"`
	ManualClearanceScore    *float64 `json:"manualClearanceScore,omitempty"`
	ManualProfessionalScore *float64 `json:"manualProfessionalScore,omitempty"`
	ManualTotalScore        *float64 `json:"manualTotalScore,omitempty"`

	EffectiveTotalScore float64 `json:"effectiveTotalScore"`
	Status              string  `json:"status"`

	HasDisqualifyingFactor   bool     `json:"hasDisqualifyingFactor"`
	DisqualificationReasons  []string `json:"disqualificationReasons,omitempty"`
	OverrideDisqualification bool     `json:"overrideDisqualification"`

	MatchedCriteria   []string `json:"matchedCriteria,omitempty"`
	MissedCriteria    []string `json:"missedCriteria,omitempty"`
	BonusCriteria     []string `json:"bonusCriteria,omitempty"`
	HasAllMandatory   bool     `json:"hasAllMandatory"`
	IncompleteProfile bool     `json:"incompleteProfile"`

	CandidateRank *int    `json:"candidateRank,omitempty"`
	Percentile    float64 `json:"percentile"`

	HrNotes          string `json:"hrNotes,omitempty"`
	FlaggedForReview bool   `json:"flaggedForReview"`
	InternalRating   uint8  `json:"internalRating,omitempty"`
	AuditFlag        bool   `json:"auditFlag"`

	GeneratedAt int64 `json:"generatedAt"`
}

type Stats struct {
	Total        int     `json:"total"`
	Qualified    int     `json:"qualified"`
	TopScore     float64 `json:"topScore"`
	AverageScore float64 `json:"averageScore"`
	GeneratedAt  int64   `json:"generatedAt"`
}

type ResultList struct {
	Results     []Result `json:"results"`
	Total       int      `json:"total"`
	Stats       Stats    `json:"stats"`
	Job         Job      `json:"job"`
	Company     Company  `json:"company"`
	Stale       bool     `json:"stale"`
	StaleReason string   `json:"staleReason,omitempty"`
}

type ReviewReq struct {
	ID               int64  `json:"id" binding:"required"`
	HrNotes          string `json:"hrNotes"`
	FlaggedForReview bool   `json:"flaggedForReview"`
	InternalRating   uint8  `json:"internalRating"`
}

type AdminScoreReq struct {
	ID                      int64    `json:"id" binding:"required"`
	ManualEducationScore    *float64 `json:"manualEducationScore"`
	ManualExperienceScore   *float64 `json:"manualExperienceScore"`
	ManualSkillsScore       *float64 `json:"manualSkillsScore"`
	ManualClearanceScore    *float64 `json:"manualClearanceScore"`
	ManualProfessionalScore *float64 `json:"manualProfessionalScore"`
	ManualTotalScore        *float64 `json:"manualTotalScore"`
}

type OverrideDisqualificationReq struct {
	ID       int64 `json:"id" binding:"required"`
	Override bool  `json:"override"`
}

func (c Criteria) toDomain(jobId int64) domain.Criteria {
	return domain.Criteria{
		ID:    c.ID,
		JobID: jobId,
		Weights: domain.Weights{
			Education:    c.Weights.Education,
			Experience:   c.Weights.Experience,
			Skills:       c.Weights.Skills,
			Clearance:    c.Weights.Clearance,
			Professional: c.Weights.Professional,
		},
		Personal: domain.PersonalCriteria{
			MinAge:      c.Personal.MinAge,
			MaxAge:      c.Personal.MaxAge,
			Gender:      c.Personal.Gender,
			Nationality: c.Personal.Nationality,
			Counties:    c.Personal.Counties,
			AcceptPLWD:  c.Personal.AcceptPLWD,
			RequirePLWD: c.Personal.RequirePLWD,
		},
		Education: domain.EducationCriteria{
			RequireDegree:  c.Education.RequireDegree,
			MinDegreeLevel: candidate.DegreeLevel(c.Education.MinDegreeLevel),
			Fields:         c.Education.Fields,
			Institutions:   c.Education.Institutions,
			MinGrade:       candidate.Grade(c.Education.MinGrade),
		},
		Experience: domain.ExperienceCriteria{
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
		Skills: domain.SkillsCriteria{
			Required:  c.Skills.Required,
			Preferred: c.Skills.Preferred,
		},
		Professional: domain.ProfessionalCriteria{
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
		Clearances: domain.ClearanceCriteria{
			Tax:  c.Clearances.Tax,
			HELB: c.Clearances.HELB,
			DCI:  c.Clearances.DCI,
			CRB:  c.Clearances.CRB,
			EACC: c.Clearances.EACC,
		},
		Compensation: domain.CompensationCriteria{
			MinExpectedSalary:            c.Compensation.MinExpectedSalary,
			MaxExpectedSalary:            c.Compensation.MaxExpectedSalary,
			MaxNoticeDays:                c.Compensation.MaxNoticeDays,
			RequireImmediateAvailability: c.Compensation.RequireImmediateAvailability,
			WorkMode:                     candidate.WorkMode(c.Compensation.WorkMode),
		},
	}
}

func newCriteria(c domain.Criteria) Criteria {
	return Criteria{
		ID:    c.ID,
		JobID: c.JobID,
		Weights: Weights{
			Education:    c.Weights.Education,
			Experience:   c.Weights.Experience,
			Skills:       c.Weights.Skills,
			Clearance:    c.Weights.Clearance,
			Professional: c.Weights.Professional,
		},
		Personal: PersonalCriteria{
			MinAge:      c.Personal.MinAge,
			MaxAge:      c.Personal.MaxAge,
			Gender:      c.Personal.Gender,
			Nationality: c.Personal.Nationality,
			Counties:    c.Personal.Counties,
			AcceptPLWD:  c.Personal.AcceptPLWD,
			RequirePLWD: c.Personal.RequirePLWD,
		},
		Education: EducationCriteria{
			RequireDegree:  c.Education.RequireDegree,
			MinDegreeLevel: c.Education.MinDegreeLevel.ToUint8(),
			Fields:         c.Education.Fields,
			Institutions:   c.Education.Institutions,
			MinGrade:       c.Education.MinGrade.ToUint8(),
		},
		Experience: ExperienceCriteria{
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
		Skills: SkillsCriteria{
			Required:  c.Skills.Required,
			Preferred: c.Skills.Preferred,
		},
		Professional: ProfessionalCriteria{
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
		Clearances: ClearanceCriteria{
			Tax:  c.Clearances.Tax,
			HELB: c.Clearances.HELB,
			DCI:  c.Clearances.DCI,
			CRB:  c.Clearances.CRB,
			EACC: c.Clearances.EACC,
		},
		Compensation: CompensationCriteria{
			MinExpectedSalary:            c.Compensation.MinExpectedSalary,
			MaxExpectedSalary:            c.Compensation.MaxExpectedSalary,
			MaxNoticeDays:                c.Compensation.MaxNoticeDays,
			RequireImmediateAvailability: c.Compensation.RequireImmediateAvailability,
			WorkMode:                     c.Compensation.WorkMode.ToUint8(),
		},
		Utime: c.Utime,
	}
}

func newJob(j job.Job) Job {
	return Job{
		ID:       j.ID,
		Title:    j.Title,
		WorkMode: j.WorkMode.ToUint8(),
		Status:   j.Status.ToUint8(),
	}
}

func newCompany(c company.Company) Company {
	return Company{
		ID:       c.ID,
		Name:     c.Name,
		Industry: c.Industry,
		Location: c.Location,
	}
}

func newStats(s domain.Stats) Stats {
	return Stats{
		Total:        s.Total,
		Qualified:    s.Qualified,
		TopScore:     s.TopScore,
		AverageScore: s.AverageScore,
		GeneratedAt:  s.GeneratedAt,
	}
}

func newResult(r domain.Result) Result {
	return Result{
		ID:          r.ID,
		JobID:       r.JobID,
		CandidateID: r.CandidateID,

		CandidateName:   r.CandidateName,
		CandidateEmail:  r.CandidateEmail,
		CandidatePhone:  r.CandidatePhone,
		CandidateDegree: r.CandidateDegree.ToUint8(),

		EducationScore:    r.EducationScore,
		ExperienceScore:   r.ExperienceScore,
		SkillsScore:       r.SkillsScore,
		ClearanceScore:    r.ClearanceScore,
		ProfessionalScore: r.ProfessionalScore,
		TotalScore:        r.TotalScore,

		ManualEducationScore:    r.ManualEducationScore,
		ManualExperienceScore:   r.ManualExperienceScore,
		ManualSkillsScore:       r.ManualSkillsScore,
		ManualClearanceScore:    r.ManualClearanceScore,
		ManualProfessionalScore: r.ManualProfessionalScore,
		ManualTotalScore:        r.ManualTotalScore,

		EffectiveTotalScore: r.EffectiveTotalScore(),
		Status:              r.Status(),

		HasDisqualifyingFactor:   r.HasDisqualifyingFactor,
		DisqualificationReasons:  r.DisqualificationReasons,
		OverrideDisqualification: r.OverrideDisqualification,

		MatchedCriteria:   r.MatchedCriteria,
		MissedCriteria:    r.MissedCriteria,
		BonusCriteria:     r.BonusCriteria,
		HasAllMandatory:   r.HasAllMandatory,
		IncompleteProfile: r.IncompleteProfile,

		CandidateRank: r.CandidateRank,
		Percentile:    r.Percentile,

		HrNotes:          r.HrNotes,
		FlaggedForReview: r.FlaggedForReview,
		InternalRating:   r.InternalRating,
		AuditFlag:        r.AuditFlag,

		GeneratedAt: r.GeneratedAt,
	}
}

func newResults(results []domain.Result) []Result {
	return slice.Map(results, func(_ int, src domain.Result) Result {
		return newResult(src)
	})
}
