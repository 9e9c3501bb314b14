package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type CriteriaDAO interface {
	// Save 按 job_id 幂等保存，返回主键
	Save(ctx context.Context, c Criteria) (int64, error)
	FindByJobId(ctx context.Context, jobId int64) (Criteria, error)
}

type Criteria struct {
	Id    int64 `gorm:"primaryKey;autoIncrement"`
	JobId int64 `gorm:"uniqueIndex"`

	EducationWeight    int `gorm:"type:tinyint(3) unsigned"`
	ExperienceWeight   int `gorm:"type:tinyint(3) unsigned"`
	SkillsWeight       int `gorm:"type:tinyint(3) unsigned"`
	ClearanceWeight    int `gorm:"type:tinyint(3) unsigned"`
	ProfessionalWeight int `gorm:"type:tinyint(3) unsigned"`

	Personal     sqlx.JsonColumn[PersonalCriteria]     `gorm:"type:text"`
	Education    sqlx.JsonColumn[EducationCriteria]    `gorm:"type:text"`
	Experience   sqlx.JsonColumn[ExperienceCriteria]   `gorm:"type:text"`
	Skills       sqlx.JsonColumn[SkillsCriteria]       `gorm:"type:text"`
	Professional sqlx.JsonColumn[ProfessionalCriteria] `gorm:"type:text"`
	Clearances   sqlx.JsonColumn[ClearanceCriteria]    `gorm:"type:text"`
	Compensation sqlx.JsonColumn[CompensationCriteria] `gorm:"type:text"`

	Ctime int64
	Utime int64
}

func (Criteria) TableName() string {
	return "shortlist_criteria"
}

type PersonalCriteria struct {
	MinAge      int      `json:"minAge"`
	MaxAge      int      `json:"maxAge"`
	Gender      string   `json:"gender"`
	Nationality string   `json:"nationality"`
	Counties    []string `json:"counties"`
	AcceptPLWD  bool     `json:"acceptPlwd"`
	RequirePLWD bool     `json:"requirePlwd"`
}

type EducationCriteria struct {
	RequireDegree  bool     `json:"requireDegree"`
	MinDegreeLevel uint8    `json:"minDegreeLevel"`
	Fields         []string `json:"fields"`
	Institutions   []string `json:"institutions"`
	MinGrade       uint8    `json:"minGrade"`
}

type ExperienceCriteria struct {
	MinYears                 float64  `json:"minYears"`
	MaxYears                 float64  `json:"maxYears"`
	MinSeniorYears           float64  `json:"minSeniorYears"`
	RequireManagement        bool     `json:"requireManagement"`
	PreferMNC                bool     `json:"preferMnc"`
	PreferStartup            bool     `json:"preferStartup"`
	PreferNGO                bool     `json:"preferNgo"`
	PreferGovernment         bool     `json:"preferGovernment"`
	RequireCurrentlyEmployed bool     `json:"requireCurrentlyEmployed"`
	ExcludeCurrentlyEmployed bool     `json:"excludeCurrentlyEmployed"`
	Industries               []string `json:"industries"`
	Titles                   []string `json:"titles"`
	MinTeamSize              int      `json:"minTeamSize"`
}

type SkillsCriteria struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

type ProfessionalCriteria struct {
	RequireMembership       bool     `json:"requireMembership"`
	RequireGoodStanding     bool     `json:"requireGoodStanding"`
	RequireLeadershipCourse bool     `json:"requireLeadershipCourse"`
	MinLeadershipMonths     int      `json:"minLeadershipMonths"`
	RequiredCertifications  []string `json:"requiredCertifications"`
	PreferredCertifications []string `json:"preferredCertifications"`
	MinPublications         int      `json:"minPublications"`
	PreferPortfolio         bool     `json:"preferPortfolio"`
	PreferGithub            bool     `json:"preferGithub"`
	PreferLinkedin          bool     `json:"preferLinkedin"`
	RequireReferees         bool     `json:"requireReferees"`
	MinReferees             int      `json:"minReferees"`
	RequireSeniorReferee    bool     `json:"requireSeniorReferee"`
	RequireAcademicReferee  bool     `json:"requireAcademicReferee"`
}

type ClearanceCriteria struct {
	Tax  bool `json:"tax"`
	HELB bool `json:"helb"`
	DCI  bool `json:"dci"`
	CRB  bool `json:"crb"`
	EACC bool `json:"eacc"`
}

type CompensationCriteria struct {
	MinExpectedSalary            int64 `json:"minExpectedSalary"`
	MaxExpectedSalary            int64 `json:"maxExpectedSalary"`
	MaxNoticeDays                int   `json:"maxNoticeDays"`
	RequireImmediateAvailability bool  `json:"requireImmediateAvailability"`
	WorkMode                     uint8 `json:"workMode"`
}

type criteriaDAO struct {
	db *egorm.Component
}

func NewCriteriaDAO(db *egorm.Component) CriteriaDAO {
	return &criteriaDAO{db: db}
}

func (d *criteriaDAO) Save(ctx context.Context, c Criteria) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"education_weight", "experience_weight", "skills_weight",
			"clearance_weight", "professional_weight",
			"personal", "education", "experience", "skills",
			"professional", "clearances", "compensation",
			"utime",
		}),
	}).Create(&c).Error
	if err != nil {
		return 0, err
	}
	return c.Id, nil
}

func (d *criteriaDAO) FindByJobId(ctx context.Context, jobId int64) (Criteria, error) {
	var c Criteria
	err := d.db.WithContext(ctx).Where("job_id = ?", jobId).First(&c).Error
	return c, err
}
