package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type ProfileDAO interface {
	Save(ctx context.Context, p Profile) (int64, error)
	FindById(ctx context.Context, id int64) (Profile, error)
	FindByIds(ctx context.Context, ids []int64) ([]Profile, error)
	List(ctx context.Context, offset, limit int) ([]Profile, error)
	Count(ctx context.Context) (int64, error)
}

type Profile struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	FullName string `gorm:"type:varchar(256)"`
	Email    string `gorm:"type:varchar(256)"`
	Phone    string `gorm:"type:varchar(64)"`

	Personal     sqlx.JsonColumn[Personal]     `gorm:"type:text"`
	Education    sqlx.JsonColumn[[]Education]  `gorm:"type:text"`
	Experience   sqlx.JsonColumn[[]Experience] `gorm:"type:text"`
	Skills       sqlx.JsonColumn[[]string]     `gorm:"type:text"`
	Professional sqlx.JsonColumn[Professional] `gorm:"type:text"`
	Clearances   sqlx.JsonColumn[Clearances]   `gorm:"type:text"`
	Referees     sqlx.JsonColumn[[]Referee]    `gorm:"type:text"`
	Compensation sqlx.JsonColumn[Compensation] `gorm:"type:text"`

	Ctime int64
	Utime int64
}

type Personal struct {
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	County      string `json:"county"`
	PLWD        bool   `json:"plwd"`
}

type Education struct {
	Level       uint8  `json:"level"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Grade       uint8  `json:"grade"`
}

type Experience struct {
	Title        string  `json:"title"`
	Industry     string  `json:"industry"`
	EmployerType uint8   `json:"employerType"`
	Years        float64 `json:"years"`
	Senior       bool    `json:"senior"`
	Management   bool    `json:"management"`
	TeamSize     int     `json:"teamSize"`
	Current      bool    `json:"current"`
}

type Professional struct {
	Memberships            []string `json:"memberships"`
	GoodStanding           bool     `json:"goodStanding"`
	LeadershipCourse       bool     `json:"leadershipCourse"`
	LeadershipCourseMonths int      `json:"leadershipCourseMonths"`
	Certifications         []string `json:"certifications"`
	Publications           int      `json:"publications"`
	PortfolioURL           string   `json:"portfolioUrl"`
	GithubURL              string   `json:"githubUrl"`
	LinkedinURL            string   `json:"linkedinUrl"`
}

type Clearances struct {
	Tax  bool `json:"tax"`
	HELB bool `json:"helb"`
	DCI  bool `json:"dci"`
	CRB  bool `json:"crb"`
	EACC bool `json:"eacc"`
}

type Referee struct {
	Name     string `json:"name"`
	Senior   bool   `json:"senior"`
	Academic bool   `json:"academic"`
}

type Compensation struct {
	ExpectedSalary       int64 `json:"expectedSalary"`
	NoticeDays           int   `json:"noticeDays"`
	ImmediatelyAvailable bool  `json:"immediatelyAvailable"`
	WorkMode             uint8 `json:"workMode"`
}

type profileDAO struct {
	db *egorm.Component
}

func NewProfileDAO(db *egorm.Component) ProfileDAO {
	return &profileDAO{db: db}
}

func (d *profileDAO) Save(ctx context.Context, p Profile) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "email", "phone",
			"personal", "education", "experience", "skills",
			"professional", "clearances", "referees", "compensation",
			"utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

func (d *profileDAO) FindById(ctx context.Context, id int64) (Profile, error) {
	var p Profile
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *profileDAO) FindByIds(ctx context.Context, ids []int64) ([]Profile, error) {
	var res []Profile
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *profileDAO) List(ctx context.Context, offset, limit int) ([]Profile, error) {
	var res []Profile
	err := d.db.WithContext(ctx).
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *profileDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Profile{}).Count(&res).Error
	return res, err
}
