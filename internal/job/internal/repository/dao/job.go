package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm/clause"
)

// ErrApplicationDuplicate 同一候选人对同一岗位只能投递一次
var ErrApplicationDuplicate = errors.New("重复投递")

type JobDAO interface {
	Save(ctx context.Context, j Job) (int64, error)
	FindById(ctx context.Context, id int64) (Job, error)
	SaveApplication(ctx context.Context, app Application) (int64, error)
	// Applications 返回该岗位所有未撤回的投递，按候选人 ID 升序
	Applications(ctx context.Context, jobId int64) ([]Application, error)
}

type Job struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	CompanyId int64  `gorm:"index"`
	Title     string `gorm:"type:varchar(512)"`
	WorkMode  uint8  `gorm:"type:tinyint(3);comment:'0-不限 1-远程 2-现场 3-混合'"`
	Status    uint8  `gorm:"type:tinyint(3);comment:'0-未知 1-开放 2-关闭'"`
	Ctime     int64
	Utime     int64
}

type Application struct {
	Id          int64 `gorm:"primaryKey;autoIncrement"`
	JobId       int64 `gorm:"uniqueIndex:job_candidate"`
	CandidateId int64 `gorm:"uniqueIndex:job_candidate"`
	Status      uint8 `gorm:"type:tinyint(3);comment:'0-未知 1-已投递 2-已撤回'"`
	Ctime       int64
	Utime       int64
}

type jobDAO struct {
	db *egorm.Component
}

func NewJobDAO(db *egorm.Component) JobDAO {
	return &jobDAO{db: db}
}

func (d *jobDAO) Save(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"company_id", "title", "work_mode", "status", "utime"}),
	}).Create(&j).Error
	return j.Id, err
}

func (d *jobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (d *jobDAO) SaveApplication(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := d.db.WithContext(ctx).Create(&app).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrApplicationDuplicate
		}
	}
	return app.Id, err
}

func (d *jobDAO) Applications(ctx context.Context, jobId int64) ([]Application, error) {
	var apps []Application
	err := d.db.WithContext(ctx).
		Where("job_id = ? AND status = ?", jobId, 1).
		Order("candidate_id asc").
		Find(&apps).Error
	return apps, err
}
