package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type CompanyDAO interface {
	Save(ctx context.Context, c Company) (int64, error)
	FindById(ctx context.Context, id int64) (Company, error)
	FindByIds(ctx context.Context, ids []int64) ([]Company, error)
}

type Company struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(256)"`
	Industry string `gorm:"type:varchar(256)"`
	Location string `gorm:"type:varchar(256)"`
	Ctime    int64
	Utime    int64
}

type GORMCompanyDAO struct {
	db *egorm.Component
}

func NewGORMCompanyDAO(db *egorm.Component) CompanyDAO {
	return &GORMCompanyDAO{
		db: db,
	}
}

func (c *GORMCompanyDAO) Save(ctx context.Context, company Company) (int64, error) {
	now := time.Now().UnixMilli()
	company.Utime = now
	company.Ctime = now
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "industry", "location", "utime"}),
	}).Create(&company).Error
	return company.Id, err
}

func (c *GORMCompanyDAO) FindById(ctx context.Context, id int64) (Company, error) {
	var company Company
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	return company, err
}

func (c *GORMCompanyDAO) FindByIds(ctx context.Context, ids []int64) ([]Company, error) {
	var companies []Company
	err := c.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error
	return companies, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Company{})
}
