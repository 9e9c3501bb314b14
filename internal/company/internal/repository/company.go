package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"

	"github.com/ajirahub/ajirahub/internal/company/internal/domain"
	"github.com/ajirahub/ajirahub/internal/company/internal/repository/dao"
)

type CompanyRepository interface {
	Save(ctx context.Context, c domain.Company) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Company, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Company, error)
}

type companyRepository struct {
	dao dao.CompanyDAO
}

func NewCompanyRepository(d dao.CompanyDAO) CompanyRepository {
	return &companyRepository{dao: d}
}

func (r *companyRepository) Save(ctx context.Context, c domain.Company) (int64, error) {
	return r.dao.Save(ctx, dao.Company{
		Id:       c.ID,
		Name:     c.Name,
		Industry: c.Industry,
		Location: c.Location,
	})
}

func (r *companyRepository) FindById(ctx context.Context, id int64) (domain.Company, error) {
	c, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Company{}, err
	}
	return toDomain(c), nil
}

func (r *companyRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Company, error) {
	cs, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Company) domain.Company {
		return toDomain(src)
	}), nil
}

func toDomain(c dao.Company) domain.Company {
	return domain.Company{
		ID:       c.Id,
		Name:     c.Name,
		Industry: c.Industry,
		Location: c.Location,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}
