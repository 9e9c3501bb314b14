package service

import (
	"context"

	"github.com/ajirahub/ajirahub/internal/company/internal/domain"
	"github.com/ajirahub/ajirahub/internal/company/internal/repository"
)

//go:generate mockgen -source=./company.go -destination=../../mocks/company.mock.go -package=companymocks CompanyService

type CompanyService interface {
	Save(ctx context.Context, company domain.Company) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Company, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error)
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{
		repo: repo,
	}
}

func (s *companyService) Save(ctx context.Context, company domain.Company) (int64, error) {
	return s.repo.Save(ctx, company)
}

func (s *companyService) GetById(ctx context.Context, id int64) (domain.Company, error) {
	return s.repo.FindById(ctx, id)
}

func (s *companyService) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error) {
	companies, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Company, len(companies))
	for _, company := range companies {
		res[company.ID] = company
	}
	return res, nil
}
