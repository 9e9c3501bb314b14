package service

import (
	"context"

	"github.com/ajirahub/ajirahub/internal/job/internal/domain"
	"github.com/ajirahub/ajirahub/internal/job/internal/repository"
)

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go JobService

type JobService interface {
	Save(ctx context.Context, j domain.Job) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Job, error)
	Apply(ctx context.Context, app domain.Application) (int64, error)
	// Applications 岗位的有效投递，入围评估的输入
	Applications(ctx context.Context, jobId int64) ([]domain.Application, error)
}

type jobService struct {
	repo repository.JobRepository
}

func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) Save(ctx context.Context, j domain.Job) (int64, error) {
	return s.repo.Save(ctx, j)
}

func (s *jobService) GetById(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *jobService) Apply(ctx context.Context, app domain.Application) (int64, error) {
	app.Status = domain.ApplicationStatusSubmitted
	return s.repo.SaveApplication(ctx, app)
}

func (s *jobService) Applications(ctx context.Context, jobId int64) ([]domain.Application, error) {
	return s.repo.Applications(ctx, jobId)
}
