package repository

import (
	"context"

	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/job/internal/domain"
	"github.com/ajirahub/ajirahub/internal/job/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type JobRepository interface {
	Save(ctx context.Context, j domain.Job) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Job, error)
	SaveApplication(ctx context.Context, app domain.Application) (int64, error)
	Applications(ctx context.Context, jobId int64) ([]domain.Application, error)
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Save(ctx context.Context, j domain.Job) (int64, error) {
	return r.dao.Save(ctx, dao.Job{
		Id:        j.ID,
		CompanyId: j.CompanyID,
		Title:     j.Title,
		WorkMode:  j.WorkMode.ToUint8(),
		Status:    j.Status.ToUint8(),
	})
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return domain.Job{
		ID:        j.Id,
		CompanyID: j.CompanyId,
		Title:     j.Title,
		WorkMode:  candidate.WorkMode(j.WorkMode),
		Status:    domain.JobStatus(j.Status),
		Ctime:     j.Ctime,
		Utime:     j.Utime,
	}, nil
}

func (r *jobRepository) SaveApplication(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.SaveApplication(ctx, dao.Application{
		Id:          app.ID,
		JobId:       app.JobID,
		CandidateId: app.CandidateID,
		Status:      uint8(app.Status),
	})
}

func (r *jobRepository) Applications(ctx context.Context, jobId int64) ([]domain.Application, error) {
	apps, err := r.dao.Applications(ctx, jobId)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(_ int, src dao.Application) domain.Application {
		return domain.Application{
			ID:          src.Id,
			JobID:       src.JobId,
			CandidateID: src.CandidateId,
			Status:      domain.ApplicationStatus(src.Status),
		}
	}), nil
}
