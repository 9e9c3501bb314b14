package service

import (
	"context"

	"github.com/ajirahub/ajirahub/internal/candidate/internal/domain"
	"github.com/ajirahub/ajirahub/internal/candidate/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./profile.go -package=candidatemocks -destination=../../mocks/candidate.mock.go ProfileService

type ProfileService interface {
	Save(ctx context.Context, p domain.Profile) (int64, error)
	Profile(ctx context.Context, id int64) (domain.Profile, error)
	// Profiles 批量查询，返回以候选人 ID 为键的映射，查不到的 ID 不在结果里
	Profiles(ctx context.Context, ids []int64) (map[int64]domain.Profile, error)
	List(ctx context.Context, offset, limit int) (int64, []domain.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Save(ctx context.Context, p domain.Profile) (int64, error) {
	return s.repo.Save(ctx, p)
}

func (s *profileService) Profile(ctx context.Context, id int64) (domain.Profile, error) {
	return s.repo.FindById(ctx, id)
}

func (s *profileService) Profiles(ctx context.Context, ids []int64) (map[int64]domain.Profile, error) {
	if len(ids) == 0 {
		return map[int64]domain.Profile{}, nil
	}
	ps, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Profile, len(ps))
	for _, p := range ps {
		res[p.ID] = p
	}
	return res, nil
}

func (s *profileService) List(ctx context.Context, offset, limit int) (int64, []domain.Profile, error) {
	var (
		eg    errgroup.Group
		count int64
		ps    []domain.Profile
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		count, err = s.repo.Count(ctx)
		return err
	})
	err := eg.Wait()
	return count, ps, err
}
