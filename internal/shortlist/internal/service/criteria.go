// Copyright 2024 ajirahub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrCriteriaNotConfigured 岗位还没保存过筛选标准
	ErrCriteriaNotConfigured = errors.New("该岗位尚未配置筛选标准")
)

//go:generate mockgen -source=./criteria.go -package=shortlistmocks -destination=../../mocks/criteria.mock.go CriteriaService

type CriteriaService interface {
	// Save 校验通过后落库，同一岗位重复保存视为更新
	Save(ctx context.Context, c domain.Criteria) (int64, error)
	// Detail 返回配置以及相对当前榜单的过期提示
	Detail(ctx context.Context, jobId int64) (domain.Criteria, domain.Staleness, error)
}

type criteriaService struct {
	repo       repository.CriteriaRepository
	resultRepo repository.ResultRepository
}

func NewCriteriaService(repo repository.CriteriaRepository,
	resultRepo repository.ResultRepository) CriteriaService {
	return &criteriaService{
		repo:       repo,
		resultRepo: resultRepo,
	}
}

func (s *criteriaService) Save(ctx context.Context, c domain.Criteria) (int64, error) {
	err := c.Validate()
	if err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, c)
}

func (s *criteriaService) Detail(ctx context.Context,
	jobId int64) (domain.Criteria, domain.Staleness, error) {
	c, err := s.repo.FindByJobId(ctx, jobId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Criteria{}, domain.Staleness{}, ErrCriteriaNotConfigured
	}
	if err != nil {
		return domain.Criteria{}, domain.Staleness{}, err
	}
	generatedAt, err := s.resultRepo.LatestGeneratedAt(ctx, jobId)
	if err != nil {
		return domain.Criteria{}, domain.Staleness{}, err
	}
	return c, domain.CheckStale(c.Utime, generatedAt), nil
}
