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
	"testing"

	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	repomocks "github.com/ajirahub/ajirahub/internal/shortlist/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newCriteriaService(t *testing.T) (CriteriaService,
	*repomocks.MockCriteriaRepository, *repomocks.MockResultRepository) {
	ctrl := gomock.NewController(t)
	criteriaRepo := repomocks.NewMockCriteriaRepository(ctrl)
	resultRepo := repomocks.NewMockResultRepository(ctrl)
	return NewCriteriaService(criteriaRepo, resultRepo), criteriaRepo, resultRepo
}

func TestCriteriaService_Save(t *testing.T) {
	svc, criteriaRepo, _ := newCriteriaService(t)
	criteria := testCriteria(1)
	criteriaRepo.EXPECT().Save(gomock.Any(), criteria).Return(int64(1), nil)

	id, err := svc.Save(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestCriteriaService_Save_权重不合法(t *testing.T) {
	svc, _, _ := newCriteriaService(t)
	criteria := testCriteria(1)
	criteria.Weights.Education = 30

	_, err := svc.Save(context.Background(), criteria)
	assert.ErrorIs(t, err, domain.ErrInvalidWeights)
}

func TestCriteriaService_Save_条件冲突(t *testing.T) {
	svc, _, _ := newCriteriaService(t)
	criteria := testCriteria(1)
	criteria.Experience.RequireCurrentlyEmployed = true
	criteria.Experience.ExcludeCurrentlyEmployed = true

	_, err := svc.Save(context.Background(), criteria)
	assert.ErrorIs(t, err, domain.ErrConflictingFlags)
}

func TestCriteriaService_Detail(t *testing.T) {
	testCases := []struct {
		name        string
		utime       int64
		generatedAt int64
		wantStale   bool
	}{
		{
			name:        "结果比配置新",
			utime:       1000,
			generatedAt: 2000,
			wantStale:   false,
		},
		{
			name:        "配置比结果新",
			utime:       3000,
			generatedAt: 2000,
			wantStale:   true,
		},
		{
			name:        "还没生成过",
			utime:       3000,
			generatedAt: 0,
			wantStale:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, criteriaRepo, resultRepo := newCriteriaService(t)
			criteria := testCriteria(1)
			criteria.Utime = tc.utime
			criteriaRepo.EXPECT().FindByJobId(gomock.Any(), int64(1)).
				Return(criteria, nil)
			resultRepo.EXPECT().LatestGeneratedAt(gomock.Any(), int64(1)).
				Return(tc.generatedAt, nil)

			got, stale, err := svc.Detail(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, criteria, got)
			assert.Equal(t, tc.wantStale, stale.IsStale)
		})
	}
}

func TestCriteriaService_Detail_未配置(t *testing.T) {
	svc, criteriaRepo, _ := newCriteriaService(t)
	criteriaRepo.EXPECT().FindByJobId(gomock.Any(), int64(2)).
		Return(domain.Criteria{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Detail(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCriteriaNotConfigured)
}
