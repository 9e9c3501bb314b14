package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func validWeights() Weights {
	return Weights{
		Education:    25,
		Experience:   30,
		Skills:       20,
		Clearance:    15,
		Professional: 10,
	}
}

func TestCriteria_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		criteria Criteria
		wantErr  error
	}{
		{
			name:     "权重之和为100",
			criteria: Criteria{Weights: validWeights()},
		},
		{
			name: "权重之和为105",
			criteria: Criteria{Weights: Weights{
				Education:    25,
				Experience:   30,
				Skills:       20,
				Clearance:    15,
				Professional: 15,
			}},
			wantErr: ErrInvalidWeights,
		},
		{
			name: "权重之和为0",
			criteria: Criteria{},
			wantErr:  ErrInvalidWeights,
		},
		{
			name: "要求在职与排除在职互斥",
			criteria: Criteria{
				Weights: validWeights(),
				Experience: ExperienceCriteria{
					RequireCurrentlyEmployed: true,
					ExcludeCurrentlyEmployed: true,
				},
			},
			wantErr: ErrConflictingFlags,
		},
		{
			name: "仅面向残障人士但未勾选接受残障人士",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{RequirePLWD: true},
			},
			wantErr: ErrConflictingFlags,
		},
		{
			name: "仅面向残障人士且接受",
			criteria: Criteria{
				Weights:  validWeights(),
				Personal: PersonalCriteria{RequirePLWD: true, AcceptPLWD: true},
			},
		},
		{
			name: "高级推荐人未启用推荐人要求",
			criteria: Criteria{
				Weights:      validWeights(),
				Professional: ProfessionalCriteria{RequireSeniorReferee: true},
			},
			wantErr: ErrConflictingFlags,
		},
		{
			name: "高级推荐人依赖最低推荐人数量",
			criteria: Criteria{
				Weights: validWeights(),
				Professional: ProfessionalCriteria{
					RequireSeniorReferee: true,
					MinReferees:          2,
				},
			},
		},
		{
			name: "学术推荐人未启用推荐人要求",
			criteria: Criteria{
				Weights:      validWeights(),
				Professional: ProfessionalCriteria{RequireAcademicReferee: true},
			},
			wantErr: ErrConflictingFlags,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.criteria.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}
