package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name      string
		subscores map[Category]float64
		weights   Weights
		want      float64
	}{
		{
			name: "全满分",
			subscores: map[Category]float64{
				CategoryEducation:    100,
				CategoryExperience:   100,
				CategorySkills:       100,
				CategoryClearance:    100,
				CategoryProfessional: 100,
			},
			weights: validWeights(),
			want:    100,
		},
		{
			name: "按权重加权",
			subscores: map[Category]float64{
				CategoryEducation:    80,
				CategoryExperience:   50,
				CategorySkills:       100,
				CategoryClearance:    0,
				CategoryProfessional: 60,
			},
			// 80*0.25 + 50*0.30 + 100*0.20 + 0*0.15 + 60*0.10 = 61
			weights: validWeights(),
			want:    61,
		},
		{
			name: "保留一位小数",
			subscores: map[Category]float64{
				CategoryEducation:    66.7,
				CategoryExperience:   33.3,
				CategorySkills:       50,
				CategoryClearance:    100,
				CategoryProfessional: 100,
			},
			// 16.675 + 9.99 + 10 + 15 + 10 = 61.665 -> 61.7
			weights: validWeights(),
			want:    61.7,
		},
		{
			name:      "全零",
			subscores: map[Category]float64{},
			weights:   validWeights(),
			want:      0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Aggregate(tc.subscores, tc.weights))
		})
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	sub := map[Category]float64{
		CategoryEducation:    73.4,
		CategoryExperience:   88.9,
		CategorySkills:       66.7,
		CategoryClearance:    100,
		CategoryProfessional: 40,
	}
	w := validWeights()
	first := Aggregate(sub, w)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Aggregate(sub, w))
	}
}
