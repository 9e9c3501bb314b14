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

package domain

import "github.com/ajirahub/ajirahub/internal/candidate"

// preferredBonus 每满足一条加分项在类目内加的分
const preferredBonus = 5.0

// Evaluation 单个候选人的评估产物，系统分一旦落库不再改动
type Evaluation struct {
	Subscores       map[Category]float64
	Matched         []string
	Missed          []string
	Bonus           []string
	HasAllMandatory bool
	// Incomplete 档案缺字段导致部分条件没法判断
	Incomplete bool
}

// Evaluate 遍历五个类目下所有启用的条件逐条求值。
// 类目内硬性条件均分 100 分，没有硬性条件的类目基础分即为 100；
// 加分项每满足一条加 preferredBonus 分，类目得分封顶 100。
func Evaluate(c Criteria, p candidate.Profile) Evaluation {
	res := Evaluation{
		Subscores:       make(map[Category]float64, 5),
		HasAllMandatory: true,
	}
	for _, cat := range Categories() {
		criteria := c.CriteriaFor(cat)
		var mandatory int
		for _, cr := range criteria {
			if cr.Kind == KindMandatory {
				mandatory++
			}
		}
		var score float64
		if mandatory == 0 {
			// 类目未启用硬性条件，视为不考察
			score = 100
		}
		share := 0.0
		if mandatory > 0 {
			share = 100.0 / float64(mandatory)
		}
		for _, cr := range criteria {
			match := cr.Match(p)
			if match == MatchUnknown {
				res.Incomplete = true
			}
			switch cr.Kind {
			case KindMandatory:
				if match == MatchYes {
					score += share
					res.Matched = append(res.Matched, cr.Label)
				} else {
					res.Missed = append(res.Missed, cr.Label)
					res.HasAllMandatory = false
				}
			case KindPreferred:
				if match == MatchYes {
					score += preferredBonus
					res.Bonus = append(res.Bonus, cr.Label+"（满足）")
				} else {
					res.Bonus = append(res.Bonus, cr.Label+"（未满足）")
				}
			}
		}
		res.Subscores[cat] = round1(clamp(score, 0, 100))
	}
	return res
}
