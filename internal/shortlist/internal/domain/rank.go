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

import "sort"

// Rank 对全量结果排名：未被取消资格的按生效总分降序，
// 同分先比系统经验分，再比候选人 ID，保证完全确定。
// 名次为连续的 1..N，同分也各占一个名次。
// 被取消资格的不参与排名，附在末尾仅供展示。
func Rank(results []Result) []Result {
	qualified := make([]Result, 0, len(results))
	disqualified := make([]Result, 0)
	for _, r := range results {
		if r.EffectivelyDisqualified() {
			disqualified = append(disqualified, r)
		} else {
			qualified = append(qualified, r)
		}
	}
	sort.Slice(qualified, func(i, j int) bool {
		si, sj := qualified[i].EffectiveTotalScore(), qualified[j].EffectiveTotalScore()
		if si != sj {
			return si > sj
		}
		if qualified[i].ExperienceScore != qualified[j].ExperienceScore {
			return qualified[i].ExperienceScore > qualified[j].ExperienceScore
		}
		return qualified[i].CandidateID < qualified[j].CandidateID
	})
	n := len(qualified)
	for i := range qualified {
		rank := i + 1
		qualified[i].CandidateRank = &rank
		qualified[i].Percentile = round1(100 * float64(n-rank+1) / float64(n))
	}
	sort.Slice(disqualified, func(i, j int) bool {
		return disqualified[i].CandidateID < disqualified[j].CandidateID
	})
	for i := range disqualified {
		disqualified[i].CandidateRank = nil
		disqualified[i].Percentile = 0
	}
	return append(qualified, disqualified...)
}
