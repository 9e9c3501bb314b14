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

import (
	"fmt"
	"strings"

	"github.com/ajirahub/ajirahub/internal/candidate"
)

// CheckDisqualification 资格硬性校验，与类目打分完全独立。
// 不短路：收集所有未通过的项，方便审核人一次看全。
// 档案缺少判断所需字段时跳过该项，不据此取消资格。
func CheckDisqualification(c Criteria, p candidate.Profile) (bool, []string) {
	var reasons []string

	per := c.Personal
	if per.MinAge > 0 && p.Personal.Age > 0 && p.Personal.Age < per.MinAge {
		reasons = append(reasons, fmt.Sprintf("年龄 %d 低于下限 %d", p.Personal.Age, per.MinAge))
	}
	if per.MaxAge > 0 && p.Personal.Age > 0 && p.Personal.Age > per.MaxAge {
		reasons = append(reasons, fmt.Sprintf("年龄 %d 超过上限 %d", p.Personal.Age, per.MaxAge))
	}
	if per.Gender != "" && p.Personal.Gender != "" && !strings.EqualFold(per.Gender, p.Personal.Gender) {
		reasons = append(reasons, fmt.Sprintf("性别要求 %s", per.Gender))
	}
	if per.Nationality != "" && p.Personal.Nationality != "" &&
		!strings.EqualFold(per.Nationality, p.Personal.Nationality) {
		reasons = append(reasons, fmt.Sprintf("国籍要求 %s", per.Nationality))
	}
	if per.RequirePLWD && !p.Personal.PLWD {
		reasons = append(reasons, "该岗位仅面向残障人士")
	}
	if len(per.Counties) > 0 && p.Personal.County != "" && !containsFold(per.Counties, p.Personal.County) {
		reasons = append(reasons, fmt.Sprintf("所在郡 %s 不在限定范围内", p.Personal.County))
	}

	exp := c.Experience
	if exp.RequireCurrentlyEmployed && !p.CurrentlyEmployed() {
		reasons = append(reasons, "要求目前在职")
	}
	if exp.ExcludeCurrentlyEmployed && p.CurrentlyEmployed() {
		reasons = append(reasons, "要求目前不在职")
	}

	comp := c.Compensation
	salary := p.Compensation.ExpectedSalary
	if salary > 0 {
		if comp.MinExpectedSalary > 0 && salary < comp.MinExpectedSalary {
			reasons = append(reasons, fmt.Sprintf("期望薪资 %d 低于下限 %d", salary, comp.MinExpectedSalary))
		}
		if comp.MaxExpectedSalary > 0 && salary > comp.MaxExpectedSalary {
			reasons = append(reasons, fmt.Sprintf("期望薪资 %d 超过上限 %d", salary, comp.MaxExpectedSalary))
		}
	}
	if comp.MaxNoticeDays > 0 && p.Compensation.NoticeDays > comp.MaxNoticeDays {
		reasons = append(reasons, fmt.Sprintf("离职交接期 %d 天超过上限 %d 天", p.Compensation.NoticeDays, comp.MaxNoticeDays))
	}
	if comp.RequireImmediateAvailability && !p.Compensation.ImmediatelyAvailable {
		reasons = append(reasons, "要求即刻到岗")
	}
	if comp.WorkMode == candidate.WorkModeOnsite && p.Compensation.WorkMode == candidate.WorkModeRemote {
		reasons = append(reasons, "岗位要求现场办公，候选人只接受远程")
	}
	if comp.WorkMode == candidate.WorkModeRemote && p.Compensation.WorkMode == candidate.WorkModeOnsite {
		reasons = append(reasons, "岗位为远程办公，候选人只接受现场")
	}

	pro := c.Professional
	if pro.refereesRequired() {
		minReferees := pro.MinReferees
		if minReferees <= 0 {
			minReferees = 1
		}
		if len(p.Referees) < minReferees {
			reasons = append(reasons, fmt.Sprintf("推荐人数量 %d 少于要求的 %d", len(p.Referees), minReferees))
		}
	}

	return len(reasons) > 0, reasons
}
