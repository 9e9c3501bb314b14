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

// DegreeLevel 学历等级，数值越大等级越高
type DegreeLevel uint8

const (
	DegreeUnknown     DegreeLevel = 0
	DegreeCertificate DegreeLevel = 1
	DegreeDiploma     DegreeLevel = 2
	DegreeBachelors   DegreeLevel = 3
	DegreeMasters     DegreeLevel = 4
	DegreeDoctorate   DegreeLevel = 5
)

func (d DegreeLevel) ToUint8() uint8 {
	return uint8(d)
}

func (d DegreeLevel) String() string {
	switch d {
	case DegreeCertificate:
		return "Certificate"
	case DegreeDiploma:
		return "Diploma"
	case DegreeBachelors:
		return "Bachelors"
	case DegreeMasters:
		return "Masters"
	case DegreeDoctorate:
		return "Doctorate"
	default:
		return "Unknown"
	}
}

// Grade ranks academic grades so that criteria can express a minimum.
type Grade uint8

const (
	GradeUnknown     Grade = 0
	GradePass        Grade = 1
	GradeCredit      Grade = 2
	GradeSecondLower Grade = 3
	GradeSecondUpper Grade = 4
	GradeFirstClass  Grade = 5
)

func (g Grade) ToUint8() uint8 {
	return uint8(g)
}

type EmployerType uint8

const (
	EmployerOther      EmployerType = 0
	EmployerMNC        EmployerType = 1
	EmployerStartup    EmployerType = 2
	EmployerNGO        EmployerType = 3
	EmployerGovernment EmployerType = 4
)

type WorkMode uint8

const (
	WorkModeAny    WorkMode = 0
	WorkModeRemote WorkMode = 1
	WorkModeOnsite WorkMode = 2
	WorkModeHybrid WorkMode = 3
)

func (w WorkMode) ToUint8() uint8 {
	return uint8(w)
}

type Profile struct {
	ID       int64
	FullName string
	Email    string
	Phone    string

	Personal     Personal
	Education    []Education
	Experience   []Experience
	Skills       []string
	Professional Professional
	Clearances   Clearances
	Referees     []Referee
	Compensation Compensation

	Utime int64
}

type Personal struct {
	Age         int
	Gender      string
	Nationality string
	County      string
	// PLWD 残障人士标识（persons living with disability）
	PLWD bool
}

type Education struct {
	Level       DegreeLevel
	Field       string
	Institution string
	Grade       Grade
}

type Experience struct {
	Title        string
	Industry     string
	EmployerType EmployerType
	Years        float64
	Senior       bool
	Management   bool
	TeamSize     int
	Current      bool
}

type Professional struct {
	Memberships            []string
	GoodStanding           bool
	LeadershipCourse       bool
	LeadershipCourseMonths int
	Certifications         []string
	Publications           int
	PortfolioURL           string
	GithubURL              string
	LinkedinURL            string
}

// Clearances 合规证明，均为"当前有效"
type Clearances struct {
	Tax  bool
	HELB bool
	DCI  bool
	CRB  bool
	EACC bool
}

type Referee struct {
	Name     string
	Senior   bool
	Academic bool
}

type Compensation struct {
	ExpectedSalary       int64
	NoticeDays           int
	ImmediatelyAvailable bool
	WorkMode             WorkMode
}

// HighestDegree 返回最高学历，没有教育经历时返回 DegreeUnknown
func (p Profile) HighestDegree() Education {
	var res Education
	for _, edu := range p.Education {
		if edu.Level > res.Level {
			res = edu
		}
	}
	return res
}

func (p Profile) TotalYears() float64 {
	var res float64
	for _, exp := range p.Experience {
		res += exp.Years
	}
	return res
}

func (p Profile) SeniorYears() float64 {
	var res float64
	for _, exp := range p.Experience {
		if exp.Senior {
			res += exp.Years
		}
	}
	return res
}

func (p Profile) CurrentlyEmployed() bool {
	for _, exp := range p.Experience {
		if exp.Current {
			return true
		}
	}
	return false
}

func (p Profile) MaxTeamSize() int {
	var res int
	for _, exp := range p.Experience {
		if exp.TeamSize > res {
			res = exp.TeamSize
		}
	}
	return res
}
